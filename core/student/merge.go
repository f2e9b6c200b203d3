package student

import (
	"encoding/json"
	"sort"

	"github.com/pmezard/go-difflib/difflib"
)

type (
	// Conflict is a record changed both locally and remotely since the
	// baseline. Diff is a unified diff of the remote vs local JSON forms.
	Conflict struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
		Diff string `json:"diff,omitempty"`
	}

	// MergeResult is the outcome of reconciling three snapshots: the
	// last-known baseline, the local working set, and a fresh remote fetch.
	MergeResult struct {
		// Merged prefers the local version for every locally-changed record
		// and the remote version otherwise, in remote order (locally-changed
		// records missing from the remote are appended).
		Merged []Student
		// Conflicts lists records that changed on both sides since the
		// baseline. Local edits still win in Merged; the operator decides
		// whether to proceed or abort.
		Conflicts []Conflict
		// ChangedIDs are the records that differ locally from the baseline.
		ChangedIDs []int
	}
)

// NothingToSave reports whether the local working set carries no edits.
func (r MergeResult) NothingToSave() bool { return len(r.ChangedIDs) == 0 }

// HasConflicts reports whether any record changed on both sides.
func (r MergeResult) HasConflicts() bool { return len(r.Conflicts) > 0 }

// Merge reconciles local edits against a freshly fetched remote snapshot.
// It is a pure function of its three inputs; nothing is written anywhere.
func Merge(baseline map[int]Student, local, remote []Student) MergeResult {
	var res MergeResult

	localByID := make(map[int]Student, len(local))
	locallyChanged := make(map[int]bool)
	for _, l := range local {
		localByID[l.ID] = l
		base, known := baseline[l.ID]
		if !known || !l.EqualBase(base) {
			locallyChanged[l.ID] = true
			res.ChangedIDs = append(res.ChangedIDs, l.ID)
		}
	}
	sort.Ints(res.ChangedIDs)

	seen := make(map[int]bool, len(remote))
	for _, r := range remote {
		seen[r.ID] = true
		if !locallyChanged[r.ID] {
			res.Merged = append(res.Merged, r.Clone())
			continue
		}

		l := localByID[r.ID]
		res.Merged = append(res.Merged, l.Clone())

		// remote-side change detection is independent of the local one
		if base, known := baseline[r.ID]; known && !r.EqualBase(base) {
			res.Conflicts = append(res.Conflicts, Conflict{
				ID:   r.ID,
				Name: l.Name,
				Diff: recordDiff(r, l),
			})
		}
	}

	// locally-changed records the remote no longer has: local edits win
	for _, l := range local {
		if locallyChanged[l.ID] && !seen[l.ID] {
			res.Merged = append(res.Merged, l.Clone())
		}
	}
	return res
}

// recordDiff renders a unified diff between the remote and local JSON forms
// of a conflicted record, for operator review.
func recordDiff(remote, local Student) string {
	rj, err := json.MarshalIndent(remote, "", "  ")
	if err != nil {
		return ""
	}
	lj, err := json.MarshalIndent(local, "", "  ")
	if err != nil {
		return ""
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(rj)),
		B:        difflib.SplitLines(string(lj)),
		FromFile: "remote",
		ToFile:   "local",
		Context:  1,
	})
	if err != nil {
		return ""
	}
	return diff
}
