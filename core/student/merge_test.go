package student

import (
	"strings"
	"testing"
)

func mergeFixture() (baseline map[int]Student, local, remote []Student) {
	mk := func(id int, name string, excel, powerBI int) Student {
		return Student{
			ID:                id,
			Name:              name,
			CourseProgress:    []int{excel, powerBI},
			CertificateStatus: make([]bool, 2),
		}
	}

	base := []Student{
		mk(1, "Ana López", 40, 0),
		mk(2, "Luis Pérez", 100, 35),
		mk(3, "María Gómez", 0, 0),
		mk(5, "Carlos Ruiz", 60, 10),
	}
	baseline = make(map[int]Student, len(base))
	local = make([]Student, 0, len(base))
	remote = make([]Student, 0, len(base))
	for _, s := range base {
		baseline[s.ID] = s.Clone()
		local = append(local, s.Clone())
		remote = append(remote, s.Clone())
	}
	return baseline, local, remote
}

func TestMerge_nothingToSave(t *testing.T) {
	baseline, local, remote := mergeFixture()

	res := Merge(baseline, local, remote)
	if !res.NothingToSave() {
		t.Errorf("NothingToSave() = false, ChangedIDs = %v", res.ChangedIDs)
	}
	if res.HasConflicts() {
		t.Errorf("HasConflicts() = true, Conflicts = %+v", res.Conflicts)
	}
	if len(res.Merged) != len(remote) {
		t.Errorf("len(Merged) = %d, want %d", len(res.Merged), len(remote))
	}
}

func TestMerge_derivedFieldsDoNotFlagChanges(t *testing.T) {
	baseline, local, remote := mergeFixture()

	// recomputed projections churn on every refresh; they must not count as edits
	local[0].TotalPoints = 40
	local[0].ExpectedPoints = 55.5
	local[0].Status = StatusAtrasada
	local[0].RankBadge = "Top 3"

	res := Merge(baseline, local, remote)
	if !res.NothingToSave() {
		t.Errorf("derived-only changes flagged as edits: %v", res.ChangedIDs)
	}
}

func TestMerge_localOnlyChange(t *testing.T) {
	baseline, local, remote := mergeFixture()
	local[0].CourseProgress = []int{55, 0}

	res := Merge(baseline, local, remote)
	if got := res.ChangedIDs; len(got) != 1 || got[0] != 1 {
		t.Fatalf("ChangedIDs = %v, want [1]", got)
	}
	if res.HasConflicts() {
		t.Errorf("HasConflicts() = true, Conflicts = %+v", res.Conflicts)
	}
	if res.Merged[0].CourseProgress[0] != 55 {
		t.Errorf("Merged[0] did not keep the local edit: %+v", res.Merged[0])
	}
	// untouched records come from the remote
	if res.Merged[1].CourseProgress[0] != 100 {
		t.Errorf("Merged[1] = %+v, want the remote version", res.Merged[1])
	}
}

func TestMerge_remoteOnlyChange(t *testing.T) {
	baseline, local, remote := mergeFixture()
	remote[1].CourseProgress = []int{100, 80}

	res := Merge(baseline, local, remote)
	if !res.NothingToSave() {
		t.Errorf("remote-only change flagged local edits: %v", res.ChangedIDs)
	}
	if res.Merged[1].CourseProgress[1] != 80 {
		t.Errorf("Merged[1] did not adopt the remote version: %+v", res.Merged[1])
	}
}

func TestMerge_conflict(t *testing.T) {
	baseline, local, remote := mergeFixture()
	local[3].CourseProgress = []int{70, 10}  // id 5 edited locally
	remote[3].CourseProgress = []int{60, 30} // and remotely

	res := Merge(baseline, local, remote)
	if !res.HasConflicts() {
		t.Fatal("HasConflicts() = false")
	}
	if len(res.Conflicts) != 1 || res.Conflicts[0].ID != 5 {
		t.Fatalf("Conflicts = %+v, want one conflict for id 5", res.Conflicts)
	}
	if c := res.Conflicts[0]; c.Name != "Carlos Ruiz" || !strings.Contains(c.Diff, "remote") {
		t.Errorf("Conflicts[0] = %+v, want named conflict with a unified diff", c)
	}

	// local still wins in the merged set
	for _, s := range res.Merged {
		if s.ID == 5 && s.CourseProgress[0] != 70 {
			t.Errorf("Merged kept the remote version for the conflicted record: %+v", s)
		}
	}
}

func TestMerge_localRecordMissingFromRemote(t *testing.T) {
	baseline, local, remote := mergeFixture()
	local[2].CourseProgress = []int{10, 0} // id 3 edited locally
	remote = append(remote[:2], remote[3:]...) // ...and deleted remotely

	res := Merge(baseline, local, remote)
	var found bool
	for _, s := range res.Merged {
		if s.ID == 3 {
			found = true
			if s.CourseProgress[0] != 10 {
				t.Errorf("resurrected record lost the local edit: %+v", s)
			}
		}
	}
	if !found {
		t.Error("locally edited record dropped because the remote no longer has it")
	}
}

func TestMerge_unknownLocalRecordCountsAsChanged(t *testing.T) {
	baseline, local, remote := mergeFixture()
	local = append(local, Student{ID: 9, Name: "Nueva Alumna", CourseProgress: []int{5, 0}})

	res := Merge(baseline, local, remote)
	if got := res.ChangedIDs; len(got) != 1 || got[0] != 9 {
		t.Fatalf("ChangedIDs = %v, want [9]", got)
	}
	var found bool
	for _, s := range res.Merged {
		if s.ID == 9 {
			found = true
		}
	}
	if !found {
		t.Error("new local record missing from Merged")
	}
}
