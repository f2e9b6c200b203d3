package schedule

import (
	"time"
)

type (
	// Entry is one scheduled teaching day. The calendar is chronological and
	// ties are allowed: several modules may be taught the same day.
	Entry struct {
		Date   time.Time `json:"date"`
		Course string    `json:"course"`
		Module string    `json:"module"`
	}

	// Milestone is a (date, cumulative expected points) checkpoint derived
	// from course end dates.
	Milestone struct {
		Date   time.Time `json:"date"`
		Points int       `json:"points"`
	}

	// ProcessedEntry is an Entry annotated for display: its module number
	// within the course, the expected cumulative points as of its date, and
	// whether it falls on the reference "today".
	ProcessedEntry struct {
		Entry
		ModuleNumber   int     `json:"moduleNumber"`
		ExpectedPoints float64 `json:"expectedPoints"`
		IsCurrentDay   bool    `json:"isCurrentDay"`
	}

	// Calendar converts the static course calendar into a monotonic
	// "expected cumulative points over time" function. It is immutable
	// after construction.
	Calendar struct {
		entries       []Entry
		courses       []string         // distinct course names, first-appearance order
		moduleNumbers map[string]int   // "course\x00module" -> 1-based number
		milestones    []Milestone
		maxPerCourse  int
		totalMax      int
	}
)

// New builds a Calendar from entries and the per-course point maximum.
// An empty calendar is a valid degenerate state: it has zero milestones and
// every expected-points query returns 0.
func New(entries []Entry, maxPointsPerCourse int) *Calendar {
	cal := &Calendar{
		entries:       make([]Entry, len(entries)),
		moduleNumbers: make(map[string]int),
		maxPerCourse:  maxPointsPerCourse,
	}
	for i, e := range entries {
		e.Date = Normalize(e.Date)
		cal.entries[i] = e
	}

	// course sequence: distinct values in first-appearance order
	seen := make(map[string]bool)
	for _, e := range cal.entries {
		if !seen[e.Course] {
			seen[e.Course] = true
			cal.courses = append(cal.courses, e.Course)
		}
	}

	// module numbering: distinct modules within a course, first-appearance order
	perCourse := make(map[string]int)
	for _, e := range cal.entries {
		key := e.Course + "\x00" + e.Module
		if _, ok := cal.moduleNumbers[key]; !ok {
			perCourse[e.Course]++
			cal.moduleNumbers[key] = perCourse[e.Course]
		}
	}

	cal.totalMax = len(cal.courses) * maxPointsPerCourse
	cal.buildMilestones()
	return cal
}

// buildMilestones derives the checkpoint list: one synthetic milestone the day
// before the program starts (0 points), then one per course at that course's
// last scheduled date, with cumulative points = course index x max per course.
func (cal *Calendar) buildMilestones() {
	if len(cal.entries) == 0 {
		return
	}

	start := cal.entries[0].Date.AddDate(0, 0, -1)
	cal.milestones = append(cal.milestones, Milestone{Date: start})

	lastDates := make(map[string]time.Time)
	for _, e := range cal.entries {
		if e.Date.After(lastDates[e.Course]) {
			lastDates[e.Course] = e.Date
		}
	}
	for i, course := range cal.courses {
		cal.milestones = append(cal.milestones, Milestone{
			Date:   lastDates[course],
			Points: (i + 1) * cal.maxPerCourse,
		})
	}
}

func (cal *Calendar) Entries() []Entry {
	out := make([]Entry, len(cal.entries))
	copy(out, cal.entries)
	return out
}

func (cal *Calendar) Courses() []string {
	out := make([]string, len(cal.courses))
	copy(out, cal.courses)
	return out
}

// CourseModules lists a course's distinct modules in teaching order.
func (cal *Calendar) CourseModules(course string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, e := range cal.entries {
		if e.Course == course && !seen[e.Module] {
			seen[e.Module] = true
			out = append(out, e.Module)
		}
	}
	return out
}

func (cal *Calendar) ModuleNumber(course, module string) int {
	return cal.moduleNumbers[course+"\x00"+module]
}

func (cal *Calendar) Milestones() []Milestone {
	out := make([]Milestone, len(cal.milestones))
	copy(out, cal.milestones)
	return out
}

func (cal *Calendar) MaxPointsPerCourse() int { return cal.maxPerCourse }

// TotalMaxPoints is the program's full score: course count x max per course.
func (cal *Calendar) TotalMaxPoints() int { return cal.totalMax }

// ExpectedPoints answers a point-in-time query against the milestone curve:
// 0 before the first milestone, clamped to the program total on or after the
// last one (no extrapolation), the knot's own value on an exact milestone
// date, and linear interpolation in between. The result is fractional;
// callers decide rounding per display context, comparisons use it as is.
func (cal *Calendar) ExpectedPoints(d time.Time) float64 {
	if len(cal.milestones) == 0 {
		return 0
	}
	d = Normalize(d)

	first, last := cal.milestones[0], cal.milestones[len(cal.milestones)-1]
	if d.Before(first.Date) {
		return 0
	}
	if !d.Before(last.Date) {
		return float64(cal.totalMax)
	}

	// exact hit on a knot short-circuits interpolation
	for _, m := range cal.milestones {
		if d.Equal(m.Date) {
			return float64(m.Points)
		}
	}

	// locate the bracketing pair: prev.Date <= d < next.Date
	for i := 1; i < len(cal.milestones); i++ {
		prev, next := cal.milestones[i-1], cal.milestones[i]
		if !d.Before(prev.Date) && d.Before(next.Date) {
			frac := daysBetween(prev.Date, d) / daysBetween(prev.Date, next.Date)
			return float64(prev.Points) + frac*float64(next.Points-prev.Points)
		}
	}
	return float64(cal.totalMax) // unreachable with ordered milestones
}

// Processed annotates every calendar entry for display relative to `today`.
func (cal *Calendar) Processed(today time.Time) []ProcessedEntry {
	today = Normalize(today)
	out := make([]ProcessedEntry, 0, len(cal.entries))
	for _, e := range cal.entries {
		out = append(out, ProcessedEntry{
			Entry:          e,
			ModuleNumber:   cal.ModuleNumber(e.Course, e.Module),
			ExpectedPoints: cal.ExpectedPoints(e.Date),
			IsCurrentDay:   e.Date.Equal(today),
		})
	}
	return out
}
