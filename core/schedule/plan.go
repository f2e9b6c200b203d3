package schedule

import (
	"math"
	"time"

	"github.com/pkg/errors"
)

// Catch-up pacing: a student is expected to clear two modules per day, at
// three pomodoro sessions per module.
const (
	planModulesPerDay      = 2
	planPomodorosPerModule = 3
)

var ErrModuleNotScheduled = errors.New("course/module not found in the calendar")

type (
	PlanModule struct {
		Course        string    `json:"course"`
		Module        string    `json:"module"`
		ModuleNumber  int       `json:"moduleNumber"`
		SuggestedDate time.Time `json:"suggestedDate"`
	}

	// Plan is a catch-up schedule for a student who reports being at a given
	// course/module: the modules left to cover to be back on pace today.
	Plan struct {
		PointsNeeded   int          `json:"pointsNeeded"`
		Modules        []PlanModule `json:"modulesToCover"`
		TotalPomodoros int          `json:"totalPomodoros"`
		SuggestedDays  int          `json:"suggestedDays"`
	}
)

// CatchUpPlan computes the modules between the student's reported position
// and today's pace, spread over suggested dates starting today.
func (cal *Calendar) CatchUpPlan(course, module string, today time.Time) (Plan, error) {
	today = Normalize(today)

	// the student's position is the last scheduled day for that module
	posIdx := -1
	for i := len(cal.entries) - 1; i >= 0; i-- {
		if cal.entries[i].Course == course && cal.entries[i].Module == module {
			posIdx = i
			break
		}
	}
	if posIdx < 0 {
		return Plan{}, ErrModuleNotScheduled
	}

	currentPoints := cal.ExpectedPoints(cal.entries[posIdx].Date)
	pointsNeeded := int(math.Round(cal.ExpectedPoints(today) - currentPoints))
	if pointsNeeded <= 0 {
		return Plan{}, nil
	}

	// everything scheduled after the student's position, up to today
	todayIdx := len(cal.entries) - 1
	for i, e := range cal.entries {
		if e.Date.Equal(today) {
			todayIdx = i
			break
		}
	}
	slice := cal.entries[posIdx+1 : todayIdx+1]

	var modules []PlanModule
	seen := make(map[string]bool)
	for _, e := range slice {
		key := e.Course + "\x00" + e.Module
		if seen[key] {
			continue
		}
		seen[key] = true
		modules = append(modules, PlanModule{
			Course:        e.Course,
			Module:        e.Module,
			ModuleNumber:  cal.ModuleNumber(e.Course, e.Module),
			SuggestedDate: today.AddDate(0, 0, len(modules)/planModulesPerDay),
		})
	}

	suggestedDays := 0
	if len(modules) > 0 {
		suggestedDays = (len(modules) + planModulesPerDay - 1) / planModulesPerDay
	}
	return Plan{
		PointsNeeded:   pointsNeeded,
		Modules:        modules,
		TotalPomodoros: len(modules) * planPomodorosPerModule,
		SuggestedDays:  suggestedDays,
	}, nil
}
