package schedule

import (
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestCalendar_CatchUpPlan(t *testing.T) {
	cal := twoCourseCalendar()

	t.Run("behind by four modules", func(t *testing.T) {
		// position: Excel M3 (2025-07-03, expected 30); today expects 70
		plan, err := cal.CatchUpPlan("Excel", "M3", Day(2025, time.July, 7))
		if err != nil {
			t.Fatalf("CatchUpPlan() failed: %v", err)
		}

		if plan.PointsNeeded != 40 {
			t.Errorf("PointsNeeded = %d, want 40", plan.PointsNeeded)
		}
		wantModules := []string{"M4", "M5", "M6", "M7"}
		if len(plan.Modules) != len(wantModules) {
			t.Fatalf("len(Modules) = %d, want %d", len(plan.Modules), len(wantModules))
		}
		for i, m := range wantModules {
			if plan.Modules[i].Module != m {
				t.Errorf("Modules[%d] = %s, want %s", i, plan.Modules[i].Module, m)
			}
		}
		if plan.TotalPomodoros != 12 {
			t.Errorf("TotalPomodoros = %d, want 12", plan.TotalPomodoros)
		}
		if plan.SuggestedDays != 2 {
			t.Errorf("SuggestedDays = %d, want 2", plan.SuggestedDays)
		}

		// two modules per day starting today
		today := Day(2025, time.July, 7)
		if !plan.Modules[0].SuggestedDate.Equal(today) || !plan.Modules[1].SuggestedDate.Equal(today) {
			t.Error("first two modules should be suggested for today")
		}
		tomorrow := today.AddDate(0, 0, 1)
		if !plan.Modules[2].SuggestedDate.Equal(tomorrow) || !plan.Modules[3].SuggestedDate.Equal(tomorrow) {
			t.Error("next two modules should be suggested for tomorrow")
		}
	})

	t.Run("spans both courses", func(t *testing.T) {
		// position: Excel M8 (2025-07-08); today 2025-07-12 expects 120
		plan, err := cal.CatchUpPlan("Excel", "M8", Day(2025, time.July, 12))
		if err != nil {
			t.Fatalf("CatchUpPlan() failed: %v", err)
		}

		if plan.PointsNeeded != 40 {
			t.Errorf("PointsNeeded = %d, want 40", plan.PointsNeeded)
		}
		// Excel M9, M10 then Power BI M1, M2
		if len(plan.Modules) != 4 {
			t.Fatalf("len(Modules) = %d, want 4", len(plan.Modules))
		}
		if plan.Modules[1].Course != "Excel" || plan.Modules[2].Course != "Power BI" {
			t.Errorf("plan does not cross the course boundary: %+v", plan.Modules)
		}
	})

	t.Run("on pace", func(t *testing.T) {
		plan, err := cal.CatchUpPlan("Excel", "M7", Day(2025, time.July, 7))
		if err != nil {
			t.Fatalf("CatchUpPlan() failed: %v", err)
		}
		if plan.PointsNeeded != 0 || len(plan.Modules) != 0 {
			t.Errorf("expected an empty plan, got %+v", plan)
		}
	})

	t.Run("ahead of pace", func(t *testing.T) {
		plan, err := cal.CatchUpPlan("Power BI", "M5", Day(2025, time.July, 7))
		if err != nil {
			t.Fatalf("CatchUpPlan() failed: %v", err)
		}
		if plan.PointsNeeded != 0 || len(plan.Modules) != 0 {
			t.Errorf("expected an empty plan, got %+v", plan)
		}
	})

	t.Run("unknown module", func(t *testing.T) {
		_, err := cal.CatchUpPlan("Excel", "nope", Day(2025, time.July, 7))
		if !errors.Is(err, ErrModuleNotScheduled) {
			t.Errorf("err = %v, want ErrModuleNotScheduled", err)
		}
	})
}
