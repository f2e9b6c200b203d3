package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/impulsa/seguimiento/core"
	"github.com/impulsa/seguimiento/core/schedule"
)

type scheduleApi struct {
	cal  *schedule.Calendar
	conf *core.Config
}

func registerScheduleAPI(g *echo.Group, cal *schedule.Calendar, conf *core.Config) {
	api := scheduleApi{cal: cal, conf: conf}

	sg := g.Group("/schedule")
	sg.GET("", api.query)
	sg.GET("/milestones", api.milestones)
	sg.GET("/expected", api.expected)
	sg.GET("/plan", api.plan)
}

func (api *scheduleApi) offset() int {
	return api.conf.Program.TimezoneOffsetHours
}

func (api *scheduleApi) query(ctx echo.Context) error {
	today := schedule.Today(api.offset())
	return ctx.JSON(http.StatusOK, api.cal.Processed(today))
}

func (api *scheduleApi) milestones(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.cal.Milestones())
}

// expected answers a point-in-time projection query. `date` defaults to the
// program's current civil day.
func (api *scheduleApi) expected(ctx echo.Context) error {
	day := schedule.Today(api.offset())
	if raw := ctx.QueryParam("date"); raw != "" {
		var err error
		if day, err = schedule.ParseDay(raw); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
		}
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"date":           schedule.FormatDay(day),
		"expectedPoints": api.cal.ExpectedPoints(day),
	})
}

func (api *scheduleApi) plan(ctx echo.Context) error {
	course := ctx.QueryParam("course")
	module := ctx.QueryParam("module")
	if course == "" || module == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "course and module are required")
	}

	plan, err := api.cal.CatchUpPlan(course, module, schedule.Today(api.offset()))
	if err == schedule.ErrModuleNotScheduled {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, plan)
}
