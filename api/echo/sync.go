package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/impulsa/seguimiento/core/student"
)

type syncApi struct {
	svc *student.Service
}

func registerSyncAPI(g *echo.Group, svc *student.Service) {
	api := syncApi{svc: svc}

	sg := g.Group("/sync")
	sg.GET("", api.state)
	sg.POST("/load", api.load)
	sg.POST("/save", api.save)
}

func (api *syncApi) state(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.SyncState())
}

// load re-fetches the remote snapshot, discarding local edits. This is also
// the "abort" path after a conflicted save.
func (api *syncApi) load(ctx echo.Context) error {
	students, err := api.svc.Load(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "loading remote snapshot")
	}
	return ctx.JSON(http.StatusOK, students)
}

// SaveRequest carries the operator's conflict decision: force proceeds with
// the local-preferring merge even when conflicts were detected.
type SaveRequest struct {
	Force bool `json:"force"`
}

func (api *syncApi) save(ctx echo.Context) error {
	var data SaveRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SaveRequest")
	}

	res, err := api.svc.Save(ctx.Request().Context(), data.Force)
	if err != nil {
		return err
	}

	// conflicts pause the cycle: surface them for an operator decision
	if res.Conflicts != nil && !res.Saved {
		return ctx.JSON(http.StatusConflict, res)
	}
	return ctx.JSON(http.StatusOK, res)
}
