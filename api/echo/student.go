package echoapi

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/impulsa/seguimiento/core/student"
)

type studentApi struct {
	svc      *student.Service
	validate *validator.Validate
}

func registerStudentAPI(g *echo.Group, svc *student.Service, validate *validator.Validate) {
	api := studentApi{svc: svc, validate: validate}

	sg := g.Group("/students")
	sg.GET("", api.query)
	sg.GET("/statistics", api.statistics)

	dg := sg.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.PUT("/progress", api.setProgress)
	dg.GET("/next-target", api.nextTarget)
}

// Handlers

func (api *studentApi) query(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Students())
}

func (api *studentApi) retrieve(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	s, err := api.svc.Get(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, s)
}

func (api *studentApi) update(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	var data student.UpdateStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateStudent")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	s, err := api.svc.Update(id, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, s)
}

// ProgressRequest is an instructor point edit for one course. Out-of-range
// points are clamped by the service, not rejected here.
type ProgressRequest struct {
	Course int `json:"course" validate:"min=0"`
	Points int `json:"points"`
}

func (api *studentApi) setProgress(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	var data ProgressRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ProgressRequest")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}

	s, err := api.svc.SetProgress(id, data.Course, data.Points)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, s)
}

func (api *studentApi) nextTarget(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	target, err := api.svc.NextTargetFor(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, target)
}

func (api *studentApi) statistics(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Stats())
}

func pathID(ctx echo.Context) (int, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
