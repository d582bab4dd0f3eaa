package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/bweni/core/attendance"
)

type attendanceApi struct {
	deps ServerDeps
}

func registerAttendanceAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := attendanceApi{deps: deps}

	ag := g.Group("/attendance", jwt)
	ag.GET("", api.query)
	ag.GET("/stats", api.stats, adminMiddleware())
	ag.POST("", api.mark, adminMiddleware())
}

func (api *attendanceApi) query(ctx echo.Context) error {
	p, err := getContextPrincipal(ctx)
	if err != nil {
		return err
	}

	records, err := api.deps.AttendanceSvc.Query(p, ctx.QueryParam("date"), ctx.QueryParam("search"))
	if err != nil {
		return errors.Wrap(err, "querying attendance")
	}
	if records == nil {
		records = []attendance.Info{}
	}
	return ctx.JSON(http.StatusOK, records)
}

func (api *attendanceApi) mark(ctx echo.Context) error {
	p, err := getContextPrincipal(ctx)
	if err != nil {
		return err
	}

	var data attendance.Batch
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Batch")
	}
	if err := data.Validate(api.deps.Validate, api.deps.Translator); err != nil {
		return err
	}

	records, err := api.deps.AttendanceSvc.Mark(p, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, records)
}

func (api *attendanceApi) stats(ctx echo.Context) error {
	p, err := getContextPrincipal(ctx)
	if err != nil {
		return err
	}

	stats, err := api.deps.AttendanceSvc.Stats(p, ctx.QueryParam("date"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, stats)
}
