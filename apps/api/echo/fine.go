package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/bweni/core/fine"
)

type fineApi struct {
	deps ServerDeps
}

func registerFineAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := fineApi{deps: deps}

	fg := g.Group("/fines", jwt)
	fg.GET("", api.query)
	fg.GET("/reasons", api.queryReasons)
	fg.GET("/stats", api.stats, adminMiddleware())
	fg.POST("", api.create, adminMiddleware())
	fg.PUT("/:id/pay", api.markPaid, adminMiddleware())
}

func (api *fineApi) query(ctx echo.Context) error {
	p, err := getContextPrincipal(ctx)
	if err != nil {
		return err
	}

	fines, err := api.deps.FineSvc.Query(p, ctx.QueryParam("search"))
	if err != nil {
		return errors.Wrap(err, "querying fines")
	}
	if fines == nil {
		fines = []fine.Info{}
	}
	return ctx.JSON(http.StatusOK, fines)
}

func (api *fineApi) queryReasons(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, fine.Reasons)
}

func (api *fineApi) create(ctx echo.Context) error {
	p, err := getContextPrincipal(ctx)
	if err != nil {
		return err
	}

	var data fine.NewFine
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewFine")
	}
	if err := data.Validate(api.deps.Validate, api.deps.Translator); err != nil {
		return err
	}

	fn, err := api.deps.FineSvc.Add(p, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, fn)
}

func (api *fineApi) markPaid(ctx echo.Context) error {
	p, err := getContextPrincipal(ctx)
	if err != nil {
		return err
	}

	fn, err := api.deps.FineSvc.MarkPaid(p, ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, fn)
}

func (api *fineApi) stats(ctx echo.Context) error {
	p, err := getContextPrincipal(ctx)
	if err != nil {
		return err
	}

	stats, err := api.deps.FineSvc.Stats(p)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, stats)
}
