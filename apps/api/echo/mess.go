package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/bweni/core/mess"
)

type messApi struct {
	deps ServerDeps
}

func registerMessAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := messApi{deps: deps}

	mg := g.Group("/mess-fees", jwt)
	mg.GET("", api.query)
	mg.GET("/stats", api.stats, adminMiddleware())
	mg.PUT("/:id/pay", api.markPaid, adminMiddleware())
}

func (api *messApi) query(ctx echo.Context) error {
	p, err := getContextPrincipal(ctx)
	if err != nil {
		return err
	}

	fees, err := api.deps.MessSvc.Query(p, ctx.QueryParam("search"))
	if err != nil {
		return errors.Wrap(err, "querying mess fees")
	}
	if fees == nil {
		fees = []mess.Info{}
	}
	return ctx.JSON(http.StatusOK, fees)
}

func (api *messApi) markPaid(ctx echo.Context) error {
	p, err := getContextPrincipal(ctx)
	if err != nil {
		return err
	}

	fee, err := api.deps.MessSvc.MarkPaid(p, ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, fee)
}

func (api *messApi) stats(ctx echo.Context) error {
	p, err := getContextPrincipal(ctx)
	if err != nil {
		return err
	}

	stats, err := api.deps.MessSvc.Stats(p)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, stats)
}
