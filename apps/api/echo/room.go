package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/bweni/core/room"
)

type roomApi struct {
	deps ServerDeps
}

func registerRoomAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := roomApi{deps: deps}

	rg := g.Group("/rooms", jwt)
	rg.GET("", api.query)
	rg.GET("/mine", api.mine)
	rg.GET("/stats", api.stats, adminMiddleware())
	rg.GET("/:id", api.details)
}

func (api *roomApi) query(ctx echo.Context) error {
	p, err := getContextPrincipal(ctx)
	if err != nil {
		return err
	}

	rooms, err := api.deps.RoomSvc.Query(p, ctx.QueryParam("search"))
	if err != nil {
		return errors.Wrap(err, "querying rooms")
	}
	if rooms == nil {
		rooms = []room.Room{}
	}
	return ctx.JSON(http.StatusOK, rooms)
}

func (api *roomApi) mine(ctx echo.Context) error {
	p, err := getContextPrincipal(ctx)
	if err != nil {
		return err
	}

	details, err := api.deps.RoomSvc.MyRoom(p)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, details)
}

func (api *roomApi) details(ctx echo.Context) error {
	p, err := getContextPrincipal(ctx)
	if err != nil {
		return err
	}

	details, err := api.deps.RoomSvc.Details(p, ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, details)
}

func (api *roomApi) stats(ctx echo.Context) error {
	p, err := getContextPrincipal(ctx)
	if err != nil {
		return err
	}

	stats, err := api.deps.RoomSvc.Stats(p)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, stats)
}
