package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/bweni/core/complaint"
)

type complaintApi struct {
	deps ServerDeps
}

func registerComplaintAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := complaintApi{deps: deps}

	cg := g.Group("/complaints", jwt)
	cg.GET("", api.query)
	cg.POST("", api.submit)
	cg.PUT("/:id/status", api.updateStatus, adminMiddleware())
}

func (api *complaintApi) query(ctx echo.Context) error {
	p, err := getContextPrincipal(ctx)
	if err != nil {
		return err
	}

	complaints, err := api.deps.ComplaintSvc.Query(p)
	if err != nil {
		return errors.Wrap(err, "querying complaints")
	}
	if complaints == nil {
		complaints = []complaint.Info{}
	}
	return ctx.JSON(http.StatusOK, complaints)
}

func (api *complaintApi) submit(ctx echo.Context) error {
	p, err := getContextPrincipal(ctx)
	if err != nil {
		return err
	}

	var data complaint.NewComplaint
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewComplaint")
	}
	if err := data.Validate(api.deps.Validate, api.deps.Translator); err != nil {
		return err
	}

	c, err := api.deps.ComplaintSvc.Submit(p, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, c)
}

func (api *complaintApi) updateStatus(ctx echo.Context) error {
	p, err := getContextPrincipal(ctx)
	if err != nil {
		return err
	}

	var data complaint.StatusUpdate
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to StatusUpdate")
	}
	if err := data.Validate(api.deps.Validate, api.deps.Translator); err != nil {
		return err
	}

	c, err := api.deps.ComplaintSvc.UpdateStatus(p, ctx.Param("id"), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, c)
}
