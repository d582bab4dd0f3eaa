package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/bweni/core/student"
)

type studentApi struct {
	deps ServerDeps
}

func registerStudentAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := studentApi{deps: deps}

	sg := g.Group("/students", jwt)
	sg.GET("", api.query)
	sg.GET("/me", api.profile)
	sg.POST("", api.create, adminMiddleware())
}

func (api *studentApi) query(ctx echo.Context) error {
	p, err := getContextPrincipal(ctx)
	if err != nil {
		return err
	}

	students, err := api.deps.StudentSvc.Query(p)
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	if students == nil {
		students = []student.Info{}
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api *studentApi) profile(ctx echo.Context) error {
	p, err := getContextPrincipal(ctx)
	if err != nil {
		return err
	}

	info, err := api.deps.StudentSvc.Profile(p)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, info)
}

func (api *studentApi) create(ctx echo.Context) error {
	p, err := getContextPrincipal(ctx)
	if err != nil {
		return err
	}

	var data student.NewStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudent")
	}
	if err := data.Validate(api.deps.Validate, api.deps.Translator); err != nil {
		return err
	}

	std, err := api.deps.StudentSvc.Add(p, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, std)
}
