package echoapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/trezcool/shule/core/report"
	exportsvc "github.com/trezcool/shule/services/export"
)

const defaultActivityLimit = 20

type reportApi struct {
	svc *report.Service
}

func registerReportAPI(g *echo.Group, svc *report.Service) {
	api := reportApi{svc: svc}

	rg := g.Group("/reports")
	rg.GET("/activity", api.activity)
	rg.GET("/:type", api.retrieve)
	rg.GET("/:type/export", api.export)
}

// Handlers

func (api *reportApi) retrieve(ctx echo.Context) error {
	window := report.DateRange{
		Start: ctx.QueryParam("start"),
		End:   ctx.QueryParam("end"),
	}

	var (
		res interface{}
		err error
	)
	switch typ := ctx.Param("type"); typ {
	case "overview":
		res, err = api.svc.Overview(ctx.Request().Context(), window)
	case "students":
		res, err = api.svc.StudentSummaries(ctx.Request().Context(), window)
	case "classes":
		res, err = api.svc.ClassSummaries(ctx.Request().Context(), window)
	case "performance":
		res, err = api.svc.Performance(ctx.Request().Context(), window)
	case "attendance":
		res, err = api.svc.Attendance(ctx.Request().Context(), window)
	default:
		return errHttpNotFound
	}
	if err != nil {
		return errors.Wrapf(err, "building %s report", ctx.Param("type"))
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *reportApi) export(ctx echo.Context) error {
	window := report.DateRange{
		Start: ctx.QueryParam("start"),
		End:   ctx.QueryParam("end"),
	}

	var (
		f   *excelize.File
		err error
	)
	typ := ctx.Param("type")
	switch typ {
	case "overview":
		var o report.Overview
		if o, err = api.svc.Overview(ctx.Request().Context(), window); err == nil {
			f, err = exportsvc.Overview(o)
		}
	case "students":
		var summaries []report.StudentSummary
		if summaries, err = api.svc.StudentSummaries(ctx.Request().Context(), window); err == nil {
			f, err = exportsvc.Students(summaries)
		}
	case "classes":
		var summaries []report.ClassSummary
		if summaries, err = api.svc.ClassSummaries(ctx.Request().Context(), window); err == nil {
			f, err = exportsvc.Classes(summaries)
		}
	case "performance":
		var p report.Performance
		if p, err = api.svc.Performance(ctx.Request().Context(), window); err == nil {
			f, err = exportsvc.Performance(p)
		}
	case "attendance":
		var r report.AttendanceReport
		if r, err = api.svc.Attendance(ctx.Request().Context(), window); err == nil {
			f, err = exportsvc.Attendance(r)
		}
	default:
		return errHttpNotFound
	}
	if err != nil {
		return errors.Wrapf(err, "exporting %s report", typ)
	}

	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	res.Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s-report.xlsx", typ))
	res.WriteHeader(http.StatusOK)
	if err = f.Write(res); err != nil {
		return errors.Wrapf(err, "writing %s workbook", typ)
	}
	return nil
}

func (api *reportApi) activity(ctx echo.Context) error {
	limit := optionalIntQuery(ctx, "limit")
	if limit <= 0 {
		limit = defaultActivityLimit
	}

	activities, err := api.svc.RecentActivity(ctx.Request().Context(), limit)
	if err != nil {
		return errors.Wrap(err, "building activity feed")
	}
	return ctx.JSON(http.StatusOK, activities)
}
