package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/attendance"
)

type attendanceApi struct {
	svc      *attendance.Service
	validate *validator.Validate
}

func registerAttendanceAPI(g *echo.Group, svc *attendance.Service, validate *validator.Validate) {
	api := attendanceApi{svc: svc, validate: validate}

	ag := g.Group("/attendance")
	ag.GET("", api.query)
	ag.POST("", api.create)
	ag.PUT("/bulk", api.bulkUpdate)
	ag.GET("/rate", api.rate)

	dg := ag.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
}

// Handlers

func (api *attendanceApi) query(ctx echo.Context) error {
	studentID := optionalIntQuery(ctx, "studentId")
	classID := optionalIntQuery(ctx, "classId")
	date := ctx.QueryParam("date")

	var (
		recs []attendance.Attendance
		err  error
	)
	switch {
	case studentID > 0:
		recs, err = api.svc.GetByStudent(ctx.Request().Context(), studentID)
	case classID > 0:
		recs, err = api.svc.GetByClass(ctx.Request().Context(), classID)
	case date != "":
		recs, err = api.svc.GetByDate(ctx.Request().Context(), date)
	default:
		recs, err = api.svc.GetAll(ctx.Request().Context())
	}
	if err != nil {
		return errors.Wrap(err, "querying attendance")
	}
	return ctx.JSON(http.StatusOK, recs)
}

func (api *attendanceApi) create(ctx echo.Context) error {
	var data attendance.NewAttendance
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAttendance")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	rec, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating attendance record")
	}
	return ctx.JSON(http.StatusCreated, rec)
}

func (api *attendanceApi) retrieve(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}

	rec, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rec)
}

func (api *attendanceApi) update(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}

	var data attendance.UpdateAttendance
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateAttendance")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	rec, err := api.svc.Update(ctx.Request().Context(), id, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rec)
}

func (api *attendanceApi) destroy(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}

	rec, err := api.svc.Delete(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rec)
}

func (api *attendanceApi) bulkUpdate(ctx echo.Context) error {
	var records []attendance.UpsertRecord
	if err := ctx.Bind(&records); err != nil {
		return errors.Wrap(err, "binding to []UpsertRecord")
	}
	for i := range records {
		if err := records[i].Validate(api.validate); err != nil {
			return err
		}
	}

	recs, err := api.svc.BulkUpdate(ctx.Request().Context(), records)
	if err != nil {
		return errors.Wrap(err, "bulk updating attendance")
	}
	return ctx.JSON(http.StatusOK, recs)
}

func (api *attendanceApi) rate(ctx echo.Context) error {
	studentID := optionalIntQuery(ctx, "studentId")
	if studentID <= 0 {
		return core.NewValidationError(errors.New("studentId is required"))
	}
	start := ctx.QueryParam("start")
	end := ctx.QueryParam("end")

	rate, err := api.svc.Rate(ctx.Request().Context(), studentID, start, end)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"studentId": studentID, "rate": rate})
}
