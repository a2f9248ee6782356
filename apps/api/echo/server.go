package echoapi

import (
	"context"
	"net/http"
	"strconv"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/attendance"
	"github.com/trezcool/shule/core/class"
	"github.com/trezcool/shule/core/grade"
	"github.com/trezcool/shule/core/report"
	"github.com/trezcool/shule/core/student"
)

type (
	Options struct {
		Addr           string
		Debug          bool
		TestMode       bool
		DisableReqLogs bool
		AppName        string
		Logger         core.Logger
		Validate       *validator.Validate
		Translator     ut.Translator

		StudentSvc    *student.Service
		ClassSvc      *class.Service
		GradeSvc      *grade.Service
		AttendanceSvc *attendance.Service
		ReportSvc     *report.Service
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(s.opts.Debug || s.opts.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, s.opts.Translator, s.signalShutdown)
	s.app.Debug = s.opts.Debug

	s.app.GET("/", s.home)

	v1 := s.app.Group("/v1")
	registerStudentAPI(v1, s.opts.StudentSvc, s.opts.Validate)
	registerClassAPI(v1, s.opts.ClassSvc, s.opts.Validate)
	registerAssignmentAPI(v1, s.opts.ClassSvc, s.opts.Validate)
	registerEventAPI(v1, s.opts.ClassSvc, s.opts.Validate)
	registerGradeAPI(v1, s.opts.GradeSvc, s.opts.Validate)
	registerAttendanceAPI(v1, s.opts.AttendanceSvc, s.opts.Validate)
	registerReportAPI(v1, s.opts.ReportSvc)
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Addr))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

// signalShutdown stops the server when an integrity error is caught.
func (s *server) signalShutdown() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.app.Shutdown(ctx)
	}()
}

func (s *server) home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to "+s.opts.AppName+" API!")
}

// intParam parses a positive integer path parameter; anything else is a 404,
// same as an id that is not in the store.
func intParam(ctx echo.Context, name string) (int, error) {
	v, err := strconv.Atoi(ctx.Param(name))
	if err != nil || v <= 0 {
		return 0, errHttpNotFound
	}
	return v, nil
}

// optionalIntQuery returns 0 when the query parameter is absent or malformed.
func optionalIntQuery(ctx echo.Context, name string) int {
	v, err := strconv.Atoi(ctx.QueryParam(name))
	if err != nil || v < 0 {
		return 0
	}
	return v
}
