package main

import (
	"log"
	"os"

	echoapi "github.com/trezcool/shule/apps/api/echo"
	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/attendance"
	"github.com/trezcool/shule/core/class"
	"github.com/trezcool/shule/core/grade"
	"github.com/trezcool/shule/core/report"
	"github.com/trezcool/shule/core/student"
	logsvc "github.com/trezcool/shule/services/logger"
	inmemdb "github.com/trezcool/shule/storage/database/inmem"
)

func main() {
	conf := core.NewConfig()

	std := log.New(os.Stdout, conf.AppName+" ", log.LstdFlags|log.Lshortfile)
	var logger core.Logger
	if conf.RollbarToken != "" {
		rl := logsvc.NewRollbarLogger(std, conf)
		rl.Enable(!conf.TestMode)
		logger = rl
	} else {
		logger = logsvc.NewConsoleLogger(std)
	}

	validate, translator := core.NewValidator()

	// set up DB
	db, err := inmemdb.OpenFixtures()
	errAndDie(err)

	// set up services
	delay := core.NewDelayer(conf.Latency)
	if conf.TestMode {
		delay = core.NoDelay
	}
	studentSvc := student.NewService(inmemdb.NewStudentRepository(db), delay)
	classSvc := class.NewService(inmemdb.NewClassRepository(db), delay)
	gradeSvc := grade.NewService(inmemdb.NewGradeRepository(db), delay)
	attendanceSvc := attendance.NewService(inmemdb.NewAttendanceRepository(db), delay)
	reportSvc := report.NewService(studentSvc, classSvc, gradeSvc, attendanceSvc)

	// start API server
	app := echoapi.NewServer(
		&echoapi.Options{
			Addr:          conf.Server.Address(),
			Debug:         conf.Debug,
			TestMode:      conf.TestMode,
			AppName:       conf.AppName,
			Logger:        logger,
			Validate:      validate,
			Translator:    translator,
			StudentSvc:    studentSvc,
			ClassSvc:      classSvc,
			GradeSvc:      gradeSvc,
			AttendanceSvc: attendanceSvc,
			ReportSvc:     reportSvc,
		},
	)
	app.Start()
}

func errAndDie(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
