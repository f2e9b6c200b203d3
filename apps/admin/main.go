package main

import (
	"log"
	"os"

	"github.com/jmoiron/sqlx"

	"github.com/impulsa/seguimiento/core"
	"github.com/impulsa/seguimiento/core/schedule"
	"github.com/impulsa/seguimiento/core/student"
	emailsvc "github.com/impulsa/seguimiento/services/email"
	logsvc "github.com/impulsa/seguimiento/services/logger"
	"github.com/impulsa/seguimiento/storage/database"
	sqlxrepos "github.com/impulsa/seguimiento/storage/database/sqlx"
	sheetdb "github.com/impulsa/seguimiento/storage/sheet"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()
	appLogger := logsvc.NewRollbarLogger(logger, conf)

	var store student.Store
	if conf.Sheet.BaseURL != "" {
		store = sheetdb.NewStudentStore(conf)
	} else {
		db, err := database.Open(conf)
		errAndDie(err)
		defer func() { _ = db.Close() }()
		store = sqlxrepos.NewStudentStore(sqlx.NewDb(db, conf.Database.Engine))
	}

	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, appLogger)
	}
	core.ParseEmailTemplates(appLogger)

	cal := schedule.Program(conf.Program.MaxPointsPerCourse)

	cli := commandLine{
		conf:   conf,
		stuSvc: student.NewService(store, cal, appLogger, mailSvc, conf),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
