package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-playground/validator/v10"

	echoapi "github.com/trezcool/bweni/apps/api/echo"
	"github.com/trezcool/bweni/core"
	"github.com/trezcool/bweni/core/attendance"
	"github.com/trezcool/bweni/core/auth"
	"github.com/trezcool/bweni/core/complaint"
	"github.com/trezcool/bweni/core/fine"
	"github.com/trezcool/bweni/core/mess"
	"github.com/trezcool/bweni/core/room"
	"github.com/trezcool/bweni/core/student"
	emailsvc "github.com/trezcool/bweni/services/email"
	logsvc "github.com/trezcool/bweni/services/logger"
	inmemdb "github.com/trezcool/bweni/storage/database/inmem"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up loggers
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	// set up DB
	db, err := inmemdb.Open()
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening database: %v", err), err)
	}
	if err = inmemdb.Seed(db); err != nil {
		logger.Fatal(fmt.Sprintf("seeding database: %v", err), err)
	}

	studentRepo := inmemdb.NewStudentRepository(db)
	roomRepo := inmemdb.NewRoomRepository(db)
	messRepo := inmemdb.NewMessFeeRepository(db)
	fineRepo := inmemdb.NewFineRepository(db)
	complaintRepo := inmemdb.NewComplaintRepository(db)
	attendanceRepo := inmemdb.NewAttendanceRepository(db)

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	accounts, err := auth.DefaultAccounts()
	if err != nil {
		logger.Fatal(fmt.Sprintf("loading accounts: %v", err), err)
	}

	authSvc := auth.NewService(accounts, conf)
	studentSvc := student.NewService(studentRepo, roomRepo)
	roomSvc := room.NewService(roomRepo, studentRepo)
	messSvc := mess.NewService(messRepo, studentRepo)
	fineSvc := fine.NewService(fineRepo, studentRepo, mailSvc)
	complaintSvc := complaint.NewService(complaintRepo, studentRepo, mailSvc)
	attendanceSvc := attendance.NewService(attendanceRepo, studentRepo)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	fine.InitValidators(validate, translator)
	complaint.InitValidators(validate, translator)
	attendance.InitValidators(validate, translator)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	// Expose important info under /debug/vars.
	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:          conf,
			Logger:        logger,
			AuthSvc:       authSvc,
			StudentSvc:    studentSvc,
			RoomSvc:       roomSvc,
			MessSvc:       messSvc,
			FineSvc:       fineSvc,
			ComplaintSvc:  complaintSvc,
			AttendanceSvc: attendanceSvc,
			Validate:      validate,
			Translator:    translator,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err := <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}
