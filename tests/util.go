package testutil

import (
	"net/mail"
	"testing"
	"time"

	"github.com/impulsa/seguimiento/core"
	"github.com/impulsa/seguimiento/core/schedule"
	"github.com/impulsa/seguimiento/core/student"
)

// NewConfig returns a deterministic config for tests; nothing is read from
// the environment.
func NewConfig() *core.Config {
	return &core.Config{
		Env:              "TEST",
		Debug:            true,
		TestMode:         true,
		AppName:          "Seguimiento",
		Build:            "test",
		DefaultFromEmail: mail.Address{Address: "noreply@test.local"},
		AlertRecipients:  []mail.Address{{Name: "Staff", Address: "staff@test.local"}},
		FrontendBaseURL:  "http://localhost:3000",
		Database: core.DatabaseConfig{
			Engine:     "postgres",
			Name:       "seguimiento_test",
			Host:       "localhost",
			Port:       5432,
			DisableTLS: true,
		},
		Program: core.ProgramConfig{
			MaxPointsPerCourse:  100,
			TimezoneOffsetHours: -6,
		},
	}
}

// NewCalendar builds the standard two-course fixture: "Excel" taught
// 2025-07-01 through 2025-07-10 and "Power BI" 2025-07-11 through 2025-07-20,
// one module per day, 100 points per course.
func NewCalendar() *schedule.Calendar {
	entries := make([]schedule.Entry, 0, 20)
	modules := []string{
		"Introducción", "Fórmulas", "Funciones", "Tablas", "Gráficos",
		"Filtros", "Tablas dinámicas", "Macros", "Dashboards", "Proyecto final",
	}
	for i, m := range modules {
		entries = append(entries, schedule.Entry{
			Date: schedule.Day(2025, time.July, 1+i), Course: "Excel", Module: m,
		})
	}
	for i, m := range modules {
		entries = append(entries, schedule.Entry{
			Date: schedule.Day(2025, time.July, 11+i), Course: "Power BI", Module: m,
		})
	}
	return schedule.New(entries, 100)
}

// NewStudent builds a student with the given per-course progress; derived
// fields are left zero for the service to compute.
func NewStudent(id int, name string, progress ...int) student.Student {
	if progress == nil {
		progress = make([]int, 2)
	}
	return student.Student{
		ID:                id,
		Name:              name,
		CourseProgress:    progress,
		CertificateStatus: make([]bool, len(progress)),
	}
}

type testLogger struct {
	t *testing.T
}

// NewLogger returns a core.Logger that writes through t.Logf so output is
// only shown for failing tests.
func NewLogger(t *testing.T) core.Logger {
	return testLogger{t: t}
}

func (l testLogger) Debug(msg string, args ...interface{}) { l.log("DEBUG", msg, args...) }
func (l testLogger) Info(msg string, args ...interface{})  { l.log("INFO", msg, args...) }
func (l testLogger) Warn(msg string, args ...interface{})  { l.log("WARN", msg, args...) }
func (l testLogger) Error(msg string, args ...interface{}) { l.log("ERROR", msg, args...) }
func (l testLogger) Fatal(msg string, args ...interface{}) { l.log("FATAL", msg, args...) }

func (l testLogger) log(level, msg string, args ...interface{}) {
	l.t.Helper()
	if len(args) > 0 {
		l.t.Logf("%s: %s %v", level, msg, args)
		return
	}
	l.t.Logf("%s: %s", level, msg)
}
