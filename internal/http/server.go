// Package http serves the dashboard and the JSON projections. The
// handlers reload the ledger from storage on every request; rendering
// and chart drawing stay in the templates and the browser.
package http

import (
	"html/template"
	"net/http"
	"time"

	"fintrack/internal/log"
	"fintrack/internal/recorder"
	"fintrack/web"
)

type Server struct {
	http.Server

	templates *template.Template
	rec       *recorder.Recorder
	logger    *log.Logger
}

func NewServer(addr string, rec *recorder.Recorder, logger *log.Logger) (*Server, error) {
	templates, err := template.ParseFS(web.TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	s := &Server{
		templates: templates,
		rec:       rec,
		logger:    logger.WithComponent(log.ComponentHTTP),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleDashboard)
	mux.HandleFunc("/income", s.handleCreateIncome)
	mux.HandleFunc("/expense", s.handleCreateExpense)
	mux.HandleFunc("/api/summary", s.handleSummary)
	mux.HandleFunc("/api/breakdown", s.handleBreakdown)
	mux.HandleFunc("/api/monthly", s.handleMonthly)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.Handle("/static/", http.FileServer(http.FS(web.StaticFS)))

	s.Addr = addr
	s.Handler = log.AccessLog(logger)(mux)
	s.ReadTimeout = 10 * time.Second
	s.WriteTimeout = 10 * time.Second
	s.IdleTimeout = 60 * time.Second
	s.MaxHeaderBytes = 1 << 16

	return s, nil
}
