package http

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"fintrack/internal/core"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	flash := sanitizeInput(r.URL.Query().Get("msg"))
	s.renderDashboard(w, r, http.StatusOK, flash, "")
}

// renderDashboard reloads the ledger and renders the full page. Load
// failures degrade to an empty ledger per the tolerant-read policy; a
// store that errors on read behaves like one that is not there yet.
func (s *Server) renderDashboard(w http.ResponseWriter, r *http.Request, status int, flash, formError string) {
	snapshot, err := s.rec.Ledger(r.Context())
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Ledger load failed, rendering empty dashboard", "error", err)
		snapshot = core.Ledger{}
	}

	view, err := buildDashboardView(snapshot)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Dashboard view build failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	view.Today = today()
	view.Flash = flash
	view.Error = formError

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.templates.ExecuteTemplate(w, "dashboard.html", view); err != nil {
		s.logger.ErrorContext(r.Context(), "Dashboard template execution failed", "error", err)
	}
}

func (s *Server) handleCreateIncome(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.logger.ErrorContext(r.Context(), "Parse form error", "error", err, "path", r.URL.Path)
		s.renderDashboard(w, r, http.StatusBadRequest, "", "Invalid request format.")
		return
	}

	date, err := parseFormDate(r.Form.Get("date"))
	if err != nil {
		s.renderDashboard(w, r, http.StatusUnprocessableEntity, "", "Please enter a valid date.")
		return
	}
	cents, err := core.ParseDecimalToCents(r.Form.Get("amount"))
	if err != nil {
		s.renderDashboard(w, r, http.StatusUnprocessableEntity, "", "Please enter an amount greater than zero.")
		return
	}

	income := core.Income{
		Date:   date,
		Source: sanitizeInput(r.Form.Get("source")),
		Amount: core.Money{Cents: cents},
	}

	err = s.rec.RecordIncome(r.Context(), income)
	switch {
	case err == nil:
		s.redirectWithFlash(w, r, "Income added successfully!")
	case core.IsValidationError(err):
		s.renderDashboard(w, r, http.StatusUnprocessableEntity, "", validationMessage(err))
	default:
		s.logger.ErrorContext(r.Context(), "Failed to save income",
			"error", err,
			"source", income.Source,
			"amount_cents", income.Amount.Cents)
		s.renderDashboard(w, r, http.StatusInternalServerError, "", "Could not save the income entry. Check the data files and try again.")
	}
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.logger.ErrorContext(r.Context(), "Parse form error", "error", err, "path", r.URL.Path)
		s.renderDashboard(w, r, http.StatusBadRequest, "", "Invalid request format.")
		return
	}

	date, err := parseFormDate(r.Form.Get("date"))
	if err != nil {
		s.renderDashboard(w, r, http.StatusUnprocessableEntity, "", "Please enter a valid date.")
		return
	}
	cents, err := core.ParseDecimalToCents(r.Form.Get("amount"))
	if err != nil {
		s.renderDashboard(w, r, http.StatusUnprocessableEntity, "", "Please enter an amount greater than zero.")
		return
	}

	expense := core.Expense{
		Date:     date,
		Category: core.CategoryOf(r.Form.Get("category")),
		Item:     sanitizeInput(r.Form.Get("item")),
		Amount:   core.Money{Cents: cents},
	}

	err = s.rec.RecordExpense(r.Context(), expense)
	switch {
	case err == nil:
		s.redirectWithFlash(w, r, "Expense added successfully!")
	case core.IsValidationError(err):
		s.renderDashboard(w, r, http.StatusUnprocessableEntity, "", validationMessage(err))
	default:
		s.logger.ErrorContext(r.Context(), "Failed to save expense",
			"error", err,
			"item", expense.Item,
			"category", string(expense.Category),
			"amount_cents", expense.Amount.Cents)
		s.renderDashboard(w, r, http.StatusInternalServerError, "", "Could not save the expense entry. Check the data files and try again.")
	}
}

func (s *Server) redirectWithFlash(w http.ResponseWriter, r *http.Request, msg string) {
	http.Redirect(w, r, "/?msg="+url.QueryEscape(msg), http.StatusSeeOther)
}
