package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"trex/internal/core"
	applog "trex/internal/log"
	"trex/internal/report"
	"trex/internal/storage"
)

// latestView is the display projection of the most recent calculation.
type latestView struct {
	TaxableIncome     string
	TaxBeforePayments string
	TaxDue            string
	CreatedAt         string
}

// reportView bundles everything the report partial renders. It is rebuilt
// from the store on every request, so the view never drifts from the
// store's contents.
type reportView struct {
	Latest  *latestView
	Rows    []report.TableRow
	Summary report.SummaryView
}

func (s *Server) buildReportView() reportView {
	records := s.store.All()
	view := reportView{
		Rows:    report.BuildTable(records, s.formatter),
		Summary: report.BuildSummary(records, s.formatter),
	}
	if latest, ok := s.store.Latest(); ok {
		view.Latest = &latestView{
			TaxableIncome:     s.formatter.Format(latest.TaxableIncome),
			TaxBeforePayments: s.formatter.Format(latest.TaxBeforePayments),
			TaxDue:            s.formatter.Format(latest.TaxDue),
			CreatedAt:         report.FormatTimestamp(latest.CreatedAt),
		}
	}
	return view
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", applog.FieldPath, r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	theme, err := s.prefs.Theme(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Theme read error", applog.FieldError, err)
		theme = storage.ThemeLight
	}

	data := struct {
		Theme  string
		Report reportView
	}{
		Theme:  theme,
		Report: s.buildReportView(),
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", applog.FieldError, err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleCalculate runs the three-stage pipeline: compute the result, append
// the record, and re-render the report partial.
func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", applog.FieldError, err, applog.FieldMethod, r.Method)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="notice notice-error">Invalid request format</div>`))
		return
	}

	in := parseCalculationInput(r.Form)
	res := core.Compute(in)
	s.store.Append(report.NewRecord(in, res))

	slog.InfoContext(r.Context(), "Calculation added to report",
		"taxable_income", res.TaxableIncome,
		"tax_due", res.TaxDue,
		applog.FieldRowCount, s.store.Count())

	s.renderReport(w, r)
}

// handleReportPartial re-renders the report table and summary.
func (s *Server) handleReportPartial(w http.ResponseWriter, r *http.Request) {
	s.renderReport(w, r)
}

func (s *Server) renderReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	view := s.buildReportView()
	if s.templates == nil {
		// Fallback keeps the page usable if templates failed to parse.
		if view.Summary.Empty {
			_, _ = w.Write([]byte(`<section id="report"><p class="placeholder">No calculations yet.</p></section>`))
			return
		}
		_, _ = fmt.Fprintf(w, `<section id="report"><p>Calculations: %d, total tax due: %s</p></section>`,
			view.Summary.Count, view.Summary.TotalTaxDue)
		return
	}

	if err := s.templates.ExecuteTemplate(w, "report.html", view); err != nil {
		slog.ErrorContext(r.Context(), "Report template execution failed", applog.FieldError, err, "template", "report.html")
		_, _ = w.Write([]byte(`<section id="report"><p class="placeholder">Error rendering report</p></section>`))
	}
}

// handleThemeToggle flips the persisted theme between light and dark and
// returns the new value.
func (s *Server) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	current, err := s.prefs.Theme(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Theme read error", applog.FieldError, err)
		current = storage.ThemeLight
	}
	next := storage.ThemeDark
	if current == storage.ThemeDark {
		next = storage.ThemeLight
	}

	if err := s.prefs.SetTheme(r.Context(), next); err != nil {
		slog.ErrorContext(r.Context(), "Theme save error", applog.FieldError, err, applog.FieldTheme, next)
		http.Error(w, "failed to save theme", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(next))
}
