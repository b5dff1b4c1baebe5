package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"trex/internal/core"
	"trex/internal/export"
	applog "trex/internal/log"
)

const emptyReportNotice = `<div class="notice notice-error">The report is empty. Add at least one calculation before exporting.</div>`

func (s *Server) handleExportJSON(w http.ResponseWriter, r *http.Request) {
	data, err := export.JSON(s.store.All())
	if err != nil {
		s.exportError(w, r, err, export.JSONFilename)
		return
	}
	s.sendAttachment(w, r, data, export.JSONFilename, export.JSONContentType)
}

func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	data, err := export.PDF(s.store.All(), s.formatter)
	if err != nil {
		s.exportError(w, r, err, export.PDFFilename)
		return
	}
	s.sendAttachment(w, r, data, export.PDFFilename, export.PDFContentType)
}

// exportError surfaces the empty-report condition to the user; anything
// else is an internal failure. No partial file is ever produced.
func (s *Server) exportError(w http.ResponseWriter, r *http.Request, err error, filename string) {
	if errors.Is(err, core.ErrEmptyReport) {
		slog.WarnContext(r.Context(), "Export attempted on empty report", applog.FieldFilename, filename)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(emptyReportNotice))
		return
	}
	slog.ErrorContext(r.Context(), "Export failed", applog.FieldError, err, applog.FieldFilename, filename)
	http.Error(w, "export failed", http.StatusInternalServerError)
}

func (s *Server) sendAttachment(w http.ResponseWriter, r *http.Request, data []byte, filename, contentType string) {
	slog.InfoContext(r.Context(), "Report exported",
		applog.FieldFilename, filename,
		applog.FieldRowCount, s.store.Count(),
		"bytes", len(data))

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(data)
}
