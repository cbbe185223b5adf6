package handler

import (
	"embed"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"harnesspair/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type pageData struct {
	Columns []string
	Run     *domain.PairRun
	Error   string
}

// Index renders the results grid
func (h *PairHandler) Index(w http.ResponseWriter, r *http.Request) {
	run, err := h.svc.Latest(r.Context())
	h.renderPage(w, run, err)
}

// RefreshPage handles the grid's Refresh button. A new run redirects back
// to the grid; a failed one renders the error in place of the old pairs.
func (h *PairHandler) RefreshPage(w http.ResponseWriter, r *http.Request) {
	run, err := h.svc.Generate(r.Context())
	if err != nil {
		h.logger.Warn("refresh from page failed", zap.Error(err))
		h.renderPage(w, run, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *PairHandler) renderPage(w http.ResponseWriter, run *domain.PairRun, err error) {
	data := pageData{Columns: domain.PairColumns}
	status := http.StatusOK
	if err != nil {
		status = statusFor(err)
		data.Error = err.Error()
	} else {
		data.Run = run
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, data); err != nil {
		h.logger.Warn("failed to render page", zap.Error(err))
	}
}
