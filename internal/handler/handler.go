package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"harnesspair/internal/codec"
	"harnesspair/internal/domain"
)

// PairSource is the service the handlers read from
type PairSource interface {
	Latest(ctx context.Context) (*domain.PairRun, error)
	Generate(ctx context.Context) (*domain.PairRun, error)
	ListDrawings(ctx context.Context) ([]domain.HarnessDrawing, error)
	GetDrawing(ctx context.Context, id int64) (*domain.HarnessDrawing, error)
	ListWires(ctx context.Context, harnessID int64) ([]domain.HarnessWiring, error)
}

// PairHandler handles pair and drawing API requests
type PairHandler struct {
	svc    PairSource
	logger *zap.Logger
}

// NewPairHandler creates a new pair handler
func NewPairHandler(svc PairSource, logger *zap.Logger) *PairHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PairHandler{svc: svc, logger: logger}
}

// ErrorResponse is the JSON body of every error reply
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// GetPairs returns the latest run, generating one on first use
func (h *PairHandler) GetPairs(w http.ResponseWriter, r *http.Request) {
	run, err := h.svc.Latest(r.Context())
	if err != nil {
		h.writeServiceError(w, "Failed to get harness pairs", err)
		return
	}
	h.writeJSON(w, run, http.StatusOK)
}

// RefreshPairs generates a new run and returns it
func (h *PairHandler) RefreshPairs(w http.ResponseWriter, r *http.Request) {
	run, err := h.svc.Generate(r.Context())
	if err != nil {
		h.writeServiceError(w, "Failed to generate harness pairs", err)
		return
	}
	h.writeJSON(w, run, http.StatusOK)
}

// ListDrawings returns every harness drawing
func (h *PairHandler) ListDrawings(w http.ResponseWriter, r *http.Request) {
	drawings, err := h.svc.ListDrawings(r.Context())
	if err != nil {
		h.writeServiceError(w, "Failed to list drawings", err)
		return
	}
	if drawings == nil {
		drawings = []domain.HarnessDrawing{}
	}
	h.writeJSON(w, drawings, http.StatusOK)
}

// GetDrawing returns a single drawing
func (h *PairHandler) GetDrawing(w http.ResponseWriter, r *http.Request) {
	id, ok := h.drawingID(w, r)
	if !ok {
		return
	}

	drawing, err := h.svc.GetDrawing(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, "Failed to get drawing", err)
		return
	}
	h.writeJSON(w, drawing, http.StatusOK)
}

// ListWires returns the wire segments of a drawing
func (h *PairHandler) ListWires(w http.ResponseWriter, r *http.Request) {
	id, ok := h.drawingID(w, r)
	if !ok {
		return
	}

	wires, err := h.svc.ListWires(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, "Failed to list wires", err)
		return
	}
	h.writeJSON(w, wires, http.StatusOK)
}

// Export writes the latest run in the format named by the path
func (h *PairHandler) Export(w http.ResponseWriter, r *http.Request) {
	exporter, err := codec.Lookup(r.PathValue("format"))
	if err != nil {
		h.writeError(w, "Unsupported export format", err.Error(), http.StatusBadRequest)
		return
	}

	run, err := h.svc.Latest(r.Context())
	if err != nil {
		h.writeServiceError(w, "Failed to get harness pairs", err)
		return
	}

	w.Header().Set("Content-Type", exporter.ContentType())
	w.Header().Set("Content-Disposition", "attachment; filename=harness-pairs"+exporter.FileExtension())

	if err := exporter.Export(run, w); err != nil {
		// Headers are already written
		h.logger.Error("export failed", zap.String("format", exporter.Format()), zap.Error(err))
	}
}

// Helper methods

func (h *PairHandler) drawingID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		h.writeError(w, "Invalid drawing ID", "drawing ID must be a positive integer", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// statusFor maps domain errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInsufficientPairs):
		return http.StatusConflict
	case errors.Is(err, domain.ErrStorage):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (h *PairHandler) writeServiceError(w http.ResponseWriter, message string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error(message, zap.Error(err))
	}
	h.writeError(w, message, err.Error(), status)
}

func (h *PairHandler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Warn("failed to encode JSON", zap.Error(err))
	}
}

func (h *PairHandler) writeError(w http.ResponseWriter, error, details string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Error:   error,
		Details: details,
	}); err != nil {
		h.logger.Warn("failed to encode error response", zap.Error(err))
	}
}
