package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewRouter wires every route and the middleware stack.
// events and metrics may be nil to leave those endpoints out.
func NewRouter(pairs *PairHandler, events http.Handler, metrics http.Handler, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	mux := http.NewServeMux()

	// Grid page
	mux.HandleFunc("GET /{$}", pairs.Index)
	mux.HandleFunc("POST /refresh", pairs.RefreshPage)

	// Pair endpoints
	mux.HandleFunc("GET /api/pairs", pairs.GetPairs)
	mux.HandleFunc("POST /api/pairs/refresh", pairs.RefreshPairs)

	// Drawing endpoints
	mux.HandleFunc("GET /api/drawings", pairs.ListDrawings)
	mux.HandleFunc("GET /api/drawings/{id}", pairs.GetDrawing)
	mux.HandleFunc("GET /api/drawings/{id}/wires", pairs.ListWires)

	// Export endpoints
	mux.HandleFunc("GET /api/export/{format}", pairs.Export)

	if events != nil {
		mux.Handle("GET /events", events)
	}
	if metrics != nil {
		mux.Handle("GET /metrics", metrics)
	}

	return Chain(mux,
		middleware.RequestID,
		middleware.Recoverer,
		Logger(logger),
		CORS(),
	)
}
