package api

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/otel/trace"

	_ "itemsvc/docs"
	"itemsvc/pkg/logger"
)

// NewRouter wires the API routes and middleware. The middleware wraps the
// router rather than being registered with Use, because mux skips Use
// middleware for its 404 and 405 handlers. CORS is outermost so preflight
// requests never reach method matching.
func NewRouter(h *Handler, log *logger.Logger, tracer trace.Tracer) http.Handler {
	r := mux.NewRouter()

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	api.HandleFunc("/items", h.ListItems).Methods(http.MethodGet)
	api.HandleFunc("/items", h.CreateItem).Methods(http.MethodPost)
	api.HandleFunc("/items/{item_id}", h.DeleteItem).Methods(http.MethodDelete)

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	var handler http.Handler = r
	handler = accessLogMiddleware(log)(handler)
	handler = traceMiddleware(tracer)(handler)
	handler = requestIDMiddleware(handler)
	return corsMiddleware(handler)
}
