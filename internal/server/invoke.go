package server

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/reverbify/musicfn/internal/function"
)

// UserHeader carries the requesting user's identity, supplied by the hosting
// platform's invocation context, never by the request body.
const UserHeader = "X-Reverbify-User"

// InvokeHandler serves function invocations. Implements [Handler].
//
// Responses are always 200 with a well-formed envelope; failures are carried
// inside the envelope, not as HTTP status codes, matching what the platform's
// function callers expect.
type InvokeHandler struct {
	fn     *function.Handler
	logger *log.Logger
}

// NewInvokeHandler creates an [InvokeHandler] around a function handler.
func NewInvokeHandler(fn *function.Handler, logger *log.Logger) *InvokeHandler {
	return &InvokeHandler{fn: fn, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *InvokeHandler) Routes() []string {
	return []string{"POST /v1/invoke"}
}

// ServeHTTP decodes the invocation payload and runs it.
//
// An unreadable body degrades to an empty request, which the function rejects
// as an unsupported action; a missing identity header is reported as
// not_authenticated. Either way the caller gets an envelope.
func (h *InvokeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get(UserHeader)
	if userID == "" {
		writeEnvelope(w, function.Envelope{
			Success:  false,
			Error:    "missing user identity",
			Category: function.CategoryNotAuthenticated,
		})
		return
	}

	var req function.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("unreadable invocation payload", "err", err)
	}

	writeEnvelope(w, h.fn.Invoke(r.Context(), userID, req))
}

// HealthHandler answers liveness probes. Implements [Handler].
type HealthHandler struct{}

// Routes returns the HTTP routes this handler serves.
func (h *HealthHandler) Routes() []string {
	return []string{"GET /healthz"}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func writeEnvelope(w http.ResponseWriter, envelope function.Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(envelope)
}

// NewRouter assembles the service router with its middleware and handlers.
func NewRouter(fn *function.Handler, logger *log.Logger) *BasicRouter {
	router := NewBasicRouter()
	router.Use(RequestID(), Logging(logger))
	router.Handler(NewInvokeHandler(fn, logger))
	router.Handler(&HealthHandler{})
	return router
}
