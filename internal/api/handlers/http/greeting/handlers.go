package greeting

import (
	"log/slog"
	"net/http"
)

// Fixed response bodies, kept byte-for-byte for existing clients.
const (
	rootMessage  = "Hello from FastAPI Backend!"
	helloMessage = "Hello from the backend API!"
)

type Handler struct {
	logger *slog.Logger
}

func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"message": rootMessage})
}

func (h *Handler) Hello(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"message": helloMessage})
}
