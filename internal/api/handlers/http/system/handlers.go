package system

import (
	"context"
	"log/slog"
	"net/http"

	"uniprofile/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Diagnostics interface {
	Report(ctx context.Context) domain.DiagnosticReport
}

type Handler struct {
	logger      *slog.Logger
	Diagnostics Diagnostics
}

func NewHandler(logger *slog.Logger, diagnostics Diagnostics) *Handler {
	return &Handler{
		logger:      logger,
		Diagnostics: diagnostics,
	}
}

// SystemDiagnostics answers 200 unconditionally; failures are folded into
// the report fields, never surfaced as an HTTP error.
func (h *Handler) SystemDiagnostics(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	report := h.Diagnostics.Report(r.Context())
	l.Debug("diagnostics report built",
		slog.String("database", report.Database),
		slog.String("connection_status", report.ConnectionStatus))

	h.writeJSON(w, http.StatusOK, report)
}
