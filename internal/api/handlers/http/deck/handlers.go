package deck

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"uniprofile/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type DeckBuilder interface {
	BuildProfileDeck(ctx context.Context) (domain.DeckFile, error)
}

type Handler struct {
	logger *slog.Logger
	Decks  DeckBuilder
}

func NewHandler(logger *slog.Logger, decks DeckBuilder) *Handler {
	return &Handler{
		logger: logger,
		Decks:  decks,
	}
}

// DeckProfilIPBUI streams the fixed IPB/UI profile deck as an attachment.
// On failure the client gets an opaque message; the cause stays in the log.
func (h *Handler) DeckProfilIPBUI(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	file, err := h.Decks.BuildProfileDeck(r.Context())
	if err != nil {
		l.Error("deck generation failed", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError,
			map[string]string{"error": "failed to generate presentation"})
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", file.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Data)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(file.Data); err != nil {
		l.Error("deck stream failed", slog.Any("error", err))
	}
}
