package service

import (
	"context"
	"log/slog"
	"time"

	"uniprofile/internal/deck"
	"uniprofile/internal/domain"
	"uniprofile/pkg/e"
)

const (
	profileDeckFilename = "Profil_IPB_dan_UI.pptx"
	pptxContentType     = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
)

type ProfileDeckService struct {
	logger *slog.Logger
}

func NewProfileDeckService(logger *slog.Logger) *ProfileDeckService {
	return &ProfileDeckService{logger: logger}
}

func (s *ProfileDeckService) BuildProfileDeck(ctx context.Context) (domain.DeckFile, error) {
	if err := ctx.Err(); err != nil {
		return domain.DeckFile{}, e.WrapError(ctx, "service.BuildProfileDeck", err)
	}

	start := time.Now()
	data, err := deck.BuildProfilIPBUI(time.Now())
	if err != nil {
		return domain.DeckFile{}, e.Wrap("service.BuildProfileDeck", err)
	}

	s.logger.Debug("profile deck assembled",
		slog.Int("bytes", len(data)),
		slog.Duration("latency", time.Since(start)))

	return domain.DeckFile{
		Filename:    profileDeckFilename,
		ContentType: pptxContentType,
		Data:        data,
	}, nil
}
