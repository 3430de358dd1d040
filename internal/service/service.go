package service

import (
	"context"

	"uniprofile/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// DeckService assembles downloadable presentation decks.
type DeckService interface {
	BuildProfileDeck(ctx context.Context) (domain.DeckFile, error)
}

// DiagnosticsService builds the /test report. It never returns an error;
// every failure is rendered into the report itself.
type DiagnosticsService interface {
	Report(ctx context.Context) domain.DiagnosticReport
}

// CollectionLister is the capability the diagnostics probe needs from the
// optional data store. A nil value means "not configured or unreachable".
type CollectionLister interface {
	Name() string
	ListCollections(ctx context.Context) ([]string, error)
}

type Service struct {
	DeckService        DeckService
	DiagnosticsService DiagnosticsService
}

func NewService(deckService DeckService, diagnosticsService DiagnosticsService) *Service {
	return &Service{
		DeckService:        deckService,
		DiagnosticsService: diagnosticsService,
	}
}
