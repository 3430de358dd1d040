package service

import (
	"context"
	"log/slog"
	"os"
	"time"

	"uniprofile/internal/domain"
)

const maxReportedCollections = 10

type EnvDiagnosticsService struct {
	logger       *slog.Logger
	lister       CollectionLister
	probeTimeout time.Duration
}

// NewEnvDiagnosticsService builds the diagnostics service. lister may be
// nil when no database is configured or reachable.
func NewEnvDiagnosticsService(logger *slog.Logger, lister CollectionLister, probeTimeout time.Duration) *EnvDiagnosticsService {
	return &EnvDiagnosticsService{
		logger:       logger,
		lister:       lister,
		probeTimeout: probeTimeout,
	}
}

func (s *EnvDiagnosticsService) Report(ctx context.Context) domain.DiagnosticReport {
	report := domain.DiagnosticReport{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	switch res := s.probe(ctx); res.State {
	case domain.ProbeConnected:
		report.Database = "✅ Connected & Working"
		report.ConnectionStatus = "Connected"
		report.Collections = res.Collections
	case domain.ProbeConnectedError:
		report.Database = "⚠️  Connected but Error: " + truncate(res.Err, 50)
		report.ConnectionStatus = "Connected"
	}

	report.DatabaseURL = setMark(os.Getenv("DATABASE_URL"))
	report.DatabaseName = setMark(os.Getenv("DATABASE_NAME"))

	return report
}

// probe reduces the optional data store to a three-way result. It must
// never fail: missing handle and query errors both degrade to report text.
func (s *EnvDiagnosticsService) probe(ctx context.Context) domain.ProbeResult {
	if s.lister == nil {
		return domain.ProbeResult{State: domain.ProbeUnavailable}
	}

	ctx, cancel := context.WithTimeout(ctx, s.probeTimeout)
	defer cancel()

	names, err := s.lister.ListCollections(ctx)
	if err != nil {
		s.logger.Warn("database probe failed", slog.Any("error", err))
		return domain.ProbeResult{State: domain.ProbeConnectedError, Err: err.Error()}
	}

	s.logger.Debug("database probe succeeded",
		slog.String("database", s.lister.Name()),
		slog.Int("collections", len(names)))

	if len(names) > maxReportedCollections {
		names = names[:maxReportedCollections]
	}
	if names == nil {
		names = []string{}
	}
	return domain.ProbeResult{State: domain.ProbeConnected, Collections: names}
}

func setMark(v string) string {
	if v != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

// truncate cuts on rune boundaries; driver errors can carry multibyte text.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
