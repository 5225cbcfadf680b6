package service

import (
	"fmt"

	"paris-coordcheck/internal/models"
)

// AuditService contains the core business logic for auditing district coordinates
type AuditService struct {
	repo     DistrictRepository
	analyzer *Analyzer
	targets  []string
}

// DistrictRepository interface for dependency injection
type DistrictRepository interface {
	LoadDistricts() ([]models.SourceDocument, error)
}

// NewAuditService creates a new audit service
func NewAuditService(repo DistrictRepository, analyzer *Analyzer, targets []string) *AuditService {
	return &AuditService{repo: repo, analyzer: analyzer, targets: targets}
}

// Analyze loads every district and produces the full analysis.
func (s *AuditService) Analyze() (*models.Audit, error) {
	docs, places, err := s.load()
	if err != nil {
		return nil, err
	}

	result := s.analyzer.Analyze(places)

	return &models.Audit{
		Files:              len(docs),
		Places:             places,
		Result:             result,
		CenterCoincidences: s.analyzer.CenterCoincidences(result),
		Matches:            FindByName(places, s.targets),
		Bounds:             s.analyzer.Bound(),
	}, nil
}

// Summary loads every district and produces the quick check counters.
func (s *AuditService) Summary() (*models.QuickAudit, error) {
	docs, places, err := s.load()
	if err != nil {
		return nil, err
	}

	return &models.QuickAudit{
		Files:   len(docs),
		Summary: Summarize(places, s.analyzer.Analyze(places)),
		Bounds:  s.analyzer.Bound(),
	}, nil
}

func (s *AuditService) load() ([]models.SourceDocument, []models.Place, error) {
	docs, err := s.repo.LoadDistricts()
	if err != nil {
		return nil, nil, fmt.Errorf("service: failed to load districts: %w", err)
	}

	return docs, Extract(docs), nil
}
