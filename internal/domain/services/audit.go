package services

import (
	"fmt"

	"github.com/ochairo/relcheck/internal/domain/entities"
	"github.com/ochairo/relcheck/internal/domain/interfaces"
)

// AuditService checks release file names against allow-listed patterns
type AuditService struct {
	matcher *Matcher
	logger  interfaces.Logger
}

// NewAuditService creates a new audit service
func NewAuditService(matcher *Matcher, logger interfaces.Logger) *AuditService {
	return &AuditService{
		matcher: matcher,
		logger:  interfaces.OrNoOp(logger),
	}
}

// Audit returns the files that match none of the rules, in input order and
// each reported once. checkType only labels the result; use AuditInto to
// collect several checks into one report.
func (s *AuditService) Audit(files []string, rules []entities.PatternRule, checkType entities.CheckType) ([]string, error) {
	if !checkType.IsValid() {
		return nil, fmt.Errorf("unknown check type %q", checkType)
	}

	_, unknown, err := s.matcher.Split(files, rules)
	if err != nil {
		return nil, fmt.Errorf("%s check: %w", checkType, err)
	}

	for _, f := range unknown {
		s.logger.Debug("file matched no rule", interfaces.F("file", f), interfaces.F("check", checkType))
	}
	return unknown, nil
}

// AuditInto runs Audit and appends the unknown files to the list of report
// selected by checkType
func (s *AuditService) AuditInto(report *entities.AuditReport, files []string, rules []entities.PatternRule, checkType entities.CheckType) error {
	unknown, err := s.Audit(files, rules, checkType)
	if err != nil {
		return err
	}
	report.Add(checkType, unknown...)
	return nil
}
