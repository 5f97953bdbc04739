package reports

import (
	"context"

	"talenthub/internal/domain/evaluation"
	"talenthub/internal/domain/hiring"
)

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

// PipelineSummary aggregates the hiring funnel for the HR dashboard.
type PipelineSummary struct {
	ByStage       map[string]int `json:"byStage"`
	Total         int            `json:"total"`
	Hired         int            `json:"hired"`
	Rejected      int            `json:"rejected"`
	Qualified     int            `json:"qualifiedEvaluations"`
	Evaluations   int            `json:"evaluations"`
	ContractCount int            `json:"contracts"`
}

func (s *Service) Pipeline(ctx context.Context) (PipelineSummary, error) {
	return s.Store.Pipeline(ctx)
}

type ScoreSheet struct {
	Application hiring.Application    `json:"application"`
	Evaluation  evaluation.Evaluation `json:"evaluation"`
}

func (s *Service) ScoreSheet(ctx context.Context, applicationID string) (ScoreSheet, error) {
	return s.Store.ScoreSheet(ctx, applicationID)
}
