package reports

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"talenthub/internal/domain/evaluation"
	"talenthub/internal/domain/hiring"
)

type Store struct {
	DB    *pgxpool.Pool
	Apps  *hiring.Store
	Evals *evaluation.Store
}

func NewStore(db *pgxpool.Pool, apps *hiring.Store, evals *evaluation.Store) *Store {
	return &Store{DB: db, Apps: apps, Evals: evals}
}

func (s *Store) Pipeline(ctx context.Context) (PipelineSummary, error) {
	summary := PipelineSummary{ByStage: map[string]int{}}

	rows, err := s.DB.Query(ctx, "SELECT stage, COUNT(1) FROM applications GROUP BY stage")
	if err != nil {
		return PipelineSummary{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var stage string
		var count int
		if err := rows.Scan(&stage, &count); err != nil {
			return PipelineSummary{}, err
		}
		summary.ByStage[stage] = count
		summary.Total += count
	}
	if err := rows.Err(); err != nil {
		return PipelineSummary{}, err
	}

	summary.Hired = summary.ByStage[string(hiring.StageHired)]
	summary.Rejected = summary.ByStage[string(hiring.StageRejected)] + summary.ByStage[string(hiring.StageRejectedByDean)]

	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1), COUNT(1) FILTER (WHERE qualified) FROM evaluations").
		Scan(&summary.Evaluations, &summary.Qualified); err != nil {
		return PipelineSummary{}, err
	}
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM contracts").Scan(&summary.ContractCount); err != nil {
		return PipelineSummary{}, err
	}
	return summary, nil
}

func (s *Store) ScoreSheet(ctx context.Context, applicationID string) (ScoreSheet, error) {
	app, err := s.Apps.GetApplication(ctx, applicationID)
	if err != nil {
		return ScoreSheet{}, err
	}
	eval, err := s.Evals.GetByApplication(ctx, applicationID)
	if errors.Is(err, evaluation.ErrNotFound) {
		return ScoreSheet{}, evaluation.ErrNotFound
	}
	if err != nil {
		return ScoreSheet{}, err
	}
	return ScoreSheet{Application: app, Evaluation: eval}, nil
}
