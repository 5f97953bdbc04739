package evaluation

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return s.DB.BeginTx(ctx, pgx.TxOptions{})
}

const evaluationColumns = `
  id, application_id, evaluated_by, COALESCE(remarks,''),
  educational_score, experience_score, professional_dev_score, technological_score,
  total_score, rank, rate_per_hour, qualified, detailed_scores,
  contract_status, contract_action_date, COALESCE(contract_action_by,''),
  created_at, updated_at`

func scanEvaluation(row pgx.Row) (Evaluation, error) {
	var (
		e   Evaluation
		raw []byte
	)
	err := row.Scan(
		&e.ID, &e.ApplicationID, &e.EvaluatedBy, &e.Remarks,
		&e.EducationalScore, &e.ExperienceScore, &e.ProfessionalDevScore, &e.TechnologicalScore,
		&e.TotalScore, &e.Rank, &e.RatePerHour, &e.Qualified, &raw,
		&e.ContractStatus, &e.ContractActionDate, &e.ContractActionBy,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return Evaluation{}, err
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &e.DetailedScores); err != nil {
			return Evaluation{}, err
		}
	}
	return e, nil
}

// UpsertTx writes the evaluation for an application, replacing every
// scoring field on re-submission. Contract fields are preserved once a
// contract decision has been recorded; a fresh submission otherwise
// resets them to pending.
func (s *Store) UpsertTx(ctx context.Context, tx pgx.Tx, e *Evaluation) error {
	detailed, err := json.Marshal(e.DetailedScores)
	if err != nil {
		return err
	}

	return tx.QueryRow(ctx, `
    INSERT INTO evaluations (
      application_id, evaluated_by, remarks,
      educational_score, experience_score, professional_dev_score, technological_score,
      total_score, rank, rate_per_hour, qualified, detailed_scores, contract_status
    ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
    ON CONFLICT (application_id) DO UPDATE SET
      evaluated_by = EXCLUDED.evaluated_by,
      remarks = EXCLUDED.remarks,
      educational_score = EXCLUDED.educational_score,
      experience_score = EXCLUDED.experience_score,
      professional_dev_score = EXCLUDED.professional_dev_score,
      technological_score = EXCLUDED.technological_score,
      total_score = EXCLUDED.total_score,
      rank = EXCLUDED.rank,
      rate_per_hour = EXCLUDED.rate_per_hour,
      qualified = EXCLUDED.qualified,
      detailed_scores = EXCLUDED.detailed_scores,
      contract_status = CASE
        WHEN evaluations.contract_status = 'approved' THEN evaluations.contract_status
        ELSE EXCLUDED.contract_status
      END,
      updated_at = now()
    RETURNING id, contract_status, created_at, updated_at
  `, e.ApplicationID, e.EvaluatedBy, e.Remarks,
		e.EducationalScore, e.ExperienceScore, e.ProfessionalDevScore, e.TechnologicalScore,
		e.TotalScore, e.Rank, e.RatePerHour, e.Qualified, detailed, e.ContractStatus,
	).Scan(&e.ID, &e.ContractStatus, &e.CreatedAt, &e.UpdatedAt)
}

// MarkContractApprovedTx stamps the contract decision inside the
// auto-qualification transaction.
func (s *Store) MarkContractApprovedTx(ctx context.Context, tx pgx.Tx, evaluationID, actionBy string) error {
	_, err := tx.Exec(ctx, `
    UPDATE evaluations SET contract_status = 'approved', contract_action_date = now(), contract_action_by = $2, updated_at = now()
    WHERE id = $1 AND contract_status <> 'approved'
  `, evaluationID, actionBy)
	return err
}

func (s *Store) GetByID(ctx context.Context, id string) (Evaluation, error) {
	e, err := scanEvaluation(s.DB.QueryRow(ctx, "SELECT"+evaluationColumns+" FROM evaluations WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Evaluation{}, ErrNotFound
	}
	return e, err
}

func (s *Store) GetByApplication(ctx context.Context, applicationID string) (Evaluation, error) {
	e, err := scanEvaluation(s.DB.QueryRow(ctx, "SELECT"+evaluationColumns+" FROM evaluations WHERE application_id = $1", applicationID))
	if errors.Is(err, pgx.ErrNoRows) {
		return Evaluation{}, ErrNotFound
	}
	return e, err
}

func (s *Store) List(ctx context.Context, limit, offset int) ([]Evaluation, int, error) {
	var total int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM evaluations").Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := s.DB.Query(ctx, "SELECT"+evaluationColumns+" FROM evaluations ORDER BY created_at DESC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var evals []Evaluation
	for rows.Next() {
		e, err := scanEvaluation(rows)
		if err != nil {
			return nil, 0, err
		}
		evals = append(evals, e)
	}
	return evals, total, rows.Err()
}
