package hire

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"talenthub/internal/domain/hiring"
)

const ContractStatusActive = "active"

// Stages from which an application can be committed to HIRED. The
// automatic qualification path enters straight from the interview
// stage, bypassing FOR_HIRING.
var hireableStages = map[hiring.Stage]bool{
	hiring.StageInterviewScheduled: true,
	hiring.StageEvaluated:          true,
	hiring.StageForHiring:          true,
}

type Service struct {
	DB  *pgxpool.Pool
	now func() time.Time
}

func NewService(db *pgxpool.Pool) *Service {
	return &Service{DB: db, now: time.Now}
}

// CommitHire is the explicit entry point (HR FOR_HIRING → HIRED). The
// automatic path joins an existing transaction via CommitHireTx.
func (s *Service) CommitHire(ctx context.Context, applicationID, evaluationID string) (hiring.CommitHireResult, error) {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return hiring.CommitHireResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	result, err := s.CommitHireTx(ctx, tx, applicationID, evaluationID, nil)
	if err != nil {
		return hiring.CommitHireResult{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return hiring.CommitHireResult{}, err
	}
	return result, nil
}

// CommitHireTx applies every hire side effect exactly once: hiredAt
// stamp, employee number, faculty snapshot and, when terms are given,
// the contract. Idempotent for already-hired applications.
func (s *Service) CommitHireTx(ctx context.Context, tx pgx.Tx, applicationID, evaluationID string, terms *ContractTerms) (hiring.CommitHireResult, error) {
	var (
		stage, employeeNo                            string
		firstName, lastName, position, college, etyp string
		hiredAt                                      *time.Time
	)
	err := tx.QueryRow(ctx, `
    SELECT stage, hired_at, COALESCE(employee_no,''), first_name, last_name,
           position, college, COALESCE(employment_type,'')
    FROM applications
    WHERE id = $1
    FOR UPDATE
  `, applicationID).Scan(&stage, &hiredAt, &employeeNo, &firstName, &lastName, &position, &college, &etyp)
	if errors.Is(err, pgx.ErrNoRows) {
		return hiring.CommitHireResult{}, hiring.ErrNotFound
	}
	if err != nil {
		return hiring.CommitHireResult{}, err
	}

	if hiring.Stage(stage) == hiring.StageHired {
		result := hiring.CommitHireResult{EmployeeNo: employeeNo, AlreadyHired: true}
		if hiredAt != nil {
			result.HiredAt = *hiredAt
		}
		if evaluationID != "" && terms != nil {
			if _, err := s.issueContractTx(ctx, tx, applicationID, evaluationID, *terms); err != nil {
				return hiring.CommitHireResult{}, err
			}
		}
		return result, nil
	}
	if !hireableStages[hiring.Stage(stage)] {
		return hiring.CommitHireResult{}, hiring.ErrInvalidTransition
	}

	now := s.now()
	seq, err := nextSequence(ctx, tx, "employee_seq", now.Year())
	if err != nil {
		return hiring.CommitHireResult{}, err
	}
	newEmployeeNo := fmt.Sprintf("EMP-%d-%05d", now.Year(), seq)

	if _, err := tx.Exec(ctx, `
    UPDATE applications SET
      stage = $2, status = $3, hired_at = $4, employee_no = $5, status_updated_at = $4
    WHERE id = $1
  `, applicationID, string(hiring.StageHired), hiring.StatusFor(hiring.StageHired), now, newEmployeeNo); err != nil {
		return hiring.CommitHireResult{}, err
	}

	recommendation := ""
	if terms != nil {
		recommendation = terms.Rank
	} else {
		// Explicit HR hire: snapshot the rank from an existing
		// evaluation when there is one.
		err := tx.QueryRow(ctx, "SELECT rank FROM evaluations WHERE application_id = $1", applicationID).Scan(&recommendation)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return hiring.CommitHireResult{}, err
		}
	}

	if _, err := tx.Exec(ctx, `
    INSERT INTO faculty (application_id, employee_no, first_name, last_name, position, college, employment_type, recommendation, hired_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    ON CONFLICT (application_id) DO NOTHING
  `, applicationID, newEmployeeNo, firstName, lastName, position, college, etyp, recommendation, now); err != nil {
		return hiring.CommitHireResult{}, err
	}

	if evaluationID != "" && terms != nil {
		if _, err := s.issueContractTx(ctx, tx, applicationID, evaluationID, *terms); err != nil {
			return hiring.CommitHireResult{}, err
		}
	}

	return hiring.CommitHireResult{EmployeeNo: newEmployeeNo, HiredAt: now}, nil
}

// issueContractTx creates at most one contract per evaluation. The
// per-year sequence row is locked by the atomic upsert; the unique
// constraints on evaluation_id and contract_no are the backstop.
func (s *Service) issueContractTx(ctx context.Context, tx pgx.Tx, applicationID, evaluationID string, terms ContractTerms) (Contract, error) {
	existing, err := scanContract(tx.QueryRow(ctx, "SELECT"+contractColumns+" FROM contracts WHERE evaluation_id = $1", evaluationID))
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return Contract{}, err
	}

	now := s.now()
	start := terms.StartDate
	if start.IsZero() {
		start = now
	}
	end := terms.EndDate
	if end.IsZero() {
		end = start.AddDate(1, 0, 0)
	}

	seq, err := nextSequence(ctx, tx, "contract_seq", start.Year())
	if err != nil {
		return Contract{}, err
	}
	contractNo := fmt.Sprintf("C-%d-%03d", start.Year(), seq)

	contract := Contract{
		ContractNo:    contractNo,
		EvaluationID:  evaluationID,
		ApplicationID: applicationID,
		FacultyName:   terms.FacultyName,
		Position:      terms.Position,
		College:       terms.College,
		Rank:          terms.Rank,
		RatePerHour:   terms.RatePerHour,
		StartDate:     start,
		EndDate:       end,
		Status:        ContractStatusActive,
	}
	err = tx.QueryRow(ctx, `
    INSERT INTO contracts (contract_no, evaluation_id, application_id, faculty_name, position, college, rank, rate_per_hour, start_date, end_date, status)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
    RETURNING id, created_at
  `, contract.ContractNo, contract.EvaluationID, contract.ApplicationID, contract.FacultyName,
		contract.Position, contract.College, contract.Rank, contract.RatePerHour,
		contract.StartDate, contract.EndDate, contract.Status).Scan(&contract.ID, &contract.CreatedAt)
	if isUniqueViolation(err) {
		return Contract{}, ErrConflict
	}
	if err != nil {
		return Contract{}, err
	}
	return contract, nil
}

func nextSequence(ctx context.Context, tx pgx.Tx, table string, year int) (int, error) {
	var value int
	err := tx.QueryRow(ctx,
		"INSERT INTO "+table+" (year, value) VALUES ($1, 1) ON CONFLICT (year) DO UPDATE SET value = "+table+".value + 1 RETURNING value",
		year).Scan(&value)
	return value, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
