package hire

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

type DecisionResult struct {
	ContractStatus string    `json:"contractStatus"`
	ActionDate     time.Time `json:"contractActionDate"`
	Contract       *Contract `json:"contract,omitempty"`
}

// DecideContract applies an HR approve/decline decision to an
// evaluation's contract status. Approval issues the contract; approving
// an already-approved evaluation returns the existing contract
// unchanged. Decline never creates a contract.
func (s *Service) DecideContract(ctx context.Context, evaluationID, decision, actionBy string, actionDate time.Time) (DecisionResult, error) {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return DecisionResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var (
		applicationID, contractStatus, rank    string
		firstName, lastName, position, college string
		ratePerHour                            float64
	)
	err = tx.QueryRow(ctx, `
    SELECT e.application_id, e.contract_status, e.rank, e.rate_per_hour,
           a.first_name, a.last_name, a.position, a.college
    FROM evaluations e
    JOIN applications a ON a.id = e.application_id
    WHERE e.id = $1
    FOR UPDATE OF e
  `, evaluationID).Scan(&applicationID, &contractStatus, &rank, &ratePerHour,
		&firstName, &lastName, &position, &college)
	if errors.Is(err, pgx.ErrNoRows) {
		return DecisionResult{}, ErrEvaluationNotFound
	}
	if err != nil {
		return DecisionResult{}, err
	}

	if actionDate.IsZero() {
		actionDate = s.now()
	}

	result := DecisionResult{ActionDate: actionDate}
	switch decision {
	case "approved":
		if contractStatus == "declined" {
			return DecisionResult{}, ErrInvalidDecision
		}
		if contractStatus != "approved" {
			if _, err := tx.Exec(ctx, `
        UPDATE evaluations SET contract_status = 'approved', contract_action_date = $2, contract_action_by = $3, updated_at = now()
        WHERE id = $1
      `, evaluationID, actionDate, actionBy); err != nil {
				return DecisionResult{}, err
			}
		}
		contract, err := s.issueContractTx(ctx, tx, applicationID, evaluationID, ContractTerms{
			FacultyName: firstName + " " + lastName,
			Position:    position,
			College:     college,
			Rank:        rank,
			RatePerHour: ratePerHour,
			StartDate:   actionDate,
		})
		if err != nil {
			return DecisionResult{}, err
		}
		result.ContractStatus = "approved"
		result.Contract = &contract
	case "declined":
		if contractStatus != "pending" {
			return DecisionResult{}, ErrInvalidDecision
		}
		if _, err := tx.Exec(ctx, `
      UPDATE evaluations SET contract_status = 'declined', contract_action_date = $2, contract_action_by = $3, updated_at = now()
      WHERE id = $1
    `, evaluationID, actionDate, actionBy); err != nil {
			return DecisionResult{}, err
		}
		result.ContractStatus = "declined"
	default:
		return DecisionResult{}, ErrInvalidDecision
	}

	if err := tx.Commit(ctx); err != nil {
		return DecisionResult{}, err
	}
	return result, nil
}

const contractColumns = `
  id, contract_no, evaluation_id, application_id, faculty_name, position,
  college, rank, rate_per_hour, start_date, end_date, status, created_at`

func scanContract(row pgx.Row) (Contract, error) {
	var c Contract
	err := row.Scan(
		&c.ID, &c.ContractNo, &c.EvaluationID, &c.ApplicationID, &c.FacultyName,
		&c.Position, &c.College, &c.Rank, &c.RatePerHour, &c.StartDate, &c.EndDate,
		&c.Status, &c.CreatedAt,
	)
	return c, err
}

func (s *Service) GetContract(ctx context.Context, id string) (Contract, error) {
	contract, err := scanContract(s.DB.QueryRow(ctx, "SELECT"+contractColumns+" FROM contracts WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Contract{}, ErrContractNotFound
	}
	return contract, err
}

func (s *Service) ContractByEvaluation(ctx context.Context, evaluationID string) (Contract, error) {
	contract, err := scanContract(s.DB.QueryRow(ctx, "SELECT"+contractColumns+" FROM contracts WHERE evaluation_id = $1", evaluationID))
	if errors.Is(err, pgx.ErrNoRows) {
		return Contract{}, ErrContractNotFound
	}
	return contract, err
}

func (s *Service) ListContracts(ctx context.Context, limit, offset int) ([]Contract, int, error) {
	var total int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM contracts").Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := s.DB.Query(ctx, "SELECT"+contractColumns+" FROM contracts ORDER BY created_at DESC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var contracts []Contract
	for rows.Next() {
		contract, err := scanContract(rows)
		if err != nil {
			return nil, 0, err
		}
		contracts = append(contracts, contract)
	}
	return contracts, total, rows.Err()
}

func (s *Service) GetFaculty(ctx context.Context, applicationID string) (Faculty, error) {
	var f Faculty
	err := s.DB.QueryRow(ctx, `
    SELECT id, application_id, employee_no, first_name, last_name, position,
           college, COALESCE(employment_type,''), COALESCE(recommendation,''), hired_at, created_at
    FROM faculty
    WHERE application_id = $1
  `, applicationID).Scan(&f.ID, &f.ApplicationID, &f.EmployeeNo, &f.FirstName, &f.LastName,
		&f.Position, &f.College, &f.EmploymentType, &f.Recommendation, &f.HiredAt, &f.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Faculty{}, ErrFacultyNotFound
	}
	return f, err
}
