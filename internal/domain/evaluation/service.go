package evaluation

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"talenthub/internal/domain/hire"
	"talenthub/internal/domain/hiring"
)

// ApplicationReader is the slice of the hiring store the evaluator
// needs to gate submissions on the application's stage.
type ApplicationReader interface {
	GetApplication(ctx context.Context, id string) (hiring.Application, error)
}

// HireCommitter joins the auto-qualification path into the submission
// transaction so scoring and hiring commit or roll back together.
type HireCommitter interface {
	CommitHireTx(ctx context.Context, tx pgx.Tx, applicationID, evaluationID string, terms *hire.ContractTerms) (hiring.CommitHireResult, error)
}

type Service struct {
	Store  *Store
	Apps   ApplicationReader
	Hire   HireCommitter
	Rubric Rubric
	now    func() time.Time
}

func NewService(store *Store, apps ApplicationReader, hireSvc HireCommitter, rubric Rubric) *Service {
	return &Service{Store: store, Apps: apps, Hire: hireSvc, Rubric: rubric, now: time.Now}
}

type SubmitInput struct {
	ApplicationID string `json:"applicationId" validate:"required"`
	Remarks       string `json:"remarks"`
	Input
}

type SubmitResult struct {
	Evaluation Evaluation `json:"evaluation"`
	Hired      bool       `json:"hired"`
	EmployeeNo string     `json:"employeeId,omitempty"`
}

// Submit scores the rubric input and persists the evaluation. A passing
// total hires the applicant, approves the contract and issues it in the
// same transaction; a failing total moves the application to EVALUATED
// for a manual HR decision. Re-submission for an already hired
// applicant refreshes the scores without repeating the hire side
// effects.
func (s *Service) Submit(ctx context.Context, evaluatedBy string, input SubmitInput) (SubmitResult, error) {
	if input.ApplicationID == "" {
		return SubmitResult{}, ErrApplicationIDRequired
	}

	app, err := s.Apps.GetApplication(ctx, input.ApplicationID)
	if err != nil {
		return SubmitResult{}, err
	}
	if err := stageAllowsEvaluation(app.Stage); err != nil {
		return SubmitResult{}, err
	}

	scored, err := Score(s.Rubric, input.Input)
	if err != nil {
		return SubmitResult{}, err
	}

	eval := Evaluation{
		ApplicationID:        input.ApplicationID,
		EvaluatedBy:          evaluatedBy,
		Remarks:              input.Remarks,
		EducationalScore:     scored.Breakdown.Education.Subtotal,
		ExperienceScore:      scored.Breakdown.Experience.Subtotal,
		ProfessionalDevScore: scored.Breakdown.ProfessionalDev.Subtotal,
		TechnologicalScore:   scored.Breakdown.Technological.Subtotal,
		TotalScore:           scored.Breakdown.Total,
		Rank:                 scored.Rank,
		RatePerHour:          scored.RatePerHour,
		Qualified:            scored.Breakdown.Qualified,
		DetailedScores:       scored.Breakdown,
		ContractStatus:       ContractStatusPending,
	}

	tx, err := s.Store.BeginTx(ctx)
	if err != nil {
		return SubmitResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Re-check under a row lock: a transition committed between the
	// initial read and this point must not be overwritten.
	app.Stage, err = lockApplicationStageTx(ctx, tx, app.ID)
	if err != nil {
		return SubmitResult{}, err
	}
	if err := stageAllowsEvaluation(app.Stage); err != nil {
		return SubmitResult{}, err
	}

	if err := s.Store.UpsertTx(ctx, tx, &eval); err != nil {
		return SubmitResult{}, err
	}

	result := SubmitResult{}
	if eval.Qualified {
		terms := &hire.ContractTerms{
			FacultyName: app.FirstName + " " + app.LastName,
			Position:    app.Position,
			College:     app.College,
			Rank:        eval.Rank,
			RatePerHour: eval.RatePerHour,
			StartDate:   s.now(),
		}
		hired, err := s.Hire.CommitHireTx(ctx, tx, app.ID, eval.ID, terms)
		if err != nil {
			return SubmitResult{}, err
		}
		if err := s.Store.MarkContractApprovedTx(ctx, tx, eval.ID, evaluatedBy); err != nil {
			return SubmitResult{}, err
		}
		eval.ContractStatus = ContractStatusApproved
		result.Hired = true
		result.EmployeeNo = hired.EmployeeNo
	} else if app.Stage == hiring.StageInterviewScheduled {
		if err := s.markApplicationEvaluatedTx(ctx, tx, app.ID); err != nil {
			return SubmitResult{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return SubmitResult{}, err
	}

	result.Evaluation = eval
	return result, nil
}

// stageAllowsEvaluation rejects submissions for applications that are
// terminally rejected or have not reached the interview stage.
func stageAllowsEvaluation(stage hiring.Stage) error {
	switch stage {
	case hiring.StageRejected, hiring.StageRejectedByDean:
		return ErrApplicationClosed
	case hiring.StageApplied, hiring.StageEndorsed, hiring.StagePendingDeanApproval, hiring.StageApprovedByDean:
		return ErrNotInterviewed
	}
	return nil
}

func lockApplicationStageTx(ctx context.Context, tx pgx.Tx, applicationID string) (hiring.Stage, error) {
	var stage string
	err := tx.QueryRow(ctx,
		"SELECT stage FROM applications WHERE id = $1 FOR UPDATE",
		applicationID).Scan(&stage)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", hiring.ErrNotFound
	}
	return hiring.Stage(stage), err
}

// Moves the application off the interview stage once a failing
// evaluation lands. Guarded so a concurrent transition wins the race.
func (s *Service) markApplicationEvaluatedTx(ctx context.Context, tx pgx.Tx, applicationID string) error {
	_, err := tx.Exec(ctx, `
    UPDATE applications SET stage = $2, status = $3, status_updated_at = now()
    WHERE id = $1 AND stage = $4
  `, applicationID,
		string(hiring.StageEvaluated), hiring.StatusFor(hiring.StageEvaluated),
		string(hiring.StageInterviewScheduled))
	return err
}

func (s *Service) Get(ctx context.Context, id string) (Evaluation, error) {
	return s.Store.GetByID(ctx, id)
}

func (s *Service) GetForApplication(ctx context.Context, applicationID string) (Evaluation, error) {
	e, err := s.Store.GetByApplication(ctx, applicationID)
	if errors.Is(err, ErrNotFound) {
		// Distinguish a missing application from a not-yet-evaluated one.
		if _, appErr := s.Apps.GetApplication(ctx, applicationID); appErr != nil {
			return Evaluation{}, appErr
		}
	}
	return e, err
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]Evaluation, int, error) {
	return s.Store.List(ctx, limit, offset)
}
