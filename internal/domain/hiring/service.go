package hiring

import (
	"context"
	"errors"
	"time"
)

var ErrInterviewDateRequired = errors.New("interview date is required")

type Service struct {
	Store StoreAPI
	Hire  HireCommitter
	now   func() time.Time
}

func NewService(store StoreAPI, hire HireCommitter) *Service {
	return &Service{Store: store, Hire: hire, now: time.Now}
}

type TransitionInput struct {
	ApplicationID    string
	Target           Stage
	Role             string
	ActorUserID      string
	Notes            string
	InterviewDate    time.Time
	TeachingDemoDate time.Time
}

type TransitionResult struct {
	Stage           Stage      `json:"stage"`
	Status          string     `json:"status"`
	StatusUpdatedAt time.Time  `json:"statusUpdatedAt"`
	EmployeeNo      string     `json:"employeeId,omitempty"`
	HiredAt         *time.Time `json:"hiredAt,omitempty"`
}

// Transition applies one guarded stage transition with its side
// effects. Guard order: existence, role authorization, terminal state,
// legality from the current stage, then target-specific preconditions.
func (s *Service) Transition(ctx context.Context, in TransitionInput) (TransitionResult, error) {
	app, err := s.Store.GetApplication(ctx, in.ApplicationID)
	if err != nil {
		return TransitionResult{}, err
	}

	if !RoleMayTarget(in.Role, in.Target) {
		return TransitionResult{}, ErrForbidden
	}
	if app.Stage.Terminal() {
		return TransitionResult{}, ErrInvalidTransition
	}
	if !AllowedTransition(in.Role, app.Stage, in.Target) {
		return TransitionResult{}, ErrInvalidTransition
	}

	now := s.now()
	update := StageUpdate{Stage: in.Target, Status: StatusFor(in.Target), Now: now}

	switch in.Target {
	case StageEndorsed:
		if app.EndorsedDate != nil {
			return TransitionResult{}, ErrAlreadyEndorsed
		}
		if missing := MissingDocuments(app); len(missing) > 0 {
			return TransitionResult{}, &MissingDocumentsError{Missing: missing}
		}
		update.SetEndorsedDate = true
	case StageRejectedByDean:
		update.Remarks = in.Notes
		update.RejectionReason = in.Notes
	case StageInterviewScheduled:
		if in.InterviewDate.IsZero() {
			return TransitionResult{}, ErrInterviewDateRequired
		}
		ok, err := s.Store.ScheduleInterview(ctx, app.ID, app.Stage, in.InterviewDate, in.TeachingDemoDate, now)
		if err != nil {
			return TransitionResult{}, err
		}
		if !ok {
			return TransitionResult{}, ErrInvalidTransition
		}
		return TransitionResult{Stage: in.Target, Status: update.Status, StatusUpdatedAt: now}, nil
	case StageEvaluated:
		update.EvaluationNotes = in.Notes
	case StageHired:
		committed, err := s.Hire.CommitHire(ctx, app.ID, "")
		if err != nil {
			return TransitionResult{}, err
		}
		hiredAt := committed.HiredAt
		return TransitionResult{
			Stage:           StageHired,
			Status:          StatusFor(StageHired),
			StatusUpdatedAt: hiredAt,
			EmployeeNo:      committed.EmployeeNo,
			HiredAt:         &hiredAt,
		}, nil
	case StageRejected:
		update.RejectionReason = in.Notes
	}

	ok, err := s.Store.ApplyTransition(ctx, app.ID, app.Stage, update)
	if err != nil {
		return TransitionResult{}, err
	}
	if !ok {
		// A concurrent transition moved the application first.
		return TransitionResult{}, ErrInvalidTransition
	}
	return TransitionResult{Stage: in.Target, Status: update.Status, StatusUpdatedAt: now}, nil
}

// Create registers a new application at the APPLIED stage. Intake is the
// applicant-facing entry point; document URLs arrive as opaque strings.
func (s *Service) Create(ctx context.Context, app Application) (Application, error) {
	now := s.now()
	app.Stage = StageApplied
	app.Status = StatusFor(StageApplied)
	app.AppliedDate = now
	app.StatusUpdatedAt = now

	id, err := s.Store.CreateApplication(ctx, app)
	if err != nil {
		return Application{}, err
	}
	app.ID = id
	return app, nil
}

func (s *Service) Get(ctx context.Context, id string) (Application, error) {
	return s.Store.GetApplication(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Application, int, error) {
	return s.Store.ListApplications(ctx, filter)
}

func (s *Service) Interview(ctx context.Context, applicationID string) (Interview, error) {
	return s.Store.GetInterview(ctx, applicationID)
}
