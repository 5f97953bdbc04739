package hiring

import (
	"context"
	"time"
)

// StageUpdate carries the side effects applied atomically with a stage
// transition. The store writes it with a compare-and-set on the current
// stage so two racing transitions cannot both win.
type StageUpdate struct {
	Stage           Stage
	Status          string
	Now             time.Time
	SetEndorsedDate bool
	Remarks         string
	RejectionReason string
	EvaluationNotes string
}

type ListFilter struct {
	Stage           Stage
	ApplicantUserID string
	Limit           int
	Offset          int
}

type StoreAPI interface {
	CreateApplication(ctx context.Context, app Application) (string, error)
	GetApplication(ctx context.Context, id string) (Application, error)
	ListApplications(ctx context.Context, filter ListFilter) ([]Application, int, error)
	// ApplyTransition performs the guarded read-modify-write. It returns
	// false when the application is no longer in the expected stage.
	ApplyTransition(ctx context.Context, id string, from Stage, update StageUpdate) (bool, error)
	// ScheduleInterview upserts the single interview row and moves the
	// application in one transaction.
	ScheduleInterview(ctx context.Context, id string, from Stage, interviewDate, teachingDemoDate, now time.Time) (bool, error)
	GetInterview(ctx context.Context, applicationID string) (Interview, error)
}

// CommitHireResult reports the hire side effects. AlreadyHired means the
// application was hired before this call and nothing changed.
type CommitHireResult struct {
	EmployeeNo   string
	HiredAt      time.Time
	AlreadyHired bool
}

// HireCommitter is the single entry point into the HIRED state, shared
// by the explicit HR transition and the automatic qualification path.
type HireCommitter interface {
	CommitHire(ctx context.Context, applicationID, evaluationID string) (CommitHireResult, error)
}
