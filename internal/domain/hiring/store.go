package hiring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const applicationColumns = `
  id, vacancy_id, applicant_user_id, first_name, last_name, email, phone,
  position, college, employment_type, resume_url, pds_url, transcript_url,
  trainings_url, employment_url, stage, status, applied_date, endorsed_date,
  interview_date, teaching_demo_date, status_updated_at, hired_at,
  employee_no, rejection_reason, evaluation_notes, remarks, created_at`

func scanApplication(row pgx.Row) (Application, error) {
	var app Application
	var stage string
	err := row.Scan(
		&app.ID, &app.VacancyID, &app.ApplicantUserID, &app.FirstName, &app.LastName,
		&app.Email, &app.Phone, &app.Position, &app.College, &app.EmploymentType,
		&app.ResumeURL, &app.PDSURL, &app.TranscriptURL, &app.TrainingsURL,
		&app.EmploymentURL, &stage, &app.Status, &app.AppliedDate, &app.EndorsedDate,
		&app.InterviewDate, &app.TeachingDemoDate, &app.StatusUpdatedAt, &app.HiredAt,
		&app.EmployeeNo, &app.RejectionReason, &app.EvaluationNotes, &app.Remarks,
		&app.CreatedAt,
	)
	app.Stage = Stage(stage)
	return app, err
}

func (s *Store) CreateApplication(ctx context.Context, app Application) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO applications (
      vacancy_id, applicant_user_id, first_name, last_name, email, phone,
      position, college, employment_type, resume_url, pds_url, transcript_url,
      trainings_url, employment_url, stage, status, applied_date, status_updated_at
    )
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$17)
    RETURNING id
  `, app.VacancyID, app.ApplicantUserID, app.FirstName, app.LastName, app.Email,
		app.Phone, app.Position, app.College, app.EmploymentType, app.ResumeURL,
		app.PDSURL, app.TranscriptURL, app.TrainingsURL, app.EmploymentURL,
		string(app.Stage), app.Status, app.AppliedDate).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) GetApplication(ctx context.Context, id string) (Application, error) {
	row := s.DB.QueryRow(ctx, "SELECT"+applicationColumns+" FROM applications WHERE id = $1", id)
	app, err := scanApplication(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Application{}, ErrNotFound
	}
	return app, err
}

func (s *Store) ListApplications(ctx context.Context, filter ListFilter) ([]Application, int, error) {
	query := "SELECT" + applicationColumns + " FROM applications WHERE 1=1"
	countQuery := "SELECT COUNT(1) FROM applications WHERE 1=1"
	var args []any

	if filter.Stage != "" {
		args = append(args, string(filter.Stage))
		clause := fmt.Sprintf(" AND stage = $%d", len(args))
		query += clause
		countQuery += clause
	}
	if filter.ApplicantUserID != "" {
		args = append(args, filter.ApplicantUserID)
		clause := fmt.Sprintf(" AND applicant_user_id = $%d", len(args))
		query += clause
		countQuery += clause
	}

	var total int
	if err := s.DB.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query += " ORDER BY applied_date DESC"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var apps []Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, 0, err
		}
		apps = append(apps, app)
	}
	return apps, total, rows.Err()
}

func (s *Store) ApplyTransition(ctx context.Context, id string, from Stage, update StageUpdate) (bool, error) {
	tag, err := s.DB.Exec(ctx, `
    UPDATE applications SET
      stage = $1,
      status = $2,
      status_updated_at = $3,
      endorsed_date = CASE WHEN $4 THEN $3 ELSE endorsed_date END,
      remarks = CASE WHEN $5 <> '' THEN $5 ELSE remarks END,
      rejection_reason = CASE WHEN $6 <> '' THEN $6 ELSE rejection_reason END,
      evaluation_notes = CASE WHEN $7 <> '' THEN $7 ELSE evaluation_notes END
    WHERE id = $8 AND stage = $9
  `, string(update.Stage), update.Status, update.Now, update.SetEndorsedDate,
		update.Remarks, update.RejectionReason, update.EvaluationNotes, id, string(from))
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) ScheduleInterview(ctx context.Context, id string, from Stage, interviewDate, teachingDemoDate, now time.Time) (bool, error) {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `
    UPDATE applications SET
      stage = $1, status = $2, status_updated_at = $3,
      interview_date = $4, teaching_demo_date = $5
    WHERE id = $6 AND stage = $7
  `, string(StageInterviewScheduled), StatusFor(StageInterviewScheduled), now,
		interviewDate, nullableTime(teachingDemoDate), id, string(from))
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	if _, err := tx.Exec(ctx, `
    INSERT INTO interviews (application_id, interview_date, teaching_demo_date, status)
    VALUES ($1,$2,$3,'scheduled')
    ON CONFLICT (application_id) DO UPDATE SET
      interview_date = EXCLUDED.interview_date,
      teaching_demo_date = EXCLUDED.teaching_demo_date,
      status = 'scheduled',
      updated_at = now()
  `, id, interviewDate, nullableTime(teachingDemoDate)); err != nil {
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) GetInterview(ctx context.Context, applicationID string) (Interview, error) {
	var iv Interview
	var demoDate *time.Time
	err := s.DB.QueryRow(ctx, `
    SELECT id, application_id, interview_date, teaching_demo_date, status, created_at, updated_at
    FROM interviews
    WHERE application_id = $1
  `, applicationID).Scan(&iv.ID, &iv.ApplicationID, &iv.InterviewDate, &demoDate, &iv.Status, &iv.CreatedAt, &iv.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Interview{}, ErrNotFound
	}
	if demoDate != nil {
		iv.TeachingDemoDate = *demoDate
	}
	return iv, err
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
