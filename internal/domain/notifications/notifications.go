package notifications

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Notification types emitted by the hiring workflow.
const (
	TypeApplicationReceived = "application_received"
	TypeEndorsed            = "application_endorsed"
	TypeDeanDecision        = "dean_decision"
	TypeInterviewScheduled  = "interview_scheduled"
	TypeEvaluationCompleted = "evaluation_completed"
	TypeHired               = "hired"
	TypeRejected            = "rejected"
	TypeContractDecision    = "contract_decision"
)

type Notification struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	ReadAt    *time.Time `json:"readAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

type Mailer interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

type Service struct {
	DB          *pgxpool.Pool
	Mailer      Mailer
	DefaultFrom string
}

func New(db *pgxpool.Pool) *Service {
	return &Service{DB: db, DefaultFrom: "no-reply@talenthub.local"}
}

// Notify writes the in-app notification row and, when a mailer is
// configured, mirrors it by email. Mail failures are logged and never
// fail the calling workflow.
func (s *Service) Notify(ctx context.Context, userID, ntype, title, body string) error {
	if userID == "" {
		return nil
	}
	if _, err := s.DB.Exec(ctx, `
    INSERT INTO notifications (user_id, type, title, body)
    VALUES ($1,$2,$3,$4)
  `, userID, ntype, title, body); err != nil {
		return err
	}

	if s.Mailer == nil {
		return nil
	}
	var email string
	if err := s.DB.QueryRow(ctx, "SELECT email FROM users WHERE id = $1", userID).Scan(&email); err != nil || email == "" {
		return nil
	}
	if err := s.Mailer.Send(ctx, s.DefaultFrom, email, title, body); err != nil {
		slog.Warn("notification email send failed", "err", err)
	}
	return nil
}

func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Notification, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, user_id, type, title, body, read_at, created_at
    FROM notifications
    WHERE user_id = $1
    ORDER BY created_at DESC
    LIMIT $2 OFFSET $3
  `, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Notification
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Body, &n.ReadAt, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (s *Service) Count(ctx context.Context, userID string) (int, error) {
	var total int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM notifications WHERE user_id = $1", userID).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Service) MarkRead(ctx context.Context, userID, notificationID string) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE notifications SET read_at = now()
    WHERE user_id = $1 AND id = $2
  `, userID, notificationID)
	return err
}
