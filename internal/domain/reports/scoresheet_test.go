package reports

import (
	"bytes"
	"testing"
	"time"

	"talenthub/internal/domain/evaluation"
	"talenthub/internal/domain/hiring"
)

func TestWriteScoreSheetPDF(t *testing.T) {
	rubric := evaluation.DefaultRubric()
	scored, err := evaluation.Score(rubric, evaluation.Input{
		Education:  evaluation.EducationInput{HighestDegreePoints: 85, MastersUnits: 10},
		Experience: evaluation.ExperienceInput{StateYears: 12, AdminRoles: []evaluation.RoleYears{{Role: "dean", Years: 4}}},
		ProfessionalDev: []evaluation.CreditEntry{
			{Code: "training_international", Units: 6},
			{Code: "licensure_exam", Units: 1},
		},
		Technological: evaluation.TechnologicalInput{WordRating: 5, ExcelRating: 4, PowerpointRating: 3},
	})
	if err != nil {
		t.Fatalf("score: %v", err)
	}

	sheet := ScoreSheet{
		Application: hiring.Application{
			ID:        "app-1",
			FirstName: "Maria",
			LastName:  "Santos",
			Position:  "Instructor I",
			College:   "Engineering",
			Stage:     hiring.StageEvaluated,
		},
		Evaluation: evaluation.Evaluation{
			ID:                   "eval-1",
			ApplicationID:        "app-1",
			EducationalScore:     scored.EducationalScore,
			ExperienceScore:      scored.ExperienceScore,
			ProfessionalDevScore: scored.ProfessionalDevScore,
			TechnologicalScore:   scored.TechnologicalScore,
			TotalScore:           scored.TotalScore,
			Rank:                 scored.Rank,
			RatePerHour:          scored.RatePerHour,
			Qualified:            scored.Qualified,
			DetailedScores:       scored.Breakdown,
			CreatedAt:            time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	if err := WriteScoreSheetPDF(&buf, sheet); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("empty pdf output")
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("output does not start with a PDF header: %q", buf.Bytes()[:8])
	}
}
