package evaluation

import (
	"errors"
	"testing"
)

func TestScoreZeroInput(t *testing.T) {
	result, err := Score(DefaultRubric(), Input{})
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}
	if result.TotalScore != 0 {
		t.Fatalf("total = %v, want 0", result.TotalScore)
	}
	if result.Qualified {
		t.Fatal("all-zero input must not qualify")
	}
	if result.Rank != "Instructor I" || result.RatePerHour != 250 {
		t.Fatalf("rank/rate = %q/%v", result.Rank, result.RatePerHour)
	}
}

func TestScoreCategoryCaps(t *testing.T) {
	input := Input{
		Education: EducationInput{
			HighestDegreePoints:   85,
			MastersUnits:          100,
			AdditionalCreditUnits: 50,
		},
		Experience: ExperienceInput{StateYears: 40},
		ProfessionalDev: []CreditEntry{
			{Code: "training_international", Units: 50},
		},
		Technological: TechnologicalInput{
			WordRating:             10,
			ExcelRating:            10,
			PowerpointRating:       10,
			AppRating:              5,
			AppCount:               10,
			InternationalTrainings: 5,
			CreativeWork:           CreativeWorkInput{Originality: 100, Acceptability: 100, Relevance: 100, Documentation: 100},
		},
	}

	result, err := Score(DefaultRubric(), input)
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}
	if result.EducationalScore != 85 {
		t.Errorf("education = %v, want 85", result.EducationalScore)
	}
	if result.ExperienceScore != 25 {
		t.Errorf("experience = %v, want 25", result.ExperienceScore)
	}
	if result.ProfessionalDevScore != 90 {
		t.Errorf("professional = %v, want 90", result.ProfessionalDevScore)
	}
	if result.TechnologicalScore != 50 {
		t.Errorf("technological = %v, want 50", result.TechnologicalScore)
	}
	if result.TotalScore != 250 {
		t.Errorf("total = %v, want 250", result.TotalScore)
	}

	tech := result.Breakdown.Technological
	if tech.OfficeSkillsPoints != 15 {
		t.Errorf("office skills = %v, want capped 15", tech.OfficeSkillsPoints)
	}
	if tech.AppSkillsPoints != 10 {
		t.Errorf("app skills = %v, want capped 10", tech.AppSkillsPoints)
	}
	if tech.TrainingPoints != 10 {
		t.Errorf("training = %v, want capped 10", tech.TrainingPoints)
	}
}

func TestScoreThresholdBoundary(t *testing.T) {
	rubric := DefaultRubric()

	// 85 education + 25 experience + 13 units * 5 = 175 exactly.
	atThreshold := Input{
		Education:       EducationInput{HighestDegreePoints: 85},
		Experience:      ExperienceInput{StateYears: 25},
		ProfessionalDev: []CreditEntry{{Code: "training_international", Units: 13}},
	}
	result, err := Score(rubric, atThreshold)
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}
	if result.TotalScore != 175 {
		t.Fatalf("total = %v, want 175", result.TotalScore)
	}
	if !result.Qualified {
		t.Error("a total equal to the threshold qualifies")
	}
	if result.Rank != "Instructor II" || result.RatePerHour != 312.50 {
		t.Errorf("rank/rate = %q/%v, want Instructor II/312.50", result.Rank, result.RatePerHour)
	}

	below := atThreshold
	below.Experience = ExperienceInput{StateYears: 24.99}
	result, err = Score(rubric, below)
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}
	if result.TotalScore >= 175 || result.TotalScore < 174.98 {
		t.Fatalf("total = %v, want just under 175", result.TotalScore)
	}
	if result.Qualified {
		t.Error("a total below the threshold must not qualify")
	}
	if result.Rank != "Instructor I" {
		t.Errorf("rank = %q, want Instructor I", result.Rank)
	}
}

func TestScoreExperienceWeights(t *testing.T) {
	input := Input{
		Experience: ExperienceInput{
			StateYears:            4,
			OtherInstitutionYears: 4,
			AdminRoles:            []RoleYears{{Role: "dean", Years: 3}},
			IndustryRoles:         []RoleYears{{Role: "engineer", Years: 2}},
			TeachingRoles:         []RoleYears{{Role: "basic_education", Years: 2}},
		},
	}

	result, err := Score(DefaultRubric(), input)
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}
	// 4*1 + 4*0.75 + 3*2 + 2*1.5 + 2*1 = 18
	if result.ExperienceScore != 18 {
		t.Fatalf("experience = %v, want 18", result.ExperienceScore)
	}

	exp := result.Breakdown.Experience
	if len(exp.AdminLines) != 1 || exp.AdminLines[0].Points != 6 {
		t.Errorf("admin lines = %+v", exp.AdminLines)
	}
	if len(exp.IndustryLines) != 1 || exp.IndustryLines[0].Weight != 1.5 {
		t.Errorf("industry lines = %+v", exp.IndustryLines)
	}
	if len(exp.TeachingLines) != 1 || exp.TeachingLines[0].Points != 2 {
		t.Errorf("teaching lines = %+v", exp.TeachingLines)
	}
}

func TestScoreUnknownRole(t *testing.T) {
	input := Input{
		Experience: ExperienceInput{
			AdminRoles:    []RoleYears{{Role: "janitor", Years: 3}},
			IndustryRoles: []RoleYears{{Role: "astronaut", Years: 1}},
		},
	}

	_, err := Score(DefaultRubric(), input)
	var unknown *UnknownRoleError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownRoleError, got %v", err)
	}
	want := []string{"adminRoles:janitor", "industryRoles:astronaut"}
	if len(unknown.Roles) != len(want) {
		t.Fatalf("roles = %v, want %v", unknown.Roles, want)
	}
	for i, role := range want {
		if unknown.Roles[i] != role {
			t.Fatalf("roles = %v, want %v", unknown.Roles, want)
		}
	}
}

func TestScoreUnknownCreditCode(t *testing.T) {
	input := Input{
		ProfessionalDev: []CreditEntry{
			{Code: "training_international", Units: 1},
			{Code: "interpretive_dance", Units: 2},
		},
	}

	_, err := Score(DefaultRubric(), input)
	var unknown *UnknownCreditCodeError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownCreditCodeError, got %v", err)
	}
	if len(unknown.Codes) != 1 || unknown.Codes[0] != "interpretive_dance" {
		t.Fatalf("codes = %v", unknown.Codes)
	}
}

func TestScoreCreditLines(t *testing.T) {
	input := Input{
		ProfessionalDev: []CreditEntry{
			{Code: "patent_international", Units: 2},
			{Code: "community_service", Units: 3},
		},
	}

	result, err := Score(DefaultRubric(), input)
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}
	lines := result.Breakdown.ProfessionalDev.Lines
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if lines[0].Points != 14 || lines[0].CreditPerUnit != 7 {
		t.Errorf("patent line = %+v", lines[0])
	}
	if lines[1].Points != 3 {
		t.Errorf("community service line = %+v", lines[1])
	}
	if result.ProfessionalDevScore != 17 {
		t.Errorf("professional = %v, want 17", result.ProfessionalDevScore)
	}
}

func TestRankBands(t *testing.T) {
	bander := BandsToBander(DefaultRankBands)
	cases := []struct {
		total float64
		rank  string
		rate  float64
	}{
		{0, "Instructor I", 250},
		{174.99, "Instructor I", 250},
		{175, "Instructor II", 312.50},
		{190, "Instructor III", 343.75},
		{204.99, "Instructor III", 343.75},
		{205, "Assistant Professor I", 375},
		{220, "Associate Professor I", 437.50},
		{235, "Professor I", 500},
		{250, "Professor I", 500},
	}
	for _, tc := range cases {
		rank, rate := bander(tc.total)
		if rank != tc.rank || rate != tc.rate {
			t.Errorf("bander(%v) = %q/%v, want %q/%v", tc.total, rank, rate, tc.rank, tc.rate)
		}
	}
}

func TestRubricTotalMax(t *testing.T) {
	if got := DefaultRubric().TotalMax(); got != 250 {
		t.Fatalf("total max = %v, want 250", got)
	}
}
