package evaluation

// Raw rubric inputs. Every numeric field defaults to zero; an empty
// submission is a valid (all-zero) evaluation.

type CreditEntry struct {
	Code  string  `json:"code" validate:"required"`
	Units float64 `json:"units" validate:"gte=0"`
}

type RoleYears struct {
	Role  string  `json:"role" validate:"required"`
	Years float64 `json:"years" validate:"gte=0"`
}

type EducationInput struct {
	HighestDegreePoints   float64 `json:"highestDegreePoints" validate:"gte=0"`
	MastersUnits          float64 `json:"mastersUnits" validate:"gte=0"`
	BachelorsUnits        float64 `json:"bachelorsUnits" validate:"gte=0"`
	AdditionalCreditUnits float64 `json:"additionalCreditUnits" validate:"gte=0"`
}

type ExperienceInput struct {
	StateYears            float64     `json:"stateYears" validate:"gte=0"`
	OtherInstitutionYears float64     `json:"otherInstitutionYears" validate:"gte=0"`
	AdminRoles            []RoleYears `json:"adminRoles" validate:"dive"`
	IndustryRoles         []RoleYears `json:"industryRoles" validate:"dive"`
	TeachingRoles         []RoleYears `json:"teachingRoles" validate:"dive"`
}

type CreativeWorkInput struct {
	Originality   float64 `json:"originality" validate:"gte=0"`
	Acceptability float64 `json:"acceptability" validate:"gte=0"`
	Relevance     float64 `json:"relevance" validate:"gte=0"`
	Documentation float64 `json:"documentation" validate:"gte=0"`
}

type TechnologicalInput struct {
	WordRating             float64           `json:"wordRating" validate:"gte=0"`
	ExcelRating            float64           `json:"excelRating" validate:"gte=0"`
	PowerpointRating       float64           `json:"powerpointRating" validate:"gte=0"`
	AppRating              float64           `json:"appRating" validate:"gte=0"`
	AppCount               float64           `json:"appCount" validate:"gte=0"`
	InternationalTrainings float64           `json:"internationalTrainings" validate:"gte=0"`
	NationalTrainings      float64           `json:"nationalTrainings" validate:"gte=0"`
	LocalTrainings         float64           `json:"localTrainings" validate:"gte=0"`
	CreativeWork           CreativeWorkInput `json:"creativeWork"`
}

type Input struct {
	Education       EducationInput     `json:"education"`
	Experience      ExperienceInput    `json:"experience"`
	ProfessionalDev []CreditEntry      `json:"professionalDevelopment" validate:"dive"`
	Technological   TechnologicalInput `json:"technological"`
}

// Breakdown is the audit trail: every raw input, intermediate value and
// capped subtotal, exactly as computed. It is persisted as a structured
// document so the score-sheet report can reconstruct each line item.

type EducationBreakdown struct {
	Input                  EducationInput `json:"input"`
	HighestDegreePoints    float64        `json:"highestDegreePoints"`
	DegreeUnitPoints       float64        `json:"degreeUnitPoints"`
	AdditionalCreditPoints float64        `json:"additionalCreditPoints"`
	Subtotal               float64        `json:"subtotal"`
	Max                    float64        `json:"max"`
}

type WeightedLine struct {
	Role   string  `json:"role"`
	Years  float64 `json:"years"`
	Weight float64 `json:"weight"`
	Points float64 `json:"points"`
}

type ExperienceBreakdown struct {
	Input                  ExperienceInput `json:"input"`
	StatePoints            float64         `json:"statePoints"`
	OtherInstitutionPoints float64         `json:"otherInstitutionPoints"`
	AdminLines             []WeightedLine  `json:"adminLines,omitempty"`
	IndustryLines          []WeightedLine  `json:"industryLines,omitempty"`
	TeachingLines          []WeightedLine  `json:"teachingLines,omitempty"`
	Subtotal               float64         `json:"subtotal"`
	Max                    float64         `json:"max"`
}

type CreditLine struct {
	Code          string  `json:"code"`
	Section       string  `json:"section"`
	Description   string  `json:"description"`
	Units         float64 `json:"units"`
	CreditPerUnit float64 `json:"creditPerUnit"`
	Points        float64 `json:"points"`
}

type ProfessionalDevBreakdown struct {
	Lines    []CreditLine `json:"lines,omitempty"`
	RawSum   float64      `json:"rawSum"`
	Subtotal float64      `json:"subtotal"`
	Max      float64      `json:"max"`
}

type TechnologicalBreakdown struct {
	Input              TechnologicalInput `json:"input"`
	OfficeSkillsPoints float64            `json:"officeSkillsPoints"`
	AppSkillsPoints    float64            `json:"appSkillsPoints"`
	TrainingPoints     float64            `json:"trainingPoints"`
	CreativeWorkPoints float64            `json:"creativeWorkPoints"`
	Subtotal           float64            `json:"subtotal"`
	Max                float64            `json:"max"`
}

type Breakdown struct {
	Education        EducationBreakdown       `json:"education"`
	Experience       ExperienceBreakdown      `json:"experience"`
	ProfessionalDev  ProfessionalDevBreakdown `json:"professionalDevelopment"`
	Technological    TechnologicalBreakdown   `json:"technological"`
	Total            float64                  `json:"total"`
	PassingThreshold float64                  `json:"passingThreshold"`
	Qualified        bool                     `json:"qualified"`
}

type Result struct {
	EducationalScore     float64
	ExperienceScore      float64
	ProfessionalDevScore float64
	TechnologicalScore   float64
	TotalScore           float64
	Qualified            bool
	Rank                 string
	RatePerHour          float64
	Breakdown            Breakdown
}

// Score computes the four category subtotals and the qualification
// verdict. It is a pure function of the rubric and the raw input.
func Score(rubric Rubric, input Input) (Result, error) {
	education := scoreEducation(rubric, input.Education)
	experience, err := scoreExperience(rubric, input.Experience)
	if err != nil {
		return Result{}, err
	}
	professional, err := scoreProfessionalDev(rubric, input.ProfessionalDev)
	if err != nil {
		return Result{}, err
	}
	technological := scoreTechnological(rubric, input.Technological)

	total := education.Subtotal + experience.Subtotal + professional.Subtotal + technological.Subtotal
	qualified := total >= rubric.PassingThreshold
	rank, rate := rubric.RankBander(total)

	return Result{
		EducationalScore:     education.Subtotal,
		ExperienceScore:      experience.Subtotal,
		ProfessionalDevScore: professional.Subtotal,
		TechnologicalScore:   technological.Subtotal,
		TotalScore:           total,
		Qualified:            qualified,
		Rank:                 rank,
		RatePerHour:          rate,
		Breakdown: Breakdown{
			Education:        education,
			Experience:       experience,
			ProfessionalDev:  professional,
			Technological:    technological,
			Total:            total,
			PassingThreshold: rubric.PassingThreshold,
			Qualified:        qualified,
		},
	}, nil
}

func scoreEducation(rubric Rubric, input EducationInput) EducationBreakdown {
	degreeUnits := capAt(input.MastersUnits*rubric.MastersUnitWeight+input.BachelorsUnits*rubric.BachelorsUnitWeight, rubric.DegreeUnitCap)
	additional := capAt(input.AdditionalCreditUnits, rubric.AdditionalCredCap)
	// The addends self-cap, but their sum is still bounded by the
	// category maximum.
	subtotal := capAt(input.HighestDegreePoints+degreeUnits+additional, rubric.EducationMax)
	return EducationBreakdown{
		Input:                  input,
		HighestDegreePoints:    input.HighestDegreePoints,
		DegreeUnitPoints:       degreeUnits,
		AdditionalCreditPoints: additional,
		Subtotal:               subtotal,
		Max:                    rubric.EducationMax,
	}
}

func scoreExperience(rubric Rubric, input ExperienceInput) (ExperienceBreakdown, error) {
	breakdown := ExperienceBreakdown{
		Input:                  input,
		StatePoints:            input.StateYears * rubric.StateYearWeight,
		OtherInstitutionPoints: input.OtherInstitutionYears * rubric.OtherYearWeight,
		Max:                    rubric.ExperienceMax,
	}

	var unknown []string
	sum := breakdown.StatePoints + breakdown.OtherInstitutionPoints

	weigh := func(entries []RoleYears, weights map[string]float64, field string) []WeightedLine {
		var lines []WeightedLine
		for _, entry := range entries {
			weight, ok := weights[entry.Role]
			if !ok {
				unknown = append(unknown, field+":"+entry.Role)
				continue
			}
			line := WeightedLine{Role: entry.Role, Years: entry.Years, Weight: weight, Points: entry.Years * weight}
			sum += line.Points
			lines = append(lines, line)
		}
		return lines
	}

	breakdown.AdminLines = weigh(input.AdminRoles, rubric.AdminWeights, "adminRoles")
	breakdown.IndustryLines = weigh(input.IndustryRoles, rubric.IndustryWeights, "industryRoles")
	breakdown.TeachingLines = weigh(input.TeachingRoles, rubric.TeachingWeights, "teachingRoles")

	if len(unknown) > 0 {
		return ExperienceBreakdown{}, &UnknownRoleError{Roles: unknown}
	}

	breakdown.Subtotal = capAt(sum, rubric.ExperienceMax)
	return breakdown, nil
}

func scoreProfessionalDev(rubric Rubric, entries []CreditEntry) (ProfessionalDevBreakdown, error) {
	breakdown := ProfessionalDevBreakdown{Max: rubric.ProfessionalMax}

	var unknown []string
	for _, entry := range entries {
		credit, ok := rubric.Credits.Lookup(entry.Code)
		if !ok {
			unknown = append(unknown, entry.Code)
			continue
		}
		line := CreditLine{
			Code:          entry.Code,
			Section:       credit.Section,
			Description:   credit.Description,
			Units:         entry.Units,
			CreditPerUnit: credit.Points,
			Points:        entry.Units * credit.Points,
		}
		breakdown.RawSum += line.Points
		breakdown.Lines = append(breakdown.Lines, line)
	}

	if len(unknown) > 0 {
		return ProfessionalDevBreakdown{}, &UnknownCreditCodeError{Codes: unknown}
	}

	breakdown.Subtotal = capAt(breakdown.RawSum, rubric.ProfessionalMax)
	return breakdown, nil
}

func scoreTechnological(rubric Rubric, input TechnologicalInput) TechnologicalBreakdown {
	office := capAt(input.WordRating+input.ExcelRating+input.PowerpointRating, rubric.OfficeSkillsCap)
	apps := capAt(input.AppRating*input.AppCount, rubric.AppSkillsCap)
	training := capAt(
		input.InternationalTrainings*rubric.IntlTrainingWeight+
			input.NationalTrainings*rubric.NatTrainingWeight+
			input.LocalTrainings*rubric.LocalTrainingWeight,
		rubric.TechTrainingCap,
	)
	creative := (input.CreativeWork.Originality +
		input.CreativeWork.Acceptability +
		input.CreativeWork.Relevance +
		input.CreativeWork.Documentation) * rubric.CreativeWorkWeight

	return TechnologicalBreakdown{
		Input:              input,
		OfficeSkillsPoints: office,
		AppSkillsPoints:    apps,
		TrainingPoints:     training,
		CreativeWorkPoints: creative,
		Subtotal:           capAt(office+apps+training+creative, rubric.TechnologicalMax),
		Max:                rubric.TechnologicalMax,
	}
}

func capAt(value, max float64) float64 {
	if value > max {
		return max
	}
	return value
}
