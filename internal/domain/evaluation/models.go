package evaluation

import "time"

const (
	ContractStatusPending  = "pending"
	ContractStatusApproved = "approved"
	ContractStatusDeclined = "declined"
)

// Evaluation is unique per application. Re-submission fully replaces the
// scoring fields; contract fields survive once a contract is approved.
type Evaluation struct {
	ID                   string     `json:"id"`
	ApplicationID        string     `json:"applicationId"`
	EvaluatedBy          string     `json:"evaluatedBy"`
	Remarks              string     `json:"remarks,omitempty"`
	EducationalScore     float64    `json:"educationalScore"`
	ExperienceScore      float64    `json:"experienceScore"`
	ProfessionalDevScore float64    `json:"professionalDevScore"`
	TechnologicalScore   float64    `json:"technologicalScore"`
	TotalScore           float64    `json:"totalScore"`
	Rank                 string     `json:"rank"`
	RatePerHour          float64    `json:"ratePerHour"`
	Qualified            bool       `json:"qualified"`
	DetailedScores       Breakdown  `json:"detailedScores"`
	ContractStatus       string     `json:"contractStatus"`
	ContractActionDate   *time.Time `json:"contractActionDate,omitempty"`
	ContractActionBy     string     `json:"contractActionBy,omitempty"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}
