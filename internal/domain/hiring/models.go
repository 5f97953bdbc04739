package hiring

import "time"

type Application struct {
	ID               string     `json:"id"`
	VacancyID        string     `json:"vacancyId"`
	ApplicantUserID  string     `json:"applicantUserId,omitempty"`
	FirstName        string     `json:"firstName"`
	LastName         string     `json:"lastName"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone,omitempty"`
	Position         string     `json:"position"`
	College          string     `json:"college"`
	EmploymentType   string     `json:"employmentType,omitempty"`
	ResumeURL        string     `json:"resumeUrl,omitempty"`
	PDSURL           string     `json:"pdsUrl,omitempty"`
	TranscriptURL    string     `json:"transcriptUrl,omitempty"`
	TrainingsURL     string     `json:"trainingsUrl,omitempty"`
	EmploymentURL    string     `json:"employmentUrl,omitempty"`
	Stage            Stage      `json:"stage"`
	Status           string     `json:"status"`
	AppliedDate      time.Time  `json:"appliedDate"`
	EndorsedDate     *time.Time `json:"endorsedDate,omitempty"`
	InterviewDate    *time.Time `json:"interviewDate,omitempty"`
	TeachingDemoDate *time.Time `json:"teachingDemoDate,omitempty"`
	StatusUpdatedAt  time.Time  `json:"statusUpdatedAt"`
	HiredAt          *time.Time `json:"hiredAt,omitempty"`
	EmployeeNo       string     `json:"employeeId,omitempty"`
	RejectionReason  string     `json:"rejectionReason,omitempty"`
	EvaluationNotes  string     `json:"evaluationNotes,omitempty"`
	Remarks          string     `json:"remarks,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// Interview is the single interview row per application. Re-scheduling
// updates this row in place rather than appending a new one.
type Interview struct {
	ID               string    `json:"id"`
	ApplicationID    string    `json:"applicationId"`
	InterviewDate    time.Time `json:"interviewDate"`
	TeachingDemoDate time.Time `json:"teachingDemoDate"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// RequiredDocuments lists the endorsement-gate document fields in the
// order they are reported when missing.
var RequiredDocuments = []string{"pdsUrl", "transcriptUrl", "trainingsUrl", "employmentUrl"}

// MissingDocuments returns the required document fields that are still
// empty on the application.
func MissingDocuments(app Application) []string {
	var missing []string
	for _, field := range RequiredDocuments {
		var value string
		switch field {
		case "pdsUrl":
			value = app.PDSURL
		case "transcriptUrl":
			value = app.TranscriptURL
		case "trainingsUrl":
			value = app.TrainingsURL
		case "employmentUrl":
			value = app.EmploymentURL
		}
		if value == "" {
			missing = append(missing, field)
		}
	}
	return missing
}
