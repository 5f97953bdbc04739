package hire

import "time"

// Faculty is the denormalized record created at the moment of hire. It
// snapshots the application at that point and is write-once.
type Faculty struct {
	ID             string    `json:"id"`
	ApplicationID  string    `json:"applicationId"`
	EmployeeNo     string    `json:"employeeId"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Position       string    `json:"position"`
	College        string    `json:"college"`
	EmploymentType string    `json:"employmentType,omitempty"`
	Recommendation string    `json:"recommendation,omitempty"`
	HiredAt        time.Time `json:"hiredAt"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Contract terms and identity are frozen from the application and
// evaluation when the contract is issued; later edits to either never
// flow back into it.
type Contract struct {
	ID            string    `json:"id"`
	ContractNo    string    `json:"contractNo"`
	EvaluationID  string    `json:"evaluationId"`
	ApplicationID string    `json:"applicationId"`
	FacultyName   string    `json:"facultyName"`
	Position      string    `json:"position"`
	College       string    `json:"college"`
	Rank          string    `json:"rank"`
	RatePerHour   float64   `json:"ratePerHour"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

type ContractTerms struct {
	FacultyName string
	Position    string
	College     string
	Rank        string
	RatePerHour float64
	StartDate   time.Time
	EndDate     time.Time
}
