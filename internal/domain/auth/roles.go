package auth

const (
	RoleApplicant = "applicant"
	RoleHR        = "hr"
	RoleDean      = "dean"
	RoleEvaluator = "evaluator"
	RoleAdmin     = "admin"
)

type UserContext struct {
	UserID   string
	RoleID   string
	RoleName string
}
