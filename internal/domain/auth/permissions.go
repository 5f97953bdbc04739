package auth

const (
	PermApplicationsRead       = "applications.read"
	PermApplicationsWrite      = "applications.write"
	PermApplicationsTransition = "applications.transition"
	PermEvaluationsRead        = "evaluations.read"
	PermEvaluationsWrite       = "evaluations.write"
	PermContractsRead          = "contracts.read"
	PermContractsDecide        = "contracts.decide"
	PermReportsRead            = "reports.read"
	PermNotificationsRead      = "notifications.read"
	PermAuditRead              = "audit.read"
	PermSystemAdmin            = "admin.system"
)

var DefaultPermissions = []string{
	PermApplicationsRead,
	PermApplicationsWrite,
	PermApplicationsTransition,
	PermEvaluationsRead,
	PermEvaluationsWrite,
	PermContractsRead,
	PermContractsDecide,
	PermReportsRead,
	PermNotificationsRead,
	PermAuditRead,
	PermSystemAdmin,
}

var RolePermissions = map[string][]string{
	RoleApplicant: {
		PermApplicationsRead,
		PermApplicationsWrite,
		PermNotificationsRead,
	},
	RoleHR: {
		PermApplicationsRead,
		PermApplicationsWrite,
		PermApplicationsTransition,
		PermEvaluationsRead,
		PermContractsRead,
		PermContractsDecide,
		PermReportsRead,
		PermNotificationsRead,
	},
	RoleDean: {
		PermApplicationsRead,
		PermApplicationsTransition,
		PermEvaluationsRead,
		PermReportsRead,
		PermNotificationsRead,
	},
	RoleEvaluator: {
		PermApplicationsRead,
		PermEvaluationsRead,
		PermEvaluationsWrite,
		PermReportsRead,
		PermNotificationsRead,
	},
	RoleAdmin: {
		PermApplicationsRead,
		PermEvaluationsRead,
		PermContractsRead,
		PermReportsRead,
		PermNotificationsRead,
		PermAuditRead,
		PermSystemAdmin,
	},
}
