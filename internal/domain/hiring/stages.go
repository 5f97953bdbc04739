package hiring

import (
	"strings"

	"talenthub/internal/domain/auth"
)

// Stage is the canonical application lifecycle state. The legacy
// two-word vocabulary still seen in old client payloads ("Applied",
// "Reviewed", "Rejected") is normalized by ParseStage and never
// persisted.
type Stage string

const (
	StageApplied             Stage = "APPLIED"
	StageEndorsed            Stage = "ENDORSED"
	StagePendingDeanApproval Stage = "PENDING_DEAN_APPROVAL"
	StageApprovedByDean      Stage = "APPROVED_BY_DEAN"
	StageRejectedByDean      Stage = "REJECTED_BY_DEAN"
	StageInterviewScheduled  Stage = "INTERVIEW_SCHEDULED"
	StageEvaluated           Stage = "EVALUATED"
	StageForHiring           Stage = "FOR_HIRING"
	StageHired               Stage = "HIRED"
	StageRejected            Stage = "REJECTED"
)

var AllStages = []Stage{
	StageApplied,
	StageEndorsed,
	StagePendingDeanApproval,
	StageApprovedByDean,
	StageRejectedByDean,
	StageInterviewScheduled,
	StageEvaluated,
	StageForHiring,
	StageHired,
	StageRejected,
}

var stageAliases = map[string]Stage{
	"applied":               StageApplied,
	"reviewed":              StageEndorsed,
	"endorsed":              StageEndorsed,
	"pending_dean_approval": StagePendingDeanApproval,
	"approved_by_dean":      StageApprovedByDean,
	"rejected_by_dean":      StageRejectedByDean,
	"interview_scheduled":   StageInterviewScheduled,
	"for_interview":         StageInterviewScheduled,
	"evaluated":             StageEvaluated,
	"for_hiring":            StageForHiring,
	"hired":                 StageHired,
	"rejected":              StageRejected,
}

func ParseStage(raw string) (Stage, bool) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")
	stage, ok := stageAliases[normalized]
	return stage, ok
}

func (s Stage) Terminal() bool {
	return s == StageHired || s == StageRejected || s == StageRejectedByDean
}

// StatusFor derives the descriptive status field shown to users.
// status is never an independent state space; it is rewritten from the
// stage on every transition.
func StatusFor(s Stage) string {
	switch s {
	case StageApplied:
		return "APPLIED"
	case StageEndorsed, StagePendingDeanApproval:
		return "PENDING_DEAN_APPROVAL"
	case StageApprovedByDean:
		return "FOR_INTERVIEW"
	case StageInterviewScheduled:
		return "FOR_EVALUATION"
	case StageEvaluated:
		return "EVALUATED"
	case StageForHiring:
		return "FOR_HIRING"
	case StageHired:
		return "HIRED"
	case StageRejectedByDean:
		return "REJECTED_BY_DEAN"
	case StageRejected:
		return "REJECTED"
	}
	return string(s)
}

// roleTransitions is the authoritative transition table: for each role,
// the set of target stages reachable from each current stage. Every
// authorization decision on a transition goes through this table.
var roleTransitions = map[string]map[Stage][]Stage{
	auth.RoleHR: {
		StageApplied:             {StageEndorsed, StageRejected},
		StageEndorsed:            {StageInterviewScheduled, StageRejected},
		StagePendingDeanApproval: {StageRejected},
		StageApprovedByDean:      {StageInterviewScheduled, StageRejected},
		StageInterviewScheduled:  {StageInterviewScheduled, StageEvaluated, StageRejected},
		StageEvaluated:           {StageForHiring, StageRejected},
		StageForHiring:           {StageHired, StageRejected},
	},
	auth.RoleDean: {
		StageEndorsed:            {StageApprovedByDean, StageRejectedByDean},
		StagePendingDeanApproval: {StageApprovedByDean, StageRejectedByDean},
	},
}

// AllowedTransition reports whether role may move an application from
// one stage to another.
func AllowedTransition(role string, from, to Stage) bool {
	targets, ok := roleTransitions[role][from]
	if !ok {
		return false
	}
	for _, target := range targets {
		if target == to {
			return true
		}
	}
	return false
}

// RoleMayTarget reports whether role can ever reach the target stage
// from some state. Used to distinguish a forbidden request (role never
// allowed) from an invalid one (wrong current stage).
func RoleMayTarget(role string, to Stage) bool {
	for _, targets := range roleTransitions[role] {
		for _, target := range targets {
			if target == to {
				return true
			}
		}
	}
	return false
}
