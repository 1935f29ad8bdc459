package contract

import (
	"errors"
	"time"

	"github.com/alexanderramin/roster/internal/domain"
)

// GenerateRequest asks for a new plan built from the current session state.
type GenerateRequest struct {
	// Strategy overrides the session's selected strategy when non-empty.
	Strategy domain.Strategy
	Now      *time.Time
}

func NewGenerateRequest(strategy domain.Strategy) GenerateRequest {
	return GenerateRequest{Strategy: strategy}
}

// GenerateResponse carries the freshly stored plan and its tally.
type GenerateResponse struct {
	Plan            *domain.Plan
	Tally           *domain.Tally
	OccurrenceCount int
	Warnings        []string
}

type PlanErrorCode string

const (
	ErrNoBoards                 PlanErrorCode = "NO_BOARDS"
	ErrNoParticipants           PlanErrorCode = "NO_PARTICIPANTS"
	ErrNoOccurrences            PlanErrorCode = "NO_OCCURRENCES"
	ErrSizeMismatch             PlanErrorCode = "SIZE_MISMATCH"
	ErrTooFewOccurrences        PlanErrorCode = "TOO_FEW_OCCURRENCES"
	ErrInsufficientParticipants PlanErrorCode = "INSUFFICIENT_PARTICIPANTS"
	ErrNoPlan                   PlanErrorCode = "NO_PLAN"
)

// PlanError is a validation failure. No plan is produced and any previously
// stored plan is left untouched.
type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// NewPlanError builds a PlanError.
func NewPlanError(code PlanErrorCode, msg string) *PlanError {
	return &PlanError{Code: code, Message: msg}
}

// IsPlanError reports whether err is a PlanError, optionally with one of codes.
func IsPlanError(err error, codes ...PlanErrorCode) bool {
	var pe *PlanError
	if !errors.As(err, &pe) {
		return false
	}
	if len(codes) == 0 {
		return true
	}
	for _, c := range codes {
		if pe.Code == c {
			return true
		}
	}
	return false
}
