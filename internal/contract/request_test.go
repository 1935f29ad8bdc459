package contract

import (
	"fmt"
	"testing"

	"github.com/alexanderramin/roster/internal/domain"
	"github.com/stretchr/testify/assert"
)

// --- GenerateRequest constructor defaults ---

func TestNewGenerateRequest_SetsStrategy(t *testing.T) {
	req := NewGenerateRequest(domain.StrategyBalanced)

	assert.Equal(t, domain.StrategyBalanced, req.Strategy)
	assert.Nil(t, req.Now)
}

func TestNewGenerateRequest_EmptyStrategyPreserved(t *testing.T) {
	// Empty means "use the session strategy"; the service resolves it.
	req := NewGenerateRequest("")
	assert.Equal(t, domain.Strategy(""), req.Strategy)
}

// --- PlanError ---

func TestPlanError_Message(t *testing.T) {
	err := NewPlanError(ErrSizeMismatch, "3 participants for 4 boards")
	assert.Equal(t, "SIZE_MISMATCH: 3 participants for 4 boards", err.Error())
}

func TestIsPlanError_Wrapped(t *testing.T) {
	err := fmt.Errorf("generating plan: %w", NewPlanError(ErrNoBoards, "no boards"))

	assert.True(t, IsPlanError(err))
	assert.True(t, IsPlanError(err, ErrNoBoards))
	assert.True(t, IsPlanError(err, ErrNoParticipants, ErrNoBoards))
	assert.False(t, IsPlanError(err, ErrNoParticipants))
	assert.False(t, IsPlanError(fmt.Errorf("plain")))
}
