package domain

import "errors"

// User input errors. They are reported back to the user and never change
// session state.
var (
	ErrEmptyName          = errors.New("name must not be empty")
	ErrDuplicateName      = errors.New("name already exists")
	ErrNotFound           = errors.New("entry not found")
	ErrInvalidRepeatCount = errors.New("repeat count must be at least 1")
	ErrUnknownStrategy    = errors.New("unknown strategy")
	ErrUnknownRegistry    = errors.New("unknown registry")
)

// MutationResult describes the outcome of a registry mutation. A rejected
// mutation is a reported no-op: Applied is false and Reason says why.
type MutationResult struct {
	Kind    RegistryKind
	Name    string
	NewName string
	Applied bool
	Reason  error
}

// Applied builds a successful MutationResult.
func Applied(kind RegistryKind, name, newName string) MutationResult {
	return MutationResult{Kind: kind, Name: name, NewName: newName, Applied: true}
}

// Rejected builds a no-op MutationResult carrying the reason.
func Rejected(kind RegistryKind, name string, reason error) MutationResult {
	return MutationResult{Kind: kind, Name: name, Reason: reason}
}
