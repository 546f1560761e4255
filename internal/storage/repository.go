package storage

import "context"

// Repository persists the activity-type catalog and the completion log.
// Both data sets are small and session-scoped, so the contract is wholesale:
// Load reads everything, Replace overwrites everything in one transaction.
// The two sets are independent; replacing one never touches the other.
type Repository interface {
	LoadActivityTypes(ctx context.Context) ([]ActivityType, error)
	ReplaceActivityTypes(ctx context.Context, in []ActivityType) error

	LoadCompletions(ctx context.Context) ([]Completion, error)
	ReplaceCompletions(ctx context.Context, in []Completion) error

	Close() error
}
