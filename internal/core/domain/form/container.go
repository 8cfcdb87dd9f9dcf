package form

import "context"

// Container holds the live form state shared by all callers.
type Container interface {
	Get(ctx context.Context) State
	// Update runs fn with the current state and stores the result.
	// When fn fails the state is left unchanged.
	// Calls are serialized.
	Update(ctx context.Context, fn func(State) (State, error)) (State, error)
}
