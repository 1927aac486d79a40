package core

import "errors"

// Sentinel errors shared by the simulation core. Callers match them with
// errors.Is; construction and stepping code wraps them with context.
var (
	// ErrInvalidDimensions reports a zero-sized grid at construction time.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")

	// ErrInvalidStateCount reports a cell-state count below two.
	ErrInvalidStateCount = errors.New("state count must be at least 2")

	// ErrInvalidState reports a cell write outside the configured state range.
	ErrInvalidState = errors.New("cell state out of range")

	// ErrIncompleteRuleTable reports a rule table that does not cover every
	// (cell state, agent state) pair. Raised at construction, never at runtime.
	ErrIncompleteRuleTable = errors.New("incomplete rule table")

	// ErrCorruptState reports an agent found outside grid bounds. This is an
	// invariant violation, not a recoverable condition: the engine halts.
	ErrCorruptState = errors.New("corrupt simulation state")

	// ErrRenderTargetUnavailable reports a dead or rejected drawing surface.
	// Simulation state is unaffected; the host may retry with a fresh surface.
	ErrRenderTargetUnavailable = errors.New("render target unavailable")
)
