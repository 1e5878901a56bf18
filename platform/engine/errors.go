package engine

import "errors"

// Rule violations are recoverable: the intent is rejected and no state
// changes. Invariant errors are fatal to the game and should never occur
// with a well-formed board.
var (
	ErrInvalidAction = errors.New("invalid action")
	ErrNotYourTurn   = errors.New("not your turn")
	ErrGameOver      = errors.New("game is over")
	ErrInvariant     = errors.New("invariant violation")
)
