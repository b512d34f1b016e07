package game

import "errors"

// Not found
var (
	ErrRoomNotFound   = errors.New("room-not-found")
	ErrPlayerNotFound = errors.New("player-not-found")
)

// Role violations
var (
	ErrNotOwner          = errors.New("not-room-owner")
	ErrNotLeader         = errors.New("not-current-leader")
	ErrLeaderCannotGuess = errors.New("leader-cannot-move-arrow")
	ErrNotOnActiveTeam   = errors.New("not-on-active-team")
)

// Phase violations
var (
	ErrGameAlreadyStarted = errors.New("game-already-started")
	ErrGameNotStarted     = errors.New("game-not-started")
	ErrGameFinished       = errors.New("game-finished")
	ErrGameInProgress     = errors.New("game-in-progress")
)

// Unmet preconditions
var (
	ErrTeamEmpty        = errors.New("team-has-no-players")
	ErrUnknownTeam      = errors.New("unknown-team")
	ErrAlreadyOnTeam    = errors.New("already-on-team")
	ErrNoArrowPosition  = errors.New("arrow-not-placed")
	ErrWheelNotSpun     = errors.New("wheel-not-spun")
	ErrEmptyAssociation = errors.New("empty-association")
)

// Transport
var (
	ErrBadPayload   = errors.New("invalid-payload")
	ErrUnknownEvent = errors.New("unknown-event")
)
