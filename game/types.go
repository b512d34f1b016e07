package game

import "sync"

// Player is a member of a team. The external UserID is supplied by the client
// and survives reconnects; the connection id is rebound on every reconnect.
type Player struct {
	ID      string `json:"id"`
	UserID  string `json:"userId"`
	Name    string `json:"name"`
	TeamID  int    `json:"teamId"`
	IsOwner bool   `json:"isOwner"`

	connID string
}

// Team keeps its players in join order; the leader is positional and rotates
// modulo the player count.
type Team struct {
	ID                 int
	Name               string
	Score              int
	Players            []*Player
	CurrentLeaderIndex int
}

// clampLeaderAfterRemoval keeps CurrentLeaderIndex pointing at the same
// relative player after the element at removed has been cut out. If the leader
// itself left, the next player in order takes over, wrapping at the end.
func (t *Team) clampLeaderAfterRemoval(removed int) {
	if removed < t.CurrentLeaderIndex {
		t.CurrentLeaderIndex--
	}
	if t.CurrentLeaderIndex >= len(t.Players) || t.CurrentLeaderIndex < 0 {
		t.CurrentLeaderIndex = 0
	}
}

// WheelSector is one scored slice of the half-circle, [StartAngle, EndAngle)
// in degrees.
type WheelSector struct {
	Value      int     `json:"value"`
	Color      string  `json:"color"`
	StartAngle float64 `json:"startAngle"`
	EndAngle   float64 `json:"endAngle"`
}

// Room is one game session: two fixed teams, turn/round counters and the
// per-round transient state. All fields are guarded by locker; every exported
// operation takes the lock for its whole duration so ops on one room never
// interleave.
type Room struct {
	id string

	teams         [2]*Team
	currentTeamID int
	currentRound  int
	rotationTurns int
	started       bool
	finished      bool
	winnerTeamID  *int

	// per-round transients, cleared together at every round start
	wheelResult  *float64
	wheelSectors []WheelSector
	antonyms     *[2]string
	association  *string
	arrowPos     *float64

	winScore int
	wheel    *WheelGen

	locker sync.Mutex
}

// TeamSnapshot is the serialized form of a Team.
type TeamSnapshot struct {
	ID                 int      `json:"id"`
	Name               string   `json:"name"`
	Score              int      `json:"score"`
	Players            []Player `json:"players"`
	CurrentLeaderIndex int      `json:"currentLeaderIndex"`
}

// Snapshot is the full room state broadcast to clients after every accepted
// mutation. Per-round fields are pointers so an absent value serializes as
// absent instead of a zero.
type Snapshot struct {
	ID                       string         `json:"id"`
	Teams                    []TeamSnapshot `json:"teams"`
	CurrentTeamID            int            `json:"currentTeamId"`
	CurrentRound             int            `json:"currentRound"`
	TurnsSinceLeaderRotation int            `json:"turnsSinceLeaderRotation"`
	IsGameStarted            bool           `json:"isGameStarted"`
	IsGameFinished           bool           `json:"isGameFinished"`
	WheelResult              *float64       `json:"wheelResult,omitempty"`
	WheelSectors             []WheelSector  `json:"wheelSectors,omitempty"`
	CurrentAntonyms          *[2]string     `json:"currentAntonyms,omitempty"`
	CurrentAssociation       *string        `json:"currentAssociation,omitempty"`
	ArrowPosition            *float64       `json:"arrowPosition,omitempty"`
	WinnerTeamID             *int           `json:"winnerTeamId,omitempty"`
}

// JoinInfo reports what Join did with the connection.
type JoinInfo struct {
	Player       Player
	Reconnected  bool
	ReplacedConn string
}

// LeaveInfo reports who left and whether the room is now empty.
type LeaveInfo struct {
	Player Player
	Empty  bool
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
