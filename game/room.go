package game

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

func NewRoom(id string, winScore int, wheel *WheelGen) *Room {
	return &Room{
		id: id,
		teams: [2]*Team{
			{ID: 1, Name: "Team 1", Players: []*Player{}},
			{ID: 2, Name: "Team 2", Players: []*Player{}},
		},
		currentTeamID: 1,
		currentRound:  1,
		winScore:      winScore,
		wheel:         wheel,
	}
}

func (r *Room) ID() string {
	return r.id
}

// Join adds a new player to the smaller team, or rebinds the connection of a
// returning player. Reconnection is keyed by the client-supplied user id and
// works even mid-game; brand new players are rejected once the game has
// started.
func (r *Room) Join(connID, name, userID string) (JoinInfo, Snapshot, error) {
	r.locker.Lock()
	defer r.locker.Unlock()

	if p := r.findByUserID(userID); p != nil {
		info := JoinInfo{Reconnected: true, ReplacedConn: p.connID}
		p.connID = connID
		p.Name = name
		info.Player = *p
		log.Debug().Str("room", r.id).Str("player", p.Name).Msg("player reconnected")
		return info, r.snapshotLocked(), nil
	}

	if r.started {
		return JoinInfo{}, Snapshot{}, ErrGameInProgress
	}

	team := r.teams[0]
	if len(r.teams[1].Players) < len(r.teams[0].Players) {
		team = r.teams[1]
	}
	owner := len(r.teams[0].Players) == 0 && len(r.teams[1].Players) == 0

	p := &Player{
		ID:      uuid.NewString(),
		UserID:  userID,
		Name:    name,
		TeamID:  team.ID,
		IsOwner: owner,
		connID:  connID,
	}
	team.Players = append(team.Players, p)
	log.Debug().Str("room", r.id).Str("player", p.Name).Int("team", team.ID).Msg("player joined")
	return JoinInfo{Player: *p}, r.snapshotLocked(), nil
}

// Leave removes the player owning this connection, preserving the order of
// the remaining players and keeping the team's leader index valid.
func (r *Room) Leave(connID string) (LeaveInfo, Snapshot, error) {
	r.locker.Lock()
	defer r.locker.Unlock()

	team, idx, p := r.findByConn(connID)
	if p == nil {
		return LeaveInfo{}, Snapshot{}, ErrPlayerNotFound
	}
	team.Players = append(team.Players[:idx], team.Players[idx+1:]...)
	team.clampLeaderAfterRemoval(idx)
	log.Debug().Str("room", r.id).Str("player", p.Name).Msg("player left")

	empty := len(r.teams[0].Players) == 0 && len(r.teams[1].Players) == 0
	return LeaveInfo{Player: *p, Empty: empty}, r.snapshotLocked(), nil
}

// ChangeTeam moves a player to the end of the other team's order. Only
// allowed while the game has not started.
func (r *Room) ChangeTeam(connID string, targetTeamID int) (Snapshot, error) {
	r.locker.Lock()
	defer r.locker.Unlock()

	if r.started {
		return Snapshot{}, ErrGameAlreadyStarted
	}
	if targetTeamID != 1 && targetTeamID != 2 {
		return Snapshot{}, ErrUnknownTeam
	}
	team, idx, p := r.findByConn(connID)
	if p == nil {
		return Snapshot{}, ErrPlayerNotFound
	}
	if team.ID == targetTeamID {
		return Snapshot{}, ErrAlreadyOnTeam
	}

	team.Players = append(team.Players[:idx], team.Players[idx+1:]...)
	team.clampLeaderAfterRemoval(idx)

	target := r.teams[targetTeamID-1]
	p.TeamID = target.ID
	target.Players = append(target.Players, p)
	return r.snapshotLocked(), nil
}

// Start begins the game. Only the room owner may start, both teams need at
// least one player, and a finished game restarts from scratch with the same
// people: scores, rounds, leader rotation and the winner are all reset while
// team membership is kept.
func (r *Room) Start(connID string) (Snapshot, error) {
	r.locker.Lock()
	defer r.locker.Unlock()

	_, _, p := r.findByConn(connID)
	if p == nil {
		return Snapshot{}, ErrPlayerNotFound
	}
	if !p.IsOwner {
		return Snapshot{}, ErrNotOwner
	}
	if r.started && !r.finished {
		return Snapshot{}, ErrGameAlreadyStarted
	}
	if len(r.teams[0].Players) == 0 || len(r.teams[1].Players) == 0 {
		return Snapshot{}, ErrTeamEmpty
	}

	for _, t := range r.teams {
		t.Score = 0
		t.CurrentLeaderIndex = 0
	}
	r.currentTeamID = 1
	r.currentRound = 1
	r.rotationTurns = 0
	r.winnerTeamID = nil
	r.finished = false
	r.started = true
	r.clearRoundLocked()

	log.Info().Str("room", r.id).Msg("game started")
	return r.snapshotLocked(), nil
}

// SpinWheel generates the round's sector layout, a cosmetic spin angle and
// the antonym pair. Only the active team's leader may spin; spinning again
// within the round regenerates everything.
func (r *Room) SpinWheel(connID string) (Snapshot, error) {
	r.locker.Lock()
	defer r.locker.Unlock()

	p, err := r.requireInProgressPlayerLocked(connID)
	if err != nil {
		return Snapshot{}, err
	}
	if !r.isCurrentLeaderLocked(p) {
		return Snapshot{}, ErrNotLeader
	}

	angle := r.wheel.SpinAngle()
	pair := r.wheel.AntonymPair()
	r.wheelSectors = r.wheel.Sectors()
	r.wheelResult = &angle
	r.antonyms = &pair
	return r.snapshotLocked(), nil
}

// SetAssociation stores the leader's clue for the round.
func (r *Room) SetAssociation(connID, text string) (Snapshot, error) {
	r.locker.Lock()
	defer r.locker.Unlock()

	p, err := r.requireInProgressPlayerLocked(connID)
	if err != nil {
		return Snapshot{}, err
	}
	if !r.isCurrentLeaderLocked(p) {
		return Snapshot{}, ErrNotLeader
	}
	if strings.TrimSpace(text) == "" {
		return Snapshot{}, ErrEmptyAssociation
	}
	r.association = &text
	return r.snapshotLocked(), nil
}

// MoveArrow updates the arrow position. Called at drag frequency, so it is a
// plain last-write-wins store. Only active-team players who are not the
// leader may move the arrow.
func (r *Room) MoveArrow(connID string, pos float64) (Snapshot, error) {
	r.locker.Lock()
	defer r.locker.Unlock()

	if _, err := r.requireActiveGuesserLocked(connID); err != nil {
		return Snapshot{}, err
	}
	r.arrowPos = &pos
	return r.snapshotLocked(), nil
}

// ConfirmArrow scores the arrow against the round's sector layout, awards the
// points and either finishes the game or advances the turn.
func (r *Room) ConfirmArrow(connID string) (Snapshot, error) {
	r.locker.Lock()
	defer r.locker.Unlock()

	if _, err := r.requireActiveGuesserLocked(connID); err != nil {
		return Snapshot{}, err
	}
	if r.wheelSectors == nil {
		return Snapshot{}, ErrWheelNotSpun
	}
	if r.arrowPos == nil {
		return Snapshot{}, ErrNoArrowPosition
	}

	points := Score(*r.arrowPos, r.wheelSectors)
	team := r.currentTeamLocked()
	team.Score += points
	log.Debug().Str("room", r.id).Int("team", team.ID).Int("points", points).Msg("arrow confirmed")

	if team.Score >= r.winScore {
		r.finished = true
		winner := team.ID
		r.winnerTeamID = &winner
		log.Info().Str("room", r.id).Int("winner", winner).Msg("game finished")
		return r.snapshotLocked(), nil
	}

	r.advanceTurnLocked()
	return r.snapshotLocked(), nil
}

// Snapshot returns a consistent copy of the room state.
func (r *Room) Snapshot() Snapshot {
	r.locker.Lock()
	defer r.locker.Unlock()
	return r.snapshotLocked()
}

// advanceTurnLocked flips the active team and starts the next round. Leaders
// rotate only once both teams have completed a turn since the last rotation.
func (r *Room) advanceTurnLocked() {
	r.rotationTurns++
	if r.currentTeamID == 1 {
		r.currentTeamID = 2
	} else {
		r.currentTeamID = 1
	}
	if r.rotationTurns >= 2 {
		for _, t := range r.teams {
			if len(t.Players) > 0 {
				t.CurrentLeaderIndex = (t.CurrentLeaderIndex + 1) % len(t.Players)
			}
		}
		r.rotationTurns = 0
	}
	r.clearRoundLocked()
	r.currentRound++
}

func (r *Room) clearRoundLocked() {
	r.wheelResult = nil
	r.wheelSectors = nil
	r.antonyms = nil
	r.association = nil
	r.arrowPos = nil
}

func (r *Room) currentTeamLocked() *Team {
	return r.teams[r.currentTeamID-1]
}

func (r *Room) isCurrentLeaderLocked(p *Player) bool {
	team := r.currentTeamLocked()
	if len(team.Players) == 0 {
		return false
	}
	return team.Players[team.CurrentLeaderIndex] == p
}

func (r *Room) requireInProgressPlayerLocked(connID string) (*Player, error) {
	if !r.started {
		return nil, ErrGameNotStarted
	}
	if r.finished {
		return nil, ErrGameFinished
	}
	_, _, p := r.findByConn(connID)
	if p == nil {
		return nil, ErrPlayerNotFound
	}
	return p, nil
}

func (r *Room) requireActiveGuesserLocked(connID string) (*Player, error) {
	p, err := r.requireInProgressPlayerLocked(connID)
	if err != nil {
		return nil, err
	}
	if p.TeamID != r.currentTeamID {
		return nil, ErrNotOnActiveTeam
	}
	if r.isCurrentLeaderLocked(p) {
		return nil, ErrLeaderCannotGuess
	}
	return p, nil
}

func (r *Room) findByConn(connID string) (*Team, int, *Player) {
	for _, t := range r.teams {
		for i, p := range t.Players {
			if p.connID == connID {
				return t, i, p
			}
		}
	}
	return nil, -1, nil
}

func (r *Room) findByUserID(userID string) *Player {
	for _, t := range r.teams {
		for _, p := range t.Players {
			if p.UserID == userID {
				return p
			}
		}
	}
	return nil
}

func (r *Room) snapshotLocked() Snapshot {
	snap := Snapshot{
		ID:                       r.id,
		Teams:                    make([]TeamSnapshot, 0, len(r.teams)),
		CurrentTeamID:            r.currentTeamID,
		CurrentRound:             r.currentRound,
		TurnsSinceLeaderRotation: r.rotationTurns,
		IsGameStarted:            r.started,
		IsGameFinished:           r.finished,
		WheelResult:              clonePtr(r.wheelResult),
		CurrentAntonyms:          clonePtr(r.antonyms),
		CurrentAssociation:       clonePtr(r.association),
		ArrowPosition:            clonePtr(r.arrowPos),
		WinnerTeamID:             clonePtr(r.winnerTeamID),
	}
	if r.wheelSectors != nil {
		snap.WheelSectors = append([]WheelSector(nil), r.wheelSectors...)
	}
	for _, t := range r.teams {
		ts := TeamSnapshot{
			ID:                 t.ID,
			Name:               t.Name,
			Score:              t.Score,
			Players:            make([]Player, 0, len(t.Players)),
			CurrentLeaderIndex: t.CurrentLeaderIndex,
		}
		for _, p := range t.Players {
			ts.Players = append(ts.Players, *p)
		}
		snap.Teams = append(snap.Teams, ts)
	}
	return snap
}
