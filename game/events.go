package game

import "encoding/json"

// Inbound events
const (
	EventJoinRoom       = "join_room"
	EventLeaveRoom      = "leave_room"
	EventChangeTeam     = "change_team"
	EventStartGame      = "start_game"
	EventSpinWheel      = "spin_wheel"
	EventSetAssociation = "set_association"
	EventMoveArrow      = "move_arrow"
	EventConfirmArrow   = "confirm_arrow"
)

// Outbound events
const (
	EventGameUpdate   = "game_update"
	EventError        = "error"
	EventPlayerJoined = "player_joined"
	EventPlayerLeft   = "player_left"
)

// Envelope is the wire frame for every websocket message in both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type JoinRoomData struct {
	RoomID     string `json:"roomId"`
	PlayerName string `json:"playerName"`
	UserID     string `json:"userId"`
}

type ChangeTeamData struct {
	TeamID int `json:"teamId"`
}

type SetAssociationData struct {
	Association string `json:"association"`
}

type MoveArrowData struct {
	Position float64 `json:"position"`
}

type ErrorData struct {
	Message string `json:"message"`
}

type PlayerJoinedData struct {
	PlayerName string `json:"playerName"`
	TeamID     int    `json:"teamId"`
}

type PlayerLeftData struct {
	PlayerName string `json:"playerName"`
	TeamID     int    `json:"teamId"`
}

func encodeEvent(event string, data any) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Event: event, Data: raw})
}
