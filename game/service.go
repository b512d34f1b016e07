package game

import (
	"encoding/json"

	"github.com/rs/zerolog/log"
)

// Service routes inbound events: locate the room for the acting connection,
// run the room operation, broadcast on success, answer only the actor on
// failure.
type Service struct {
	registry   *Registry
	dispatcher *Dispatcher
}

func NewService(registry *Registry) *Service {
	return &Service{
		registry:   registry,
		dispatcher: NewDispatcher(),
	}
}

// Connect wraps a fresh transport session. The caller starts the pumps.
func (s *Service) Connect(session NetworkSession) *client {
	c := newClient(session, s)
	s.dispatcher.register(c)
	return c
}

// Disconnect runs the same leave logic as an explicit leave_room and releases
// the connection.
func (s *Service) Disconnect(c *client) {
	if _, ok := s.registry.GetByConnection(c.id); ok {
		if err := s.handleLeave(c); err != nil {
			log.Debug().Str("conn", c.id).Err(err).Msg("leave on disconnect")
		}
	}
	s.dispatcher.unregister(c.id)
	c.shutdown()
}

// Handle processes one decoded envelope. A panic inside a room operation is
// contained here so a corrupted room cannot take the rest of the registry
// down with it.
func (s *Service) Handle(c *client, env Envelope) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Str("conn", c.id).Any("panic", rec).Msg("room operation panicked")
			s.dispatcher.SendTo(c.id, EventError, ErrorData{Message: "internal-error"})
		}
	}()

	var err error
	switch env.Event {
	case EventJoinRoom:
		err = s.handleJoin(c, env.Data)
	case EventLeaveRoom:
		err = s.handleLeave(c)
	case EventChangeTeam:
		err = s.handleChangeTeam(c, env.Data)
	case EventStartGame:
		err = s.roomOp(c, func(r *Room) (Snapshot, error) { return r.Start(c.id) })
	case EventSpinWheel:
		err = s.roomOp(c, func(r *Room) (Snapshot, error) { return r.SpinWheel(c.id) })
	case EventSetAssociation:
		var data SetAssociationData
		if jsonErr := json.Unmarshal(env.Data, &data); jsonErr != nil {
			err = ErrBadPayload
			break
		}
		err = s.roomOp(c, func(r *Room) (Snapshot, error) { return r.SetAssociation(c.id, data.Association) })
	case EventMoveArrow:
		var data MoveArrowData
		if jsonErr := json.Unmarshal(env.Data, &data); jsonErr != nil {
			err = ErrBadPayload
			break
		}
		err = s.roomOp(c, func(r *Room) (Snapshot, error) { return r.MoveArrow(c.id, data.Position) })
	case EventConfirmArrow:
		err = s.roomOp(c, func(r *Room) (Snapshot, error) { return r.ConfirmArrow(c.id) })
	default:
		err = ErrUnknownEvent
	}

	if err != nil {
		s.dispatcher.SendTo(c.id, EventError, ErrorData{Message: err.Error()})
	}
}

func (s *Service) handleJoin(c *client, raw json.RawMessage) error {
	var data JoinRoomData
	if err := json.Unmarshal(raw, &data); err != nil {
		return ErrBadPayload
	}

	room, ok := s.registry.Get(data.RoomID)
	if !ok {
		return ErrRoomNotFound
	}

	info, snap, err := room.Join(c.id, data.PlayerName, data.UserID)
	if err != nil {
		return err
	}
	if info.ReplacedConn != "" && info.ReplacedConn != c.id {
		s.registry.DetachConnection(info.ReplacedConn)
	}
	s.registry.AttachConnection(c.id, data.RoomID)

	s.dispatcher.BroadcastSnapshot(snap)
	s.dispatcher.BroadcastOthers(snap, c.id, EventPlayerJoined, PlayerJoinedData{
		PlayerName: info.Player.Name,
		TeamID:     info.Player.TeamID,
	})
	return nil
}

func (s *Service) handleLeave(c *client) error {
	room, ok := s.registry.GetByConnection(c.id)
	if !ok {
		return ErrRoomNotFound
	}

	info, snap, err := room.Leave(c.id)
	if err != nil {
		return err
	}
	s.registry.DetachConnection(c.id)

	if info.Empty {
		s.registry.Remove(room.ID())
		return nil
	}

	s.dispatcher.BroadcastSnapshot(snap)
	s.dispatcher.BroadcastOthers(snap, c.id, EventPlayerLeft, PlayerLeftData{
		PlayerName: info.Player.Name,
		TeamID:     info.Player.TeamID,
	})
	return nil
}

func (s *Service) handleChangeTeam(c *client, raw json.RawMessage) error {
	var data ChangeTeamData
	if err := json.Unmarshal(raw, &data); err != nil {
		return ErrBadPayload
	}
	return s.roomOp(c, func(r *Room) (Snapshot, error) { return r.ChangeTeam(c.id, data.TeamID) })
}

func (s *Service) roomOp(c *client, op func(*Room) (Snapshot, error)) error {
	room, ok := s.registry.GetByConnection(c.id)
	if !ok {
		return ErrRoomNotFound
	}
	snap, err := op(room)
	if err != nil {
		return err
	}
	s.dispatcher.BroadcastSnapshot(snap)
	return nil
}
