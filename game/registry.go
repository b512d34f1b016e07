package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Registry owns the room map and the connection->room index. Registry maps
// are guarded by their own lock; room state is guarded by each room's lock.
type Registry struct {
	locker   sync.RWMutex
	rooms    map[string]*Room
	connRoom map[string]string

	winScore int
	newWheel func() *WheelGen
}

func NewRegistry(winScore int) *Registry {
	return &Registry{
		rooms:    make(map[string]*Room),
		connRoom: make(map[string]string),
		winScore: winScore,
		newWheel: func() *WheelGen {
			return NewWheelGen(rand.New(rand.NewSource(time.Now().UnixNano())))
		},
	}
}

func (reg *Registry) CreateRoom() string {
	id := uuid.NewString()
	room := NewRoom(id, reg.winScore, reg.newWheel())

	reg.locker.Lock()
	reg.rooms[id] = room
	reg.locker.Unlock()

	log.Info().Str("room", id).Msg("room created")
	return id
}

func (reg *Registry) Get(roomID string) (*Room, bool) {
	reg.locker.RLock()
	defer reg.locker.RUnlock()
	room, ok := reg.rooms[roomID]
	return room, ok
}

func (reg *Registry) GetByConnection(connID string) (*Room, bool) {
	reg.locker.RLock()
	defer reg.locker.RUnlock()
	roomID, ok := reg.connRoom[connID]
	if !ok {
		return nil, false
	}
	room, ok := reg.rooms[roomID]
	return room, ok
}

func (reg *Registry) AttachConnection(connID, roomID string) {
	reg.locker.Lock()
	reg.connRoom[connID] = roomID
	reg.locker.Unlock()
}

// DetachConnection is idempotent: detaching an unknown connection is a no-op.
func (reg *Registry) DetachConnection(connID string) {
	reg.locker.Lock()
	delete(reg.connRoom, connID)
	reg.locker.Unlock()
}

// Remove drops the room and every connection entry still pointing at it.
func (reg *Registry) Remove(roomID string) {
	reg.locker.Lock()
	delete(reg.rooms, roomID)
	for connID, id := range reg.connRoom {
		if id == roomID {
			delete(reg.connRoom, connID)
		}
	}
	reg.locker.Unlock()

	log.Info().Str("room", roomID).Msg("room removed")
}
