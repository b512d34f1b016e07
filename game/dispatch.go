package game

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Dispatcher addresses connected clients by connection id and applies the
// broadcast policy: snapshots go to the whole room, notices to everyone but
// the actor, errors only to the actor. Delivery is fire-and-forget.
type Dispatcher struct {
	locker  sync.RWMutex
	clients map[string]*client
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{clients: make(map[string]*client)}
}

func (d *Dispatcher) register(c *client) {
	d.locker.Lock()
	d.clients[c.id] = c
	d.locker.Unlock()
}

func (d *Dispatcher) unregister(connID string) {
	d.locker.Lock()
	delete(d.clients, connID)
	d.locker.Unlock()
}

func (d *Dispatcher) SendTo(connID, event string, data any) {
	d.locker.RLock()
	c, ok := d.clients[connID]
	d.locker.RUnlock()
	if !ok {
		return
	}

	frame, err := encodeEvent(event, data)
	if err != nil {
		log.Error().Str("event", event).Err(err).Msg("encode failed")
		return
	}
	c.Send(frame)
}

// BroadcastSnapshot sends a game_update with the full room state to every
// player in the snapshot.
func (d *Dispatcher) BroadcastSnapshot(snap Snapshot) {
	frame, err := encodeEvent(EventGameUpdate, snap)
	if err != nil {
		log.Error().Str("room", snap.ID).Err(err).Msg("encode failed")
		return
	}
	for _, c := range d.roomClients(snap, "") {
		c.Send(frame)
	}
}

// BroadcastOthers sends an event to every player in the snapshot except the
// given connection.
func (d *Dispatcher) BroadcastOthers(snap Snapshot, exceptConn, event string, data any) {
	frame, err := encodeEvent(event, data)
	if err != nil {
		log.Error().Str("event", event).Err(err).Msg("encode failed")
		return
	}
	for _, c := range d.roomClients(snap, exceptConn) {
		c.Send(frame)
	}
}

// roomClients collects the live clients for a snapshot's players under the
// read lock, so sending happens without holding it.
func (d *Dispatcher) roomClients(snap Snapshot, exceptConn string) []*client {
	d.locker.RLock()
	defer d.locker.RUnlock()

	var res []*client
	for _, team := range snap.Teams {
		for _, p := range team.Players {
			if p.connID == exceptConn {
				continue
			}
			if c, ok := d.clients[p.connID]; ok {
				res = append(res, c)
			}
		}
	}
	return res
}
