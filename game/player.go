package game

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	outboxSize   = 256
	pingInterval = 30 * time.Second
)

// client is one websocket participant. Outbound traffic goes through a
// buffered outbox drained by WritePump; inbound frames are decoded and
// dispatched by ReadPump. The id doubles as the connection id the registry
// and rooms key on.
type client struct {
	id      string
	session NetworkSession
	service *Service

	outbox      chan []byte
	rateLimiter *rate.Limiter

	closeOnce sync.Once
	done      chan struct{}
}

func newClient(session NetworkSession, service *Service) *client {
	return &client{
		id:          uuid.NewString(),
		session:     session,
		service:     service,
		outbox:      make(chan []byte, outboxSize),
		rateLimiter: rate.NewLimiter(10, 20),
		done:        make(chan struct{}),
	}
}

// Send queues a frame without ever blocking the caller. A consumer that
// cannot keep up loses frames instead of stalling the room.
func (c *client) Send(data []byte) {
	select {
	case c.outbox <- data:
	default:
		log.Debug().Str("conn", c.id).Msg("outbox full, dropping frame")
	}
}

func (c *client) ReadPump() {
	defer c.service.Disconnect(c)

	for {
		data, err := c.session.Read()
		if err != nil {
			return
		}

		var env Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			log.Debug().Str("conn", c.id).Err(err).Msg("bad frame")
			continue
		}

		// move_arrow is live-drag traffic and exempt from the limiter
		if env.Event != EventMoveArrow && !c.rateLimiter.Allow() {
			continue
		}

		c.service.Handle(c, env)
	}
}

func (c *client) WritePump() {
	pingTicker := time.NewTicker(pingInterval)
	defer pingTicker.Stop()

	for {
		select {
		case data := <-c.outbox:
			if err := c.session.Write(data); err != nil {
				return
			}
		case <-pingTicker.C:
			if err := c.session.Ping(); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}

func (c *client) shutdown() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.session.Close("")
	})
}
