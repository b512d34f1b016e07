package game

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Origin filtering happens in the CORS middleware, not here.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type GameHandler struct {
	registry *Registry
	service  *Service
}

func NewGameHandler(registry *Registry, service *Service) *GameHandler {
	return &GameHandler{registry: registry, service: service}
}

func (h *GameHandler) RegisterRoutes(r *gin.Engine) {
	group := r.Group("/game")
	group.POST("/create", h.CreateGameHandler)
	group.GET("/ws", h.ConnectHandler)
	group.GET("/:id", h.GetGameHandler)
}

func (h *GameHandler) CreateGameHandler(ctx *gin.Context) {
	id := h.registry.CreateRoom()
	ctx.JSON(http.StatusOK, gin.H{"gameId": id})
}

func (h *GameHandler) GetGameHandler(ctx *gin.Context) {
	room, ok := h.registry.Get(ctx.Param("id"))
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": ErrRoomNotFound.Error()})
		return
	}
	ctx.JSON(http.StatusOK, room.Snapshot())
}

// ConnectHandler upgrades to a websocket; the client joins a room afterwards
// with a join_room event on the socket.
func (h *GameHandler) ConnectHandler(ctx *gin.Context) {
	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Error().Err(err).Str("ip", ctx.ClientIP()).Msg("websocket upgrade failed")
		return
	}

	session := NewWebsocketConnection(conn)
	c := h.service.Connect(&session)
	go c.ReadPump()
	go c.WritePump()
}
