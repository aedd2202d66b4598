package v1

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/bolaohub/bolao-api/internal/api/handler/v1/response"
	"github.com/bolaohub/bolao-api/internal/domain"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Adjust this for production!
	},
}

type liveClient struct {
	conn      *websocket.Conn
	send      chan []byte
	contestID uint
}

// LiveHandler pushes draw events to clients watching a contest, so rankings
// refresh without polling.
type LiveHandler struct {
	uSvc UserService

	clients      map[*liveClient]bool
	clientsMutex sync.RWMutex
	broadcast    chan liveEvent
	register     chan *liveClient
	unregister   chan *liveClient
}

type liveEvent struct {
	contestID uint
	payload   []byte
}

func NewLiveHandler(uSvc UserService) *LiveHandler {
	return &LiveHandler{
		uSvc:       uSvc,
		clients:    make(map[*liveClient]bool),
		broadcast:  make(chan liveEvent),
		register:   make(chan *liveClient),
		unregister: make(chan *liveClient),
	}
}

func (h *LiveHandler) Run() {
	for {
		select {
		case client := <-h.register:
			h.clientsMutex.Lock()
			h.clients[client] = true
			h.clientsMutex.Unlock()
		case client := <-h.unregister:
			h.clientsMutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.clientsMutex.Unlock()
		case event := <-h.broadcast:
			h.clientsMutex.Lock()
			for client := range h.clients {
				if client.contestID != event.contestID {
					continue
				}
				select {
				case client.send <- event.payload:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.clientsMutex.Unlock()
		}
	}
}

// NotifyDraw queues a published draw for every watcher of its contest.
func (h *LiveHandler) NotifyDraw(draw domain.Draw) {
	payload, err := json.Marshal(map[string]interface{}{
		"type": "draw_published",
		"draw": draw,
	})
	if err != nil {
		zap.L().Warn("failed to encode draw event", zap.Error(err))
		return
	}

	h.broadcast <- liveEvent{contestID: draw.ContestID, payload: payload}
}

// HandleLive godoc
// @Summary      Subscribe to live contest events
// @Description  Upgrades to a WebSocket pushing draw_published events.
// @Tags         contests
// @Produce      json
// @Param        contestID path int true "contest ID"
// @Success      101 {string} string "Switching Protocols to WebSocket"
// @Failure      400 {object} response.Err
// @Failure      401 {object} response.Err
// @Router       /contests/{contestID}/live [get]
// @Security     BearerAuth
func (h *LiveHandler) HandleLive(c *gin.Context) {
	contestID, ok := parseIDParam(c, "contestID")
	if !ok {
		return
	}

	if _, respErr := getUserFromContext(c, h.uSvc); respErr != nil {
		response.RenderErr(c, respErr)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &liveClient{
		conn:      conn,
		send:      make(chan []byte, 256),
		contestID: contestID,
	}
	h.register <- client

	go client.writePump()
	go client.readPump(h)
}

func (c *liveClient) writePump() {
	defer func() {
		c.conn.Close()
	}()
	for {
		message, ok := <-c.send
		if !ok {
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		w, err := c.conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		w.Write(message)
		if err := w.Close(); err != nil {
			return
		}
	}
}

// readPump drains incoming frames to detect disconnects. Clients are
// listeners only; anything they send is dropped.
func (c *liveClient) readPump(h *LiveHandler) {
	defer func() {
		h.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(5 * time.Minute))
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				zap.L().Debug("websocket closed unexpectedly", zap.Error(err))
			}
			break
		}
		c.conn.SetReadDeadline(time.Now().Add(5 * time.Minute))
	}
}
