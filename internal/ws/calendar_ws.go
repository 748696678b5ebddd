package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"study_hub/internal/models"
)

const EventStudyEventsCreated = "study_events_created"

// WSMessage — сообщение, отправляемое открытому календарю пользователя.
type WSMessage struct {
	EventType string      `json:"event_type"`
	UserID    string      `json:"user_id"`
	Data      interface{} `json:"data"`
}

// BroadcastMessage представляет сообщение для рассылки конкретному пользователю.
type BroadcastMessage struct {
	UserID  string
	Message []byte
}

// Hub хранит подключения клиентов, сгруппированные по userID.
type Hub struct {
	clients    map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan BroadcastMessage
	done       chan struct{}
	mu         sync.RWMutex
	log        zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan BroadcastMessage, 64),
		done:       make(chan struct{}),
		log:        log.With().Str("component", "ws_hub").Logger(),
	}
}

// Run запускает цикл обработки каналов хаба до вызова Stop.
func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			return
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.UserID] == nil {
				h.clients[client.UserID] = make(map[*Client]bool)
			}
			h.clients[client.UserID][client] = true
			h.mu.Unlock()
		case client := <-h.unregister:
			h.mu.Lock()
			h.removeLocked(client)
			h.mu.Unlock()
		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients[message.UserID] {
				select {
				case client.Send <- message.Message:
				default:
					// клиент не успевает читать
					h.removeLocked(client)
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) Stop() { close(h.done) }

func (h *Hub) removeLocked(client *Client) {
	clients, ok := h.clients[client.UserID]
	if !ok {
		return
	}
	if _, ok := clients[client]; ok {
		delete(clients, client)
		close(client.Send)
		if len(clients) == 0 {
			delete(h.clients, client.UserID)
		}
	}
}

// Connected возвращает число открытых соединений пользователя.
func (h *Hub) Connected(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

func (h *Hub) BroadcastWSMessage(msg WSMessage) {
	body, err := json.Marshal(msg)
	if err != nil {
		h.log.Error().Err(err).Msg("ошибка сериализации ws-сообщения")
		return
	}
	select {
	case h.broadcast <- BroadcastMessage{UserID: msg.UserID, Message: body}:
	case <-h.done:
	default:
		h.log.Warn().Str("user_id", msg.UserID).Msg("очередь рассылки переполнена, сообщение отброшено")
	}
}

// StudyEventsCreated уведомляет календарь пользователя о новых занятиях.
func (h *Hub) StudyEventsCreated(userID uuid.UUID, events []models.Event) {
	ids := make([]string, 0, len(events))
	for _, ev := range events {
		ids = append(ids, ev.ID.String())
	}
	h.BroadcastWSMessage(WSMessage{
		EventType: EventStudyEventsCreated,
		UserID:    userID.String(),
		Data: map[string]interface{}{
			"count":     len(events),
			"event_ids": ids,
		},
	})
}

// Client представляет одно подключение через WebSocket.
type Client struct {
	Hub    *Hub
	Conn   *websocket.Conn
	Send   chan []byte
	UserID string
}

// readPump только отслеживает разрыв соединения, входящие сообщения игнорируются.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.Hub.unregister <- c:
		case <-c.Hub.done:
		}
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(512)
	c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			break
		}
	}
}

// writePump отправляет сообщения клиенту из канала Send.
func (c *Client) writePump() {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// CalendarWebSocketHandler обновляет соединение до WebSocket и регистрирует клиента в Hub.
// userID берётся из контекста, его кладёт auth.AuthMiddleware.
// URL: /api/events/ws
func CalendarWebSocketHandler(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			hub.log.Warn().Err(err).Msg("ошибка обновления до WebSocket")
			return
		}
		client := &Client{
			Hub:    hub,
			Conn:   conn,
			Send:   make(chan []byte, 256),
			UserID: userID,
		}
		select {
		case hub.register <- client:
		case <-hub.done:
			conn.Close()
			return
		}

		go client.writePump()
		client.readPump()
	}
}
