package websocket

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// Client represents a connected WebSocket client following one report
type Client struct {
	conn     *websocket.Conn
	reportID uuid.UUID
	send     chan []byte
}

// Message represents a WebSocket message
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Progress is the payload streamed while an analysis runs
type Progress struct {
	ReportID string `json:"reportId"`
	Stage    string `json:"stage"`
	Percent  int    `json:"percent"`
}

// Hub maintains the set of active clients and broadcasts messages
type Hub struct {
	// Registered clients by report ID
	clients map[uuid.UUID]map[*Client]bool

	register   chan *Client
	unregister chan *Client

	// Guard clients map
	mu sync.RWMutex
}

// NewHub creates a new websocket hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub's message handling loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if _, ok := h.clients[client.reportID]; !ok {
				h.clients[client.reportID] = make(map[*Client]bool)
			}
			h.clients[client.reportID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.reportID]; ok {
				delete(h.clients[client.reportID], client)
				close(client.send)

				if len(h.clients[client.reportID]) == 0 {
					delete(h.clients, client.reportID)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Register registers a new client connection
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister removes a client connection
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// BroadcastProgress streams a pipeline stage update to a report's followers
func (h *Hub) BroadcastProgress(reportID uuid.UUID, stage string, percent int) {
	h.BroadcastToReport(reportID, Message{
		Type: "progress",
		Data: Progress{ReportID: reportID.String(), Stage: stage, Percent: percent},
	})
}

// BroadcastToReport sends a message to all clients following a report
func (h *Hub) BroadcastToReport(reportID uuid.UUID, message Message) {
	messageJSON, err := json.Marshal(message)
	if err != nil {
		log.Printf("Error marshalling WebSocket message: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, ok := h.clients[reportID]
	if !ok {
		return
	}

	for client := range clients {
		select {
		case client.send <- messageJSON:
		default:
			// Client's send buffer is full, unregister
			go h.Unregister(client)
		}
	}
}

// HandleConnection handles an incoming WebSocket connection
func (h *Hub) HandleConnection(conn *websocket.Conn, reportID uuid.UUID) {
	client := &Client{
		conn:     conn,
		reportID: reportID,
		send:     make(chan []byte, 256),
	}

	h.Register(client)

	initialMsg := Message{
		Type: "connected",
		Data: map[string]interface{}{
			"report_id": reportID.String(),
			"status":    "connected",
		},
	}
	msgJSON, _ := json.Marshal(initialMsg)
	client.send <- msgJSON

	go client.writePump()
	go client.readPump(h)
}

// writePump pumps messages from the hub to the websocket connection
func (c *Client) writePump() {
	defer func() {
		c.conn.Close()
	}()

	for {
		message, ok := <-c.send
		if !ok {
			// Hub closed the channel
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		err := c.conn.WriteMessage(websocket.TextMessage, message)
		if err != nil {
			return
		}
	}
}

// readPump pumps messages from the websocket connection to the hub
func (c *Client) readPump(h *Hub) {
	defer func() {
		h.Unregister(c)
		c.conn.Close()
	}()

	for {
		_, _, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
		// Incoming messages are ignored; the stream is server to client only
	}
}
