// internal/api/handlers/websocket.go
package handlers

import (
	"encoding/json"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	ws "github.com/protouch/protouch/internal/api/websocket"
	"github.com/protouch/protouch/internal/models"
	"github.com/protouch/protouch/internal/repository"
)

// WebSocketHandler handles WebSocket connections for analysis progress
type WebSocketHandler struct {
	Hub        *ws.Hub
	ReportRepo repository.ReportRepository
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(hub *ws.Hub, reportRepo repository.ReportRepository) *WebSocketHandler {
	return &WebSocketHandler{
		Hub:        hub,
		ReportRepo: reportRepo,
	}
}

// HandleReportWebSocket subscribes a connection to one report's progress
// stream
func (h *WebSocketHandler) HandleReportWebSocket(c *websocket.Conn) {
	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		writeCloseError(c, "Invalid report ID format")
		return
	}

	var rep models.Report
	if err := h.ReportRepo.FindByID(reportID, &rep); err != nil {
		writeCloseError(c, "Report not found")
		return
	}

	h.Hub.HandleConnection(c, reportID)
}

// writeCloseError sends a single error message and closes the connection
func writeCloseError(c *websocket.Conn, message string) {
	errMsg := ws.Message{
		Type: "error",
		Data: map[string]interface{}{"message": message},
	}
	msgJSON, _ := json.Marshal(errMsg)
	c.WriteMessage(websocket.TextMessage, msgJSON)
	c.Close()
}
