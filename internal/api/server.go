package api

import (
	"encoding/json"

	"droply/internal/config"
	"droply/internal/database"
	"droply/internal/imagekit"
	"droply/internal/websocket"
)

type Server struct {
	config *config.Config
	store  *database.Store
	media  *imagekit.Client
	wsHub  *websocket.Hub
}

func NewServer(cfg *config.Config, store *database.Store, media *imagekit.Client, wsHub *websocket.Hub) *Server {
	return &Server{
		config: cfg,
		store:  store,
		media:  media,
		wsHub:  wsHub,
	}
}

// publishEvent pushes a journal-style event to the user's live connections.
// Callers invoke it only after the owning transaction has committed.
func (s *Server) publishEvent(userID string, eventType string, payload interface{}) {
	eventMsg := map[string]interface{}{"event_type": eventType, "payload": payload}
	eventBytes, err := json.Marshal(eventMsg)
	if err != nil {
		return
	}
	s.wsHub.PublishEvent(userID, eventBytes)
}
