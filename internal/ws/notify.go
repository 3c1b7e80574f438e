package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const EventRecommendationsUpdated = "recommendations_updated"

type RecommendationsUpdatedEvent struct {
	Type      string    `json:"type"`
	UserID    uuid.UUID `json:"user_id"`
	Count     int       `json:"count"`
	TopCareer string    `json:"top_career,omitempty"`
	Timestamp string    `json:"timestamp"`
}

// Notifier publishes domain events to connected users.
type Notifier struct {
	hub *Hub
	now func() time.Time
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub, now: time.Now}
}

func (n *Notifier) RecommendationsUpdated(userID uuid.UUID, count int, topCareer string) {
	if n == nil || n.hub == nil {
		return
	}

	evt := RecommendationsUpdatedEvent{
		Type:      EventRecommendationsUpdated,
		UserID:    userID,
		Count:     count,
		TopCareer: topCareer,
		Timestamp: n.now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.SendToUser(userID, b)
}
