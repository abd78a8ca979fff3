package ws

import (
	"encoding/json"
	"time"

	"career-compass/internal/domain/intention"

	"github.com/google/uuid"
)

const (
	EventIntentionRegistered = "intention_registered"
	EventIntentionDecided    = "intention_decided"
)

type IntentionEvent struct {
	Type        string    `json:"type"`
	IntentionID uuid.UUID `json:"intention_id"`
	UserID      uuid.UUID `json:"user_id"`
	CourseID    uuid.UUID `json:"course_id"`
	CourseTitle string    `json:"course_title"`
	State       string    `json:"state"`
	Timestamp   string    `json:"timestamp"`
}

// Publisher broadcasts intention workflow events to the reviewer feed.
type Publisher struct {
	hub *Hub
}

func NewPublisher(hub *Hub) *Publisher {
	return &Publisher{hub: hub}
}

func (p *Publisher) IntentionRegistered(i intention.Intention, courseTitle string) {
	p.publish(EventIntentionRegistered, i, courseTitle)
}

func (p *Publisher) IntentionDecided(i intention.Intention, courseTitle string) {
	p.publish(EventIntentionDecided, i, courseTitle)
}

func (p *Publisher) publish(eventType string, i intention.Intention, courseTitle string) {
	if p == nil || p.hub == nil {
		return
	}

	evt := IntentionEvent{
		Type:        eventType,
		IntentionID: i.ID,
		UserID:      i.UserID,
		CourseID:    i.CourseID,
		CourseTitle: courseTitle,
		State:       string(i.State),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	p.hub.Broadcast(b)
}
