package shared

import "time"

type SpotEventType string

const (
	SpotOccupied SpotEventType = "occupied"
	SpotFreed    SpotEventType = "freed"
)

type SpotEvent struct {
	Type        SpotEventType `json:"type"`
	SpotID      string        `json:"spotId"`
	FloorNumber int           `json:"floorNumber"`
	OccurredAt  time.Time     `json:"occurredAt"`
}

// EventPublisher must not block the caller; delivery is best effort.
type EventPublisher interface {
	Publish(ev SpotEvent)
}
