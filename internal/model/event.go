package model

import "encoding/json"

// EventType identifies a broadcast change event. The string values are part
// of the wire contract consumed by connected clients.
type EventType string

const (
	EventWorkspaceCreated EventType = "workspace_created"
	EventWorkspaceUpdated EventType = "workspace_updated"
	EventWorkspaceDeleted EventType = "workspace_deleted"
	EventBoardCreated     EventType = "board_created"
	EventBoardDeleted     EventType = "board_deleted"
	EventListCreated      EventType = "list_created"
	EventListUpdated      EventType = "list_updated"
	EventListDeleted      EventType = "list_deleted"
	EventCardCreated      EventType = "card_created"
	EventCardUpdated      EventType = "card_updated"
	EventCardDeleted      EventType = "card_deleted"
	EventMemberAdded      EventType = "member_added"
)

// Event is the envelope broadcast to every subscriber of a workspace.
// The hub treats the payload as opaque; only the workspace routing key
// matters for delivery.
type Event struct {
	Type    EventType `json:"type"`
	Payload any       `json:"payload"`
}

// Encode serializes the event for the wire. Payloads are the affected
// entity's full field set, or the relevant ids for deletions.
func (e Event) Encode() ([]byte, error) {
	return json.Marshal(e)
}
