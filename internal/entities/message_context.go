package entities

import "time"

// MessageContext remembers which creature a posted message presented so that
// buttons on that message can be answered later
type MessageContext struct {
	MessageID string    `json:"message_id"`
	ChannelID string    `json:"channel_id"`
	UserID    string    `json:"user_id"` // who ran the command
	Creature  *Creature `json:"creature"`
	CreatedAt time.Time `json:"created_at"`
}
