package core

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// EventKind tells which Discord event produced a context
type EventKind int

const (
	EventUnknown EventKind = iota
	EventCommand
	EventButton
)

func (k EventKind) String() string {
	switch k {
	case EventCommand:
		return "command"
	case EventButton:
		return "button"
	default:
		return "unknown"
	}
}

// EventContext wraps a prefix command or a button press with the fields handlers need
type EventContext struct {
	// Core Discord objects, only one of Message and Interaction is set
	Session     Session
	Message     *discordgo.MessageCreate
	Interaction *discordgo.InteractionCreate

	// Extracted common fields for convenience
	Kind      EventKind
	UserID    string
	GuildID   string
	ChannelID string

	// Command is set for EventCommand
	Command *Command

	// Action is set for EventButton
	Action ButtonAction

	// SourceMessageID is the message that carried the pressed button
	SourceMessageID string

	// Context for cancellation and values
	Context context.Context
}

// NewCommandContext builds a context for a parsed prefix command
func NewCommandContext(ctx context.Context, s Session, m *discordgo.MessageCreate, cmd *Command) *EventContext {
	ec := &EventContext{
		Session: s,
		Message: m,
		Kind:    EventCommand,
		Command: cmd,
		Context: ctx,
	}

	if m.Message != nil {
		ec.GuildID = m.GuildID
		ec.ChannelID = m.ChannelID
		if m.Author != nil {
			ec.UserID = m.Author.ID
		}
	}

	return ec
}

// NewButtonContext builds a context for a message component interaction
func NewButtonContext(ctx context.Context, s Session, i *discordgo.InteractionCreate) *EventContext {
	ec := &EventContext{
		Session:     s,
		Interaction: i,
		Kind:        EventButton,
		Context:     ctx,
	}

	if i.Interaction == nil {
		return ec
	}

	if i.Member != nil && i.Member.User != nil {
		ec.UserID = i.Member.User.ID
	} else if i.User != nil {
		ec.UserID = i.User.ID
	}
	ec.GuildID = i.GuildID
	ec.ChannelID = i.ChannelID

	if i.Message != nil {
		ec.SourceMessageID = i.Message.ID
	}

	if i.Type == discordgo.InteractionMessageComponent {
		ec.Action = ParseButtonAction(i.MessageComponentData().CustomID)
	}

	return ec
}

// IsCommand checks if this context came from a prefix command
func (ec *EventContext) IsCommand() bool {
	return ec.Kind == EventCommand
}

// IsButton checks if this context came from a button press
func (ec *EventContext) IsButton() bool {
	return ec.Kind == EventButton
}

// Route returns a short label for logs, e.g. "command:pokemon" or "button:stats"
func (ec *EventContext) Route() string {
	switch ec.Kind {
	case EventCommand:
		if ec.Command != nil {
			if ec.Command.Verb == VerbUnknown {
				return "command:" + ec.Command.Name
			}
			return "command:" + ec.Command.Verb.String()
		}
	case EventButton:
		if ec.Action == ButtonUnknown {
			return "button:unknown"
		}
		return "button:" + ec.Action.String()
	}
	return "unknown"
}

// WithValue adds a value to the context
func (ec *EventContext) WithValue(key, val interface{}) {
	ec.Context = context.WithValue(ec.Context, key, val)
}

// Value retrieves a value from the context
func (ec *EventContext) Value(key interface{}) interface{} {
	return ec.Context.Value(key)
}
