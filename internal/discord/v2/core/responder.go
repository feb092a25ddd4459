package core

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Session is the part of *discordgo.Session the pipeline talks to
type Session interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

// Responder delivers a handler's response for one event
type Responder interface {
	// Respond sends the response. The returned message is nil for interactions.
	Respond(response *Response) (*discordgo.Message, error)

	// HasResponded returns whether a response was already sent
	HasResponded() bool
}

// NewResponder picks the responder for the event kind
func NewResponder(ctx *EventContext) (Responder, error) {
	switch {
	case ctx.IsCommand() && ctx.Message != nil:
		return NewMessageResponder(ctx.Session, ctx.Message), nil
	case ctx.IsButton() && ctx.Interaction != nil:
		return NewInteractionResponder(ctx.Session, ctx.Interaction), nil
	default:
		return nil, fmt.Errorf("no responder for %s event", ctx.Kind)
	}
}

// MessageResponder replies to a text command in its channel
type MessageResponder struct {
	session   Session
	message   *discordgo.MessageCreate
	responded bool
}

// NewMessageResponder creates a responder that replies to m
func NewMessageResponder(s Session, m *discordgo.MessageCreate) *MessageResponder {
	return &MessageResponder{
		session: s,
		message: m,
	}
}

// Respond sends a reply referencing the command message
func (r *MessageResponder) Respond(response *Response) (*discordgo.Message, error) {
	if r.responded {
		return nil, fmt.Errorf("message already replied to")
	}

	sent, err := r.session.ChannelMessageSendComplex(r.message.ChannelID, &discordgo.MessageSend{
		Content:         response.Content,
		Embeds:          response.Embeds,
		Components:      response.Components,
		AllowedMentions: response.AllowedMentions,
		Reference:       r.message.Reference(),
	})
	if err != nil {
		return nil, err
	}

	r.responded = true
	return sent, nil
}

// HasResponded returns whether this responder has already sent a reply
func (r *MessageResponder) HasResponded() bool {
	return r.responded
}

// InteractionResponder answers a button press
type InteractionResponder struct {
	session     Session
	interaction *discordgo.InteractionCreate
	responded   bool
}

// NewInteractionResponder creates a responder for i
func NewInteractionResponder(s Session, i *discordgo.InteractionCreate) *InteractionResponder {
	return &InteractionResponder{
		session:     s,
		interaction: i,
	}
}

// Respond sends the interaction response
func (r *InteractionResponder) Respond(response *Response) (*discordgo.Message, error) {
	if r.responded {
		return nil, fmt.Errorf("interaction already responded to")
	}

	data := &discordgo.InteractionResponseData{
		Content:         response.Content,
		Embeds:          response.Embeds,
		Components:      response.Components,
		AllowedMentions: response.AllowedMentions,
	}
	if response.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	err := r.session.InteractionRespond(r.interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		return nil, err
	}

	r.responded = true
	return nil, nil
}

// HasResponded returns whether this responder has already sent a response
func (r *InteractionResponder) HasResponded() bool {
	return r.responded
}
