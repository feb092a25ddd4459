package core

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// Handler defines the interface for all event handlers
type Handler interface {
	// CanHandle determines if this handler should process the event
	CanHandle(ctx *EventContext) bool

	// Handle processes the event and returns a result
	Handle(ctx *EventContext) (*HandlerResult, error)
}

// HandlerFunc allows functions to implement the Handler interface
type HandlerFunc func(ctx *EventContext) (*HandlerResult, error)

// CanHandle for HandlerFunc always returns true
func (f HandlerFunc) CanHandle(ctx *EventContext) bool {
	return true
}

// Handle calls the function
func (f HandlerFunc) Handle(ctx *EventContext) (*HandlerResult, error) {
	return f(ctx)
}

// SentFunc runs after a response was delivered. The message is nil for
// interaction replies.
type SentFunc func(ctx context.Context, sent *discordgo.Message) error

// HandlerResult contains the response and metadata from a handler
type HandlerResult struct {
	// Response to send to Discord
	Response *Response

	// OnSent is called with the delivered message, e.g. to remember what it shows
	OnSent SentFunc

	// Whether to stop processing further handlers
	StopPropagation bool

	// Additional context to pass to middleware
	Context map[string]interface{}
}

// Response represents a Discord-agnostic response
type Response struct {
	// Text content of the response
	Content string

	// Discord embeds
	Embeds []*discordgo.MessageEmbed

	// Interactive components (buttons)
	Components []discordgo.MessageComponent

	// Whether this response should be ephemeral, only honored for interactions
	Ephemeral bool

	// Allowed mentions configuration
	AllowedMentions *discordgo.MessageAllowedMentions
}

// NewResponse creates a new response with the given content
func NewResponse(content string) *Response {
	return &Response{
		Content: content,
	}
}

// NewEphemeralResponse creates a new ephemeral response
func NewEphemeralResponse(content string) *Response {
	return &Response{
		Content:   content,
		Ephemeral: true,
	}
}

// NewEmbedResponse creates a response with an embed
func NewEmbedResponse(embed *discordgo.MessageEmbed) *Response {
	return &Response{
		Embeds: []*discordgo.MessageEmbed{embed},
	}
}

// WithComponents adds components to the response
func (r *Response) WithComponents(components ...discordgo.MessageComponent) *Response {
	r.Components = components
	return r
}

// WithEmbeds adds embeds to the response
func (r *Response) WithEmbeds(embeds ...*discordgo.MessageEmbed) *Response {
	r.Embeds = embeds
	return r
}

// AsEphemeral sets the response to be ephemeral
func (r *Response) AsEphemeral() *Response {
	r.Ephemeral = true
	return r
}

// Reply wraps a response in a result
func Reply(response *Response) *HandlerResult {
	return &HandlerResult{Response: response}
}
