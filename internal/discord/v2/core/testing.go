package core

import (
	"context"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// Test IDs used by the helpers below
const (
	TestUserID    = "test-user-123"
	TestGuildID   = "test-guild-123"
	TestChannelID = "test-channel-123"
	TestMessageID = "test-message-123"
)

// NewTestCommandContext builds a command context from raw message content.
// It panics when content is not a prefix command.
func NewTestCommandContext(content string) *EventContext {
	cmd, ok := ParseCommand(content, DefaultPrefix)
	if !ok {
		panic("not a command: " + content)
	}

	m := &discordgo.MessageCreate{
		Message: &discordgo.Message{
			ID:        TestMessageID,
			ChannelID: TestChannelID,
			GuildID:   TestGuildID,
			Content:   content,
			Author:    &discordgo.User{ID: TestUserID},
		},
	}

	return NewCommandContext(context.Background(), NewFakeSession(), m, cmd)
}

// NewTestButtonContext builds a button context pressed on sourceMessageID
func NewTestButtonContext(customID, sourceMessageID string) *EventContext {
	i := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:      discordgo.InteractionMessageComponent,
			GuildID:   TestGuildID,
			ChannelID: TestChannelID,
			Member: &discordgo.Member{
				User: &discordgo.User{ID: TestUserID},
			},
			Message: &discordgo.Message{ID: sourceMessageID},
			Data: discordgo.MessageComponentInteractionData{
				CustomID: customID,
			},
		},
	}

	return NewButtonContext(context.Background(), NewFakeSession(), i)
}

// MockResponder is a test implementation of Responder
type MockResponder struct {
	Responses    []*Response
	Sent         *discordgo.Message
	RespondError error
	Responded    bool
}

// NewMockResponder creates a new mock responder that reports sent as the delivered message
func NewMockResponder(sent *discordgo.Message) *MockResponder {
	return &MockResponder{
		Responses: make([]*Response, 0),
		Sent:      sent,
	}
}

func (m *MockResponder) Respond(response *Response) (*discordgo.Message, error) {
	m.Responses = append(m.Responses, response)
	if m.RespondError != nil {
		return nil, m.RespondError
	}
	m.Responded = true
	return m.Sent, nil
}

func (m *MockResponder) HasResponded() bool {
	return m.Responded
}

// LastResponse returns the last response sent
func (m *MockResponder) LastResponse() *Response {
	if len(m.Responses) > 0 {
		return m.Responses[len(m.Responses)-1]
	}
	return nil
}

// FakeSession records what would have been sent to Discord
type FakeSession struct {
	mu           sync.Mutex
	Messages     []*discordgo.MessageSend
	Interactions []*discordgo.InteractionResponse
	NextID       string
	Err          error
}

// NewFakeSession creates a recording session
func NewFakeSession() *FakeSession {
	return &FakeSession{NextID: "sent-message-1"}
}

func (f *FakeSession) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}
	f.Messages = append(f.Messages, data)
	return &discordgo.Message{ID: f.NextID, ChannelID: channelID}, nil
}

func (f *FakeSession) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Err != nil {
		return f.Err
	}
	f.Interactions = append(f.Interactions, resp)
	return nil
}
