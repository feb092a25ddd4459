package builders

import (
	"github.com/KirkDiggler/pokedex-bot-discord/internal/discord/v2/core"
	"github.com/bwmarrin/discordgo"
)

// maxRowComponents is Discord's limit of buttons per action row
const maxRowComponents = 5

// ComponentBuilder builds Discord message components
type ComponentBuilder struct {
	rows       []discordgo.MessageComponent
	currentRow []discordgo.MessageComponent
	domain     string
}

// NewComponentBuilder creates a new component builder whose custom IDs use domain
func NewComponentBuilder(domain string) *ComponentBuilder {
	return &ComponentBuilder{
		rows:       make([]discordgo.MessageComponent, 0),
		currentRow: make([]discordgo.MessageComponent, 0, maxRowComponents),
		domain:     domain,
	}
}

// Button adds a button to the current row
func (b *ComponentBuilder) Button(label string, style discordgo.ButtonStyle, action string, args ...string) *ComponentBuilder {
	b.addComponent(discordgo.Button{
		Label:    label,
		Style:    style,
		CustomID: core.NewCustomID(b.domain, action).WithArgs(args...).MustEncode(),
	})
	return b
}

// EmojiButton adds a button with emoji
func (b *ComponentBuilder) EmojiButton(label, emoji string, style discordgo.ButtonStyle, action string, args ...string) *ComponentBuilder {
	b.addComponent(discordgo.Button{
		Label:    label,
		Style:    style,
		CustomID: core.NewCustomID(b.domain, action).WithArgs(args...).MustEncode(),
		Emoji: &discordgo.ComponentEmoji{
			Name: emoji,
		},
	})
	return b
}

// LinkButton adds a URL button
func (b *ComponentBuilder) LinkButton(label, url string) *ComponentBuilder {
	b.addComponent(discordgo.Button{
		Label: label,
		Style: discordgo.LinkButton,
		URL:   url,
	})
	return b
}

// NewRow starts a new action row
func (b *ComponentBuilder) NewRow() *ComponentBuilder {
	if len(b.currentRow) > 0 {
		b.rows = append(b.rows, discordgo.ActionsRow{
			Components: b.currentRow,
		})
		b.currentRow = make([]discordgo.MessageComponent, 0, maxRowComponents)
	}
	return b
}

// Build returns the built components
func (b *ComponentBuilder) Build() []discordgo.MessageComponent {
	b.NewRow()
	return b.rows
}

// addComponent adds a component to the current row
func (b *ComponentBuilder) addComponent(component discordgo.MessageComponent) {
	if len(b.currentRow) >= maxRowComponents {
		b.NewRow()
	}

	b.currentRow = append(b.currentRow, component)
}

// SecondaryButton adds a grey emoji button
func (b *ComponentBuilder) SecondaryButton(label, emoji, action string, args ...string) *ComponentBuilder {
	return b.EmojiButton(label, emoji, discordgo.SecondaryButton, action, args...)
}

// DexButtons renders the follow-up row shown under every creature card
func DexButtons() []discordgo.MessageComponent {
	return NewComponentBuilder(core.DexDomain).
		SecondaryButton("Stats", "📊", core.ButtonStats.String()).
		SecondaryButton("Abilities", "🧬", core.ButtonAbilities.String()).
		SecondaryButton("Type Chart", "⚡", core.ButtonCategoryBreakdown.String()).
		Build()
}
