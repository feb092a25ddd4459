package v2

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/KirkDiggler/pokedex-bot-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/repositories/messagecontexts"
	"github.com/bwmarrin/discordgo"
)

// Defaults used when BotConfig leaves a field empty
const (
	DefaultEventTimeout      = 15 * time.Second
	DefaultHeartbeatInterval = 5 * time.Minute
	DefaultStatusText        = "!help for commands"
)

// StatusSession is the part of the gateway session the ready handler needs
type StatusSession interface {
	UpdateStatusComplex(usd discordgo.UpdateStatusData) (err error)
}

// Bot turns gateway events into pipeline executions
type Bot struct {
	pipeline          *core.Pipeline
	contexts          messagecontexts.Repository
	prefix            string
	eventTimeout      time.Duration
	heartbeatInterval time.Duration
	statusText        string

	// guildCount reports how many guilds the session serves
	guildCount  func() int
	readyGuilds atomic.Int64

	heartbeatOnce sync.Once
	stopOnce      sync.Once
	stop          chan struct{}
	done          chan struct{}
}

// BotConfig holds configuration for the bot
type BotConfig struct {
	Pipeline          *core.Pipeline             // Required
	Contexts          messagecontexts.Repository // Required
	Prefix            string
	EventTimeout      time.Duration
	HeartbeatInterval time.Duration
	StatusText        string
}

// NewBot creates a bot adapter
func NewBot(cfg *BotConfig) (*Bot, error) {
	if cfg == nil || cfg.Pipeline == nil {
		return nil, fmt.Errorf("pipeline is required")
	}
	if cfg.Contexts == nil {
		return nil, fmt.Errorf("message context repository is required")
	}

	b := &Bot{
		pipeline:          cfg.Pipeline,
		contexts:          cfg.Contexts,
		prefix:            cfg.Prefix,
		eventTimeout:      cfg.EventTimeout,
		heartbeatInterval: cfg.HeartbeatInterval,
		statusText:        cfg.StatusText,
		stop:              make(chan struct{}),
		done:              make(chan struct{}),
	}
	if b.prefix == "" {
		b.prefix = core.DefaultPrefix
	}
	if b.eventTimeout <= 0 {
		b.eventTimeout = DefaultEventTimeout
	}
	if b.heartbeatInterval <= 0 {
		b.heartbeatInterval = DefaultHeartbeatInterval
	}
	if b.statusText == "" {
		b.statusText = DefaultStatusText
	}
	b.guildCount = func() int { return int(b.readyGuilds.Load()) }

	return b, nil
}

// Register adds the bot's handlers to a gateway session
func (b *Bot) Register(dg *discordgo.Session) {
	if dg.State != nil {
		b.guildCount = func() int {
			dg.State.RLock()
			defer dg.State.RUnlock()
			return len(dg.State.Guilds)
		}
	}

	dg.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		b.HandleMessage(s, m)
	})
	dg.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		b.HandleInteraction(s, i)
	})
	dg.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		b.HandleReady(s, r)
	})
	dg.AddHandler(func(_ *discordgo.Session, m *discordgo.MessageDelete) {
		b.HandleMessageDelete(m)
	})
}

// HandleMessage runs prefix commands. Bot authors and plain chat are ignored.
func (b *Bot) HandleMessage(s core.Session, m *discordgo.MessageCreate) {
	if m == nil || m.Message == nil || m.Author == nil || m.Author.Bot {
		return
	}

	cmd, ok := core.ParseCommand(m.Content, b.prefix)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), b.eventTimeout)
	defer cancel()

	ec := core.NewCommandContext(ctx, s, m, cmd)
	if err := b.pipeline.Execute(ec); err != nil {
		log.Printf("[Discord] Failed to handle %s from %s in %s: %v", ec.Route(), ec.UserID, ec.ChannelID, err)
	}
}

// HandleInteraction runs button presses. Other interaction types are ignored.
func (b *Bot) HandleInteraction(s core.Session, i *discordgo.InteractionCreate) {
	if i == nil || i.Interaction == nil || i.Type != discordgo.InteractionMessageComponent {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), b.eventTimeout)
	defer cancel()

	ec := core.NewButtonContext(ctx, s, i)
	if err := b.pipeline.Execute(ec); err != nil {
		log.Printf("[Discord] Failed to handle %s from %s in %s: %v", ec.Route(), ec.UserID, ec.ChannelID, err)
	}
}

// HandleReady sets the presence and starts the heartbeat log
func (b *Bot) HandleReady(s StatusSession, r *discordgo.Ready) {
	if r != nil {
		b.readyGuilds.Store(int64(len(r.Guilds)))
		if r.User != nil {
			log.Printf("[Discord] Logged in as %s", r.User.Username)
		}
	}

	err := s.UpdateStatusComplex(discordgo.UpdateStatusData{
		Activities: []*discordgo.Activity{{
			Name: b.statusText,
			Type: discordgo.ActivityTypeGame,
		}},
		Status: string(discordgo.StatusOnline),
	})
	if err != nil {
		log.Printf("[Discord] Failed to set status: %v", err)
	}

	log.Printf("[Discord] Serving %d guilds", b.guildCount())

	b.heartbeatOnce.Do(func() {
		go b.heartbeat()
	})
}

// HandleMessageDelete forgets what a deleted message showed
func (b *Bot) HandleMessageDelete(m *discordgo.MessageDelete) {
	if m == nil || m.Message == nil || m.ID == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), b.eventTimeout)
	defer cancel()

	if err := b.contexts.Delete(ctx, m.ID); err != nil {
		log.Printf("[Discord] Failed to delete context for message %s: %v", m.ID, err)
	}
}

// Close stops the heartbeat and waits for it to exit if it was started
func (b *Bot) Close() {
	b.stopOnce.Do(func() {
		close(b.stop)
	})

	started := true
	b.heartbeatOnce.Do(func() {
		started = false
	})
	if started {
		<-b.done
	}
}

func (b *Bot) heartbeat() {
	defer close(b.done)

	ticker := time.NewTicker(b.heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-b.stop:
			return
		case <-ticker.C:
			log.Printf("[Discord] Heartbeat: alive, serving %d guilds", b.guildCount())
		}
	}
}
