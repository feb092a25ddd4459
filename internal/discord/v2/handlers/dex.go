package handlers

import (
	"fmt"

	"github.com/KirkDiggler/pokedex-bot-discord/internal/discord/v2/builders"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/repositories/messagecontexts"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/services/pokedex"
)

// DexHandler answers the pokedex commands and the buttons under creature cards
type DexHandler struct {
	service  pokedex.Service
	contexts messagecontexts.Repository
	embeds   *builders.DexEmbeds
	prefix   string
}

// DexHandlerConfig holds the configuration
type DexHandlerConfig struct {
	Service  pokedex.Service
	Contexts messagecontexts.Repository
	Embeds   *builders.DexEmbeds
	Prefix   string // defaults to core.DefaultPrefix
}

// NewDexHandler creates a new dex handler
func NewDexHandler(cfg *DexHandlerConfig) (*DexHandler, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.Service == nil {
		return nil, fmt.Errorf("service is required")
	}
	if cfg.Contexts == nil {
		return nil, fmt.Errorf("message context repository is required")
	}
	if cfg.Embeds == nil {
		return nil, fmt.Errorf("embeds are required")
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = core.DefaultPrefix
	}

	return &DexHandler{
		service:  cfg.Service,
		contexts: cfg.Contexts,
		embeds:   cfg.Embeds,
		prefix:   prefix,
	}, nil
}

// CommandHandlers maps every verb to its handler
func (h *DexHandler) CommandHandlers() map[core.Verb]core.HandlerFunc {
	return map[core.Verb]core.HandlerFunc{
		core.VerbCreature: h.HandleCreature,
		core.VerbCompare:  h.HandleCompare,
		core.VerbRandom:   h.HandleRandom,
		core.VerbCategory: h.HandleCategory,
		core.VerbHelp:     h.HandleHelp,
	}
}

// ButtonHandlers maps every button action to its handler
func (h *DexHandler) ButtonHandlers() map[core.ButtonAction]core.HandlerFunc {
	return map[core.ButtonAction]core.HandlerFunc{
		core.ButtonStats:             h.HandleStats,
		core.ButtonAbilities:         h.HandleAbilities,
		core.ButtonCategoryBreakdown: h.HandleCategoryBreakdown,
	}
}

// ValidateCoverage checks that every verb and button action has a handler
func (h *DexHandler) ValidateCoverage() error {
	commands := h.CommandHandlers()
	for _, v := range core.Verbs {
		if _, ok := commands[v]; !ok {
			return fmt.Errorf("no handler for verb %q", v)
		}
	}

	buttons := h.ButtonHandlers()
	for _, a := range core.ButtonActions {
		if _, ok := buttons[a]; !ok {
			return fmt.Errorf("no handler for button %q", a)
		}
	}

	return nil
}
