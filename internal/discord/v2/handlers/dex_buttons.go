package handlers

import (
	"github.com/KirkDiggler/pokedex-bot-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/entities"
	dexerr "github.com/KirkDiggler/pokedex-bot-discord/internal/errors"
	"github.com/bwmarrin/discordgo"
)

// Button replies shown when the press cannot be answered
const (
	MissingContextMessage = "Pokemon data not found! Please use the command again."
	UnknownButtonMessage  = "Unknown button!"
)

// HandleStats answers the 📊 Stats button
func (h *DexHandler) HandleStats(ctx *core.EventContext) (*core.HandlerResult, error) {
	creature, err := h.sourceCreature(ctx)
	if err != nil {
		return nil, err
	}

	return ephemeralEmbed(h.embeds.Stats(creature)), nil
}

// HandleAbilities answers the 🧬 Abilities button
func (h *DexHandler) HandleAbilities(ctx *core.EventContext) (*core.HandlerResult, error) {
	creature, err := h.sourceCreature(ctx)
	if err != nil {
		return nil, err
	}

	return ephemeralEmbed(h.embeds.Abilities(creature)), nil
}

// HandleCategoryBreakdown answers the ⚡ Type Chart button
func (h *DexHandler) HandleCategoryBreakdown(ctx *core.EventContext) (*core.HandlerResult, error) {
	creature, err := h.sourceCreature(ctx)
	if err != nil {
		return nil, err
	}

	eff, err := h.service.Effectiveness(creature)
	if err != nil {
		return nil, core.NewInternalError(err)
	}

	return ephemeralEmbed(h.embeds.Effectiveness(creature, eff)), nil
}

// HandleUnknownButton answers presses on buttons this bot does not know
func (h *DexHandler) HandleUnknownButton(ctx *core.EventContext) (*core.HandlerResult, error) {
	return core.Reply(core.NewEphemeralResponse(UnknownButtonMessage)), nil
}

// sourceCreature loads the creature shown by the message carrying the button
func (h *DexHandler) sourceCreature(ctx *core.EventContext) (*entities.Creature, error) {
	if ctx.SourceMessageID == "" {
		return nil, core.NewUserError(MissingContextMessage, core.ErrorCodeNotFound)
	}

	mc, err := h.contexts.Get(ctx.Context, ctx.SourceMessageID)
	if err != nil {
		if dexerr.IsMissingContext(err) {
			return nil, core.NewNotFoundError(err, MissingContextMessage)
		}
		return nil, core.NewInternalError(err)
	}
	if mc.Creature == nil {
		return nil, core.NewUserError(MissingContextMessage, core.ErrorCodeNotFound)
	}

	return mc.Creature, nil
}

func ephemeralEmbed(embed *discordgo.MessageEmbed) *core.HandlerResult {
	return core.Reply(core.NewEmbedResponse(embed).AsEphemeral())
}
