package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/pokedex-bot-discord/internal/discord/v2/builders"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/entities"
	dexerr "github.com/KirkDiggler/pokedex-bot-discord/internal/errors"
	"github.com/bwmarrin/discordgo"
)

// HandleCreature answers `pokemon <name-or-id>`
func (h *DexHandler) HandleCreature(ctx *core.EventContext) (*core.HandlerResult, error) {
	query := ctx.Command.Rest(0)
	if query == "" {
		return usage(fmt.Sprintf("Please specify a Pokemon name or ID! Example: `%spokemon pikachu`", h.prefix)), nil
	}

	creature, err := h.service.GetCreature(ctx.Context, query)
	if err != nil {
		if dexerr.IsNotFound(err) {
			return nil, core.NewNotFoundError(err,
				fmt.Sprintf("Pokemon %q not found! Try checking the spelling or use a Pokemon ID.", query))
		}
		return nil, core.NewInternalError(err)
	}

	return h.creatureCard(ctx, creature), nil
}

// HandleRandom answers `random`
func (h *DexHandler) HandleRandom(ctx *core.EventContext) (*core.HandlerResult, error) {
	creature, err := h.service.RandomCreature(ctx.Context)
	if err != nil {
		return nil, core.NewHandlerError(err, "Failed to fetch a random Pokemon. Please try again!", core.ErrorCodeUnavailable)
	}

	return h.creatureCard(ctx, creature), nil
}

// HandleCompare answers `compare <first> <second...>`
func (h *DexHandler) HandleCompare(ctx *core.EventContext) (*core.HandlerResult, error) {
	if len(ctx.Command.Args) < 2 {
		return usage(fmt.Sprintf("Please specify two Pokemon to compare! Example: `%scompare pikachu raichu`", h.prefix)), nil
	}

	first := ctx.Command.Arg(0)
	second := ctx.Command.Rest(1)

	cmp, err := h.service.Compare(ctx.Context, first, second)
	if err != nil {
		if dexerr.IsNotFound(err) {
			name := first
			if q, ok := dexerr.GetMeta(err)["query"].(string); ok && q != "" {
				name = q
			}
			return nil, core.NewNotFoundError(err, fmt.Sprintf("Pokemon %q not found!", name))
		}
		return nil, core.NewInternalError(err)
	}

	return core.Reply(core.NewEmbedResponse(h.embeds.Comparison(cmp))), nil
}

// HandleCategory answers `type <name>`
func (h *DexHandler) HandleCategory(ctx *core.EventContext) (*core.HandlerResult, error) {
	name := ctx.Command.Arg(0)
	if name == "" {
		return usage(fmt.Sprintf("Please specify a type! Example: `%stype fire`", h.prefix)), nil
	}

	info, err := h.service.GetCategory(ctx.Context, name)
	if err != nil {
		if dexerr.IsNotFound(err) {
			return nil, core.NewNotFoundError(err, fmt.Sprintf("Type %q not found!", strings.ToLower(name)))
		}
		return nil, core.NewInternalError(err)
	}

	return core.Reply(core.NewEmbedResponse(h.embeds.Category(info))), nil
}

// HandleHelp answers `help`
func (h *DexHandler) HandleHelp(ctx *core.EventContext) (*core.HandlerResult, error) {
	return core.Reply(core.NewEmbedResponse(h.embeds.Help(h.prefix))), nil
}

// HandleUnknownCommand answers any prefixed word that is not a verb
func (h *DexHandler) HandleUnknownCommand(ctx *core.EventContext) (*core.HandlerResult, error) {
	return usage(fmt.Sprintf("Unknown command! Use `%shelp` to see available commands.", h.prefix)), nil
}

// creatureCard renders the card with its buttons and remembers what the reply shows
func (h *DexHandler) creatureCard(ctx *core.EventContext, creature *entities.Creature) *core.HandlerResult {
	response := core.NewEmbedResponse(h.embeds.Creature(creature)).
		WithComponents(builders.DexButtons()...)

	return &core.HandlerResult{
		Response: response,
		OnSent: func(c context.Context, sent *discordgo.Message) error {
			if sent == nil {
				return fmt.Errorf("no message to attach %s to", creature.Name)
			}
			return h.contexts.Save(c, &entities.MessageContext{
				MessageID: sent.ID,
				ChannelID: ctx.ChannelID,
				UserID:    ctx.UserID,
				Creature:  creature,
			})
		},
	}
}

func usage(message string) *core.HandlerResult {
	return core.Reply(core.NewResponse(message))
}
