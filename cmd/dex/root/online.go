package root

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokedex-bot-discord/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/domain/names"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/domain/stats"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/entities"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/services"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/services/pokedex"
)

func openService(opts *options) (pokedex.Service, error) {
	client, err := pokeapi.New(&pokeapi.Config{
		HttpClient: &http.Client{Timeout: opts.timeout},
		BaseURL:    opts.apiURL,
	})
	if err != nil {
		return nil, err
	}

	provider, err := services.NewProvider(&services.ProviderConfig{PokeAPIClient: client})
	if err != nil {
		return nil, err
	}
	return provider.PokedexService, nil
}

func newCreatureCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "creature <name-or-id...>",
		Aliases: []string{"pokemon"},
		Short:   "Look up a Pokémon with its stats and weaknesses",
		Example: "  dex creature mr mime\n  dex pokemon 25",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService(opts)
			if err != nil {
				return err
			}

			creature, err := svc.GetCreature(commandContext(cmd), strings.Join(args, " "))
			if err != nil {
				return err
			}
			eff, err := svc.Effectiveness(creature)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			writeCreature(out, creature)
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, H2.Render(IconShield+" Defending"))
			writeBreakdown(out, eff.Breakdown())
			return nil
		},
	}
}

func writeCreature(out io.Writer, c *entities.Creature) {
	fmt.Fprintln(out, Heading(IconDex, fmt.Sprintf("%s #%d", names.Display(c.Name), c.ID)))
	if c.Species != nil && c.Species.Genus != "" {
		fmt.Fprintln(out, Muted.Render(c.Species.Genus))
	}
	if text := c.FlavorText(); text != "" {
		fmt.Fprintln(out, Panel.Render(text))
	}

	fmt.Fprintln(out, LabelValue("Type", titleTypes(c.Types)))
	fmt.Fprintln(out, LabelValue("Height", stats.FormatHeight(c.Height)))
	fmt.Fprintln(out, LabelValue("Weight", stats.FormatWeight(c.Weight)))

	abilities := make([]string, 0, len(c.Abilities))
	for _, a := range c.Abilities {
		name := names.Display(a.Name)
		if a.IsHidden {
			name += Muted.Render(" (Hidden)")
		}
		abilities = append(abilities, name)
	}
	fmt.Fprintln(out, LabelValue("Abilities", strings.Join(abilities, ", ")))

	fmt.Fprintln(out, "")
	fmt.Fprintln(out, H2.Render(IconStats+" Base Stats"))
	values := c.StatMap()
	for _, name := range entities.StatNames {
		fmt.Fprintf(out, "%-11s %3d %s\n", stats.Label(name), values[name], stats.Bar(values[name]))
	}
	fmt.Fprintln(out, LabelValue("Total", stats.Total(c.Stats)))
}

func titleTypes(types []string) string {
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, names.Display(t))
	}
	return strings.Join(out, " / ")
}

func newCompareCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "compare <first> <second...>",
		Short:   "Compare the base stats of two Pokémon",
		Example: "  dex compare pikachu raichu",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService(opts)
			if err != nil {
				return err
			}

			cmp, err := svc.Compare(commandContext(cmd), args[0], strings.Join(args[1:], " "))
			if err != nil {
				return err
			}

			writeComparison(cmd.OutOrStdout(), cmp)
			return nil
		},
	}
}

func writeComparison(out io.Writer, cmp *pokedex.Comparison) {
	first := names.Display(cmp.First.Name)
	second := names.Display(cmp.Second.Name)

	fmt.Fprintln(out, Heading(IconStats, first+" vs "+second))
	for _, r := range cmp.Rows {
		fmt.Fprintf(out, "%-11s %3d %s %3d\n", stats.Label(r.Name), r.First, r.Winner.Marker(), r.Second)
	}
	fmt.Fprintf(out, "%-11s %3d %s %3d\n", "Total", cmp.FirstTotal, cmp.Winner.Marker(), cmp.SecondTotal)

	switch cmp.Winner {
	case stats.WinnerFirst:
		fmt.Fprintln(out, Gold.Render(first+" has the higher base stat total"))
	case stats.WinnerSecond:
		fmt.Fprintln(out, Gold.Render(second+" has the higher base stat total"))
	default:
		fmt.Fprintln(out, Muted.Render("Base stat totals are tied"))
	}
}

func newCategoryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "category <name>",
		Aliases: []string{"type"},
		Short:   "Show how a type fares when attacking",
		Example: "  dex category fire",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService(opts)
			if err != nil {
				return err
			}

			info, err := svc.GetCategory(commandContext(cmd), args[0])
			if err != nil {
				return err
			}

			writeCategory(cmd.OutOrStdout(), info)
			return nil
		},
	}
}

func writeCategory(out io.Writer, info *entities.CategoryInfo) {
	fmt.Fprintln(out, Heading(IconBolt, names.Display(info.Name)+" Type"))
	fmt.Fprintln(out, LabelValue("Super effective against", listOrNone(info.DamageRelations.DoubleDamageTo)))
	fmt.Fprintln(out, LabelValue("Not very effective against", listOrNone(info.DamageRelations.HalfDamageTo)))
	fmt.Fprintln(out, LabelValue("No effect against", listOrNone(info.DamageRelations.NoDamageTo)))
	fmt.Fprintln(out, Muted.Render(fmt.Sprintf("%d moves • %d Pokémon", info.MoveCount, info.PokemonCount)))
}

func listOrNone(types []string) string {
	if len(types) == 0 {
		return "None"
	}
	return titleTypesComma(types)
}

func titleTypesComma(types []string) string {
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, names.Display(t))
	}
	return strings.Join(out, ", ")
}

// commandContext falls back to Background when cobra was run without a context
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
