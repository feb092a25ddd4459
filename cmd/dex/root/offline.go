package root

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokedex-bot-discord/internal/domain/names"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/domain/typechart"
)

func newWeaknessCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "weakness <type> [type]",
		Short:   "Show what hits one or two defending types hard",
		Example: "  dex weakness fire flying",
		Args:    cobra.RangeArgs(1, typechart.MaxDefending),
		RunE: func(cmd *cobra.Command, args []string) error {
			defending, err := typechart.ParseCategories(args)
			if err != nil {
				return err
			}

			eff, err := typechart.MustLoad().Effectiveness(defending...)
			if err != nil {
				return err
			}

			titles := make([]string, 0, len(defending))
			for _, d := range defending {
				titles = append(titles, d.Title())
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, Heading(IconShield, strings.Join(titles, " / ")+" defending"))
			writeBreakdown(out, eff.Breakdown())
			return nil
		},
	}
}

func writeBreakdown(out io.Writer, bd typechart.Breakdown) {
	rows := []struct {
		label string
		set   []typechart.Category
	}{
		{"4x Weak to", bd.Quadruple},
		{"2x Weak to", bd.Double},
		{"½x Resists", bd.Half},
		{"¼x Resists", bd.Quarter},
		{"Immune to", bd.Immune},
	}

	for _, r := range rows {
		if len(r.set) == 0 {
			continue
		}
		titles := make([]string, 0, len(r.set))
		for _, c := range r.set {
			titles = append(titles, c.Title())
		}
		fmt.Fprintln(out, LabelValue(r.label, strings.Join(titles, ", ")))
	}
}

func newChartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chart",
		Short: "Print the full type chart, attacking across and defending down",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			chart := typechart.MustLoad()
			cell := lipgloss.NewStyle().Width(4)
			label := lipgloss.NewStyle().Width(5).Bold(true)

			var b strings.Builder
			b.WriteString(label.Render(""))
			for _, attacking := range typechart.All {
				b.WriteString(cell.Render(short(attacking)))
			}
			b.WriteString("\n")

			for _, defending := range typechart.All {
				eff, err := chart.Effectiveness(defending)
				if err != nil {
					return err
				}
				b.WriteString(label.Render(short(defending)))
				for _, attacking := range typechart.All {
					b.WriteString(cell.Render(Multiplier(eff.Against(attacking))))
				}
				b.WriteString("\n")
			}

			fmt.Fprintln(cmd.OutOrStdout(), Heading(IconBolt, "Type chart"))
			fmt.Fprint(cmd.OutOrStdout(), b.String())
			fmt.Fprintln(cmd.OutOrStdout(), Muted.Render("rows defend, columns attack, · is neutral"))
			return nil
		},
	}
}

func short(c typechart.Category) string {
	t := c.Title()
	if len(t) > 3 {
		return t[:3]
	}
	return t
}

func newCanonicalCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "canonical <name...>",
		Short:   "Show which PokeAPI identifier a name resolves to",
		Example: "  dex canonical mega charizard x",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")
			canonical := names.MustLoad().Canonicalize(input)
			if canonical == "" {
				return fmt.Errorf("nothing to resolve in %q", input)
			}

			fmt.Fprintln(cmd.OutOrStdout(), LabelValue("Input", input))
			fmt.Fprintln(cmd.OutOrStdout(), LabelValue("Canonical", Gold.Render(canonical)))
			fmt.Fprintln(cmd.OutOrStdout(), LabelValue("Display", names.Display(canonical)))
			return nil
		},
	}
}
