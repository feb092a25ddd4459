package root

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokedex-bot-discord/internal/clients/pokeapi"
)

// Version is printed by --version
const Version = "0.1.0"

type options struct {
	apiURL  string
	timeout time.Duration
}

// NewRootCmd builds the dex command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "dex",
		Short:         "Pokédex lookups from the terminal",
		Long:          "dex answers the same questions as the Discord bot. Type chart and name lookups work offline.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	cmd.PersistentFlags().StringVar(&opts.apiURL, "api", pokeapi.DefaultBaseURL, "PokeAPI base URL")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "PokeAPI request timeout")

	cmd.AddCommand(
		newWeaknessCmd(),
		newChartCmd(),
		newCanonicalCmd(),
		newCreatureCmd(opts),
		newCompareCmd(opts),
		newCategoryCmd(opts),
		newContextsCmd(),
	)

	return cmd
}

// Execute runs the CLI and exits non-zero on error
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, Bad.Render(IconError+" "+err.Error()))
		os.Exit(1)
	}
}
