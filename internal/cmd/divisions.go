package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/leagueroster/internal/config"
	"github.com/Iron-Ham/leagueroster/internal/render"
)

var divisionsCmd = &cobra.Command{
	Use:   "divisions",
	Short: "Show the rules of every division",
	Long: `Show registration fee, roster size bounds, allowed jersey numbers,
match duration and substitution policy for each division.

Fees are shown in league.currency, formatted for league.locale.`,
	Args: cobra.NoArgs,
	RunE: runDivisions,
}

func init() {
	rootCmd.AddCommand(divisionsCmd)
}

func runDivisions(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, render.Title.Render("Divisions"))
	fmt.Fprintln(out)
	fmt.Fprint(out, render.Divisions(cfg.League.CurrencyUnit(), cfg.League.LanguageTag()))
	return nil
}
