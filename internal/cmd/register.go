package cmd

import (
	"fmt"
	"slices"

	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"

	"github.com/Iron-Ham/leagueroster/internal/catalog"
	"github.com/Iron-Ham/leagueroster/internal/config"
	"github.com/Iron-Ham/leagueroster/internal/errors"
	"github.com/Iron-Ham/leagueroster/internal/event"
	"github.com/Iron-Ham/leagueroster/internal/logging"
	"github.com/Iron-Ham/leagueroster/internal/manifest"
	"github.com/Iron-Ham/leagueroster/internal/registry"
	"github.com/Iron-Ham/leagueroster/internal/render"
	"github.com/Iron-Ham/leagueroster/internal/roster"
)

var registerCmd = &cobra.Command{
	Use:   "register [manifest]",
	Short: "Build and register every team in a manifest",
	Long: `Seed the template catalog from the manifest, build each team against
its division rules and register it for the season.

Teams are processed concurrently (registration.max_parallel at a time).
A team that fails to build or collides with an already registered name is
reported and skipped; the command exits non-zero if any team failed.

Without an argument the manifest from registration.manifest is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)
}

// registration is the outcome for one manifest team.
type registration struct {
	index int
	name  string
	team  *roster.Team
	err   error
}

func runRegister(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	path, err := manifestPath(cfg, args)
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Close() }()

	f, err := manifest.Load(path)
	if err != nil {
		return err
	}
	cat := catalog.New()
	if err := f.Seed(cat); err != nil {
		return err
	}

	bus := event.NewBus(logger.Slog())
	bus.SubscribeAll(func(e event.Event) {
		logger.Debug("event", "type", e.EventType())
	})
	reg := registry.Instance(cfg.League.Season,
		registry.WithLogger(logger),
		registry.WithBus(bus))

	results := registerAll(f.Teams, cat, reg, cfg.Registration.MaxParallel)

	out := cmd.OutOrStdout()
	unit, tag := cfg.League.CurrencyUnit(), cfg.League.LanguageTag()
	registered := 0
	for _, r := range results {
		if r.err != nil {
			fmt.Fprintln(out, render.FailureLine(r.name, r.err))
			continue
		}
		registered++
		fmt.Fprintln(out, render.TeamLine(r.team, unit, tag))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, render.Summary(registered, len(results), reg.Season()))

	if failed := len(results) - registered; failed > 0 {
		return fmt.Errorf("%d of %d teams failed registration", failed, len(results))
	}
	return nil
}

// registerAll builds and registers specs with at most maxParallel in flight.
// Results come back in manifest order.
func registerAll(specs []manifest.TeamSpec, cat *catalog.Catalog, reg *registry.Registry, maxParallel int) []registration {
	p := pool.NewWithResults[registration]().WithMaxGoroutines(max(1, maxParallel))
	for i, spec := range specs {
		p.Go(func() registration {
			team, err := spec.Build(cat)
			if err == nil {
				err = reg.RegisterTeam(team)
			}
			if err != nil {
				return registration{index: i, name: spec.Name, err: err}
			}
			return registration{index: i, name: spec.Name, team: team}
		})
	}

	results := p.Wait()
	slices.SortFunc(results, func(a, b registration) int { return a.index - b.index })
	return results
}

func manifestPath(cfg *config.Config, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Registration.Manifest != "" {
		return cfg.Registration.Manifest, nil
	}
	return "", errors.NewConfigurationError("no manifest given and registration.manifest is not set").
		WithField("registration.manifest").
		WithCause(errors.ErrMissingField)
}
