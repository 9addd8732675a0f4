package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/leagueroster/internal/catalog"
	"github.com/Iron-Ham/leagueroster/internal/config"
	"github.com/Iron-Ham/leagueroster/internal/event"
	"github.com/Iron-Ham/leagueroster/internal/logging"
	"github.com/Iron-Ham/leagueroster/internal/manifest"
	"github.com/Iron-Ham/leagueroster/internal/render"
)

var templatesCmd = &cobra.Command{
	Use:   "templates [manifest]",
	Short: "List the roster and player templates in a manifest",
	Long: `List the roster and player templates declared in a manifest.

With --watch the manifest is reloaded whenever it changes on disk until the
command is interrupted. A manifest that fails to load keeps the previous
templates in place.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTemplates,
}

var templatesWatch bool

func init() {
	templatesCmd.Flags().BoolVarP(&templatesWatch, "watch", "w", false, "reload templates when the manifest changes")
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	path, err := manifestPath(cfg, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	cat := catalog.New()

	if !templatesWatch {
		f, err := manifest.Load(path)
		if err != nil {
			return err
		}
		if err := f.Seed(cat); err != nil {
			return err
		}
		printTemplates(out, cat)
		return nil
	}

	logger, err := logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Close() }()

	bus := event.NewBus(logger.Slog())
	event.On(bus, event.TypeTemplatesReloaded, func(e event.TemplatesReloadedEvent) {
		if e.Err != nil {
			fmt.Fprintln(out, render.FailureLine(e.Path, e.Err))
			return
		}
		printTemplates(out, cat)
	})

	ctx, stop := signal.NotifyContext(contextOrBackground(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintln(out, render.Muted.Render("watching "+path+" (Ctrl+C to stop)"))
	return manifest.Watch(ctx, path, cat,
		manifest.WithBus(bus),
		manifest.WithLogger(logger),
		manifest.WithDebounce(cfg.Registration.WatchDebounce()))
}

func printTemplates(out io.Writer, cat *catalog.Catalog) {
	var rows [][]string
	for _, key := range cat.TeamTemplateKeys() {
		players, err := cat.CloneTeamTemplate(key)
		if err != nil {
			// removed by a concurrent reload
			continue
		}
		rows = append(rows, []string{"roster", key, fmt.Sprintf("%d players", len(players))})
	}
	for _, key := range cat.PlayerTemplateKeys() {
		p, err := cat.ClonePlayer(key)
		if err != nil {
			continue
		}
		rows = append(rows, []string{"player", key, p.String()})
	}

	fmt.Fprintln(out, render.Title.Render("Templates"))
	if len(rows) == 0 {
		fmt.Fprintln(out, render.Muted.Render("(none)"))
		return
	}
	fmt.Fprint(out, render.Table([]string{"KIND", "KEY", "CONTENTS"}, rows))
}

func contextOrBackground(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
