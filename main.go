package main

import (
	"context"
	"fmt"
	"os"

	"github.com/amir20/logview/config"
	"github.com/amir20/logview/internal/ui"
	"github.com/amir20/logview/internal/ui/pages/list"

	"github.com/alecthomas/kong"
	kongyaml "github.com/alecthomas/kong-yaml"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:]))
}

// run returns the process exit code. Deferred cleanup, including closing the
// log file, happens before main exits.
func run(ctx context.Context, args []string, opts ...tea.ProgramOption) int {
	var cfg config.Cli
	parser := kong.Must(&cfg,
		kong.Name("logview"),
		kong.Description("Browse a remote log history as a sortable, paginated table."),
		config.Vars(),
		kong.Configuration(kongyaml.Loader, "./logview.yaml", "~/.config/logview/config.yaml", "~/.logview.yaml"),
	)
	_, err := parser.Parse(args)
	parser.FatalIfErrorf(err)

	if cfg.Version {
		fmt.Printf("logview version: %s\nCommit: %s\nBuilt on: %s\n", version, commit, date)
		return 0
	}

	log, logFile, err := config.NewLogger(cfg)
	if err != nil {
		fmt.Println("Error:", err)
		return 1
	}
	defer logFile.Close()

	client := config.NewHistoryClient(cfg, log)
	log.WithField("url", cfg.URL).Info("starting logview")

	app := ui.NewApp(ctx, client, list.Options{
		ResourceURL: cfg.URL,
		State:       cfg.ViewState(),
		Log:         log,
	})

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(app, opts...)
	final, err := p.Run()
	if a, ok := final.(ui.App); ok {
		a.Close()
	}
	if err != nil {
		log.WithError(err).Error("program exited with error")
		fmt.Println("Error:", err)
		return 1
	}
	return 0
}
