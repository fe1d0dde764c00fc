package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"widgetdash/internal/config"
	"widgetdash/internal/store"
	"widgetdash/internal/telemetry"
	"widgetdash/internal/ui"
)

// options holds the parsed command line.
type options struct {
	configPath string
	columns    int
	logFile    string
	printOnce  bool
	query      string
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("widgetdash", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "path to config.toml (default: $XDG_CONFIG_HOME/widgetdash/config.toml)")
	fs.IntVar(&opts.columns, "columns", 0, "cards per row (overrides config)")
	fs.StringVar(&opts.logFile, "log", "", "write logs to this file (overrides config)")
	fs.BoolVar(&opts.printOnce, "print", false, "render the dashboard once to stdout and exit")
	fs.StringVar(&opts.query, "query", "", "initial search query")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: widgetdash [flags]\n\n")
		fmt.Fprintf(fs.Output(), "widgetdash is a terminal dashboard of security widgets grouped\n")
		fmt.Fprintf(fs.Output(), "by category, with search and add/remove.\n\n")
		fmt.Fprintf(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

func loadConfig(opts options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFromFile(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if opts.columns > 0 {
		cfg.SetColumns(opts.columns)
	}
	if opts.logFile != "" {
		cfg.LogFile = opts.logFile
	}
	return cfg, nil
}

// setupLogging sends the standard logger to cfg.LogFile, or nowhere. The
// TUI owns the terminal so logs never go to stderr.
func setupLogging(cfg *config.Config) (io.Closer, error) {
	if cfg.LogFile == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := tea.LogToFile(cfg.LogFile, "widgetdash")
	if err != nil {
		return nil, fmt.Errorf("log file %q: %w", cfg.LogFile, err)
	}
	return f, nil
}

func run(ctx context.Context, opts options, stdout io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logs, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer logs.Close()

	prov, err := telemetry.Setup(ctx)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := prov.Shutdown(shutdownCtx); err != nil {
			log.Printf("telemetry shutdown: %v", err)
		}
	}()

	st := store.New(cfg.Seed())
	log.Printf("widgetdash: %d categories, columns=%d, tracing=%v", len(st.Categories()), cfg.Columns, prov.Enabled())

	if opts.printOnce {
		d := ui.NewDashboardView(cfg.Title, cfg.Columns, st.Categories(), nil)
		d.SetQuery(opts.query)
		_, err := fmt.Fprintln(stdout, d.View())
		return err
	}

	zones := ui.NewZones()
	defer zones.Close()

	app := ui.NewAppModel(ctx, st, ui.Options{
		Title:         cfg.Title,
		Columns:       cfg.Columns,
		ConfirmRemove: cfg.ConfirmRemove,
		Zones:         zones,
	})
	defer app.Close()
	if opts.query != "" {
		app.Dashboard.SetQuery(opts.query)
	}

	p := tea.NewProgram(app.AsTeaModel(),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err = p.Run()
	return err
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	// Piped output gets the static rendering.
	if !isTerminal(os.Stdout) {
		opts.printOnce = true
	}
	if err := run(context.Background(), opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
