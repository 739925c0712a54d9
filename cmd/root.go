package cmd

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/m96-chan/slacko-teams/internal/app"
	"github.com/m96-chan/slacko-teams/internal/config"
	"github.com/m96-chan/slacko-teams/internal/logger"
)

// Build information, set by main.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Run parses CLI flags, sets up logging and config, and starts the app.
func Run() error {
	return run(os.Args[1:])
}

func run(args []string) error {
	fs := flag.NewFlagSet("slacko-teams", flag.ContinueOnError)
	configPath := fs.String("config-path", config.DefaultPath(), "path to config file")
	logPath := fs.String("log-path", logger.DefaultPath(), "path to log file")
	logLevel := fs.String("log-level", "info", "log level (debug, info, warn, error)")
	replayPath := fs.String("replay", "", "JSONC file of actions to dispatch at startup")
	headless := fs.Bool("headless", false, "print a summary of the resulting state instead of starting the TUI")
	filter := fs.String("filter", "", "fuzzy team filter")
	match := fs.String("match", "", "rank team-building recommendations against this query (headless)")
	live := fs.Bool("live", false, "connect to Slack over Socket Mode")
	version := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *version {
		fmt.Printf("slacko-teams %s (%s, %s)\n", Version, Commit, Date)
		return nil
	}

	level, err := logger.ParseLevel(*logLevel)
	if err != nil {
		return err
	}
	if err := logger.Setup(*logPath, level); err != nil {
		return err
	}

	slog.Info("starting slacko-teams", "version", Version, "config", *configPath, "log", *logPath)

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	return app.New(cfg, app.Options{
		Replay:   *replayPath,
		Headless: *headless,
		Filter:   *filter,
		Match:    *match,
		Live:     *live,
	}).Run()
}
