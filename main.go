package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/m96-chan/slacko-teams/cmd"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Version = version
	cmd.Commit = commit
	cmd.Date = date

	if err := cmd.Run(); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}
