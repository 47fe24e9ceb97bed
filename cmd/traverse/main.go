package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/traverse/settings"
)

var CLI struct {
	Debug    bool   `help:"Whether to enable debug logging, including the decisions made by the testers."`
	Settings string `help:"Path of the settings file." default:"traverse.toml" type:"path"`

	Eval struct {
		Level string   `arg:"" help:"YAML level file to load." type:"existingfile"`
		X     int32    `help:"X position of the actor." default:"512"`
		Y     int32    `help:"Y position of the actor's feet, growing downwards." default:"0"`
		Z     int32    `help:"Z position of the actor." default:"512"`
		Yaw   float32  `help:"Heading of the actor in degrees, 0 facing north and 90 facing east." default:"0"`
		Room  int16    `help:"Room the actor is in." default:"0"`
		State string   `help:"Active state of the actor." default:"idle"`
		Input []string `help:"Inputs held during the tick." sep:","`
		Water string   `help:"Water status of the actor." enum:"dry,wade,surface,underwater" default:"dry"`
	} `cmd:"" help:"Run every traversal test for one actor and print the outcomes in order."`

	Config struct {
	} `cmd:"" help:"Write the default settings to the settings file."`

	Soak struct {
		Level  string `arg:"" help:"YAML level file to load." type:"existingfile"`
		Actors int    `help:"Amount of independent actors to run." default:"64"`
		Ticks  int    `help:"Amount of ticks to run each actor for." default:"600"`
		Seed   uint64 `help:"Seed for the actor placement and inputs." default:"1"`
	} `cmd:"" help:"Run many actors on the worker pool and print a digest of their outcomes."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	sentry.Flush(time.Second * 2)
	os.Exit(1)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("traverse"),
		kong.Description("traversal feasibility tests on a sector world"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if ctx.Command() == "config" {
		if err := settings.SaveDefault(CLI.Settings); err != nil {
			writeError(err)
		}
		fmt.Printf("default settings written to %s\n", CLI.Settings)
		return
	}

	s, err := loadSettings(CLI.Settings)
	if err != nil {
		writeError(err)
	}

	level := s.LogLevel()
	if CLI.Debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if s.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         s.Sentry.DSN,
			Environment: s.Sentry.Environment,
		}); err != nil {
			log.Warn("unable to initialize sentry", "err", err)
		}
		defer sentry.Flush(time.Second * 2)
	}
	defer sentry.Recover()

	switch ctx.Command() {
	case "eval <level>":
		err = evalCommand(s, log)
	case "soak <level>":
		err = soakCommand(s, log)
	}
	if err != nil {
		writeError(err)
	}
}

// loadSettings loads the settings file at path, using the default settings if it does not exist.
func loadSettings(path string) (settings.Settings, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return settings.DefaultSettings(), nil
	}
	return settings.Load(path)
}
