package main

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/chrisjoiner1989/bible-steps/internal/catalog"
	"github.com/chrisjoiner1989/bible-steps/internal/cli"
	"github.com/chrisjoiner1989/bible-steps/internal/cli/backups"
	"github.com/chrisjoiner1989/bible-steps/internal/cli/devotions"
	"github.com/chrisjoiner1989/bible-steps/internal/cli/settings"
	"github.com/chrisjoiner1989/bible-steps/internal/cli/system"
	"github.com/chrisjoiner1989/bible-steps/internal/constants"
	"github.com/chrisjoiner1989/bible-steps/internal/errors"
	"github.com/chrisjoiner1989/bible-steps/internal/logger"
	"github.com/chrisjoiner1989/bible-steps/internal/storage"
	"github.com/chrisjoiner1989/bible-steps/internal/streak"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path: a directory for JSON files, or a path ending in .db for SQLite." type:"path" default:"~/.config/bible-steps"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init   system.InitCmd   `cmd:"" help:"Initialize storage."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks on stored data."`
	Tui    system.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`

	Today    cli.TodayCmd    `cmd:"" help:"Show today's devotion."`
	Upcoming cli.UpcomingCmd `cmd:"" help:"Show upcoming scheduled devotions."`
	Complete cli.CompleteCmd `cmd:"" help:"Mark a devotion complete and update your streak."`
	Status   cli.StatusCmd   `cmd:"" help:"Show streak and progress."`

	Devotion struct {
		Add    devotions.AddCmd    `cmd:"" help:"Add a devotion."`
		List   devotions.ListCmd   `cmd:"" help:"List devotions." default:"1"`
		Show   devotions.ShowCmd   `cmd:"" help:"Show a devotion in full."`
		Edit   devotions.EditCmd   `cmd:"" help:"Edit a devotion."`
		Delete devotions.DeleteCmd `cmd:"" help:"Delete a devotion."`
	} `cmd:"" help:"Manage your devotion catalog."`

	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Profile  settings.ProfileCmd  `cmd:"" help:"View or edit your profile."`
	Notify   settings.NotifyCmd   `cmd:"" help:"Manage notification preferences."`

	Backup struct {
		Export backups.ExportCmd `cmd:"" help:"Write a backup file." default:"1"`
		Import backups.ImportCmd `cmd:"" help:"Restore from a backup file."`
		List   backups.ListCmd   `cmd:"" help:"List available backups."`
		Reset  backups.ResetCmd  `cmd:"" help:"Clear all stored data."`
	} `cmd:"" help:"Manage backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Daily devotional reading companion with streak tracking"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configDir := CLI.Config
	if strings.HasSuffix(CLI.Config, ".db") {
		configDir = filepath.Dir(CLI.Config)
	}
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		errors.Fatal(err)
	}

	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".db") {
		store = storage.NewSQLiteStore(CLI.Config)
	} else {
		store = storage.NewJSONStore(CLI.Config)
	}
	defer store.Close()

	// The init command handles its own setup.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	appCtx := &cli.Context{
		Store:   store,
		Tracker: streak.NewTracker(store),
		Catalog: catalog.New(store),
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
