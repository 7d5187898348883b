package backups

import (
	"fmt"

	"github.com/chrisjoiner1989/bible-steps/internal/backup"
	"github.com/chrisjoiner1989/bible-steps/internal/cli"
	"github.com/chrisjoiner1989/bible-steps/internal/constants"
)

type ExportCmd struct{}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store)
	path, err := mgr.ExportToFile(ctx.Now())
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	fmt.Printf("Exported backup to: %s\n", path)
	return nil
}

type ImportCmd struct {
	Path string `arg:"" type:"existingfile" help:"Backup file to restore from."`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store)
	if err := mgr.RestoreFromFile(c.Path, ctx.Now()); err != nil {
		return err
	}
	fmt.Println("Backup restored successfully.")
	return nil
}

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store)
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}

	if len(backups) == 0 {
		fmt.Printf("No backups found in %s.\n", mgr.GetBackupDir())
		return nil
	}

	for _, b := range backups {
		fmt.Printf("%s  %s  %d bytes\n", b.Timestamp.Format("2006-01-02 15:04"), b.Path, b.Size)
	}
	return nil
}

type ResetCmd struct {
	Yes        bool `help:"Confirm the reset without prompting."`
	SkipBackup bool `help:"Skip the automatic export before resetting."`
}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		fmt.Println("This permanently deletes all devotions, completions, and progress.")
		fmt.Printf("Re-run with --yes to confirm, or '%s backup export' first to keep a copy.\n", constants.AppName)
		return nil
	}

	mgr := backup.NewManager(ctx.Store)
	if !c.SkipBackup {
		path, err := mgr.ExportToFile(ctx.Now())
		if err != nil {
			return fmt.Errorf("failed to export before reset (use --skip-backup to force): %w", err)
		}
		fmt.Printf("Exported backup to: %s\n", path)
	}

	mgr.Reset()
	fmt.Println("All data reset.")
	return nil
}
