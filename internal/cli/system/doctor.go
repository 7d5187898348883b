package system

import (
	"fmt"

	"github.com/chrisjoiner1989/bible-steps/internal/backup"
	"github.com/chrisjoiner1989/bible-steps/internal/cli"
	"github.com/chrisjoiner1989/bible-steps/internal/constants"
	"github.com/chrisjoiner1989/bible-steps/internal/models"
	"github.com/chrisjoiner1989/bible-steps/internal/storage"
	"github.com/chrisjoiner1989/bible-steps/internal/utils"
	"github.com/chrisjoiner1989/bible-steps/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	if err := checkStorage(ctx); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
	}

	if err := checkLedger(ctx); err != nil {
		fmt.Printf("❌ Progress ledger: FAIL\n   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Progress ledger: OK\n")
	}

	if err := checkCompletionLog(ctx); err != nil {
		fmt.Printf("❌ Completion log: FAIL\n   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Completion log: OK\n")
	}

	if err := checkCatalog(ctx); err != nil {
		fmt.Printf("❌ Devotion catalog: FAIL\n   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Devotion catalog: OK\n")
	}

	// Completion entries may reference deleted devotions; history outlives
	// the catalog.
	if n := countDanglingReferences(ctx); n > 0 {
		fmt.Printf("⚠ Completion references: %d entries reference deleted devotions (harmless)\n", n)
	} else {
		fmt.Printf("✓ Completion references: OK\n")
	}

	if err := checkBackups(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	if err := checkTimezone(ctx); err != nil {
		fmt.Printf("❌ Timezone: FAIL\n   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func checkStorage(ctx *cli.Context) error {
	return ctx.Store.Load()
}

func checkLedger(ctx *cli.Context) error {
	var p models.Progress
	if !ctx.Store.Get(constants.KeyProgress, &p) {
		// No ledger yet is a valid fresh state.
		return nil
	}

	if p.CurrentStreak < 0 || p.LongestStreak < 0 || p.TotalCompleted < 0 {
		return fmt.Errorf("negative counter in ledger")
	}
	if p.CurrentStreak > p.LongestStreak {
		return fmt.Errorf("current streak (%d) exceeds longest streak (%d)", p.CurrentStreak, p.LongestStreak)
	}
	if p.GracePeriodActive && p.GracePeriodEndsAt == nil {
		return fmt.Errorf("grace period active without an end time")
	}
	if p.LastCompletedDate == "" && (p.CurrentStreak != 0 || p.TotalCompleted != 0) {
		return fmt.Errorf("ledger has counts but no last completed date")
	}
	if p.LastCompletedDate != "" && !utils.ValidateDateKey(p.LastCompletedDate) {
		return fmt.Errorf("malformed last completed date: %q", p.LastCompletedDate)
	}
	return nil
}

func checkCompletionLog(ctx *cli.Context) error {
	var entries []models.Completion
	ctx.Store.Get(constants.KeyCompletedDevotions, &entries)
	for i, entry := range entries {
		if entry.DevotionID == "" {
			return fmt.Errorf("entry %d has no devotion id", i)
		}
		if !utils.ValidateDateKey(entry.Date) {
			return fmt.Errorf("entry %d has malformed date key: %q", i, entry.Date)
		}
	}
	return nil
}

func checkCatalog(ctx *cli.Context) error {
	devotions := ctx.Catalog.List()
	seen := make(map[string]bool, len(devotions))
	for _, d := range devotions {
		if seen[d.ID] {
			return fmt.Errorf("duplicate devotion id: %s", d.ID)
		}
		seen[d.ID] = true
		if err := validation.ValidateDevotion(d); err != nil {
			return fmt.Errorf("devotion %s: %w", d.ID, err)
		}
	}
	return nil
}

func countDanglingReferences(ctx *cli.Context) int {
	ids := make(map[string]bool)
	for _, d := range ctx.Catalog.List() {
		ids[d.ID] = true
	}

	var entries []models.Completion
	ctx.Store.Get(constants.KeyCompletedDevotions, &entries)

	dangling := 0
	for _, entry := range entries {
		if !ids[entry.DevotionID] {
			dangling++
		}
	}
	return dangling
}

func checkBackups(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store)
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found; run '%s backup export'", constants.AppName)
	}
	return nil
}

func checkTimezone(ctx *cli.Context) error {
	settings := storage.LoadSettings(ctx.Store)
	if !utils.ValidateTimezone(settings.Timezone) {
		return fmt.Errorf("invalid timezone in settings: %q", settings.Timezone)
	}
	return nil
}
