package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/lifewbs/lifewbs/internal/config"
	"github.com/lifewbs/lifewbs/internal/gitops"
	"github.com/lifewbs/lifewbs/internal/valuation"
	"github.com/lifewbs/lifewbs/internal/wbs"
	"github.com/lifewbs/lifewbs/internal/yen"
)

func newInitCommand() *cobra.Command {
	var owner string
	var age int
	var wins int
	var winDetails []string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Value a life and open its ledger",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, owner, age, wins, winDetails)
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "owner name")
	cmd.Flags().IntVar(&age, "age", 0, "current age (required)")
	_ = cmd.MarkFlagRequired("age")
	cmd.Flags().IntVar(&wins, "wins", 0, "count of past challenges")
	cmd.Flags().StringArrayVar(&winDetails, "win", nil, "description of a past challenge (repeatable)")

	return cmd
}

func runInit(dir, owner string, age, wins int, winDetails []string) error {
	b, err := valuation.Valuate(age, wins)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Join(dir, "logs"), 0o755); err != nil {
		return fmt.Errorf("creating logs directory: %w", err)
	}

	// Write life.yaml.
	cfg := config.Default(owner, age)
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write the genesis ledger.
	ledger, err := wbs.Genesis(age, wins, winDetails, time.Now().Year())
	if err != nil {
		return err
	}
	if err := ledger.Save(filepath.Join(dir, cfg.Ledger.File)); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}

	// Write .gitignore. The audit log is local history, not ledger state.
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("logs/\n"), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	// Initialize git and take the opening snapshot.
	hash := ""
	if cfg.Git.AutoCommit {
		if !gitops.IsRepo(dir) {
			if err := gitops.Init(dir); err != nil {
				return fmt.Errorf("git init: %w", err)
			}
		}
		hash, err = gitops.Snapshot(dir, "init: open the books", cfg.Git.AuthorName, cfg.Git.AuthorEmail)
		if err != nil {
			return fmt.Errorf("initial commit: %w", err)
		}
	}

	fmt.Printf("Time cost:     %s\n", yen.Readable(-b.TimeCost))
	fmt.Printf("Goodwill:      %s\n", yen.Readable(b.Goodwill))
	fmt.Printf("Opening asset: %s\n", yen.Readable(b.InitialAsset))
	if hash != "" {
		fmt.Printf("Initialized life ledger at %s (%s)\n", dir, hash)
	} else {
		fmt.Printf("Initialized life ledger at %s\n", dir)
	}
	return nil
}
