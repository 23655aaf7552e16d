package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lifewbs/lifewbs/internal/config"
	"github.com/lifewbs/lifewbs/internal/model"
	"github.com/lifewbs/lifewbs/internal/wbs"
	"github.com/lifewbs/lifewbs/internal/yen"
)

func newEditCommand() *cobra.Command {
	var dir string
	var task string
	var action string
	var memo string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a recorded action in place",
		Long: "Rewrites a monthly action row. Prefer recording an offsetting row:\n" +
			"in-place edits erase the history this ledger exists to keep.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runEdit(absDir, args[0], task, action, memo)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&task, "task", "", "new task text")
	cmd.Flags().StringVar(&action, "action", "", "new action (status-quo, challenge, big-win)")
	cmd.Flags().StringVar(&memo, "memo", "", "new memo")

	return cmd
}

func runEdit(dir, id, task, actionStr, memo string) error {
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return err
	}
	ledgerPath := filepath.Join(dir, cfg.Ledger.File)
	ledger, err := wbs.Load(ledgerPath)
	if err != nil {
		return err
	}

	row, ok := ledger.Get(id)
	if !ok {
		return fmt.Errorf("no row with id %s", id)
	}

	// Only monthly action rows are editable; valuation and phase rows are
	// the fixed skeleton of the ledger.
	editable := false
	for _, phaseID := range ledger.PhaseIDs() {
		if row.Parent == phaseID {
			editable = true
			break
		}
	}
	if !editable {
		return fmt.Errorf("row %s is not a monthly action row", id)
	}

	if task == "" {
		task = row.Task
	}
	if memo == "" {
		memo = row.Memo
	}
	var action model.Action
	if actionStr == "" {
		action, err = model.ParseAction(row.Status)
	} else {
		action, err = model.ParseAction(actionStr)
	}
	if err != nil {
		return err
	}

	if err := ledger.UpdateRow(id, task, action, memo); err != nil {
		return err
	}
	if err := ledger.Save(ledgerPath); err != nil {
		return err
	}

	updated, _ := ledger.Get(id)
	hash := snapshot(dir, cfg, fmt.Sprintf("edit: %s %s", id, action.Label()))
	audit(dir, "edit", id, fmt.Sprintf("%s %s", action.Label(), yen.Format(updated.PL)), hash)

	fmt.Printf("Updated %s: %s (%s)\n", id, action.Label(), yen.Format(updated.PL))
	return nil
}
