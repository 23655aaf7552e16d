package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lifewbs/lifewbs/internal/auditlog"
	"github.com/lifewbs/lifewbs/internal/config"
	"github.com/lifewbs/lifewbs/internal/gitops"
	"github.com/lifewbs/lifewbs/internal/model"
	"github.com/lifewbs/lifewbs/internal/wbs"
	"github.com/lifewbs/lifewbs/internal/yen"
)

const monthFormat = "2006-01"

func newRecordCommand() *cobra.Command {
	var dir string
	var month string
	var task string
	var action string
	var memo string

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a month-end judgment",
		Long: "Records one month as status-quo (-¥10M), challenge (±0), or big-win (+¥50M).\n" +
			"The judgment is final: to correct a month, record an offsetting row.",
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runRecord(absDir, month, task, action, memo)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&month, "month", time.Now().Format(monthFormat), "target month (YYYY-MM)")
	cmd.Flags().StringVar(&task, "task", "", "what was done, or not done (required)")
	_ = cmd.MarkFlagRequired("task")
	cmd.Flags().StringVar(&action, "action", "", "status-quo, challenge, or big-win (required)")
	_ = cmd.MarkFlagRequired("action")
	cmd.Flags().StringVar(&memo, "memo", "", "optional note")

	return cmd
}

func runRecord(dir, month, task, actionStr, memo string) error {
	action, err := model.ParseAction(actionStr)
	if err != nil {
		return err
	}
	target, err := time.Parse(monthFormat, month)
	if err != nil {
		return fmt.Errorf("parsing month %q: %w", month, err)
	}
	task = strings.TrimSpace(task)
	if task == "" {
		return fmt.Errorf("task must not be empty")
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return err
	}
	ledgerPath := filepath.Join(dir, cfg.Ledger.File)
	ledger, err := wbs.Load(ledgerPath)
	if err != nil {
		return err
	}

	phaseID, err := ledger.FindOrCreatePhase(target.Year())
	if err != nil {
		return err
	}
	row, err := ledger.NewMonthlyRow(phaseID, month, action, task, memo)
	if err != nil {
		return err
	}
	if err := ledger.Save(ledgerPath); err != nil {
		return err
	}

	hash := snapshot(dir, cfg, fmt.Sprintf("record: %s %s", month, action.Label()))
	audit(dir, "record", row.ID, fmt.Sprintf("%s %s", action.Label(), yen.Format(row.PL)), hash)

	k := ledger.KPIs()
	fmt.Printf("Recorded %s as %s (%s)\n", row.ID, action.Label(), yen.Format(row.PL))
	fmt.Printf("Current asset: %s\n", yen.Readable(k.CurrentAsset))
	return nil
}

// snapshot commits the ledger when configured. A failed snapshot is a
// warning, not an error: the ledger on disk is already saved.
func snapshot(dir string, cfg *config.Config, message string) string {
	if !cfg.Git.AutoCommit || !gitops.IsRepo(dir) {
		return ""
	}
	hash, err := gitops.Snapshot(dir, message, cfg.Git.AuthorName, cfg.Git.AuthorEmail)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: git snapshot failed: %v\n", err)
		return ""
	}
	return hash
}

func audit(dir, op, rowID, details, hash string) {
	e := auditlog.Entry{
		Timestamp:  time.Now().UTC(),
		Op:         op,
		RowID:      rowID,
		Details:    details,
		CommitHash: hash,
	}
	if err := auditlog.Append(dir, []auditlog.Entry{e}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to write audit log: %v\n", err)
	}
}
