package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lifewbs/lifewbs/internal/auditlog"
	"github.com/lifewbs/lifewbs/internal/config"
	"github.com/lifewbs/lifewbs/internal/model"
	"github.com/lifewbs/lifewbs/internal/valuation"
	"github.com/lifewbs/lifewbs/internal/wbs"
	"github.com/lifewbs/lifewbs/internal/yen"
)

func newReportCommand() *cobra.Command {
	var dir string
	var showAudit bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the dashboard and WBS table",
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runReport(absDir, showAudit)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().BoolVar(&showAudit, "audit", false, "also show the audit log")

	return cmd
}

func runReport(dir string, showAudit bool) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}
	if env.NoColor {
		color.NoColor = true
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return err
	}
	ledger, err := wbs.Load(filepath.Join(dir, cfg.Ledger.File))
	if err != nil {
		return err
	}

	k := ledger.KPIs()
	fmt.Printf("Remaining life asset — %s\n", healthColor(k.Health).Sprint(string(k.Health)))
	fmt.Printf("%s / %s (%s%%)\n\n",
		yen.Readable(k.CurrentAsset), yen.Readable(valuation.InitialCapital), k.GaugePercent.StringFixed(0))

	switch k.Health {
	case wbs.HealthBankrupt:
		color.Red("BANKRUPT — the balance went negative. Change course now.")
		fmt.Println()
	case wbs.HealthCritical:
		color.Yellow("CRITICAL — the balance fell below ¥3B. Little room left.")
		fmt.Println()
	}

	fmt.Printf("Current asset: %s   Total loss: %s   Actions: %d\n\n",
		yen.Readable(k.CurrentAsset), yen.Readable(-k.TotalLoss), k.ActionCount)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTASK\tSTATUS\tPL\tMEMO")
	for _, row := range ledger.SortedRows() {
		indent := strings.Repeat("  ", row.Depth())
		fmt.Fprintf(tw, "%s\t%s%s\t%s\t%s\t%s\n",
			row.ID, indent, row.Task, statusLabel(row.Status), yen.Format(row.PL), row.Memo)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if showAudit {
		entries, err := auditlog.Read(dir)
		if err != nil {
			return err
		}
		fmt.Println()
		for _, e := range entries {
			fmt.Printf("%s  %-7s %-6s %s\n", e.Timestamp.Format("2006-01-02 15:04"), e.Op, e.RowID, e.Details)
		}
	}
	return nil
}

func healthColor(h wbs.HealthBand) *color.Color {
	switch h {
	case wbs.HealthBankrupt, wbs.HealthCritical:
		return color.New(color.FgRed, color.Bold)
	case wbs.HealthCaution:
		return color.New(color.FgYellow, color.Bold)
	}
	return color.New(color.FgGreen, color.Bold)
}

// statusLabel colors known labels; unknown labels from manual edits print
// as-is.
func statusLabel(status string) string {
	switch status {
	case model.ActionStatusQuo.Label(), model.StatusLost:
		return color.RedString(status)
	case model.ActionChallenge.Label(), model.StatusKept:
		return color.GreenString(status)
	case model.ActionBigWin.Label(), model.StatusBonus:
		return color.CyanString(status)
	case model.StatusInProgress:
		return status
	}
	return status
}
