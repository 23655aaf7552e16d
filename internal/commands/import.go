package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lifewbs/lifewbs/internal/config"
	"github.com/lifewbs/lifewbs/internal/wbs"
)

func newImportCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Install a previously exported ledger CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runImport(absDir, args[0])
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")

	return cmd
}

// runImport validates the whole file before anything is installed: a
// malformed row or dangling parent rejects the import and leaves the
// current ledger untouched.
func runImport(dir, file string) error {
	ledger, err := wbs.Load(file)
	if err != nil {
		return fmt.Errorf("importing %s: %w", file, err)
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return err
	}
	if err := ledger.Save(filepath.Join(dir, cfg.Ledger.File)); err != nil {
		return err
	}

	hash := snapshot(dir, cfg, fmt.Sprintf("import: %s", filepath.Base(file)))
	audit(dir, "import", "", fmt.Sprintf("%d rows from %s", ledger.Len(), filepath.Base(file)), hash)

	fmt.Printf("Imported %d rows from %s\n", ledger.Len(), file)
	return nil
}
