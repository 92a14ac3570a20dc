package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Export or import the attempt history",
}

var historyExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the attempt history as JSON (stdout when no file is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		out := os.Stdout
		if len(args) == 1 {
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			defer f.Close()
			out = f
		}
		return st.Attempts().ExportJSON(cmd.Context(), out)
	},
}

var historyImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merge a previously exported attempt history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open import file: %w", err)
		}
		defer f.Close()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := st.Attempts().ImportJSON(cmd.Context(), f)
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d attempts.\n", n)
		return nil
	},
}

func init() {
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyImportCmd)
}
