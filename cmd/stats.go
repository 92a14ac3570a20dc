package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print attempt-history statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		repo := st.Attempts()
		summary, err := repo.Summary(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Attempts recorded: %d\n", summary.TotalAttempts)
		fmt.Printf("Distinct items:    %d\n", summary.DistinctLines)
		fmt.Printf("Average score:     %.0f%%\n", summary.MeanRatio*100)
		if !summary.LastAttempt.IsZero() {
			fmt.Printf("Last reviewed:     %s\n", summary.LastAttempt.Local().Format("2006-01-02 15:04"))
		}

		weakest, err := repo.WeakestLines(cmd.Context(), 10)
		if err != nil {
			return err
		}
		if len(weakest) > 0 {
			fmt.Println("\nNeeds work:")
			for _, ls := range weakest {
				fmt.Printf("  %3.0f%%  %s\n", ls.MeanRatio*100, ls.Line)
			}
		}
		return nil
	},
}
