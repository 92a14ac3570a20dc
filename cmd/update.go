package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parladev/parla/internal/selfupdate"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update parla to the latest release",
	RunE: func(cmd *cobra.Command, args []string) error {
		checkOnly, _ := cmd.Flags().GetBool("check")
		checker := selfupdate.New()

		if checkOnly {
			result, err := checker.Check(cmd.Context(), version)
			if err != nil {
				return err
			}
			if result.UpdateAvailable {
				fmt.Printf("Update available: %s -> %s\n%s\n",
					result.CurrentVersion, result.LatestVersion, result.ReleaseURL)
			} else {
				fmt.Println("Already up to date.")
			}
			return nil
		}

		tag, _ := cmd.Flags().GetString("tag")
		err := checker.Update(cmd.Context(), version, tag, func(p selfupdate.Progress) {
			fmt.Println(p.Message)
		})
		if errors.Is(err, selfupdate.ErrAlreadyLatest) {
			fmt.Println("Already up to date.")
			return nil
		}
		return err
	},
}

func init() {
	updateCmd.Flags().Bool("check", false, "Only check whether an update exists")
	updateCmd.Flags().String("tag", "", "Install a specific release tag")
}
