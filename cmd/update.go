package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/lamila/fundabuddy/internal/selfupdate"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update funda to the latest release",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		checker := selfupdate.NewChecker(selfupdate.WithTimeout(2 * time.Minute))
		err := checker.Update(ctx, &selfupdate.UpdateInput{CurrentVersion: version},
			func(p selfupdate.UpdateProgress) { fmt.Println(p.Message) })

		switch {
		case err == nil:
			return nil
		case errors.Is(err, selfupdate.ErrDevBuild):
			fmt.Println("This is a development build; install a release build to use self-update.")
			return nil
		case errors.Is(err, selfupdate.ErrAlreadyLatest):
			fmt.Println("funda is already up to date.")
			return nil
		case os.IsPermission(err):
			return fmt.Errorf("%w\n\nTry running: sudo funda update", err)
		}
		return err
	},
}
