package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/atelier-tools/sift/pkg/runner"
)

// runCmd starts the line-delimited JSON message loop on Stdin/Stdout,
// the transport plugin front ends speak.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the JSON message loop on stdin/stdout",
	Long: `Processes newline-delimited JSON request envelopes from stdin and
writes progress, results and downloads to stdout as the same envelope
shape. Logs go to stderr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := loadTree()
		if err != nil {
			return err
		}
		r, err := runner.New(tree,
			runner.WithLogger(newLogger()),
			runner.WithPreferenceStore(newPreferenceStore()),
		)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return r.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
