package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"cleanup-discogs/internal/scan"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var dumpPath string
	var releaseID int64
	var summary bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a release data dump and report data entry smells",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			if _, err := os.Stat(dumpPath); err != nil {
				return fmt.Errorf("dump file: %w", err)
			}

			runner, err := scan.New(logger, cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			_, err = runner.Run(runCtx, scan.Options{
				DumpPath:  dumpPath,
				ReleaseID: releaseID,
				Summary:   summary,
			})
			if errors.Is(err, scan.ErrReleaseNotFound) {
				return fmt.Errorf("release %d: %w", releaseID, err)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&dumpPath, "dump", "d", "", "Release data dump file (gzip or plain XML)")
	cmd.Flags().Int64VarP(&releaseID, "release", "r", 0, "Scan a single release id")
	cmd.Flags().BoolVar(&summary, "summary", false, "Print per-category totals after the findings")
	_ = cmd.MarkFlagRequired("dump")

	return cmd
}
