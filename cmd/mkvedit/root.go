package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var mkvmergeFlag string

	ctx := newCommandContext(&configFlag, &logLevelFlag, &mkvmergeFlag)

	rootCmd := &cobra.Command{
		Use:   "mkvedit [file.mkv]",
		Short: "Select, rename and re-flag MKV tracks, then remux with mkvmerge",
		Long: "mkvedit walks through the tracks of a Matroska file, lets you choose which\n" +
			"audio and subtitle tracks to keep, rename tracks and pick the default track\n" +
			"per type, then writes <name>_modified.mkv with mkvmerge.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if len(args) == 1 {
				input = args[0]
			}
			return runSession(cmd, ctx, input)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Override logging.level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&mkvmergeFlag, "mkvmerge", "", "mkvmerge executable name or path")

	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
