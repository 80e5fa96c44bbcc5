package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gwend/finderinfo"
)

type app struct {
	out   io.Writer
	log   *slog.Logger
	store finderinfo.Store
}

// newRootCmd builds the command tree over store, writing results to out and
// logs to errOut
func newRootCmd(store finderinfo.Store, out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, store: store}
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "finderinfo",
		Short:         "Inspect and edit com.apple.FinderInfo records",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			a.log = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(
		a.readCmd(),
		a.parseHexCmd(),
		a.readFileTypeCmd(),
		a.writeFileTypeCmd(),
		a.setColorCmd(),
		a.setCustomIconCmd(),
	)
	return rootCmd
}
