// Command embedfs packs directory trees into EmbedFS containers and
// unpacks or lists existing containers.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCommand().ExecuteContext(ctx)
	stop()
	exitOnErr(os.Stderr, err)
}

// exitOnErr writes err to w and exits with code 1.
// Does nothing if err is nil.
func exitOnErr(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(w, "Error:", err)
	os.Exit(1)
}

const verboseFlag = "verbose"

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "embedfs",
		Short: "EmbedFS container tool",
		Long: `embedfs converts between directory trees and EmbedFS containers, the
flat little-endian filesystem images loaded by embedded web servers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolP(verboseFlag, "v", false, "Log every header at debug level")
	root.AddCommand(
		newPackCommand(),
		newUnpackCommand(),
		newListCommand(),
		newServeCommand(),
	)
	return root
}

// logger returns a text logger on the command's stderr. The level is info,
// or debug when --verbose is set.
func logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool(verboseFlag); verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
