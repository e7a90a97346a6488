package main

import (
	"github.com/spf13/cobra"

	"github.com/meigma/embedfs"
)

func newUnpackCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unpack <container> <dest>",
		Short: "Recreate the directory tree stored in a container",
		Long: `Unpack validates the whole container before writing. Existing
directories under dest are reused and existing files are overwritten.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return embedfs.UnpackFile(cmd.Context(), args[0], args[1],
				embedfs.UnpackWithLogger(logger(cmd)))
		},
	}
}
