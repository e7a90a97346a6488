package main

import (
	"github.com/spf13/cobra"

	"github.com/meigma/embedfs"
)

const maxFilesFlag = "max-files"

func newPackCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack <dir> <container>",
		Short: "Pack a directory tree into a container",
		Args:  cobra.ExactArgs(2),
		RunE:  runPack,
	}
	cmd.Flags().Int(maxFilesFlag, 0, "Maximum number of files to pack (0 uses the default, negative disables the limit)")
	return cmd
}

func runPack(cmd *cobra.Command, args []string) error {
	maxFiles, err := cmd.Flags().GetInt(maxFilesFlag)
	if err != nil {
		return err
	}
	return embedfs.PackFile(cmd.Context(), args[0], args[1],
		embedfs.PackWithLogger(logger(cmd)),
		embedfs.PackWithMaxFiles(maxFiles),
	)
}
