package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/meigma/embedfs"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list <container>",
		Short: "List the entries of a container",
		Args:  cobra.ExactArgs(1),
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read container: %w", err)
	}
	entries, err := embedfs.Inspect(data)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", args[0], err)
	}

	out := tablewriter.NewWriter(cmd.OutOrStdout())
	out.SetHeader([]string{"Kind", "Path", "Offset", "Header", "Total", "Size", "Digest"})
	out.SetAlignment(tablewriter.ALIGN_LEFT)
	out.SetAutoWrapText(false)
	for _, e := range entries {
		size, dgst := "", ""
		if e.Kind == embedfs.KindFile {
			size = strconv.FormatUint(uint64(e.Size), 10)
			dgst = e.Digest.String()
		}
		out.Append([]string{
			e.Kind.String(),
			e.Path,
			fmt.Sprintf("%#x", e.Offset),
			strconv.FormatUint(uint64(e.HeaderLen), 10),
			strconv.FormatUint(uint64(e.TotalLen), 10),
			size,
			dgst,
		})
	}
	out.Render()
	return nil
}
