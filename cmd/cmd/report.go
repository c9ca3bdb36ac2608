package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/ostafen/imgsniff/pkg/dfxml"
	"github.com/spf13/cobra"
)

func DefineReportCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "report <file.xml>",
		Short:        "Summarize a DFXML report produced by 'identify --output'",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunReport,
	}
}

func RunReport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	objs, err := dfxml.ReadFileObjects(f)
	if err != nil {
		return err
	}

	counts := make(map[string]int)
	var size uint64
	for _, obj := range objs {
		name := obj.Format
		if obj.Error != "" {
			name = "(error)"
		}
		counts[name]++
		size += obj.FileSize
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FORMAT\tFILES")
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%d\n", name, counts[name])
	}
	fmt.Fprintf(w, "TOTAL\t%d (%s)\n", len(objs), formatBytes(int64(size)))
	return w.Flush()
}
