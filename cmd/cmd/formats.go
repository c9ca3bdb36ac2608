// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/ostafen/imgsniff/pkg/imagefmt"
	"github.com/spf13/cobra"
)

func DefineFormatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List all supported image formats",
		Long: `The 'formats' command displays the signature table in evaluation order.
Each row shows the format name, its canonical extension, media type, the detection modes it applies to, and the byte pattern matched.
Earlier rows take precedence over later ones.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         RunFormats,
	}

	cmd.Flags().String("mode", imagefmt.WindowMode.String(), "only list signatures evaluated in the given mode (slice, window)")
	return cmd
}

func RunFormats(cmd *cobra.Command, args []string) error {
	modeName, _ := cmd.Flags().GetString("mode")

	var mode imagefmt.Mode
	switch modeName {
	case imagefmt.SliceMode.String():
		mode = imagefmt.SliceMode
	case imagefmt.WindowMode.String():
		mode = imagefmt.WindowMode
	default:
		return fmt.Errorf("unknown mode %q", modeName)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tEXT\tMIME\tMODES\tSIGNATURE")

	for _, sig := range imagefmt.Signatures(mode) {
		modes := "slice,window"
		if sig.WindowOnly {
			modes = "window"
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			sig.Format,
			sig.Format.Ext(),
			sig.Format.MIMEType(),
			modes,
			sig.Match,
		)
	}
	return w.Flush()
}
