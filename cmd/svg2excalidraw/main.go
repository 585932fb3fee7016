// Command svg2excalidraw converts SVG files into Excalidraw scenes.
//
// Usage:
//
//	svg2excalidraw [flags] <input.svg>
//	svg2excalidraw validate <scene.excalidraw.json>
//	svg2excalidraw check <scene.excalidraw.json>
//	svg2excalidraw init-config [config.toml]
package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

var (
	banner  = color.New(color.FgCyan, color.Bold)
	success = color.New(color.FgGreen)
	warning = color.New(color.FgYellow)
	failure = color.New(color.FgRed)
)

func printBanner(w io.Writer) {
	banner.Fprintln(w, "SVG to Excalidraw Converter")
	banner.Fprintln(w, "================================")
}

// passFail formats the result of a check.
func passFail(ok bool) string {
	if ok {
		return success.Sprint("PASS")
	}
	return failure.Sprint("FAIL")
}

func newRootCmd() *cobra.Command {
	root := newConvertCmd()
	root.AddCommand(newValidateCmd(), newCheckCmd(), newInitConfigCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		failure.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// silence cobra error printing, which is done by main
func quiet(cmd *cobra.Command) *cobra.Command {
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	return cmd
}
