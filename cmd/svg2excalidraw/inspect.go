package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/benoitkugler/svg2excalidraw/excalidraw"
	"github.com/spf13/cobra"
)

var errNoFreedraw = errors.New("no freedraw elements found in scene")

func newValidateCmd() *cobra.Command {
	return quiet(&cobra.Command{
		Use:   "validate <file>",
		Short: "Check the structure of an Excalidraw scene file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0])
		},
	})
}

func runValidate(cmd *cobra.Command, path string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Validating file: %s\n", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	report, err := excalidraw.Validate(data)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	success.Fprintf(out, "Format correct: Excalidraw v%d\n", report.Version)
	fmt.Fprintf(out, "Element count: %d\n", report.ElementCount())
	for _, el := range report.Elements {
		fmt.Fprintf(out, "  element %d: %s (%g, %g)\n", el.Index, el.Type, el.X, el.Y)
	}
	for _, w := range report.Warnings {
		warning.Fprintf(out, "  %s\n", w)
	}
	success.Fprintln(out, "Validation complete!")
	return nil
}

func newCheckCmd() *cobra.Command {
	return quiet(&cobra.Command{
		Use:   "check <file>",
		Short: "Check the integrity of the freedraw elements of a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0])
		},
	})
}

func runCheck(cmd *cobra.Command, path string) error {
	doc, err := readScene(path)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	banner.Fprintln(out, "Conversion Quality Check")

	types, counts := excalidraw.CountByType(doc)
	for _, typ := range types {
		fmt.Fprintf(out, "  %s: %d\n", typ, counts[typ])
	}

	var found bool
	for i, el := range doc.Elements {
		in, err := excalidraw.CheckFreedraw(el)
		if err != nil { // other element types
			continue
		}
		found = true
		fmt.Fprintf(out, "\nElement %d at (%g, %g), size %g x %g\n", i, el.X, el.Y, el.Width, el.Height)
		fmt.Fprintf(out, "  Number of points: %d\n", in.Points)
		if in.Points != 0 {
			fmt.Fprintf(out, "  X range: %g to %g\n", in.MinX, in.MaxX)
			fmt.Fprintf(out, "  Y range: %g to %g\n", in.MinY, in.MaxY)
			fmt.Fprintf(out, "  First point (absolute): [%.2f, %.2f]\n", in.AbsoluteFirstPoint[0], in.AbsoluteFirstPoint[1])
		}
		fmt.Fprintf(out, "  Size consistency: %s\n", passFail(in.SizeConsistent))
		fmt.Fprintf(out, "  Points start at origin: %s\n", passFail(in.StartsAtOrigin))
		fmt.Fprintf(out, "  Quality: %s\n", in.Quality)
	}
	if !found {
		return errNoFreedraw
	}
	success.Fprintln(out, "\nAnalysis complete!")
	return nil
}
