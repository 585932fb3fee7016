package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/benoitkugler/svg2excalidraw/config"
	"github.com/spf13/cobra"
)

func newInitConfigCmd() *cobra.Command {
	var force bool
	cmd := quiet(&cobra.Command{
		Use:   "init-config [file]",
		Short: "Write the default configuration, to the given file or to the standard output",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return config.Default().Encode(cmd.OutOrStdout())
			}
			return writeDefaultConfig(cmd, args[0], force)
		},
	})
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

func writeDefaultConfig(cmd *cobra.Command, path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	if err := writeFile(path, func(f *os.File) error {
		return config.Default().Encode(f)
	}); err != nil {
		return err
	}
	success.Fprintf(cmd.OutOrStdout(), "Configuration written to: %s\n", path)
	return nil
}
