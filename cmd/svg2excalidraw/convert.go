package main

import (
	"fmt"
	"os"

	"github.com/benoitkugler/svg2excalidraw/config"
	"github.com/benoitkugler/svg2excalidraw/converter"
	"github.com/benoitkugler/svg2excalidraw/excalidraw"
	"github.com/benoitkugler/svg2excalidraw/logger"
	"github.com/benoitkugler/svg2excalidraw/svgdoc"
	"github.com/benoitkugler/svg2excalidraw/svgpdf"
	"github.com/benoitkugler/svg2excalidraw/svgraster"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// convertFlags stores the command line values, which
// override the configuration file when set.
type convertFlags struct {
	configFile string
	output     string
	verbose    bool
	logFile    string
	errorMode  string
	png, pdf   string
	scale      float64
}

func newConvertCmd() *cobra.Command {
	var flags convertFlags
	cmd := quiet(&cobra.Command{
		Use:     "svg2excalidraw [flags] <input>",
		Short:   "Convert SVG files to Excalidraw format",
		Version: version,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			return runConvert(cmd, args[0], cfg)
		},
	})
	fs := cmd.Flags()
	fs.StringVarP(&flags.output, "output", "o", "", "output file path (default: <input>.excalidraw.json)")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose output")
	fs.StringVar(&flags.configFile, "config", "", "TOML configuration file")
	fs.StringVar(&flags.logFile, "log-file", "", "also write logs as JSON to this file")
	fs.StringVar(&flags.errorMode, "error-mode", "ignore", "treatment of unsupported elements: ignore, warn or strict")
	fs.StringVar(&flags.png, "png", "", "write a PNG preview of the scene")
	fs.StringVar(&flags.pdf, "pdf", "", "write a PDF preview of the scene")
	fs.Float64Var(&flags.scale, "scale", 1, "scale of the PNG preview")
	return cmd
}

// resolve loads the configuration file, if any, and applies
// the flags explicitly given.
func (f convertFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if f.configFile != "" {
		var err error
		cfg, err = config.Load(f.configFile)
		if err != nil {
			return cfg, err
		}
	}
	changed := cmd.Flags().Changed
	if changed("output") {
		cfg.Output = f.output
	}
	if changed("verbose") {
		cfg.Verbose = f.verbose
	}
	if changed("log-file") {
		cfg.LogFile = f.logFile
	}
	if changed("error-mode") {
		mode, err := svgdoc.ParseErrorMode(f.errorMode)
		if err != nil {
			return cfg, err
		}
		cfg.ErrorMode = mode
	}
	if changed("png") {
		cfg.Preview.PNG = f.png
	}
	if changed("pdf") {
		cfg.Preview.PDF = f.pdf
	}
	if changed("scale") {
		cfg.Preview.Scale = f.scale
	}
	return cfg, cfg.Validate()
}

func runConvert(cmd *cobra.Command, input string, cfg config.Config) error {
	out := cmd.OutOrStdout()
	printBanner(out)

	log, closeLog := logger.New(logger.Options{Verbose: cfg.Verbose, File: cfg.LogFile, Console: cmd.ErrOrStderr()})
	defer closeLog()

	written, err := converter.ProcessFile(input, cfg.Output, converter.Options{
		Verbose:   cfg.Verbose,
		Logger:    log,
		ErrorMode: cfg.ErrorMode,
		Source:    cfg.Source,
	})
	if err != nil {
		log.Error("conversion failed", zap.String("input", input), zap.Error(err))
		return err
	}
	success.Fprintf(out, "Successfully converted to: %s\n", written)

	if cfg.Preview.PNG == "" && cfg.Preview.PDF == "" {
		return nil
	}
	return writePreviews(cmd, written, cfg.Preview, log)
}

// writePreviews renders the scene stored at `scenePath`.
func writePreviews(cmd *cobra.Command, scenePath string, preview config.Preview, log *zap.Logger) error {
	doc, err := readScene(scenePath)
	if err != nil {
		return err
	}
	if preview.PNG != "" {
		if err := writeFile(preview.PNG, func(f *os.File) error {
			return svgraster.WritePNG(f, doc, preview.Scale)
		}); err != nil {
			return fmt.Errorf("writing PNG preview: %w", err)
		}
		log.Info("PNG preview written", zap.String("path", preview.PNG), zap.Float64("scale", preview.Scale))
		success.Fprintf(cmd.OutOrStdout(), "Preview written to: %s\n", preview.PNG)
	}
	if preview.PDF != "" {
		if err := writeFile(preview.PDF, func(f *os.File) error {
			return svgpdf.RenderDocument(doc, f)
		}); err != nil {
			return fmt.Errorf("writing PDF preview: %w", err)
		}
		log.Info("PDF preview written", zap.String("path", preview.PDF))
		success.Fprintf(cmd.OutOrStdout(), "Preview written to: %s\n", preview.PDF)
	}
	return nil
}

func readScene(path string) (*excalidraw.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return excalidraw.Decode(f)
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
