// Implements the TOML configuration of the svg2excalidraw command.
//
// A configuration file looks like
//
//	output = "drawing.excalidraw.json"
//	verbose = true
//	log_file = "svg2excalidraw.log"
//	error_mode = "warn"
//
//	[preview]
//	png = "drawing.png"
//	scale = 2
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/benoitkugler/svg2excalidraw/excalidraw"
	"github.com/benoitkugler/svg2excalidraw/svgdoc"
	"github.com/pelletier/go-toml/v2"
)

var errInvalidScale = errors.New("preview scale must be positive")

// Config stores the settings of a conversion run.
type Config struct {
	// Output is the path of the written scene. Empty means
	// derived from the input path.
	Output    string           `toml:"output"`
	Verbose   bool             `toml:"verbose"`
	LogFile   string           `toml:"log_file"`
	ErrorMode svgdoc.ErrorMode `toml:"error_mode"`
	// Source is the provenance written in the scene.
	Source  string  `toml:"source"`
	Preview Preview `toml:"preview"`
}

// Preview configures the optional rendering of the scene.
type Preview struct {
	PNG   string  `toml:"png"`
	PDF   string  `toml:"pdf"`
	Scale float64 `toml:"scale"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Source:  excalidraw.DefaultSource,
		Preview: Preview{Scale: 1},
	}
}

// Validate checks the values which can't be checked by the decoder.
func (c Config) Validate() error {
	if c.Preview.Scale <= 0 {
		return fmt.Errorf("%w (got %g)", errInvalidScale, c.Preview.Scale)
	}
	return nil
}

// Decode reads a TOML configuration from `r`. Fields missing
// from the input keep their default value; unknown fields are an error.
func Decode(r io.Reader) (Config, error) {
	c := Default()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads the configuration file at `path`.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	c, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("invalid configuration file %s: %w", path, err)
	}
	return c, nil
}

// Encode writes `c` as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
