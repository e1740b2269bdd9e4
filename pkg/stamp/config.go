package stamp

import (
	"io"
	"os"
)

// StampConfig holds user options for placing a stamp on a PDF page.
type StampConfig struct {
	Page      int       // Target page, 1-based; negative counts from the end
	PosXMM    float64   // Stamp offset from the page origin, millimeters
	PosYMM    float64
	Scale     float64   // Dimensionless multiplier on the stamp's physical size
	DPI       float64   // Explicit stamp density override; 0 means probe the image
	LayerName string    // Draw the stamp inside a named toggleable layer ("" = none)
	Debug     bool      // Outline the stamp and label its position on the overlay
	Logger    io.Writer // Destination for diagnostics (nil = stdout)
}

// DefaultConfig returns a config with sensible defaults: page 1, origin
// position, original size, density probed from the stamp image.
func DefaultConfig() StampConfig {
	return StampConfig{
		Page:  1,
		Scale: 1.0,
	}
}

// Validate rejects parameter combinations that can never produce output.
// It reports the first problem found as a ConfigError.
func (c StampConfig) Validate() error {
	if c.Page == 0 {
		return &ConfigError{Param: "page", Reason: "page index 0 does not exist; pages are 1-based"}
	}
	if c.Scale <= 0 {
		return &ConfigError{Param: "scale", Reason: "must be > 0"}
	}
	if c.DPI < 0 {
		return &ConfigError{Param: "dpi", Reason: "must be > 0 when set"}
	}
	return nil
}

// logger returns the writer diagnostics go to, defaulting to os.Stdout.
func (c StampConfig) logger() io.Writer {
	if c.Logger == nil {
		return os.Stdout
	}
	return c.Logger
}
