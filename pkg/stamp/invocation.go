package stamp

import (
	"strconv"
	"strings"
)

// Arg is one flag/value pair of a reproducible invocation.
type Arg struct {
	Flag  string
	Value string
}

// Invocation is the minimal, order-stable flag list that reproduces the
// current session with the pdfstamp command line. Fields that still hold
// their default value are omitted, so the serialized form round-trips only
// what the user actually changed.
type Invocation []Arg

// NewInvocation captures the current placement and run configuration.
// inputPath and stampPath are always included; outputPath only when set.
// The density appears only when it was an explicit override, since probed
// and fallback densities reproduce themselves from the image.
func NewInvocation(inputPath, stampPath, outputPath string, cfg StampConfig, snap PlacementSnapshot) Invocation {
	inv := Invocation{
		{Flag: "-input", Value: inputPath},
		{Flag: "-stamp", Value: stampPath},
	}
	if cfg.DPI > 0 {
		inv = append(inv, Arg{Flag: "-dpi", Value: formatFloat(cfg.DPI)})
	}
	if cfg.Page != 1 {
		inv = append(inv, Arg{Flag: "-page", Value: strconv.Itoa(cfg.Page)})
	}
	if snap.PositionMM.X != 0 {
		inv = append(inv, Arg{Flag: "-x", Value: formatFloat(snap.PositionMM.X)})
	}
	if snap.PositionMM.Y != 0 {
		inv = append(inv, Arg{Flag: "-y", Value: formatFloat(snap.PositionMM.Y)})
	}
	if snap.Scale != 1.0 {
		inv = append(inv, Arg{Flag: "-scale", Value: formatFloat(snap.Scale)})
	}
	if cfg.LayerName != "" {
		inv = append(inv, Arg{Flag: "-layer", Value: cfg.LayerName})
	}
	if outputPath != "" {
		inv = append(inv, Arg{Flag: "-output", Value: outputPath})
	}
	return inv
}

// String renders the invocation as a command line, quoting values that
// contain whitespace.
func (inv Invocation) String() string {
	var b strings.Builder
	b.WriteString("pdfstamp")
	for _, a := range inv {
		b.WriteByte(' ')
		b.WriteString(a.Flag)
		b.WriteByte(' ')
		if strings.ContainsAny(a.Value, " \t") {
			b.WriteString(strconv.Quote(a.Value))
		} else {
			b.WriteString(a.Value)
		}
	}
	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
