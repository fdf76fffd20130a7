package report

import (
	"fmt"
	"io"

	"typeprobe/internal/config"
	"typeprobe/internal/logger"
)

// ForFormat picks the printer for a configured format name.
func ForFormat(format string, w io.Writer, lggr logger.Logger) (Printer, error) {
	switch format {
	case config.FormatText:
		return Text{W: w}, nil
	case config.FormatYAML:
		return YAML{W: w}, nil
	case config.FormatLog:
		return Log{Logger: lggr}, nil
	default:
		return nil, fmt.Errorf("no printer for format %q", format)
	}
}
