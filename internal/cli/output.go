package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/vitalvas/mws"
)

// colorScheme holds the colors used for terminal output.
type colorScheme struct {
	Method      *color.Color
	URL         *color.Color
	StatusOK    *color.Color
	StatusWarn  *color.Color
	StatusError *color.Color
	HeaderKey   *color.Color
	Highlight   *color.Color
}

func newColorScheme() *colorScheme {
	return &colorScheme{
		Method:      color.New(color.FgBlue, color.Bold),
		URL:         color.New(color.FgCyan),
		StatusOK:    color.New(color.FgGreen, color.Bold),
		StatusWarn:  color.New(color.FgYellow, color.Bold),
		StatusError: color.New(color.FgRed, color.Bold),
		HeaderKey:   color.New(color.FgYellow),
		Highlight:   color.New(color.FgMagenta, color.Bold),
	}
}

// statusColor picks green for 2xx, yellow for 4xx and red otherwise.
func (s *colorScheme) statusColor(code int) *color.Color {
	switch {
	case code >= 200 && code < 300:
		return s.StatusOK
	case code >= 400 && code < 500:
		return s.StatusWarn
	default:
		return s.StatusError
	}
}

// printStatus writes a one-line summary of resp.
func printStatus(w io.Writer, action string, resp *mws.Response) {
	scheme := newColorScheme()

	scheme.statusColor(resp.StatusCode).Fprintf(w, "%d", resp.StatusCode)
	fmt.Fprintf(w, " %s format=%s", action, resp.Format())

	if resp.RequestID != "" {
		fmt.Fprintf(w, " request_id=%s", resp.RequestID)
	}

	fmt.Fprintln(w)
}

// writeValue encodes v as yaml or json.
func writeValue(w io.Writer, format string, v any) error {
	switch format {
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
