package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderMarkdown renders md for the terminal, or returns it unchanged when
// plain is set or rendering fails
func renderMarkdown(md string, plain bool) string {
	if plain {
		return md
	}

	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
	if err != nil {
		logger.Debug("Markdown renderer unavailable", zap.Error(err))
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		logger.Debug("Markdown render failed", zap.Error(err))
		return md
	}
	return out
}

func printf(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, format, a...)
}
