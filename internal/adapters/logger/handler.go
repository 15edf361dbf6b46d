// Package logger implements a logging adapter using log/slog.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/scribe/internal/ui/output"
	"go.trai.ch/scribe/internal/ui/style"
)

// decoration pairs the icon prefix and foreground color of a log level.
type decoration struct {
	icon  string
	color lipgloss.Color
}

// decorate maps a record level onto its line decoration. Anything below
// Warn renders undecorated in the neutral palette color.
func decorate(level slog.Level) decoration {
	switch {
	case level >= slog.LevelError:
		return decoration{icon: style.Cross, color: style.Red}
	case level >= slog.LevelWarn:
		return decoration{icon: style.Warning, color: style.Yellow}
	default:
		return decoration{color: style.Slate}
	}
}

// PrettyHandler is a slog.Handler that renders one colored line per record
// through the shared UI profile.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a PrettyHandler writing to w, stderr when w is
// nil. The level from opts is honored; it defaults to Info.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	deco := decorate(r.Level)

	var line strings.Builder
	if deco.icon != "" {
		line.WriteString(deco.icon)
		line.WriteString(" ")
	}
	line.WriteString(r.Message)

	for _, attr := range h.attrs {
		line.WriteString(" ")
		line.WriteString(h.attrText(attr))
	}
	r.Attrs(func(attr slog.Attr) bool {
		line.WriteString(" ")
		line.WriteString(h.attrText(attr))
		return true
	})

	styled := h.out.String(line.String()).Foreground(termenv.RGBColor(string(deco.color)))
	_, err := h.out.WriteString(styled.String() + "\n")

	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := append(append(make([]slog.Attr, 0, len(h.attrs)+len(attrs)), h.attrs...), attrs...)

	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: merged,
		group: h.group,
	}
}

// WithGroup returns a new Handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: h.attrs,
		group: name,
	}
}

// attrText renders key=value, with the group name prefixed when set.
func (h *PrettyHandler) attrText(attr slog.Attr) string {
	if h.group != "" {
		return h.group + "." + attr.Key + "=" + attr.Value.String()
	}
	return attr.Key + "=" + attr.Value.String()
}
