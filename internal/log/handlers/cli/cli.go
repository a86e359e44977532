// Package cli implements an apex/log handler for the finboard command
// line. Entries with a "type" field are rendered as tables.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/apex/log"
	"github.com/fatih/color"
	colorable "github.com/mattn/go-colorable"
)

// Default handler outputting to stderr.
var Default = New(os.Stderr)

var bold = color.New(color.Bold)

// Colors mapping.
var Colors = [...]*color.Color{
	log.DebugLevel: color.New(color.FgWhite),
	log.InfoLevel:  color.New(color.FgBlue),
	log.WarnLevel:  color.New(color.FgYellow),
	log.ErrorLevel: color.New(color.FgRed),
	log.FatalLevel: color.New(color.FgRed),
}

// Strings mapping.
var Strings = [...]string{
	log.DebugLevel: "•",
	log.InfoLevel:  "•",
	log.WarnLevel:  "•",
	log.ErrorLevel: "⨯",
	log.FatalLevel: "⨯",
}

// Handler implementation.
type Handler struct {
	mu      sync.Mutex
	Writer  io.Writer
	Padding int
}

// New handler.
func New(w io.Writer) *Handler {
	if f, ok := w.(*os.File); ok {
		w = colorable.NewColorable(f)
	}
	return &Handler{
		Writer:  w,
		Padding: 3,
	}
}

func boxTop(w io.Writer, width int) {
	fmt.Fprint(w, "┏"+strings.Repeat("━", width+2)+"┓\n")
}

func boxBottom(w io.Writer, width int) {
	fmt.Fprint(w, "┗"+strings.Repeat("━", width+2)+"┛\n")
}

func logSectionTitle(w io.Writer, f log.Fields) error {
	colWidth := 24

	title, _ := f.Get("title").(string)
	if width := EscapeAwareRuneCountInString(title); width > colWidth {
		colWidth = width
	}
	boxTop(w, colWidth)
	fmt.Fprintf(w, "┃ %s ┃\n", RightPad(bold.Sprint(title), colWidth))
	boxBottom(w, colWidth)
	return nil
}

func logTable(w io.Writer, f log.Fields) error {
	color := color.New(color.FgBlue)

	var lines []string
	colWidth := 0
	for _, name := range f.Names() {
		if name == "type" {
			continue
		}
		line := fmt.Sprintf("%s: %v", color.Sprint(name), f.Get(name))
		lines = append(lines, line)
		if width := EscapeAwareRuneCountInString(line); colWidth < width {
			colWidth = width
		}
	}

	boxTop(w, colWidth)
	for _, line := range lines {
		fmt.Fprintf(w, "┃ %s ┃\n", RightPad(line, colWidth))
	}
	boxBottom(w, colWidth)
	return nil
}

// TypedLog is used for handling special "typed" logs to the CLI
func (h *Handler) TypedLog(t string, e *log.Entry) error {
	switch t {
	case "table":
		return logTable(h.Writer, e.Fields)
	case "section_title":
		return logSectionTitle(h.Writer, e.Fields)
	case "quote_item":
		return logQuoteItem(h.Writer, e.Fields)
	case "watchlist_item":
		return logWatchlistItem(h.Writer, e.Fields)
	case "alert_item":
		return logAlertItem(h.Writer, e.Fields)
	default:
		return h.DefaultLog(e)
	}
}

// DefaultLog is the default way of printing out logs
func (h *Handler) DefaultLog(e *log.Entry) error {
	color := Colors[e.Level]
	level := Strings[e.Level]

	var sb strings.Builder
	sb.WriteString(color.Sprintf("%s %-25s", bold.Sprintf("%*s", h.Padding+1, level), e.Message))
	for _, name := range e.Fields.Names() {
		if name == "source" || name == "type" {
			continue
		}
		fmt.Fprintf(&sb, " %s=%v", color.Sprint(name), e.Fields.Get(name))
	}
	fmt.Fprintln(h.Writer, sb.String())
	return nil
}

// HandleLog implements log.Handler.
func (h *Handler) HandleLog(e *log.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	t, isTyped := e.Fields["type"].(string)
	if isTyped {
		return h.TypedLog(t, e)
	}

	return h.DefaultLog(e)
}
