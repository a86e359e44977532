package cli

//
// Rows for prices, watchlist entries and alerts. Each row carries the
// "index" and "total_count" fields so we know when to draw the frame.
//

import (
	"fmt"
	"io"
	"strings"

	"github.com/apex/log"
	"github.com/fatih/color"
)

var (
	okColor  = color.New(color.FgGreen)
	badColor = color.New(color.FgRed)
)

func fieldString(f log.Fields, name string) string {
	value := f.Get(name)
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}

func fieldInt(f log.Fields, name string) int {
	value, _ := f.Get(name).(int)
	return value
}

// logRow writes a table row whose cells have the given widths.
func logRow(w io.Writer, f log.Fields, cells []string, widths []int) error {
	index := fieldInt(f, "index")
	totalCount := fieldInt(f, "total_count")

	var segments []string
	for _, width := range widths {
		segments = append(segments, strings.Repeat("─", width+2))
	}
	if index == 0 {
		fmt.Fprint(w, "┌"+strings.Join(segments, "┬")+"┐\n")
	}
	var padded []string
	for idx, cell := range cells {
		padded = append(padded, " "+RightPad(cell, widths[idx])+" ")
	}
	fmt.Fprint(w, "│"+strings.Join(padded, "│")+"│\n")
	if index >= totalCount-1 {
		fmt.Fprint(w, "└"+strings.Join(segments, "┴")+"┘\n")
	}
	return nil
}

func logQuoteItem(w io.Writer, f log.Fields) error {
	price := badColor.Sprint("n/a")
	if ok, _ := f.Get("ok").(bool); ok {
		price = okColor.Sprint(fieldString(f, "price"))
	}
	cells := []string{fieldString(f, "symbol"), price}
	return logRow(w, f, cells, []int{16, 16})
}

func logWatchlistItem(w io.Writer, f log.Fields) error {
	cells := []string{
		"#" + fieldString(f, "id"),
		fieldString(f, "symbol"),
		fieldString(f, "symbol_norm"),
		fieldString(f, "label"),
	}
	return logRow(w, f, cells, []int{6, 12, 12, 20})
}

func logAlertItem(w io.Writer, f log.Fields) error {
	state := badColor.Sprint("off")
	if enabled, _ := f.Get("enabled").(bool); enabled {
		state = okColor.Sprint("on")
	}
	cells := []string{
		"#" + fieldString(f, "id"),
		state,
		fieldString(f, "symbol"),
		fieldString(f, "name"),
		fieldString(f, "cond"),
	}
	return logRow(w, f, cells, []int{6, 3, 12, 16, 20})
}
