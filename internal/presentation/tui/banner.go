package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the fluix ASCII art banner to w, coloured for p.
func PrintBanner(w io.Writer, p termenv.Profile) {
	// Warm gradient, one colour per line.
	lines := []struct {
		text  string
		color string
	}{
		{"   __ _       _      ", "#fbbf24"},
		{"  / _| |_   _(_)_  __", "#f59e0b"},
		{" | |_| | | | | \\ \\/ /", "#f97316"},
		{" |  _| | |_| | |>  < ", "#ef4444"},
		{" |_| |_|\\__,_|_/_/\\_\\", "#e11d48"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
