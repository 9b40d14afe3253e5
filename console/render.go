package console

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"davsh/pkg/escseq"
)

// sortEntries orders a listing directories-first, then by
// case-insensitive name
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Dir != entries[j].Dir {
			return entries[i].Dir
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
}

func displayName(entry Entry) string {
	if entry.Dir {
		return entry.Name + "/"
	}
	return entry.Name
}

func colorName(entry Entry) string {
	if entry.Dir {
		return escseq.BlueBrightBoldText(entry.Name + "/")
	}
	return entry.Name
}

// formatSize formats a byte count, optionally human readable with
// 1024-based units and one decimal place
func formatSize(size int64, human bool) string {
	if !human {
		return strconv.FormatInt(size, 10)
	}
	value := float64(size)
	for _, unit := range []string{"B", "K", "M", "G", "T"} {
		if value < 1024.0 {
			return fmt.Sprintf("%.1f%s", value, unit)
		}
		value /= 1024.0
	}
	return fmt.Sprintf("%.1fP", value)
}

// renderCompact lays entries out in as many equal-width columns as fit
// the terminal width, filling column-major like ls does. Widths count
// runes, not bytes, so multi-byte names keep the columns aligned.
func renderCompact(w io.Writer, entries []Entry, width int) {
	labels := make([]string, len(entries))
	widths := make([]int, len(entries))
	maxLen := 0
	for i, entry := range entries {
		labels[i] = displayName(entry)
		widths[i] = utf8.RuneCountInString(labels[i])
		if widths[i] > maxLen {
			maxLen = widths[i]
		}
	}
	maxLen += 2

	cols := width / maxLen
	if cols < 1 {
		cols = 1
	}
	rows := (len(labels) + cols - 1) / cols

	var line strings.Builder
	for r := 0; r < rows; r++ {
		line.Reset()
		for c := 0; c < cols; c++ {
			idx := c*rows + r
			if idx < len(labels) {
				padding := strings.Repeat(" ", maxLen-widths[idx])
				if entries[idx].Dir {
					line.WriteString(escseq.BlueBrightBoldText(labels[idx]))
				} else {
					line.WriteString(labels[idx])
				}
				line.WriteString(padding)
			}
		}
		_, _ = fmt.Fprintf(w, "%s\r\n", line.String())
	}
}

// renderLong prints one line per entry: kind flag, right-justified
// size, last-modified timestamp or "-", and the suffixed name
func renderLong(w io.Writer, entries []Entry, human bool) {
	sizes := make([]string, len(entries))
	maxWidth := 0
	for i, entry := range entries {
		sizes[i] = formatSize(entry.Size, human)
		if len(sizes[i]) > maxWidth {
			maxWidth = len(sizes[i])
		}
	}

	for i, entry := range entries {
		kind := "-"
		if entry.Dir {
			kind = "d"
		}
		modTime := entry.ModTime
		if modTime == "" {
			modTime = "-"
		}
		_, _ = fmt.Fprintf(w, "%s %*s %s %s\r\n",
			kind,
			maxWidth,
			sizes[i],
			modTime,
			colorName(entry),
		)
	}
}
