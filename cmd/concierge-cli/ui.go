// Package main provides UI utilities for the concierge CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// UI provides user-friendly output utilities.
type UI struct {
	noColor  bool
	jsonMode bool
}

// NewUI creates a new UI instance. In JSON mode all decorative output is
// suppressed so stdout stays machine-parseable.
func NewUI(jsonMode, noColor bool) *UI {
	return &UI{
		noColor:  noColor,
		jsonMode: jsonMode,
	}
}

// Success prints a success message.
func (ui *UI) Success(format string, args ...interface{}) {
	if ui.jsonMode {
		return
	}
	if ui.noColor {
		fmt.Printf("✓ %s\n", fmt.Sprintf(format, args...))
	} else {
		color.New(color.FgGreen).Printf("✓ %s\n", fmt.Sprintf(format, args...))
	}
}

// Error prints an error message.
func (ui *UI) Error(format string, args ...interface{}) {
	if ui.jsonMode {
		return
	}
	if ui.noColor {
		fmt.Fprintf(os.Stderr, "✗ %s\n", fmt.Sprintf(format, args...))
	} else {
		color.New(color.FgRed).Printf("✗ %s\n", fmt.Sprintf(format, args...))
	}
}

// Warning prints a warning message.
func (ui *UI) Warning(format string, args ...interface{}) {
	if ui.jsonMode {
		return
	}
	if ui.noColor {
		fmt.Printf("⚠ %s\n", fmt.Sprintf(format, args...))
	} else {
		color.New(color.FgYellow).Printf("⚠ %s\n", fmt.Sprintf(format, args...))
	}
}

// Info prints an info message.
func (ui *UI) Info(format string, args ...interface{}) {
	if ui.jsonMode {
		return
	}
	if ui.noColor {
		fmt.Printf("ℹ %s\n", fmt.Sprintf(format, args...))
	} else {
		color.New(color.FgCyan).Printf("ℹ %s\n", fmt.Sprintf(format, args...))
	}
}

// Step prints a step message.
func (ui *UI) Step(format string, args ...interface{}) {
	if ui.jsonMode {
		return
	}
	if ui.noColor {
		fmt.Printf("→ %s\n", fmt.Sprintf(format, args...))
	} else {
		color.New(color.FgBlue).Printf("→ %s\n", fmt.Sprintf(format, args...))
	}
}

// Table prints a formatted table.
func (ui *UI) Table(headers []string, rows [][]string) {
	if ui.jsonMode || len(headers) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = len(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	horiz, vert := "─", "│"
	corners := [3][3]string{{"┌", "┬", "┐"}, {"├", "┼", "┤"}, {"└", "┴", "┘"}}
	if ui.noColor {
		horiz, vert = "-", "|"
		corners = [3][3]string{{"+", "+", "+"}, {"+", "+", "+"}, {"+", "+", "+"}}
	}

	border := func(c [3]string) string {
		segs := make([]string, len(widths))
		for i, w := range widths {
			segs[i] = strings.Repeat(horiz, w+2)
		}
		return c[0] + strings.Join(segs, c[1]) + c[2]
	}

	formatRow := func(cells []string) string {
		var b strings.Builder
		b.WriteString(vert)
		for i, w := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			fmt.Fprintf(&b, " %-*s %s", w, cell, vert)
		}
		return b.String()
	}

	printRule := func(s string) {
		if ui.noColor {
			fmt.Println(s)
		} else {
			color.New(color.FgCyan, color.Bold).Println(s)
		}
	}

	printRule(border(corners[0]))
	printRule(formatRow(headers))
	printRule(border(corners[1]))
	for _, row := range rows {
		fmt.Println(formatRow(row))
	}
	printRule(border(corners[2]))
}

// Section prints a section header.
func (ui *UI) Section(title string) {
	if ui.jsonMode {
		return
	}
	fmt.Println()
	if ui.noColor {
		fmt.Printf("━━━ %s ━━━\n", strings.ToUpper(title))
	} else {
		color.New(color.FgMagenta, color.Bold).Printf("━━━ %s ━━━\n", strings.ToUpper(title))
	}
	fmt.Println()
}

// KeyValue prints a key-value pair.
func (ui *UI) KeyValue(key string, value interface{}) {
	if ui.jsonMode {
		return
	}
	if ui.noColor {
		fmt.Printf("  %s: %v\n", key, value)
	} else {
		color.New(color.FgYellow).Printf("  %s: ", key)
		fmt.Printf("%v\n", value)
	}
}

// Newline prints a newline.
func (ui *UI) Newline() {
	if !ui.jsonMode {
		fmt.Println()
	}
}

// IsTerminal checks if stdout is a terminal.
func IsTerminal() bool {
	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
