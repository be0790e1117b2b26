package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// heading prints a section title, styled unless --plain is set.
func heading(w io.Writer, title string) {
	if plain {
		fmt.Fprintln(w, title)
		return
	}
	fmt.Fprintln(w, titleStyle.Render(title))
}

// note prints a secondary line.
func note(w io.Writer, text string) {
	if plain {
		fmt.Fprintln(w, text)
		return
	}
	fmt.Fprintln(w, mutedStyle.Render(text))
}

func comma(n int) string {
	return humanize.Comma(int64(n))
}
