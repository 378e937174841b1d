package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/cleared-dev/sietosru/internal/sru"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow, color.Bold)
	cyan   = color.New(color.FgCyan)
	red    = color.New(color.FgRed)
)

// Header prints a section title.
func Header(w io.Writer, text string) {
	line := strings.Repeat("=", 60)
	green.Fprintf(w, "%s\n%s\n%s\n", line, text, line)
}

// Echo prints both rendered files of a submission.
func Echo(w io.Writer, sub *sru.Submission) {
	Header(w, sru.InfoFileName)
	Block(w, sub.Info)
	Header(w, sru.BlanketterFileName)
	Block(w, sub.Blanketter)
}

// Block prints SRU text one line at a time; directives are highlighted.
func Block(w io.Writer, text string) {
	for _, line := range strings.Split(strings.ReplaceAll(text, sru.CRLF, sru.LF), sru.LF) {
		switch {
		case strings.HasPrefix(line, "#BLANKETT "), strings.HasPrefix(line, "#BLANKETTSLUT"), line == sru.FileEnd:
			yellow.Fprintln(w, line)
		case strings.HasPrefix(line, "#UPPGIFT "):
			fmt.Fprintln(w, line)
		default:
			cyan.Fprintln(w, line)
		}
	}
}

// Success prints a completion message.
func Success(w io.Writer, format string, args ...any) {
	green.Fprintf(w, "  → "+format+"\n", args...)
}

// Error prints an error message.
func Error(w io.Writer, err error) {
	red.Fprintf(w, "Error: %v\n", err)
}
