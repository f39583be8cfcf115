package pretty

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/gocut/pkg/runner"
)

const (
	defaultDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "128 lines cut from 3 files (1 file failed)".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	fileWord := wordFiles
	if stats.FilesProcessed == 1 {
		fileWord = wordFile
	}

	msg := s.SummaryValue.Render(fmt.Sprintf("%d lines cut from %d %s",
		stats.LinesEmitted, stats.FilesProcessed, fileWord))

	if stats.FilesErrored > 0 {
		failedWord := wordFiles
		if stats.FilesErrored == 1 {
			failedWord = wordFile
		}
		msg += " " + s.Failure.Render(fmt.Sprintf("(%d %s failed)", stats.FilesErrored, failedWord))
	}

	return msg + "\n"
}

// FormatSummary formats run statistics as a summary block, with the divider
// sized to the terminal attached to w.
func (s *Styles) FormatSummary(stats runner.Stats, w io.Writer) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", dividerWidth(w)))
	builder.WriteString("\n")

	builder.WriteString("  Files processed: " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")

	if stats.FilesErrored > 0 {
		builder.WriteString("  Files failed:    " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	builder.WriteString("  Lines read:      " +
		s.SummaryValue.Render(strconv.Itoa(stats.LinesRead)) + "\n")
	builder.WriteString("  Lines emitted:   " +
		s.SummaryValue.Render(strconv.Itoa(stats.LinesEmitted)) + "\n")

	builder.WriteString("\n")

	if stats.FilesErrored > 0 {
		builder.WriteString(s.Failure.Render("Completed with file errors"))
	} else {
		builder.WriteString(s.Success.Render("Completed"))
	}
	builder.WriteString("\n")

	return builder.String()
}

// dividerWidth returns the summary divider width, capped at the terminal
// width when w is a TTY.
func dividerWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultDividerWidth
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || width >= defaultDividerWidth {
		return defaultDividerWidth
	}
	return width
}
