package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"mxfkit/internal/catalog"
	"mxfkit/internal/preflight"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const (
	statusLabelWidth = 22
	statusIndent     = "  "
)

var statusStyles = map[statusKind]struct {
	label string
	color string
}{
	statusInfo:  {label: "INFO", color: ansiBlue},
	statusOK:    {label: "OK", color: ansiGreen},
	statusWarn:  {label: "WARN", color: ansiYellow},
	statusError: {label: "ERROR", color: ansiRed},
}

// statusLine is one labelled line of check or verify output.
type statusLine struct {
	label  string
	kind   statusKind
	detail string
}

// resultLine maps a preflight result: failures are errors, skipped checks
// are informational.
func resultLine(r preflight.Result) statusLine {
	kind := statusOK
	switch {
	case !r.Passed:
		kind = statusError
	case r.Skipped:
		kind = statusInfo
	}
	return statusLine{label: r.Name, kind: kind, detail: r.Detail}
}

// driftLine maps a catalog drift: rows missing on either side are errors,
// changed values are warnings.
func driftLine(d catalog.Drift) statusLine {
	kind := statusWarn
	if d.Type == catalog.DriftMissing || d.Type == catalog.DriftExtra {
		kind = statusError
	}
	return statusLine{label: fmt.Sprintf("Kind %d", d.ID), kind: kind, detail: d.String()}
}

func (l statusLine) render(colorize bool) string {
	style, ok := statusStyles[l.kind]
	if !ok {
		style = statusStyles[statusInfo]
	}
	text := "[" + style.label + "]"
	if l.detail != "" {
		text += " " + l.detail
	}
	line := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, l.label+":", text)
	if colorize {
		return style.color + line + ansiReset
	}
	return line
}

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
