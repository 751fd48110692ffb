// Package render formats records for the terminal: aligned tables, boxed
// summary cards and rupee amounts.
package render

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var lang language.Tag = language.English

// MaxCellWidth caps every table cell; longer values end in "…".
const MaxCellWidth = 36

const timeLayout = "02 Jan 2006 15:04"

// Amount renders whole rupees with digit grouping, e.g. "₹ 12,345".
func Amount(v float64) string {
	p := message.NewPrinter(lang)
	return p.Sprintf("₹ %d", int64(math.Round(v)))
}

func Count(n int) string {
	return message.NewPrinter(lang).Sprintf("%d", n)
}

// Time prints "-" for a zero time.
func Time(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}

func cell(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if runewidth.StringWidth(s) > MaxCellWidth {
		return runewidth.Truncate(s, MaxCellWidth, "…")
	}
	return s
}

func pad(s string, w int) string {
	return s + blank(w-runewidth.StringWidth(s))
}

func blank(w int) string {
	if w < 1 {
		return ""
	}
	return strings.Repeat(" ", w)
}

// Table writes rows under headers with columns aligned by display width.
func Table(w io.Writer, headers []string, rows [][]string) error {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}

	cells := make([][]string, len(rows))
	for r, row := range rows {
		cells[r] = make([]string, len(headers))
		for i := range headers {
			if i < len(row) {
				cells[r][i] = cell(row[i])
			}
			if cw := runewidth.StringWidth(cells[r][i]); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	var b strings.Builder
	line := func(vals []string) {
		for i, v := range vals {
			if i > 0 {
				b.WriteString("  ")
			}
			if i == len(vals)-1 {
				b.WriteString(v)
			} else {
				b.WriteString(pad(v, widths[i]))
			}
		}
		b.WriteString("\n")
	}

	line(headers)
	sep := make([]string, len(headers))
	for i, cw := range widths {
		sep[i] = strings.Repeat("-", cw)
	}
	line(sep)
	for _, row := range cells {
		line(row)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Card writes a boxed key/value block with a centered title.
func Card(w io.Writer, title string, keys []string, vals map[string]string) error {
	keyW, valW := 0, 0
	for _, k := range keys {
		keyW = max(keyW, runewidth.StringWidth(k))
		valW = max(valW, runewidth.StringWidth(vals[k]))
	}
	keyW += 2
	valW += 2

	inner := keyW + valW + 1
	titleW := runewidth.StringWidth(title)
	if titleW > inner {
		valW += titleW - inner
		inner = titleW
	}
	left := (inner - titleW) / 2

	var b strings.Builder
	divider := "+" + strings.Repeat("-", keyW) + "+" + strings.Repeat("-", valW) + "+\n"
	b.WriteString("+" + strings.Repeat("-", inner) + "+\n")
	fmt.Fprintf(&b, "|%s%s%s|\n", blank(left), title, blank(inner-titleW-left))
	b.WriteString(divider)
	for _, k := range keys {
		fmt.Fprintf(&b, "| %s | %s |\n", pad(k, keyW-2), pad(vals[k], valW-2))
	}
	b.WriteString(divider)

	_, err := io.WriteString(w, b.String())
	return err
}
