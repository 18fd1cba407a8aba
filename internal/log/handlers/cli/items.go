package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/apex/log"
	"github.com/fatih/color"
	"github.com/gateprobe/gateprobe/internal/output"
	"github.com/gateprobe/gateprobe/internal/utils"
)

// separatorWidth is the width of the horizontal separator.
const separatorWidth = 30

// maxTableWidth is the width at which we wrap table values.
const maxTableWidth = 60

var (
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed)
	faint = color.New(color.Faint)
)

func logSectionTitle(w io.Writer, f log.Fields) error {
	title, _ := f.Get("title").(string)
	colWidth := utils.EscapeAwareRuneCountInString(title)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "┏%s┓\n", strings.Repeat("━", colWidth+2))
	fmt.Fprintf(w, "┃ %s ┃\n", bold.Sprint(title))
	_, err := fmt.Fprintf(w, "┗%s┛\n", strings.Repeat("━", colWidth+2))
	return err
}

func logSeparator(w io.Writer) error {
	_, err := fmt.Fprintln(w, strings.Repeat("-", separatorWidth))
	return err
}

func logTable(w io.Writer, f log.Fields) error {
	blue := color.New(color.FgBlue)
	rows, _ := f.Get("rows").([]output.KeyValue)

	var lines []string
	for _, row := range rows {
		prefix := fmt.Sprintf("%s: ", row.Key)
		for idx, chunk := range utils.WrapLines(row.Value, maxTableWidth) {
			if idx == 0 {
				lines = append(lines, blue.Sprint(prefix)+chunk)
				continue
			}
			lines = append(lines, strings.Repeat(" ", len(prefix))+chunk)
		}
	}
	colWidth := utils.MaxWidth(lines...)

	fmt.Fprintf(w, "┏%s┓\n", strings.Repeat("━", colWidth+2))
	for _, line := range lines {
		fmt.Fprintf(w, "┃ %s ┃\n", utils.RightPad(line, colWidth))
	}
	_, err := fmt.Fprintf(w, "┗%s┛\n", strings.Repeat("━", colWidth+2))
	return err
}

func logServerItem(w io.Writer, f log.Fields) error {
	endpoint := fmt.Sprintf("%v:%v", f.Get("host"), f.Get("port"))
	details := fmt.Sprintf("%v, score %v", f.Get("country"), f.Get("score"))
	if proto, _ := f.Get("proto").(string); proto != "" {
		details += ", " + proto
	}
	_, err := fmt.Fprintf(w, "%v. 🌐 %s %s\n",
		f.Get("index"), utils.RightPad(endpoint, 21), faint.Sprintf("(%s)", details))
	return err
}

func logProbeResult(w io.Writer, f log.Fields) error {
	endpoint := fmt.Sprintf("%v:%v", f.Get("host"), f.Get("port"))
	if success, _ := f.Get("success").(bool); success {
		latency, _ := f.Get("latency_ms").(float64)
		_, err := fmt.Fprintf(w, "%s - %s\n", endpoint, green.Sprintf("✅ OPEN (%.2f ms)", latency))
		return err
	}
	_, err := fmt.Fprintf(w, "%s - %s %s\n", endpoint, red.Sprint("❌ CLOSED"), faint.Sprint(f.Get("failure")))
	return err
}

func logRankedItem(w io.Writer, f log.Fields) error {
	latency, _ := f.Get("latency_ms").(float64)
	_, err := fmt.Fprintf(w, "%v. %v:%v - %s\n",
		f.Get("rank"), f.Get("host"), f.Get("port"), green.Sprintf("%.2f ms ✅", latency))
	return err
}
