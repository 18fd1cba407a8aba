// Package output emits typed log entries.
//
// A typed log entry carries a "type" field telling the CLI handler
// (see internal/log/handlers/cli) to render it as a console artifact
// (e.g., a section title or a table) rather than as a log line.
package output

import (
	"github.com/apex/log"
	"github.com/gateprobe/gateprobe/internal/model"
)

// SectionTitle logs a section title.
func SectionTitle(logger log.Interface, title string) {
	logger.WithFields(log.Fields{
		"type":  "section_title",
		"title": title,
	}).Info(title)
}

// ServerItem logs a candidate of the ranked preview.
func ServerItem(logger log.Interface, index int, c model.Candidate) {
	logger.WithFields(log.Fields{
		"type":    "server_item",
		"index":   index,
		"host":    c.Host,
		"port":    c.Port,
		"country": c.Country,
		"score":   c.Score,
		"proto":   c.Proto,
	}).Info("server item")
}

// ProbeResult logs the result of probing a candidate.
func ProbeResult(logger log.Interface, r model.ProbeResult) {
	logger.WithFields(log.Fields{
		"type":       "probe_result",
		"host":       r.Candidate.Host,
		"port":       r.Candidate.Port,
		"success":    r.Success,
		"latency_ms": r.Latency,
		"failure":    failureString(r),
	}).Info("probe result")
}

func failureString(r model.ProbeResult) string {
	if r.Success {
		return ""
	}
	return model.ErrorToStringOrOK(r.Err)
}

// RankedItem logs a reachable candidate of the latency-sorted summary.
func RankedItem(logger log.Interface, rank int, r model.ProbeResult) {
	logger.WithFields(log.Fields{
		"type":       "ranked_item",
		"rank":       rank,
		"host":       r.Candidate.Host,
		"port":       r.Candidate.Port,
		"latency_ms": r.Latency,
	}).Info("ranked item")
}

// KeyValue is a row of a table.
type KeyValue struct {
	Key   string
	Value string
}

// Table logs a table containing the given rows in order.
func Table(logger log.Interface, rows ...KeyValue) {
	logger.WithFields(log.Fields{
		"type": "table",
		"rows": rows,
	}).Info("table")
}

// Separator logs a horizontal separator.
func Separator(logger log.Interface) {
	logger.WithFields(log.Fields{
		"type": "separator",
	}).Info("separator")
}
