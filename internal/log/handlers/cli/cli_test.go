package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/apex/log"
	"github.com/fatih/color"
	"github.com/gateprobe/gateprobe/internal/model"
	"github.com/gateprobe/gateprobe/internal/output"
	"github.com/google/go-cmp/cmp"
)

// newLogger returns a logger writing on a buffer without colors.
func newLogger(t *testing.T) (*log.Logger, *bytes.Buffer) {
	saved := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = saved })
	buf := &bytes.Buffer{}
	return &log.Logger{Handler: New(buf), Level: log.InfoLevel}, buf
}

func TestHandlerTypedLogs(t *testing.T) {
	candidate := model.Candidate{
		Host:    "10.0.0.1",
		Port:    443,
		Country: "Japan",
		Score:   1234,
		Proto:   "tcp",
	}

	tests := []struct {
		name   string
		emit   func(logger log.Interface)
		expect string
	}{{
		name: "section title",
		emit: func(logger log.Interface) {
			output.SectionTitle(logger, "SERVER LIST")
		},
		expect: "\n┏━━━━━━━━━━━━━┓\n┃ SERVER LIST ┃\n┗━━━━━━━━━━━━━┛\n",
	}, {
		name: "separator",
		emit: func(logger log.Interface) {
			output.Separator(logger)
		},
		expect: strings.Repeat("-", 30) + "\n",
	}, {
		name: "server item",
		emit: func(logger log.Interface) {
			output.ServerItem(logger, 3, candidate)
		},
		expect: "3. 🌐 10.0.0.1:443          (Japan, score 1234, tcp)\n",
	}, {
		name: "successful probe",
		emit: func(logger log.Interface) {
			output.ProbeResult(logger, model.ProbeResult{
				Candidate: candidate,
				Success:   true,
				Latency:   12.345,
			})
		},
		expect: "10.0.0.1:443 - ✅ OPEN (12.35 ms)\n",
	}, {
		name: "failed probe",
		emit: func(logger log.Interface) {
			output.ProbeResult(logger, model.ProbeResult{
				Candidate: candidate,
				Err:       errors.New("connection refused"),
			})
		},
		expect: "10.0.0.1:443 - ❌ CLOSED connection refused\n",
	}, {
		name: "ranked item",
		emit: func(logger log.Interface) {
			output.RankedItem(logger, 1, model.ProbeResult{
				Candidate: candidate,
				Success:   true,
				Latency:   3.5,
			})
		},
		expect: "1. 10.0.0.1:443 - 3.50 ms ✅\n",
	}, {
		name: "table",
		emit: func(logger log.Interface) {
			output.Table(logger,
				output.KeyValue{Key: "User Name", Value: "vpn"},
				output.KeyValue{Key: "Password", Value: "vpn"},
			)
		},
		expect: "┏━━━━━━━━━━━━━━━━┓\n┃ User Name: vpn ┃\n┃ Password: vpn  ┃\n┗━━━━━━━━━━━━━━━━┛\n",
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newLogger(t)
			tt.emit(logger)
			if diff := cmp.Diff(tt.expect, buf.String()); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestHandlerTableWrapsLongValues(t *testing.T) {
	logger, buf := newLogger(t)
	output.Table(logger, output.KeyValue{
		Key:   "Note",
		Value: strings.Repeat("word ", 20),
	})
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected the value to be wrapped on two lines, got %q", buf.String())
	}
	if !strings.HasPrefix(lines[2], "┃       word") {
		t.Fatalf("expected continuation line to be indented, got %q", lines[2])
	}
}

func TestHandlerDefaultLog(t *testing.T) {
	logger, buf := newLogger(t)
	logger.WithField("count", 3).Info("Found servers")
	expect := "   • Found servers             count=3\n"
	if diff := cmp.Diff(expect, buf.String()); diff != "" {
		t.Fatal(diff)
	}
}
