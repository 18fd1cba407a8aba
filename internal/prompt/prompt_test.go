package prompt

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
)

// scriptedAsker returns the given answers in order.
type scriptedAsker struct {
	answers []string
	asked   int
}

func (sa *scriptedAsker) Ask(message string) (string, error) {
	if sa.asked >= len(sa.answers) {
		return "", io.EOF
	}
	answer := sa.answers[sa.asked]
	sa.asked++
	return answer, nil
}

func TestAskCount(t *testing.T) {
	tests := []struct {
		name      string
		answers   []string
		total     int
		want      int
		wantAsked int
		wantWarns int
		wantErr   error
	}{{
		name:      "blank answer means all servers",
		answers:   []string{""},
		total:     42,
		want:      42,
		wantAsked: 1,
	}, {
		name:      "whitespace answer means all servers",
		answers:   []string{"   "},
		total:     42,
		want:      42,
		wantAsked: 1,
	}, {
		name:      "positive answer",
		answers:   []string{"5"},
		total:     42,
		want:      5,
		wantAsked: 1,
	}, {
		name:      "answers larger than total are returned as is",
		answers:   []string{"100"},
		total:     42,
		want:      100,
		wantAsked: 1,
	}, {
		name:      "zero and negative answers re-prompt",
		answers:   []string{"0", "-3", "7"},
		total:     42,
		want:      7,
		wantAsked: 3,
		wantWarns: 2,
	}, {
		name:      "non-numeric answers re-prompt",
		answers:   []string{"many", "1.5", ""},
		total:     42,
		want:      42,
		wantAsked: 3,
		wantWarns: 2,
	}, {
		name:      "asker errors are returned",
		answers:   []string{"0"},
		total:     42,
		wantAsked: 1,
		wantWarns: 1,
		wantErr:   io.EOF,
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asker := &scriptedAsker{answers: tt.answers}
			handler := memory.New()
			logger := &log.Logger{Handler: handler, Level: log.InfoLevel}
			got, err := AskCount(asker, tt.total, logger)
			if !errors.Is(err, tt.wantErr) {
				t.Fatal("unexpected error", err)
			}
			if got != tt.want {
				t.Fatal("expected", tt.want, "got", got)
			}
			if asker.asked != tt.wantAsked {
				t.Fatal("expected", tt.wantAsked, "questions, got", asker.asked)
			}
			if len(handler.Entries) != tt.wantWarns {
				t.Fatal("expected", tt.wantWarns, "warnings, got", len(handler.Entries))
			}
			for _, e := range handler.Entries {
				if e.Level != log.WarnLevel {
					t.Fatal("expected a warning")
				}
			}
		})
	}
}

func TestParseCount(t *testing.T) {
	if _, err := ParseCount("abc", 10); !errors.Is(err, errNotANumber) {
		t.Fatal("unexpected error", err)
	}
	if _, err := ParseCount("0", 10); !errors.Is(err, errNotPositive) {
		t.Fatal("unexpected error", err)
	}
	if count, err := ParseCount(" 3 ", 10); err != nil || count != 3 {
		t.Fatal("unexpected result", count, err)
	}
}

func TestLineAsker(t *testing.T) {
	t.Run("reads answers line by line", func(t *testing.T) {
		out := &bytes.Buffer{}
		asker := NewLineAsker(strings.NewReader("0\r\n12\n"), out)
		first, err := asker.Ask("How many?")
		if err != nil {
			t.Fatal(err)
		}
		second, err := asker.Ask("How many?")
		if err != nil {
			t.Fatal(err)
		}
		if first != "0" || second != "12" {
			t.Fatalf("unexpected answers %q %q", first, second)
		}
		if out.String() != "How many? How many? " {
			t.Fatalf("unexpected output %q", out.String())
		}
	})

	t.Run("accepts a last line without newline", func(t *testing.T) {
		asker := NewLineAsker(strings.NewReader("5"), io.Discard)
		answer, err := asker.Ask("How many?")
		if err != nil || answer != "5" {
			t.Fatal("unexpected result", answer, err)
		}
	})

	t.Run("fails at EOF", func(t *testing.T) {
		asker := NewLineAsker(strings.NewReader(""), io.Discard)
		if _, err := asker.Ask("How many?"); !errors.Is(err, io.EOF) {
			t.Fatal("unexpected error", err)
		}
	})
}
