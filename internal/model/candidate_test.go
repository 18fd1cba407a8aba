package model

import (
	"errors"
	"testing"
)

func TestCandidateAddress(t *testing.T) {
	tests := []struct {
		name string
		c    Candidate
		want string
	}{{
		name: "with IPv4 address",
		c:    Candidate{Host: "10.0.0.1", Port: 443},
		want: "10.0.0.1:443",
	}, {
		name: "with IPv6 address",
		c:    Candidate{Host: "::1", Port: DefaultOpenVPNPort},
		want: "[::1]:1194",
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Address(); got != tt.want {
				t.Fatal("expected", tt.want, "got", got)
			}
		})
	}
}

func TestErrorToStringOrOK(t *testing.T) {
	if ErrorToStringOrOK(nil) != "ok" {
		t.Fatal("expected ok")
	}
	if ErrorToStringOrOK(errors.New("connection refused")) != "connection refused" {
		t.Fatal("expected the error string")
	}
}
