package model

//
// Relay candidates
//

import (
	"net"
	"strconv"
)

// DefaultOpenVPNPort is the port we assume when a profile
// does not contain any `remote` directive.
const DefaultOpenVPNPort = 1194

// Candidate is a VPN relay parsed from a single row of the server list.
//
// A Candidate is created once by the parser and never modified
// afterwards. Stages that need to attach information (e.g., the
// prober) do so by wrapping the candidate into another value.
type Candidate struct {
	// Host is the IP address (or hostname) of the relay.
	Host string

	// Port is the port extracted from the profile's `remote` directive.
	Port int

	// Country is the long country name (e.g., "Japan").
	Country string

	// CountryCode is the two-letter country code (e.g., "JP").
	CountryCode string

	// Score is the ranking score published by the list.
	Score int

	// Proto is the profile's `proto` directive (e.g., "tcp" or "udp")
	// or the empty string when the profile does not specify it.
	Proto string

	// Payload is the decoded OpenVPN profile.
	Payload string
}

// Address returns the host:port endpoint to connect to.
func (c Candidate) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ProbeResult is the result of probing a single [Candidate].
type ProbeResult struct {
	// Candidate is the probed candidate.
	Candidate Candidate

	// Success indicates whether the TCP handshake completed.
	Success bool

	// Latency is the time it took to connect in milliseconds. This
	// field is only meaningful when Success is true.
	Latency float64

	// Err is the connect error, when Success is false.
	Err error
}

// ErrorToStringOrOK emits "ok" on "<nil>" values for success.
func ErrorToStringOrOK(err error) string {
	if err != nil {
		return err.Error()
	}
	return "ok"
}
