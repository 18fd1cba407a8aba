// Package vpngate parses the VPN Gate server list.
//
// The list is CSV-like text where every server row carries a
// base64-encoded OpenVPN profile in its last column. Rows we cannot
// make sense of are silently skipped: the list is noisy and a broken
// row is not something the user can act upon.
package vpngate

import (
	"encoding/base64"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/gateprobe/gateprobe/internal/model"
	"github.com/google/shlex"
)

const (
	// fieldSeparator separates the columns of a row.
	fieldSeparator = ","

	// minFields is the minimum number of columns of a server row.
	minFields = 15

	// indexes of the columns we care about.
	hostIndex        = 1
	scoreIndex       = 2
	countryIndex     = 5
	countryCodeIndex = 6
)

// commentPrefixes contains the prefixes of lines that are not server
// rows: "*vpn_servers" and "*" frame the list and "#HostName,..." is
// the header describing the columns.
var commentPrefixes = []string{"*", "#"}

// remoteDirective matches the first `remote <host> <port>` line.
var remoteDirective = regexp.MustCompile(`(?m)^remote\s+(\S+)\s+(\d+)`)

// Parse parses the server list and returns the candidates sorted
// by descending score. Ties keep the order of the list.
//
// An empty return value means that the list did not contain any
// usable row and the caller should treat it as "no servers found".
func Parse(data string) []model.Candidate {
	var out []model.Candidate
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimRight(line, "\r")
		c, good := parseLine(line)
		if !good {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// parseLine parses a single row.
func parseLine(line string) (model.Candidate, bool) {
	if isComment(line) || !strings.Contains(line, fieldSeparator) {
		return model.Candidate{}, false
	}
	fields := strings.Split(line, fieldSeparator)
	if len(fields) < minFields {
		return model.Candidate{}, false
	}
	blob := strings.TrimSpace(fields[len(fields)-1])
	if blob == "" {
		return model.Candidate{}, false
	}
	payload, err := DecodeProfile(blob)
	if err != nil {
		return model.Candidate{}, false
	}
	score, err := strconv.Atoi(strings.TrimSpace(fields[scoreIndex]))
	if err != nil {
		return model.Candidate{}, false
	}
	port, err := strconv.Atoi(ExtractPort(payload))
	if err != nil {
		return model.Candidate{}, false
	}
	return model.Candidate{
		Host:        fields[hostIndex],
		Port:        port,
		Country:     fields[countryIndex],
		CountryCode: fields[countryCodeIndex],
		Score:       score,
		Proto:       ExtractProto(payload),
		Payload:     payload,
	}, true
}

func isComment(line string) bool {
	for _, prefix := range commentPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// DecodeProfile decodes a base64-encoded OpenVPN profile. Bytes
// that are not valid UTF-8 are dropped from the result.
func DecodeProfile(blob string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(data), ""), nil
}

// ExtractPort returns the port of the first `remote` directive
// in the given profile or "1194" if there is no such directive.
func ExtractPort(profile string) string {
	if m := remoteDirective.FindStringSubmatch(profile); len(m) == 3 {
		return m[2]
	}
	return strconv.Itoa(model.DefaultOpenVPNPort)
}

// ExtractProto returns the argument of the first `proto` directive
// in the given profile or the empty string.
func ExtractProto(profile string) string {
	for _, line := range strings.Split(profile, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "proto") {
			continue
		}
		tokens, err := shlex.Split(line)
		if err != nil || len(tokens) < 2 || tokens[0] != "proto" {
			continue
		}
		return tokens[1]
	}
	return ""
}
