package headers

import (
	"fmt"
	"strconv"
	"strings"
)

// LowerTransport is the lower-transport of a Transport header (UDP or TCP).
type LowerTransport int

const (
	LowerTransportUDP LowerTransport = iota
	LowerTransportTCP
)

// Cast is the delivery method of a Transport header.
type Cast int

const (
	CastUnicast Cast = iota
	CastMulticast
)

// Transport is a structured Transport header, covering the fields
// spec.md §3 names: transport-protocol, profile, lower-transport, cast,
// client_port, server_port, destination, source, ssrc, mode, ttl,
// interleaved.
type Transport struct {
	TransportProtocol string // "RTP" unless the server says otherwise
	Profile           string // "AVP", "AVP/TCP", "SAVP", ...
	Lower             LowerTransport
	HasLower          bool
	Cast              *Cast
	ClientPorts       *[2]int
	ServerPorts       *[2]int
	InterleavedIDs    *[2]int
	Destination       string
	Source            string
	SSRC              string
	Mode              string
	TTL               *int
}

func parsePortRange(s string) (*[2]int, error) {
	parts := strings.SplitN(s, "-", 2)
	p0, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid port range %q", s)
	}
	if len(parts) == 1 {
		return &[2]int{p0, p0 + 1}, nil
	}
	p1, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("invalid port range %q", s)
	}
	return &[2]int{p0, p1}, nil
}

func writePortRange(r [2]int) string {
	return strconv.Itoa(r[0]) + "-" + strconv.Itoa(r[1])
}

// Read decodes a Transport header value.
func (h *Transport) Read(v string) error {
	protoFound := false

	for _, kv := range keyValParse(v, ';') {
		switch {
		case !kv.has && strings.Contains(kv.key, "/"):
			parts := strings.SplitN(kv.key, "/", 3)
			h.TransportProtocol = parts[0]
			if len(parts) >= 2 {
				h.Profile = parts[1]
			}
			if len(parts) == 3 && strings.EqualFold(parts[2], "TCP") {
				h.Lower = LowerTransportTCP
				h.HasLower = true
			}
			protoFound = true

		case !kv.has && strings.EqualFold(kv.key, "unicast"):
			c := CastUnicast
			h.Cast = &c

		case !kv.has && strings.EqualFold(kv.key, "multicast"):
			c := CastMulticast
			h.Cast = &c

		case kv.key == "client_port":
			ports, err := parsePortRange(kv.val)
			if err != nil {
				return err
			}
			h.ClientPorts = ports

		case kv.key == "server_port":
			ports, err := parsePortRange(kv.val)
			if err != nil {
				return err
			}
			h.ServerPorts = ports

		case kv.key == "interleaved":
			ports, err := parsePortRange(kv.val)
			if err != nil {
				return err
			}
			h.InterleavedIDs = ports

		case kv.key == "destination":
			h.Destination = kv.val

		case kv.key == "source":
			h.Source = kv.val

		case kv.key == "ssrc":
			h.SSRC = kv.val

		case kv.key == "mode":
			h.Mode = strings.Trim(kv.val, "\"")

		case kv.key == "ttl":
			ttl, err := strconv.Atoi(kv.val)
			if err != nil {
				return fmt.Errorf("invalid ttl %q", kv.val)
			}
			h.TTL = &ttl

		default:
			// ignore non-standard keys
		}
	}

	if !protoFound {
		return fmt.Errorf("transport header missing transport-protocol: %q", v)
	}

	return nil
}

// Write encodes the Transport header back to its wire value. Rendering a
// parsed Transport then re-parsing it produces a semantically equivalent
// header.
func (h Transport) Write() string {
	var parts []string

	spec := h.TransportProtocol
	if spec == "" {
		spec = "RTP"
	}
	if h.Profile != "" {
		spec += "/" + h.Profile
	}
	if h.HasLower && h.Lower == LowerTransportTCP {
		spec += "/TCP"
	}
	parts = append(parts, spec)

	if h.Cast != nil {
		if *h.Cast == CastUnicast {
			parts = append(parts, "unicast")
		} else {
			parts = append(parts, "multicast")
		}
	}
	if h.Destination != "" {
		parts = append(parts, "destination="+h.Destination)
	}
	if h.Source != "" {
		parts = append(parts, "source="+h.Source)
	}
	if h.InterleavedIDs != nil {
		parts = append(parts, "interleaved="+writePortRange(*h.InterleavedIDs))
	}
	if h.ClientPorts != nil {
		parts = append(parts, "client_port="+writePortRange(*h.ClientPorts))
	}
	if h.ServerPorts != nil {
		parts = append(parts, "server_port="+writePortRange(*h.ServerPorts))
	}
	if h.TTL != nil {
		parts = append(parts, "ttl="+strconv.Itoa(*h.TTL))
	}
	if h.SSRC != "" {
		parts = append(parts, "ssrc="+h.SSRC)
	}
	if h.Mode != "" {
		parts = append(parts, `mode="`+h.Mode+`"`)
	}

	return strings.Join(parts, ";")
}
