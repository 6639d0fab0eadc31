// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package avpf

import (
	"github.com/pion/rtcp"
	"github.com/pion/sdp/v3"
)

// FeedbackSet holds the negotiated RTCP feedback of a media section, keyed by
// payload format.
type FeedbackSet map[string][]RTCPFeedback

// NegotiatedFeedback collects the rtcp-fb attributes of a media section.
// Malformed values are skipped and wildcard lines apply to every declared
// format.
func NegotiatedFeedback(m *sdp.MediaDescription) FeedbackSet {
	set := FeedbackSet{}
	if m == nil {
		return set
	}

	for _, a := range m.Attributes {
		if a.Key != AttrKeyRTCPFeedback {
			continue
		}

		fb, err := ParseRTCPFeedback(a.Value)
		if err != nil {
			continue
		}

		if fb.PayloadFormat != FormatWildcard {
			set.add(fb)
			continue
		}

		for _, format := range m.MediaName.Formats {
			fb.PayloadFormat = format
			set.add(fb)
		}
	}

	return set
}

func (s FeedbackSet) add(fb RTCPFeedback) {
	if s.Has(fb.PayloadFormat, fb.Type, fb.Parameter) {
		return
	}
	s[fb.PayloadFormat] = append(s[fb.PayloadFormat], fb)
}

// Has reports whether the feedback was negotiated for the payload format.
func (s FeedbackSet) Has(payloadFormat, typ, parameter string) bool {
	for _, fb := range s[payloadFormat] {
		if fb.Type == typ && fb.Parameter == parameter {
			return true
		}
	}
	return false
}

// HasAny reports whether the feedback was negotiated for any payload format.
func (s FeedbackSet) HasAny(typ, parameter string) bool {
	for format := range s {
		if s.Has(format, typ, parameter) {
			return true
		}
	}
	return false
}

// NACK reports whether generic NACK was negotiated for any payload format.
func (s FeedbackSet) NACK() bool {
	return s.HasAny(TypeRTCPFBNACK, "")
}

// Allows reports whether pkt may be sent for a stream using payloadFormat.
// Packets that are not RTCP feedback messages are always allowed.
func (s FeedbackSet) Allows(payloadFormat string, pkt rtcp.Packet) bool {
	var typ rtcp.PacketType
	var format uint8

	switch pkt.(type) {
	case *rtcp.TransportLayerNack:
		typ, format = rtcp.TypeTransportSpecificFeedback, rtcp.FormatTLN
	case *rtcp.PictureLossIndication:
		typ, format = rtcp.TypePayloadSpecificFeedback, rtcp.FormatPLI
	case *rtcp.FullIntraRequest:
		typ, format = rtcp.TypePayloadSpecificFeedback, rtcp.FormatFIR
	case *rtcp.ReceiverEstimatedMaximumBitrate:
		typ, format = rtcp.TypePayloadSpecificFeedback, rtcp.FormatREMB
	case *rtcp.TransportLayerCC:
		typ, format = rtcp.TypeTransportSpecificFeedback, rtcp.FormatTCC
	default:
		return true
	}

	for _, fb := range s[payloadFormat] {
		if t, f, ok := fb.PacketType(); ok && t == typ && f == format {
			return true
		}
	}
	return false
}
