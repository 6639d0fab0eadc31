// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package avpf

import (
	"fmt"
	"strings"

	"github.com/pion/rtcp"
)

const (
	// AttrKeyRTCPFeedback is the SDP attribute carrying RTCP feedback capabilities.
	AttrKeyRTCPFeedback = "rtcp-fb"

	// TypeRTCPFBNACK ..
	TypeRTCPFBNACK = "nack"

	// TypeRTCPFBCCM ..
	TypeRTCPFBCCM = "ccm"

	// TypeRTCPFBGoogREMB ..
	TypeRTCPFBGoogREMB = "goog-remb"

	// TypeRTCPFBTransportCC is understood when parsing but never negotiated.
	TypeRTCPFBTransportCC = "transport-cc"

	// ParamPLI requests Picture Loss Indication when used with nack.
	ParamPLI = "pli"

	// ParamFIR requests Full Intra Request when used with ccm.
	ParamFIR = "fir"

	// FormatWildcard applies an rtcp-fb line to every format of the media section.
	FormatWildcard = "*"
)

// RTCPFeedback signals the connection to use additional RTCP packet types.
// https://tools.ietf.org/html/rfc4585#section-4.2
type RTCPFeedback struct {
	// PayloadFormat is the payload format the feedback applies to, or "*".
	PayloadFormat string

	// Type is the type of feedback.
	// valid: ccm, nack, goog-remb, transport-cc
	Type string

	// The parameter value depends on the type.
	// For example, type="nack" parameter="pli" will send Picture Loss Indicator packets.
	Parameter string
}

// ParseRTCPFeedback parses the value of an a=rtcp-fb attribute.
func ParseRTCPFeedback(value string) (RTCPFeedback, error) {
	split := strings.Fields(value)
	if len(split) < 2 {
		return RTCPFeedback{}, fmt.Errorf("%w: %q", ErrMalformedRTCPFeedback, value)
	}

	fb := RTCPFeedback{PayloadFormat: split[0], Type: split[1]}
	if len(split) > 2 {
		fb.Parameter = strings.Join(split[2:], " ")
	}
	return fb, nil
}

// String renders the feedback as an a=rtcp-fb attribute value.
func (f RTCPFeedback) String() string {
	if f.Parameter == "" {
		return f.PayloadFormat + " " + f.Type
	}
	return f.PayloadFormat + " " + f.Type + " " + f.Parameter
}

// PacketType returns the RTCP packet type and feedback message type that the
// feedback allows a receiver to send. ok is false for feedback that has no
// single RTCP packet counterpart.
func (f RTCPFeedback) PacketType() (typ rtcp.PacketType, format uint8, ok bool) {
	switch {
	case f.Type == TypeRTCPFBNACK && f.Parameter == "":
		return rtcp.TypeTransportSpecificFeedback, rtcp.FormatTLN, true
	case f.Type == TypeRTCPFBNACK && f.Parameter == ParamPLI:
		return rtcp.TypePayloadSpecificFeedback, rtcp.FormatPLI, true
	case f.Type == TypeRTCPFBCCM && f.Parameter == ParamFIR:
		return rtcp.TypePayloadSpecificFeedback, rtcp.FormatFIR, true
	case f.Type == TypeRTCPFBGoogREMB:
		return rtcp.TypePayloadSpecificFeedback, rtcp.FormatREMB, true
	case f.Type == TypeRTCPFBTransportCC:
		return rtcp.TypeTransportSpecificFeedback, rtcp.FormatTCC, true
	default:
		return 0, 0, false
	}
}
