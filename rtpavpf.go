// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package avpf

import (
	"strings"

	"github.com/pion/logging"
	"github.com/pion/sdp/v3"
)

const defaultNACK = true

// RTPAVPFMediaHandler extends a base RTP/AVP handler with negotiation of
// RTCP feedback attributes (RFC 4585, RFC 5124).
//
// Offers get rtcp-fb attributes for every VP8 and H264 format of a video
// section. Answers keep only the rtcp-fb attributes this handler supports.
// The handler is immutable after construction and may be shared between
// negotiations of distinct media sections.
type RTPAVPFMediaHandler struct {
	base          MediaHandler
	nack          bool
	loggerFactory logging.LoggerFactory
	log           logging.LeveledLogger
}

// NewRTPAVPFMediaHandler creates a RTPAVPFMediaHandler. Unless WithBaseHandler
// is given, the base is an RTPAVPMediaHandler serving RTP/AVPF with the
// default codecs.
func NewRTPAVPFMediaHandler(options ...func(*RTPAVPFMediaHandler)) *RTPAVPFMediaHandler {
	h := &RTPAVPFMediaHandler{
		nack: defaultNACK,
	}

	for _, o := range options {
		o(h)
	}

	if h.base == nil {
		h.base = NewRTPAVPMediaHandler(WithProto(ProtoRTPAVPF), WithDefaultCodecs())
	}

	if h.loggerFactory == nil {
		h.loggerFactory = logging.NewDefaultLoggerFactory()
	}
	h.log = h.loggerFactory.NewLogger("avpf")

	return h
}

// WithNACK sets whether generic NACK feedback is offered and accepted.
// It can only be set at construction.
func WithNACK(enabled bool) func(*RTPAVPFMediaHandler) {
	return func(h *RTPAVPFMediaHandler) {
		h.nack = enabled
	}
}

// WithBaseHandler sets the handler producing the baseline offers and answers.
func WithBaseHandler(base MediaHandler) func(*RTPAVPFMediaHandler) {
	return func(h *RTPAVPFMediaHandler) {
		h.base = base
	}
}

// WithLoggerFactory sets the logger factory used by the handler.
func WithLoggerFactory(f logging.LoggerFactory) func(*RTPAVPFMediaHandler) {
	return func(h *RTPAVPFMediaHandler) {
		h.loggerFactory = f
	}
}

// NACK reports whether generic NACK feedback is negotiated.
func (h *RTPAVPFMediaHandler) NACK() bool {
	return h.nack
}

// CreateOffer implements MediaHandler.
func (h *RTPAVPFMediaHandler) CreateOffer(media string) (*sdp.MediaDescription, error) {
	d, err := h.base.CreateOffer(media)
	if err != nil {
		return nil, &UpstreamNegotiationError{Op: "create offer", Err: err}
	}

	if err := h.addRTCPFeedbackAttributes(NewMediaSection(d)); err != nil {
		return nil, err
	}

	return d, nil
}

// CreateAnswer implements MediaHandler.
func (h *RTPAVPFMediaHandler) CreateAnswer(offer *sdp.MediaDescription) (*sdp.MediaDescription, error) {
	d, err := h.base.CreateAnswer(offer)
	if err != nil {
		return nil, &UpstreamNegotiationError{Op: "create answer", Err: err}
	}

	// The base handler copies every attribute it does not manage,
	// rtcp-fb included, so the RTP/AVPF ones are filtered here.
	if err := h.filterRTCPFeedbackAttributes(NewMediaSection(d)); err != nil {
		return nil, err
	}

	return d, nil
}

func (h *RTPAVPFMediaHandler) addRTCPFeedbackAttributes(m MediaBlock) error {
	if m.TypeLabel() != mediaKindVideo {
		return nil
	}

	for i := 0; ; i++ {
		rtpmap, ok := m.AttributeValue(attrKeyRTPMap, i)
		if !ok {
			return nil
		}

		format, encoding, ok := parseRTPMap(rtpmap)
		if !ok {
			h.log.Debugf("Skipping malformed attribute a=rtpmap:%s", rtpmap)
			continue
		}

		if !isSupportedEncoder(encoding) {
			continue
		}

		if err := h.addCodecRTCPFeedback(m, format, encoding); err != nil {
			return err
		}
	}
}

func (h *RTPAVPFMediaHandler) addCodecRTCPFeedback(m MediaBlock, format, encoding string) error {
	feedback := make([]RTCPFeedback, 0, 4)
	if h.nack {
		feedback = append(feedback,
			RTCPFeedback{PayloadFormat: format, Type: TypeRTCPFBNACK},
			RTCPFeedback{PayloadFormat: format, Type: TypeRTCPFBNACK, Parameter: ParamPLI},
		)
	}

	feedback = append(feedback, RTCPFeedback{PayloadFormat: format, Type: TypeRTCPFBCCM, Parameter: ParamFIR})

	if strings.HasPrefix(encoding, encodingVP8) {
		feedback = append(feedback, RTCPFeedback{PayloadFormat: format, Type: TypeRTCPFBGoogREMB})
	}

	for _, fb := range feedback {
		value := fb.String()
		if err := m.AddAttribute(AttrKeyRTCPFeedback, value); err != nil {
			return &AttributeMutationError{Op: "add", Attribute: AttrKeyRTCPFeedback + ":" + value, Err: err}
		}
		h.log.Tracef("Added attribute a=%s:%s", AttrKeyRTCPFeedback, value)
	}

	return nil
}

// filterRTCPFeedbackAttributes removes rtcp-fb attributes in place. The
// cursor only moves past kept attributes, removal shifts the next one into
// its position, and the bound is the current attribute count.
func (h *RTPAVPFMediaHandler) filterRTCPFeedbackAttributes(m MediaBlock) error {
	if m.TypeLabel() != mediaKindVideo {
		return nil
	}

	for i := 0; i < m.AttributeCount(); {
		attr, ok := m.AttributeAt(i)
		if !ok || attr.Key == "" {
			h.log.Debugf("No attribute at %d, stop filtering", i)
			return nil
		}

		if attr.Key != AttrKeyRTCPFeedback {
			i++
			continue
		}

		if reason := h.rejectRTCPFeedback(m, attr.Value); reason != "" {
			h.log.Debugf("%d Removing %s attribute a=%s:%s", i, reason, AttrKeyRTCPFeedback, attr.Value)
			if err := m.RemoveAttributeAt(i); err != nil {
				return &AttributeMutationError{Op: "remove", Attribute: AttrKeyRTCPFeedback + ":" + attr.Value, Err: err}
			}
			continue
		}

		i++
	}

	return nil
}

// rejectRTCPFeedback returns why the rtcp-fb value must be removed from an
// answer, or "" if it is kept.
func (h *RTPAVPFMediaHandler) rejectRTCPFeedback(m MediaBlock, value string) string {
	fields := strings.Fields(value)

	switch {
	case len(fields) == 0 || !hasFormat(m, fields[0]):
		return "unsupported format"
	case len(fields) < 2:
		return "malformed"
	case fields[1] == TypeRTCPFBNACK && !h.nack:
		return "disabled"
	case !isRecognizedFeedbackValue(fields[1]):
		return "unsupported"
	default:
		return ""
	}
}

// parseRTPMap returns the format and encoding name of an a=rtpmap value,
// e.g. "96 VP8/90000".
func parseRTPMap(value string) (format, encoding string, ok bool) {
	split := strings.Fields(value)
	if len(split) < 2 {
		return "", "", false
	}
	return split[0], split[1], true
}
