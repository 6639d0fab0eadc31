// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package avpf

import (
	"fmt"
	"strings"

	"github.com/pion/sdp/v3"
)

const (
	// ProtoRTPAVP is the RTP/AVP profile (RFC 3551).
	ProtoRTPAVP = "RTP/AVP"

	// ProtoRTPAVPF is the RTP/AVPF profile (RFC 4585).
	ProtoRTPAVPF = "RTP/AVPF"

	discardPort = 9
)

const (
	directionSendRecv = "sendrecv"
	directionSendOnly = "sendonly"
	directionRecvOnly = "recvonly"
)

// RTPAVPMediaHandler creates offers and answers following the classic
// offer/answer model of RFC 3264. It knows nothing about RTCP feedback:
// attributes it does not manage are copied into the answer untouched.
type RTPAVPMediaHandler struct {
	proto  string
	codecs map[string][]Codec
}

// NewRTPAVPMediaHandler creates a handler serving the RTP/AVP profile unless
// WithProto says otherwise.
func NewRTPAVPMediaHandler(options ...func(*RTPAVPMediaHandler)) *RTPAVPMediaHandler {
	h := &RTPAVPMediaHandler{
		proto:  ProtoRTPAVP,
		codecs: map[string][]Codec{},
	}

	for _, o := range options {
		o(h)
	}

	return h
}

// WithProto sets the transport protocol of the m= line, e.g. "RTP/AVPF".
func WithProto(proto string) func(*RTPAVPMediaHandler) {
	return func(h *RTPAVPMediaHandler) {
		h.proto = proto
	}
}

// WithCodecs registers codecs offered for the given media kind, in preference order.
func WithCodecs(kind string, codecs ...Codec) func(*RTPAVPMediaHandler) {
	return func(h *RTPAVPMediaHandler) {
		h.codecs[kind] = append(h.codecs[kind], codecs...)
	}
}

// WithDefaultCodecs registers the default audio and video codecs.
func WithDefaultCodecs() func(*RTPAVPMediaHandler) {
	return func(h *RTPAVPMediaHandler) {
		h.RegisterDefaultCodecs()
	}
}

// RegisterDefaultCodecs registers the default codecs.
// RegisterDefaultCodecs is not safe for concurrent use.
func (h *RTPAVPMediaHandler) RegisterDefaultCodecs() {
	h.codecs[mediaKindAudio] = append(h.codecs[mediaKindAudio],
		Codec{PayloadType: 111, Name: "opus", ClockRate: 48000, Channels: 2, SDPFmtpLine: "minptime=10;useinbandfec=1"},
		Codec{PayloadType: 0, Name: "PCMU", ClockRate: 8000},
		Codec{PayloadType: 8, Name: "PCMA", ClockRate: 8000},
	)
	h.codecs[mediaKindVideo] = append(h.codecs[mediaKindVideo],
		Codec{PayloadType: 96, Name: encodingVP8, ClockRate: 90000},
		Codec{PayloadType: 98, Name: "VP9", ClockRate: 90000, SDPFmtpLine: "profile-id=0"},
		Codec{
			PayloadType: 102, Name: encodingH264, ClockRate: 90000,
			SDPFmtpLine: "level-asymmetry-allowed=1;packetization-mode=1;profile-level-id=42001f",
		},
	)
}

// Proto returns the transport protocol served by the handler.
func (h *RTPAVPMediaHandler) Proto() string {
	return h.proto
}

// CreateOffer implements MediaHandler.
func (h *RTPAVPMediaHandler) CreateOffer(media string) (*sdp.MediaDescription, error) {
	codecs := h.codecs[media]
	if len(codecs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoCodecs, media)
	}

	d := &sdp.MediaDescription{
		MediaName: sdp.MediaName{
			Media:  media,
			Port:   sdp.RangedPort{Value: discardPort},
			Protos: strings.Split(h.proto, "/"),
		},
	}
	for _, c := range codecs {
		d.WithCodec(c.PayloadType, c.Name, c.ClockRate, c.Channels, c.SDPFmtpLine)
	}

	return d.WithPropertyAttribute(directionSendRecv), nil
}

// CreateAnswer implements MediaHandler.
func (h *RTPAVPMediaHandler) CreateAnswer(offer *sdp.MediaDescription) (*sdp.MediaDescription, error) {
	if offer == nil {
		return nil, ErrNilMediaDescription
	}

	if proto := strings.Join(offer.MediaName.Protos, "/"); proto != h.proto {
		return nil, fmt.Errorf("%w: offered %s, expected %s", ErrProtoMismatch, proto, h.proto)
	}

	if len(offer.MediaName.Formats) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoFormats, offer.MediaName.Media)
	}

	answer := &sdp.MediaDescription{
		MediaName: sdp.MediaName{
			Media:   offer.MediaName.Media,
			Port:    sdp.RangedPort{Value: discardPort},
			Protos:  append([]string{}, offer.MediaName.Protos...),
			Formats: append([]string{}, offer.MediaName.Formats...),
		},
		Attributes: make([]sdp.Attribute, 0, len(offer.Attributes)),
	}

	for _, a := range offer.Attributes {
		if a.Value == "" {
			a.Key = answerDirection(a.Key)
		}
		answer.Attributes = append(answer.Attributes, a)
	}

	return answer, nil
}

// answerDirection mirrors an offered direction attribute, see RFC 3264 6.1.
func answerDirection(key string) string {
	switch key {
	case directionSendOnly:
		return directionRecvOnly
	case directionRecvOnly:
		return directionSendOnly
	default:
		return key
	}
}
