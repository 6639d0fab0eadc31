// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package avpf

import (
	"testing"

	"github.com/pion/sdp/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRTPAVPMediaHandlerCreateOffer(t *testing.T) {
	h := NewRTPAVPMediaHandler(WithDefaultCodecs())
	assert.Equal(t, ProtoRTPAVP, h.Proto())

	t.Run("audio", func(t *testing.T) {
		offer, err := h.CreateOffer("audio")
		require.NoError(t, err)

		assert.Equal(t, "audio 9 RTP/AVP 111 0 8", offer.MediaName.String())
		assert.Equal(t, []sdp.Attribute{
			sdp.NewAttribute("rtpmap", "111 opus/48000/2"),
			sdp.NewAttribute("fmtp", "111 minptime=10;useinbandfec=1"),
			sdp.NewAttribute("rtpmap", "0 PCMU/8000"),
			sdp.NewAttribute("rtpmap", "8 PCMA/8000"),
			sdp.NewPropertyAttribute("sendrecv"),
		}, offer.Attributes)
	})

	t.Run("no rtcp-fb", func(t *testing.T) {
		offer, err := h.CreateOffer("video")
		require.NoError(t, err)

		assert.Equal(t, []string{"96", "98", "102"}, offer.MediaName.Formats)
		assert.Empty(t, rtcpFeedbackValues(offer))
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := h.CreateOffer("application")
		assert.ErrorIs(t, err, ErrNoCodecs)
	})

	t.Run("custom codecs", func(t *testing.T) {
		offer, err := NewRTPAVPMediaHandler(
			WithProto(ProtoRTPAVPF),
			WithCodecs("video", Codec{PayloadType: 100, Name: "H264", ClockRate: 90000, SDPFmtpLine: "packetization-mode=1"}),
			WithCodecs("video", Codec{PayloadType: 101, Name: "VP8", ClockRate: 90000}),
		).CreateOffer("video")
		require.NoError(t, err)

		assert.Equal(t, "video 9 RTP/AVPF 100 101", offer.MediaName.String())
	})
}

func TestRTPAVPMediaHandlerCreateAnswer(t *testing.T) {
	h := NewRTPAVPMediaHandler(WithProto(ProtoRTPAVPF))

	t.Run("copies unmanaged attributes", func(t *testing.T) {
		offer := mediaSection("video", []string{"96"},
			sdp.NewAttribute("rtpmap", "96 VP8/90000"),
			sdp.NewAttribute(AttrKeyRTCPFeedback, "96 transport-cc"),
			sdp.NewAttribute("mid", "0"),
			sdp.NewPropertyAttribute("sendonly"),
		)

		answer, err := h.CreateAnswer(offer)
		require.NoError(t, err)

		assert.Equal(t, "video 9 RTP/AVPF 96", answer.MediaName.String())
		assert.Equal(t, []sdp.Attribute{
			sdp.NewAttribute("rtpmap", "96 VP8/90000"),
			sdp.NewAttribute(AttrKeyRTCPFeedback, "96 transport-cc"),
			sdp.NewAttribute("mid", "0"),
			sdp.NewPropertyAttribute("recvonly"),
		}, answer.Attributes)

		answer.Attributes[0].Value = "changed"
		answer.MediaName.Formats[0] = "97"
		assert.Equal(t, "96 VP8/90000", offer.Attributes[0].Value)
		assert.Equal(t, "96", offer.MediaName.Formats[0])
	})

	t.Run("directions", func(t *testing.T) {
		for offered, answered := range map[string]string{
			"sendonly": "recvonly",
			"recvonly": "sendonly",
			"sendrecv": "sendrecv",
			"inactive": "inactive",
		} {
			answer, err := h.CreateAnswer(mediaSection("audio", []string{"0"}, sdp.NewPropertyAttribute(offered)))
			require.NoError(t, err)
			assert.Equal(t, []sdp.Attribute{sdp.NewPropertyAttribute(answered)}, answer.Attributes, offered)
		}
	})

	t.Run("errors", func(t *testing.T) {
		_, err := h.CreateAnswer(nil)
		assert.ErrorIs(t, err, ErrNilMediaDescription)

		avp := mediaSection("video", []string{"96"})
		avp.MediaName.Protos = []string{"RTP", "AVP"}
		_, err = h.CreateAnswer(avp)
		assert.ErrorIs(t, err, ErrProtoMismatch)

		_, err = h.CreateAnswer(mediaSection("video", nil))
		assert.ErrorIs(t, err, ErrNoFormats)
	})
}
