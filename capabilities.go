// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package avpf

import "strings"

const (
	mediaKindVideo = "video"
	mediaKindAudio = "audio"

	attrKeyRTPMap = "rtpmap"

	encodingVP8  = "VP8"
	encodingH264 = "H264"
)

// Encoding name prefixes that get rtcp-fb attributes in an offer.
var videoRTCPFeedbackEncoders = []string{ //nolint:gochecknoglobals
	encodingVP8,
	encodingH264,
}

func isSupportedEncoder(name string) bool {
	for _, enc := range videoRTCPFeedbackEncoders {
		if strings.HasPrefix(name, enc) {
			return true
		}
	}
	return false
}

// pli and fir are parameters, never values.
func isRecognizedFeedbackValue(v string) bool {
	switch v {
	case TypeRTCPFBGoogREMB, TypeRTCPFBNACK, TypeRTCPFBCCM:
		return true
	default:
		return false
	}
}
