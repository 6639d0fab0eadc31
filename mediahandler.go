// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package avpf

import "github.com/pion/sdp/v3"

// MediaHandler produces the media section of an offer or an answer for one
// m= line. Returned media descriptions are owned by the caller.
type MediaHandler interface {
	// CreateOffer creates an offered media section for the given media kind.
	CreateOffer(media string) (*sdp.MediaDescription, error)

	// CreateAnswer creates the answer to a single offered media section.
	// The offer is not modified.
	CreateAnswer(offer *sdp.MediaDescription) (*sdp.MediaDescription, error)
}

// Codec describes a payload format a handler is able to offer.
type Codec struct {
	PayloadType uint8
	Name        string
	ClockRate   uint32
	Channels    uint16
	SDPFmtpLine string
}
