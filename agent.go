// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package avpf

import (
	"fmt"
	"strconv"

	"github.com/pion/sdp/v3"
)

// Agent builds whole session descriptions by handing every m= line to the
// MediaHandler registered for its media kind.
type Agent struct {
	handlers map[string]MediaHandler
}

// NewAgent creates an Agent with the given handlers.
func NewAgent(options ...func(*Agent)) *Agent {
	a := &Agent{handlers: map[string]MediaHandler{}}

	for _, o := range options {
		o(a)
	}

	return a
}

// WithMediaHandler registers h for media sections of the given kind.
func WithMediaHandler(kind string, h MediaHandler) func(*Agent) {
	return func(a *Agent) {
		a.handlers[kind] = h
	}
}

// CreateOffer creates a session description with one media section per kind.
func (a *Agent) CreateOffer(kinds ...string) (*sdp.SessionDescription, error) {
	d, err := sdp.NewJSEPSessionDescription(false)
	if err != nil {
		return nil, err
	}

	for i, kind := range kinds {
		h, ok := a.handlers[kind]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNoHandler, kind)
		}

		m, err := h.CreateOffer(kind)
		if err != nil {
			return nil, fmt.Errorf("media section %d (%s): %w", i, kind, err)
		}

		d.WithMedia(m.WithValueAttribute(sdp.AttrKeyMID, strconv.Itoa(i)))
	}

	return d, nil
}

// CreateAnswer answers every media section of offer. Sections without a
// handler for their kind are rejected with port 0. Any handler error fails
// the whole answer.
func (a *Agent) CreateAnswer(offer *sdp.SessionDescription) (*sdp.SessionDescription, error) {
	if offer == nil {
		return nil, ErrNilSessionDescription
	}

	d, err := sdp.NewJSEPSessionDescription(false)
	if err != nil {
		return nil, err
	}

	for i, m := range offer.MediaDescriptions {
		kind := m.MediaName.Media

		h, ok := a.handlers[kind]
		if !ok {
			d.WithMedia(rejectedMediaSection(m))
			continue
		}

		answer, err := h.CreateAnswer(m)
		if err != nil {
			return nil, fmt.Errorf("media section %d (%s): %w", i, kind, err)
		}

		d.WithMedia(answer)
	}

	return d, nil
}

// rejectedMediaSection answers an offered stream with port 0, RFC 3264 6.
func rejectedMediaSection(offer *sdp.MediaDescription) *sdp.MediaDescription {
	formats := offer.MediaName.Formats
	if len(formats) > 1 {
		formats = formats[:1]
	}

	m := &sdp.MediaDescription{
		MediaName: sdp.MediaName{
			Media:   offer.MediaName.Media,
			Port:    sdp.RangedPort{Value: 0},
			Protos:  append([]string{}, offer.MediaName.Protos...),
			Formats: append([]string{}, formats...),
		},
	}

	if mid, ok := offer.Attribute(sdp.AttrKeyMID); ok {
		m.WithValueAttribute(sdp.AttrKeyMID, mid)
	}

	return m
}
