// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package avpf

import (
	"fmt"

	"github.com/pion/sdp/v3"
)

// MediaBlock is the ordered view of a single media section that the
// feedback negotiation operates on.
type MediaBlock interface {
	// TypeLabel returns the media type of the m= line, e.g. "video".
	TypeLabel() string

	// Formats returns the payload formats declared on the m= line.
	Formats() []string

	// AttributeCount returns the current number of attributes.
	AttributeCount() int

	// AttributeAt returns the attribute at position i, or false if there is none.
	AttributeAt(i int) (sdp.Attribute, bool)

	// AttributeValue returns the value of the n-th attribute named key,
	// counting from zero in declared order.
	AttributeValue(key string, n int) (string, bool)

	// AddAttribute appends an attribute.
	AddAttribute(key, value string) error

	// RemoveAttributeAt removes the attribute at position i. Attributes after
	// it move down by one.
	RemoveAttributeAt(i int) error
}

// MediaSection is a MediaBlock backed by a *sdp.MediaDescription. All
// mutations are applied to the wrapped description in place.
type MediaSection struct {
	desc *sdp.MediaDescription
}

// NewMediaSection wraps d. d must not be nil.
func NewMediaSection(d *sdp.MediaDescription) *MediaSection {
	return &MediaSection{desc: d}
}

// Description returns the wrapped media description.
func (m *MediaSection) Description() *sdp.MediaDescription {
	return m.desc
}

// TypeLabel implements MediaBlock.
func (m *MediaSection) TypeLabel() string {
	return m.desc.MediaName.Media
}

// Formats implements MediaBlock.
func (m *MediaSection) Formats() []string {
	return m.desc.MediaName.Formats
}

// AttributeCount implements MediaBlock.
func (m *MediaSection) AttributeCount() int {
	return len(m.desc.Attributes)
}

// AttributeAt implements MediaBlock.
func (m *MediaSection) AttributeAt(i int) (sdp.Attribute, bool) {
	if i < 0 || i >= len(m.desc.Attributes) {
		return sdp.Attribute{}, false
	}
	return m.desc.Attributes[i], true
}

// AttributeValue implements MediaBlock.
func (m *MediaSection) AttributeValue(key string, n int) (string, bool) {
	if n < 0 {
		return "", false
	}
	for _, a := range m.desc.Attributes {
		if a.Key != key {
			continue
		}
		if n == 0 {
			return a.Value, true
		}
		n--
	}
	return "", false
}

// AddAttribute implements MediaBlock.
func (m *MediaSection) AddAttribute(key, value string) error {
	if key == "" {
		return ErrEmptyAttributeKey
	}
	m.desc.WithValueAttribute(key, value)
	return nil
}

// RemoveAttributeAt implements MediaBlock.
func (m *MediaSection) RemoveAttributeAt(i int) error {
	if i < 0 || i >= len(m.desc.Attributes) {
		return fmt.Errorf("%w: %d of %d", ErrAttributeIndexOutOfRange, i, len(m.desc.Attributes))
	}
	m.desc.Attributes = append(m.desc.Attributes[:i], m.desc.Attributes[i+1:]...)
	return nil
}

func hasFormat(m MediaBlock, format string) bool {
	for _, f := range m.Formats() {
		if f == format {
			return true
		}
	}
	return false
}
