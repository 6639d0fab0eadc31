// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package avpf

import (
	"errors"
	"fmt"
)

var (
	// ErrAttributeIndexOutOfRange indicates an attribute position outside of the media section.
	ErrAttributeIndexOutOfRange = errors.New("attribute index out of range")

	// ErrEmptyAttributeKey indicates an attempt to add an attribute without a key.
	ErrEmptyAttributeKey = errors.New("attribute key must not be empty")

	// ErrMalformedRTCPFeedback indicates an rtcp-fb value that is not `<fmt> <type> [<param>]`.
	ErrMalformedRTCPFeedback = errors.New("malformed rtcp-fb value")

	// ErrNoCodecs indicates that no codecs are registered for the requested media kind.
	ErrNoCodecs = errors.New("no codecs registered for media")

	// ErrProtoMismatch indicates that the offered transport protocol is not the one the handler serves.
	ErrProtoMismatch = errors.New("offered proto does not match handler proto")

	// ErrNoFormats indicates a media section without payload formats.
	ErrNoFormats = errors.New("media section has no formats")

	// ErrNilMediaDescription indicates a nil media description was passed to a handler.
	ErrNilMediaDescription = errors.New("media description is nil")

	// ErrNoHandler indicates that the agent has no handler for a media kind.
	ErrNoHandler = errors.New("no media handler for kind")

	// ErrNilSessionDescription indicates a nil session description was passed to the agent.
	ErrNilSessionDescription = errors.New("session description is nil")
)

// UpstreamNegotiationError indicates that the base media handler failed to
// produce the baseline offer or answer. No feedback processing took place.
type UpstreamNegotiationError struct {
	Op  string
	Err error
}

func (e *UpstreamNegotiationError) Error() string {
	return fmt.Sprintf("upstream negotiation error: %s: %v", e.Op, e.Err)
}

func (e *UpstreamNegotiationError) Unwrap() error {
	return e.Err
}

// AttributeMutationError indicates that the media section rejected an add or
// remove of an attribute. The media section must be discarded.
type AttributeMutationError struct {
	Op        string
	Attribute string
	Err       error
}

func (e *AttributeMutationError) Error() string {
	return fmt.Sprintf("can not %s media attribute a=%s: %v", e.Op, e.Attribute, e.Err)
}

func (e *AttributeMutationError) Unwrap() error {
	return e.Err
}
