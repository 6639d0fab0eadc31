// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrInvalidProto indicates a proto that is not of the form "RTP/AVPF".
	ErrInvalidProto = errors.New("invalid proto")

	// ErrInvalidLogLevel indicates a log_level unknown to pion/logging.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidPayloadType indicates a payload type outside 0-127.
	ErrInvalidPayloadType = errors.New("invalid payload type")

	// ErrMissingCodecName indicates a codec without encoding name.
	ErrMissingCodecName = errors.New("codec name is required")

	// ErrInvalidClockRate indicates a codec clock rate that is not positive.
	ErrInvalidClockRate = errors.New("invalid clock rate")

	// ErrInvalidChannels indicates a channel count outside 0-255.
	ErrInvalidChannels = errors.New("invalid channel count")
)
