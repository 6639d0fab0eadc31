// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strings"

	"github.com/pion/avpf/internal/util"
)

// Validate reports every problem of the configuration at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Proto == "" || strings.Count(c.Proto, "/") == 0 {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidProto, c.Proto))
	}

	if _, ok := logLevels[strings.ToLower(c.LogLevel)]; !ok {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel))
	}

	for kind, codecs := range c.Codecs {
		for i := range codecs {
			if err := codecs[i].Validate(); err != nil {
				errs = append(errs, fmt.Errorf("codecs.%s[%d]: %w", kind, i, err))
			}
		}
	}

	return util.FlattenErrs(errs)
}

// Validate returns the first problem found in the codec entry.
func (c *CodecConfig) Validate() error {
	if c.PayloadType < 0 || c.PayloadType > 127 {
		return fmt.Errorf("%w: %d", ErrInvalidPayloadType, c.PayloadType)
	}

	if c.Name == "" {
		return ErrMissingCodecName
	}

	if c.ClockRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidClockRate, c.ClockRate)
	}

	if c.Channels < 0 || c.Channels > 255 {
		return fmt.Errorf("%w: %d", ErrInvalidChannels, c.Channels)
	}

	return nil
}
