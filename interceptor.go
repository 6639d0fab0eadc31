// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package avpf

import (
	"fmt"

	"github.com/pion/interceptor"
	"github.com/pion/interceptor/pkg/intervalpli"
	"github.com/pion/interceptor/pkg/nack"
	"github.com/pion/interceptor/pkg/report"
)

type interceptorConfig struct {
	rtcpReports bool
}

// InterceptorRegistry collects interceptor factories, e.g. *interceptor.Registry.
type InterceptorRegistry interface {
	Add(f interceptor.Factory)
}

// InterceptorOption configures ConfigureInterceptors.
type InterceptorOption func(*interceptorConfig)

// WithRTCPReports also registers Sender and Receiver Report interceptors.
func WithRTCPReports() InterceptorOption {
	return func(c *interceptorConfig) {
		c.rtcpReports = true
	}
}

// ConfigureInterceptors registers the interceptors needed to act on the
// negotiated feedback: NACK generation and response when nack was accepted,
// periodic PLI when nack pli was accepted.
func ConfigureInterceptors(registry InterceptorRegistry, set FeedbackSet, opts ...InterceptorOption) error {
	cfg := interceptorConfig{}
	for _, o := range opts {
		o(&cfg)
	}

	if set.NACK() {
		if err := configureNack(registry); err != nil {
			return err
		}
	}

	if set.HasAny(TypeRTCPFBNACK, ParamPLI) {
		pli, err := intervalpli.NewReceiverInterceptor()
		if err != nil {
			return fmt.Errorf("create pli interceptor: %w", err)
		}
		registry.Add(pli)
	}

	if cfg.rtcpReports {
		if err := configureRTCPReports(registry); err != nil {
			return err
		}
	}

	return nil
}

func configureNack(registry InterceptorRegistry) error {
	generator, err := nack.NewGeneratorInterceptor()
	if err != nil {
		return fmt.Errorf("create nack generator: %w", err)
	}

	responder, err := nack.NewResponderInterceptor()
	if err != nil {
		return fmt.Errorf("create nack responder: %w", err)
	}

	registry.Add(responder)
	registry.Add(generator)
	return nil
}

func configureRTCPReports(registry InterceptorRegistry) error {
	receiver, err := report.NewReceiverInterceptor()
	if err != nil {
		return fmt.Errorf("create receiver report interceptor: %w", err)
	}

	sender, err := report.NewSenderInterceptor()
	if err != nil {
		return fmt.Errorf("create sender report interceptor: %w", err)
	}

	registry.Add(receiver)
	registry.Add(sender)
	return nil
}
