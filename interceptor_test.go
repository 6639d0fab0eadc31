// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package avpf

import (
	"testing"

	"github.com/pion/interceptor"
	"github.com/pion/interceptor/pkg/intervalpli"
	"github.com/pion/interceptor/pkg/nack"
	"github.com/pion/interceptor/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRegistry struct {
	factories []interceptor.Factory
}

func (r *recordingRegistry) Add(f interceptor.Factory) {
	r.factories = append(r.factories, f)
}

func TestConfigureInterceptors(t *testing.T) {
	nackOnly := FeedbackSet{"96": {{PayloadFormat: "96", Type: "nack"}}}
	pliOnly := FeedbackSet{"96": {{PayloadFormat: "96", Type: "nack", Parameter: "pli"}}}
	nackPLI := FeedbackSet{"96": {
		{PayloadFormat: "96", Type: "nack"},
		{PayloadFormat: "96", Type: "nack", Parameter: "pli"},
	}}
	firOnly := FeedbackSet{"96": {{PayloadFormat: "96", Type: "ccm", Parameter: "fir"}}}

	for _, test := range []struct {
		name      string
		set       FeedbackSet
		opts      []InterceptorOption
		factories []interceptor.Factory
	}{
		{name: "nothing negotiated", set: FeedbackSet{}},
		{name: "fir only", set: firOnly},
		{
			name:      "nack only",
			set:       nackOnly,
			factories: []interceptor.Factory{&nack.ResponderInterceptorFactory{}, &nack.GeneratorInterceptorFactory{}},
		},
		{
			name:      "nack pli only",
			set:       pliOnly,
			factories: []interceptor.Factory{&intervalpli.ReceiverInterceptorFactory{}},
		},
		{
			name: "nack and pli",
			set:  nackPLI,
			factories: []interceptor.Factory{
				&nack.ResponderInterceptorFactory{},
				&nack.GeneratorInterceptorFactory{},
				&intervalpli.ReceiverInterceptorFactory{},
			},
		},
		{
			name:      "reports",
			set:       firOnly,
			opts:      []InterceptorOption{WithRTCPReports()},
			factories: []interceptor.Factory{&report.ReceiverInterceptorFactory{}, &report.SenderInterceptorFactory{}},
		},
	} {
		test := test
		t.Run(test.name, func(t *testing.T) {
			registry := &recordingRegistry{}
			require.NoError(t, ConfigureInterceptors(registry, test.set, test.opts...))

			require.Len(t, registry.factories, len(test.factories))
			for i, f := range test.factories {
				assert.IsType(t, f, registry.factories[i])
			}
		})
	}
}

func TestConfigureInterceptorsBuild(t *testing.T) {
	nackPLI := FeedbackSet{"96": {
		{PayloadFormat: "96", Type: "nack"},
		{PayloadFormat: "96", Type: "nack", Parameter: "pli"},
	}}

	t.Run("nothing negotiated", func(t *testing.T) {
		registry := &interceptor.Registry{}
		require.NoError(t, ConfigureInterceptors(registry, FeedbackSet{}))

		i, err := registry.Build("")
		require.NoError(t, err)
		assert.IsType(t, &interceptor.NoOp{}, i)
		assert.NoError(t, i.Close())
	})

	t.Run("nack and pli", func(t *testing.T) {
		registry := &interceptor.Registry{}
		require.NoError(t, ConfigureInterceptors(registry, nackPLI, WithRTCPReports()))

		i, err := registry.Build("")
		require.NoError(t, err)
		assert.IsType(t, &interceptor.Chain{}, i)
		assert.NoError(t, i.Close())
	})
}
