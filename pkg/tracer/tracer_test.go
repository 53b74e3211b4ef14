package tracer

import (
	"context"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"

	"github.com/dmehra2102/prod-golang-projects/labdesk/config"
)

func TestSetupDisabled(t *testing.T) {
	ctx := context.Background()
	shutdown, err := Setup(ctx,
		config.TracingConfig{ServiceName: "labdesk-test"},
		config.AppConfig{Version: "1.2.3", Environment: "test"},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, span := otel.Tracer("labdesk-test").Start(ctx, "disabled")
	if span.IsRecording() {
		t.Fatal("expected spans to be non-recording when tracing is disabled")
	}
	span.End()

	if err := shutdown(ctx); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}
}

func TestSampler(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.TracingConfig
		want string
	}{
		{"disabled", config.TracingConfig{Enabled: false, SampleRate: 1}, "AlwaysOffSampler"},
		{"full", config.TracingConfig{Enabled: true, SampleRate: 1}, "AlwaysOnSampler"},
		{"ratio", config.TracingConfig{Enabled: true, SampleRate: 0.25}, "ParentBased"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sampler(tt.cfg).Description(); !strings.HasPrefix(got, tt.want) {
				t.Fatalf("expected %s sampler, got %s", tt.want, got)
			}
		})
	}
}
