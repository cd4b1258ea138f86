package cli

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/consolecli/log"
)

func TestLogConfig_scan(t *testing.T) {
	t.Cleanup(func() { log.Config(log.WithDefaults(os.Stderr)) })

	tests := []struct {
		name string
		args []string
		want logConfig
	}{
		{
			name: "separate values",
			args: []string{"--log-level", "debug", "--log-format", "json", "parse"},
			want: logConfig{Level: "debug", Format: "json"},
		},
		{
			name: "assigned values",
			args: []string{"--log-level=warn", "--log-time-layout=none"},
			want: logConfig{Level: "warn", TimeLayout: "none"},
		},
		{
			name: "booleans",
			args: []string{"--log-caller", "--no-log-pretty"},
			want: logConfig{Caller: true, Pretty: false},
		},
		{
			name: "assigned booleans",
			args: []string{"--log-pretty=true", "--no-log-caller=false"},
			want: logConfig{Pretty: true, Caller: true},
		},
		{
			name: "invalid boolean ignored",
			args: []string{"--log-pretty=maybe"},
			want: logConfig{},
		},
		{
			name: "stops at separator",
			args: []string{"--log-caller", "--", "--log-level", "error"},
			want: logConfig{Caller: true},
		},
		{
			name: "negated value flag ignored",
			args: []string{"--no-log-level", "trace"},
			want: logConfig{},
		},
		{
			name: "value missing",
			args: []string{"--log-level", "--log-caller"},
			want: logConfig{Caller: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got logConfig

			got.scan(tt.args)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("scan() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
