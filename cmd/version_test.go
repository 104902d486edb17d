package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersionCommand(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		expectedOutput []string
	}{
		{
			name: "full version output",
			args: []string{"version"},
			expectedOutput: []string{
				"FlowIQ Recording Ingestion API",
				"Version:",
				"Git Commit:",
				"Go Version:",
			},
		},
		{
			name:           "short version output",
			args:           []string{"version", "--short"},
			expectedOutput: []string{"v" + Version},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewRootCmd()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(tt.args)

			if err := cmd.Execute(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			for _, want := range tt.expectedOutput {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output missing %q, got: %s", want, buf.String())
				}
			}
		})
	}

	// Reset the persistent short flag for other tests on the shared command
	_ = versionCmd.Flags().Set("short", "false")
}
