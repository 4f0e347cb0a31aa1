package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLog(t *testing.T) {
	type tc struct {
		path    bool
		lines   []string
		wantLog bool
	}

	tests := map[string]tc{
		"disabled drops lines": {
			path:  false,
			lines: []string{"hello"},
		},
		"enabled writes lines": {
			path:    true,
			lines:   []string{"push 1", "back"},
			wantLog: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := ""
			if tt.path {
				path = filepath.Join(t.TempDir(), "logs", "debug.log")
			}
			if err := Init(path); err != nil {
				t.Fatalf("Init: %v", err)
			}
			t.Cleanup(func() { _ = Close() })

			if Enabled() != tt.wantLog {
				t.Fatalf("Enabled() = %v, want %v", Enabled(), tt.wantLog)
			}
			for _, line := range tt.lines {
				Log("%s", line)
			}
			if !tt.wantLog {
				return
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("reading log: %v", err)
			}
			got := strings.Split(strings.TrimSpace(string(data)), "\n")
			if len(got) != len(tt.lines) {
				t.Fatalf("got %d lines, want %d: %q", len(got), len(tt.lines), got)
			}
			for i, line := range tt.lines {
				if !strings.HasSuffix(got[i], "] "+line) {
					t.Errorf("line %d = %q, want suffix %q", i, got[i], line)
				}
			}
		})
	}
}
