package secrets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	keyFile := filepath.Join(dir, "key")
	if err := os.WriteFile(keyFile, []byte("  gsk_from_file\n"), 0o600); err != nil {
		t.Fatalf("write key file: %v", err)
	}

	emptyFile := filepath.Join(dir, "empty")
	if err := os.WriteFile(emptyFile, []byte("\n"), 0o600); err != nil {
		t.Fatalf("write empty file: %v", err)
	}

	tests := []struct {
		name          string
		src           Source
		want          string
		wantErr       bool
		notConfigured bool
	}{
		{
			name: "inline value is trimmed",
			src:  Source{Name: "completion api key", Value: "  gsk_inline  "},
			want: "gsk_inline",
		},
		{
			name: "file takes precedence over value",
			src:  Source{Name: "completion api key", Value: "gsk_inline", File: keyFile},
			want: "gsk_from_file",
		},
		{
			name:          "nothing configured",
			src:           Source{Name: "completion api key"},
			wantErr:       true,
			notConfigured: true,
		},
		{
			name:    "empty file",
			src:     Source{File: emptyFile},
			wantErr: true,
		},
		{
			name:    "missing file",
			src:     Source{File: filepath.Join(dir, "absent")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.src)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got secret %q", got)
				}
				if errors.Is(err, ErrNotConfigured) != tt.notConfigured {
					t.Fatalf("unexpected ErrNotConfigured match for %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
