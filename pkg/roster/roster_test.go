package roster

import (
	"testing"

	"github.com/cyberscribe/secret-santa/pkg/errors"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		path     string
		wantType string
		wantErr  bool
	}{
		{"participants.txt", "text", false},
		{"testdata/roster.toml", "toml", false},
		{"roster.yaml", "yaml", false},
		{"roster.yml", "yaml", false},
		{"roster.json", "", true},
		{"roster", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			p, err := Detect(tt.path, DefaultParsers()...)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeUnsupported) {
					t.Errorf("Detect(%q) error = %v, want UNSUPPORTED", tt.path, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Detect(%q) error = %v", tt.path, err)
			}
			if p.Type() != tt.wantType {
				t.Errorf("Detect(%q).Type() = %q, want %q", tt.path, p.Type(), tt.wantType)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "roster.toml", `participants = ["Alice", "Bob", "Carol"]`)

	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(r.Participants) != 3 {
		t.Errorf("len(Participants) = %d, want 3", len(r.Participants))
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("   ")
	if !errors.Is(err, errors.ErrCodeInvalidRoster) {
		t.Errorf("Load() error = %v, want INVALID_ROSTER", err)
	}
}
