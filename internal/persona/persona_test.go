package persona

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRegistry_EmbeddedDefaults(t *testing.T) {
	r, err := NewRegistry("", nil)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	p := r.Get("professional")
	if p.ID != "professional" || p.Name == "" || p.StylePrompt == "" {
		t.Errorf("Get(professional) = %+v, want populated persona", p)
	}
	if len(r.IDs()) < 2 {
		t.Errorf("IDs() = %v, want embedded set", r.IDs())
	}
}

func TestRegistry_UnknownFallsBackToDefault(t *testing.T) {
	r, err := NewRegistry("", nil)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	for _, id := range []string{"", "no-such-persona"} {
		p := r.Get(id)
		if p.ID != DefaultID {
			t.Errorf("Get(%q).ID = %q, want %q", id, p.ID, DefaultID)
		}
	}
}

func TestRegistry_OverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "personas.yaml")
	override := `personas:
  - id: professional
    name: Replaced
    tone: curt
    style_prompt: Short questions only.
  - id: extra
    name: Extra
    tone: upbeat
    style_prompt: Be enthusiastic.
`
	if err := os.WriteFile(path, []byte(override), 0o600); err != nil {
		t.Fatalf("write override: %v", err)
	}

	r, err := NewRegistry(path, nil)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if got := r.Get("professional").Name; got != "Replaced" {
		t.Errorf("override did not replace default: Name = %q", got)
	}
	if got := r.Get("extra").ID; got != "extra" {
		t.Errorf("override did not add persona: ID = %q", got)
	}
	// embedded personas not named in the override survive
	if got := r.Get("friendly").ID; got != "friendly" {
		t.Errorf("embedded persona lost: ID = %q", got)
	}
}

func TestRegistry_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "personas.yaml")
	if err := os.WriteFile(path, []byte("personas: [not valid"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := NewRegistry(path, nil); err == nil {
		t.Error("NewRegistry with malformed YAML = nil error, want error")
	}
}
