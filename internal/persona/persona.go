// Package persona holds the interviewer personas a session can run
// under. Defaults ship embedded in the binary; deployments may override
// them with a YAML file.
package persona

import (
	_ "embed"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed personas.yaml
var defaultPersonasYAML []byte

// DefaultID is the persona used when a session names no persona or an
// unknown one. Persona choice must never block an interview.
const DefaultID = "professional"

// Persona describes one interviewer identity.
type Persona struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Tone        string `yaml:"tone" json:"tone"`
	StylePrompt string `yaml:"style_prompt" json:"style_prompt"`
}

type personaFile struct {
	Personas []Persona `yaml:"personas"`
}

// Registry resolves persona ids. It is immutable after construction and
// safe for concurrent use.
type Registry struct {
	byID map[string]Persona
	log  *zap.SugaredLogger
}

// NewRegistry loads the embedded persona set, then applies the override
// file if path is non-empty.
func NewRegistry(path string, log *zap.SugaredLogger) (*Registry, error) {
	r := &Registry{byID: make(map[string]Persona), log: log}

	if err := r.loadYAML(defaultPersonasYAML); err != nil {
		return nil, fmt.Errorf("load embedded personas: %w", err)
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read persona file %s: %w", path, err)
		}
		if err := r.loadYAML(b); err != nil {
			return nil, fmt.Errorf("load persona file %s: %w", path, err)
		}
	}

	if _, ok := r.byID[DefaultID]; !ok {
		return nil, fmt.Errorf("persona set has no %q default", DefaultID)
	}
	return r, nil
}

func (r *Registry) loadYAML(b []byte) error {
	var f personaFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return err
	}
	for _, p := range f.Personas {
		if p.ID == "" {
			return fmt.Errorf("persona %q has no id", p.Name)
		}
		r.byID[p.ID] = p
	}
	return nil
}

// Get resolves id to a persona, falling back to the default for unknown
// or empty ids.
func (r *Registry) Get(id string) Persona {
	if id == "" {
		return r.byID[DefaultID]
	}
	p, ok := r.byID[id]
	if !ok {
		if r.log != nil {
			r.log.Warnw("unknown persona, using default", "persona_id", id)
		}
		return r.byID[DefaultID]
	}
	return p
}

// IDs lists the known persona ids.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	return ids
}
