// Package driver loads the optional run manifest (monty.yml) that
// configures `monty run` beyond a bare entry-script path, following
// the teacher's package.yml decode-and-validate pattern shrunk to the
// handful of settings this language subset actually has a use for
// (no imports, no build targets, nothing to resolve).
package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest is the parsed contents of monty.yml.
type Manifest struct {
	Path       string
	Entry      string
	EchoResult bool
}

type manifestFile struct {
	Entry      string `yaml:"entry"`
	EchoResult *bool  `yaml:"echo_result"`
}

// UnmarshalYAML rejects unknown keys by decoding into a plain
// intermediate type and then checking every mapping key against the
// known set, so a typo in monty.yml fails loudly rather than
// silently doing nothing — the same intent as the teacher's
// `decoder.KnownFields(true)` on package.yml.
func (m *manifestFile) UnmarshalYAML(node *yaml.Node) error {
	type plain manifestFile
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	known := map[string]bool{"entry": true, "echo_result": true}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if !known[key] {
			return fmt.Errorf("manifest: unknown key %q", key)
		}
	}
	*m = manifestFile(p)
	return nil
}

// ValidationError aggregates manifest validation failures into one
// error, matching the teacher's driver.ValidationError shape.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "manifest: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("manifest validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// LoadManifest parses path (monty.yml) and returns a validated Manifest.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return nil, fmt.Errorf("manifest: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("manifest: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw manifestFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("manifest: %s is empty", absPath)
		}
		return nil, fmt.Errorf("manifest: parse %s: %w", absPath, err)
	}

	manifest := &Manifest{
		Path:       absPath,
		Entry:      raw.Entry,
		EchoResult: raw.EchoResult != nil && *raw.EchoResult,
	}
	if err := manifest.validate(); err != nil {
		return nil, err
	}
	return manifest, nil
}

func (m *Manifest) validate() error {
	var errs ValidationError
	if m.Entry == "" {
		errs.Issues = append(errs.Issues, "entry must name the script to run")
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// ResolveEntry returns the entry script path, resolved relative to the
// manifest's own directory so `monty run` can be invoked from anywhere.
func (m *Manifest) ResolveEntry() string {
	if filepath.IsAbs(m.Entry) {
		return m.Entry
	}
	return filepath.Join(filepath.Dir(m.Path), m.Entry)
}
