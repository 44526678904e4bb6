// Package config reads and writes variable tables as flat YAML mappings.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/kievzenit/dde/internal/evaluator"
)

// LoadEnvironment reads a YAML file of name: scalar pairs into a fresh
// Environment.
func LoadEnvironment(path string) (*evaluator.Environment, error) {
	if path == "" {
		return nil, fmt.Errorf("env file: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("env file: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("env file: open %s: %w", absPath, err)
	}
	defer file.Close()

	env, err := DecodeEnvironment(file)
	if err != nil {
		return nil, fmt.Errorf("env file: %s: %w", absPath, err)
	}
	return env, nil
}

// DecodeEnvironment decodes the first YAML document in r. An empty document
// gives an empty Environment.
func DecodeEnvironment(r io.Reader) (*evaluator.Environment, error) {
	env := evaluator.NewEnvironment()

	var raw map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return env, nil
		}
		return nil, fmt.Errorf("parse: %w", err)
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if !isIdentifier(name) {
			return nil, fmt.Errorf("%q is not a valid variable name", name)
		}
		v, err := evaluator.FromNative(raw[name])
		if err != nil {
			return nil, fmt.Errorf("variable %s: %w", name, err)
		}
		env.Set(name, v)
	}

	return env, nil
}

// EncodeEnvironment writes env to w as a YAML mapping with sorted keys.
func EncodeEnvironment(w io.Writer, env *evaluator.Environment) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(env.Snapshot()); err != nil {
		return fmt.Errorf("env: marshal: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("env: encoder close: %w", err)
	}
	return nil
}

// isIdentifier mirrors the lexer: ASCII letters and underscores only, and
// not a keyword or boolean literal.
func isIdentifier(name string) bool {
	switch name {
	case "", "if", "true", "false":
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !(c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')) {
			return false
		}
	}
	return true
}
