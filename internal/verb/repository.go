package verb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source yields every verb record available to the quiz.
type Source interface {
	LoadVerbs(ctx context.Context) ([]Verb, error)
}

type dirSource struct {
	dir string
}

// NewDirSource reads one verb per *.json, *.yaml or *.yml file in dir.
func NewDirSource(dir string) Source {
	return &dirSource{dir: dir}
}

func (s *dirSource) LoadVerbs(ctx context.Context) ([]Verb, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read verbs dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !isVerbFile(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	verbs := make([]Verb, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := loadVerbFile(filepath.Join(s.dir, name))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		verbs = append(verbs, v)
	}
	return verbs, nil
}

func isVerbFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

func loadVerbFile(path string) (Verb, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Verb{}, fmt.Errorf("read verb file: %w", err)
	}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return parseJSONVerb(data)
	}
	return parseYAMLVerb(data)
}

func parseJSONVerb(data []byte) (Verb, error) {
	var v Verb
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&v); err != nil {
		return Verb{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Verb{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return Verb{}, fmt.Errorf("parse json: %w", err)
	}
	return v, nil
}

func parseYAMLVerb(data []byte) (Verb, error) {
	var v Verb
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&v); err != nil {
		return Verb{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Verb{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return Verb{}, fmt.Errorf("parse yaml: %w", err)
	}
	return v, nil
}
