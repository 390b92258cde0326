package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SupportedMajor is the catalog file major version this build understands.
const SupportedMajor = "v1"

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://designlab/catalog.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// fileCatalog is the on-disk YAML layout of a catalog.
type fileCatalog struct {
	Version string       `yaml:"version"`
	Lessons []fileLesson `yaml:"lessons"`
}

type fileLesson struct {
	ID            string      `yaml:"id"`
	Title         string      `yaml:"title"`
	Summary       string      `yaml:"summary"`
	Category      string      `yaml:"category"`
	Difficulty    string      `yaml:"difficulty"`
	EstimatedMins int         `yaml:"estimated_mins"`
	Prerequisites []string    `yaml:"prerequisites"`
	Stages        []fileStage `yaml:"stages"`
}

type fileStage struct {
	ID    string `yaml:"id"`
	Type  string `yaml:"type"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Load reads, schema-validates and builds a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse builds a catalog from YAML content. The document is checked against
// the embedded JSON Schema before structural validation.
func Parse(data []byte) (*Catalog, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	var fc fileCatalog
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := CheckVersion(fc.Version); err != nil {
		return nil, err
	}

	lessons := make([]Lesson, 0, len(fc.Lessons))
	for _, fl := range fc.Lessons {
		l := Lesson{
			ID:            fl.ID,
			Title:         fl.Title,
			Summary:       fl.Summary,
			Category:      Category(fl.Category),
			Difficulty:    Difficulty(fl.Difficulty),
			EstimatedMins: fl.EstimatedMins,
			Prerequisites: fl.Prerequisites,
		}
		for _, fs := range fl.Stages {
			l.Stages = append(l.Stages, Stage{
				ID:    fs.ID,
				Type:  StageType(fs.Type),
				Title: fs.Title,
				Body:  fs.Body,
			})
		}
		lessons = append(lessons, l)
	}
	return newVersioned(fc.Version, lessons)
}

// CheckVersion returns an error unless v is a valid semantic version with
// the supported major.
func CheckVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid catalog version %q", v)
	}
	if semver.Major(v) != SupportedMajor {
		return fmt.Errorf("unsupported catalog version %q (want %s.x.x)", v, SupportedMajor)
	}
	return nil
}

// Compatible reports whether progress recorded against catalog version a can
// be restored into catalog version b. Versions must share a major.
func Compatible(a, b string) bool {
	if !semver.IsValid(a) || !semver.IsValid(b) {
		return false
	}
	return semver.Major(a) == semver.Major(b)
}

// validateDocument checks a decoded YAML document against the catalog schema.
func validateDocument(doc any) error {
	sch, err := catalogSchema()
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}

	// yaml.v3 yields ints and map[string]any; round-trip through JSON so the
	// validator sees the same value types it would for a JSON document.
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("convert catalog to json: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(b, &parsed); err != nil {
		return fmt.Errorf("convert catalog to json: %w", err)
	}

	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("catalog schema validation failed: %w", err)
	}
	return nil
}

func catalogSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal(schemaJSON, &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}
