// Package config holds the generator configuration and the parsers for its
// two file formats: a YAML config file and a plain-text type mappings file.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"sigs.k8s.io/yaml"
)

// DefaultMappingsFile is the location the generator will look for type
// mappings when no explicit file is given.
const DefaultMappingsFile = ".dgsmappings"

// DefaultPackageName is the Java package generated types land in unless
// configured otherwise.
const DefaultPackageName = "graphql.generated"

// Config presents generator configurations.
type Config struct {
	// SchemaPaths are SDL files to parse, in order.
	SchemaPaths []string `json:"schemaPaths,omitempty"`

	// SchemaFragments are inline SDL snippets appended after SchemaPaths,
	// typically shared scalar and directive declarations.
	SchemaFragments []string `json:"schemaFragments,omitempty"`

	// TypeMapping maps schema type names onto Java type names. These win
	// over @javaType directives and built-in scalar mappings.
	TypeMapping map[string]string `json:"typeMapping,omitempty"`

	// PackageName is the Java package for generated types.
	PackageName string `json:"packageName,omitempty"`

	// OutputDir is where generated sources are written.
	OutputDir string `json:"outputDir,omitempty"`

	// GenerateBoxedTypes keeps non-null fields on boxed wrappers instead of
	// raw primitives.
	GenerateBoxedTypes bool `json:"generateBoxedTypes,omitempty"`

	// GenerateInterfaces emits an IFoo interface per object type and types
	// interface getters against interface names.
	GenerateInterfaces bool `json:"generateInterfaces,omitempty"`

	// CovariantListBounds emits List<? extends IFoo> for lists of generated
	// interface types.
	CovariantListBounds bool `json:"covariantListBounds,omitempty"`

	// Debug enables debug logging.
	Debug bool `json:"debug,omitempty"`
}

// LoadFile reads a YAML config file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the config can drive a generation run.
func (c *Config) Validate() error {
	if len(c.SchemaPaths) == 0 && len(c.SchemaFragments) == 0 {
		return errors.New("no schema sources configured")
	}
	if c.PackageName == "" {
		c.PackageName = DefaultPackageName
	}
	return nil
}

// ParseTypeMappings reads a type mappings file. Each non-comment line is
//
//	map <SchemaType> <JavaType>
//
// Lines starting with // are comments; blank lines are skipped.
func ParseTypeMappings(r io.Reader) (map[string]string, error) {
	mappings := make(map[string]string)
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Text()

		if len(line) > 1 && line[0:2] == "//" {
			continue
		}

		parts := strings.Fields(line)

		switch len(parts) {
		case 0:
			// only whitespace
			continue
		case 3:
			if parts[0] != "map" {
				return nil, fmt.Errorf("could not parse type mapping: '%s'", line)
			}
			mappings[parts[1]] = parts[2]
		default:
			return nil, fmt.Errorf("could not parse type mapping: '%s'", line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading type mappings file: %w", err)
	}

	return mappings, nil
}
