package schemafile

import (
	"errors"
	"fmt"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/zero-day-ai/cleaned"
)

type document struct {
	Schemas map[string]schemaDef `yaml:"schemas"`
}

type schemaDef struct {
	Fields []fieldDef `yaml:"fields"`
}

type fieldDef struct {
	Name     string   `yaml:"name"`
	Optional bool     `yaml:"optional"`
	Spec     typeSpec `yaml:",inline"`
}

// typeSpec is the recursive type declaration shared by fields, list
// elements, map keys/values, and either variants.
type typeSpec struct {
	Type      string     `yaml:"type"`
	Blank     *bool      `yaml:"blank"`
	Multiline bool       `yaml:"multiline"`
	MinLength *int       `yaml:"min_length"`
	MaxLength *int       `yaml:"max_length"`
	Pattern   string     `yaml:"pattern"`
	Min       *float64   `yaml:"min"`
	Max       *float64   `yaml:"max"`
	Choices   []string   `yaml:"choices"`
	Key       *typeSpec  `yaml:"key"`
	Of        *typeSpec  `yaml:"of"`
	Variants  []typeSpec `yaml:"variants"`
	Expr      string     `yaml:"expr"`
	Fields    []fieldDef `yaml:"fields"`
}

// Load parses a YAML schema document and builds every named schema it
// declares. The input is the raw document bytes; no file access happens
// here.
func Load(data []byte) (map[string]*cleaned.Schema, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("schemafile: parsing document: %w", err)
	}
	if len(doc.Schemas) == 0 {
		return nil, errors.New("schemafile: document declares no schemas")
	}

	l := &loader{defs: doc.Schemas, built: make(map[string]*cleaned.Schema, len(doc.Schemas))}

	names := make([]string, 0, len(doc.Schemas))
	for name := range doc.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	// Named references resolve lazily through the built map, so build
	// order does not matter even for mutual references.
	for _, name := range names {
		s, err := l.buildSchema(name, doc.Schemas[name].Fields)
		if err != nil {
			return nil, err
		}
		l.built[name] = s
	}

	return l.built, nil
}

type loader struct {
	defs  map[string]schemaDef
	built map[string]*cleaned.Schema
}

func (l *loader) buildSchema(path string, fields []fieldDef) (*cleaned.Schema, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("schemafile: %s: schema declares no fields", path)
	}

	b := cleaned.NewSchema()
	for _, f := range fields {
		v, err := l.buildValidator(path+"."+f.Name, f.Spec)
		if err != nil {
			return nil, err
		}
		if f.Optional {
			v = cleaned.Optional(v)
		}
		b.Field(f.Name, v)
	}

	s, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("schemafile: %s: %w", path, err)
	}
	return s, nil
}

func (l *loader) buildValidator(path string, spec typeSpec) (cleaned.Validator, error) {
	var v cleaned.Validator

	switch spec.Type {
	case "string":
		sv := cleaned.String()
		if spec.Blank != nil && !*spec.Blank {
			sv = sv.NotBlank()
		}
		if spec.Multiline {
			sv = sv.Multiline()
		}
		if spec.MinLength != nil {
			sv = sv.MinLength(*spec.MinLength)
		}
		if spec.MaxLength != nil {
			sv = sv.MaxLength(*spec.MaxLength)
		}
		if spec.Pattern != "" {
			if _, err := regexp.Compile(spec.Pattern); err != nil {
				return nil, fmt.Errorf("schemafile: %s: invalid pattern: %w", path, err)
			}
			sv = sv.Pattern(spec.Pattern)
		}
		v = sv

	case "int":
		iv := cleaned.Int()
		if spec.Min != nil {
			iv = iv.Min(int64(*spec.Min))
		}
		if spec.Max != nil {
			iv = iv.Max(int64(*spec.Max))
		}
		v = iv

	case "float":
		fv := cleaned.Float()
		if spec.Min != nil {
			fv = fv.Min(*spec.Min)
		}
		if spec.Max != nil {
			fv = fv.Max(*spec.Max)
		}
		v = fv

	case "bool":
		v = cleaned.Bool()

	case "uuid":
		v = cleaned.UUID()

	case "enum":
		if len(spec.Choices) == 0 {
			return nil, fmt.Errorf("schemafile: %s: enum declares no choices", path)
		}
		v = cleaned.EnumOf(spec.Choices...)

	case "list":
		if spec.Of == nil {
			return nil, fmt.Errorf("schemafile: %s: list declares no element spec", path)
		}
		elem, err := l.buildValidator(path+"[]", *spec.Of)
		if err != nil {
			return nil, err
		}
		lv := cleaned.ListOf(elem)
		if spec.MinLength != nil {
			lv = lv.MinLen(*spec.MinLength)
		}
		if spec.MaxLength != nil {
			lv = lv.MaxLen(*spec.MaxLength)
		}
		v = lv

	case "map":
		if spec.Of == nil {
			return nil, fmt.Errorf("schemafile: %s: map declares no value spec", path)
		}
		var key cleaned.Validator = cleaned.String().NotBlank()
		if spec.Key != nil {
			var err error
			key, err = l.buildValidator(path+"[key]", *spec.Key)
			if err != nil {
				return nil, err
			}
		}
		value, err := l.buildValidator(path+"[]", *spec.Of)
		if err != nil {
			return nil, err
		}
		v = cleaned.MapOf(key, value)

	case "either":
		if len(spec.Variants) < 2 {
			return nil, fmt.Errorf("schemafile: %s: either declares fewer than two variants", path)
		}
		candidates := make([]cleaned.Validator, len(spec.Variants))
		for i, variant := range spec.Variants {
			c, err := l.buildValidator(fmt.Sprintf("%s|%d", path, i), variant)
			if err != nil {
				return nil, err
			}
			candidates[i] = c
		}
		v = cleaned.Either(candidates...)

	case "object", "":
		if len(spec.Fields) == 0 {
			return nil, fmt.Errorf("schemafile: %s: missing type", path)
		}
		inner, err := l.buildSchema(path, spec.Fields)
		if err != nil {
			return nil, err
		}
		v = cleaned.Nested(inner)

	default:
		name := spec.Type
		if _, ok := l.defs[name]; !ok {
			return nil, fmt.Errorf("schemafile: %s: unknown type %q", path, name)
		}
		v = cleaned.NestedFunc(func() *cleaned.Schema { return l.built[name] })
	}

	if spec.Expr != "" {
		refined, err := cleaned.CompileExpr(v, spec.Expr)
		if err != nil {
			return nil, fmt.Errorf("schemafile: %s: %w", path, err)
		}
		v = refined
	}

	return v, nil
}
