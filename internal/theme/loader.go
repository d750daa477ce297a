package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	cssErrors "github.com/alexisbeaulieu97/utilicss/pkg/errors"
)

// Format is a theme file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// File is the on-disk theme document.
type File struct {
	DarkMode  string         `yaml:"dark_mode" toml:"dark_mode" validate:"omitempty,oneof=media class selector dual"`
	DarkClass string         `yaml:"dark_class" toml:"dark_class" validate:"omitempty,css_class"`
	Important bool           `yaml:"important" toml:"important"`
	Theme     map[string]any `yaml:"theme" toml:"theme"`
	Config    map[string]any `yaml:"config" toml:"config"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	yamlLineRegex    = regexp.MustCompile(`line (\d+)`)
	cssClassPattern  = regexp.MustCompile(`^-?[_a-zA-Z][_a-zA-Z0-9-]*$`)
	errUnknownFormat = errors.New("unsupported theme file extension (want .yaml, .yml or .toml)")
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("css_class", func(fl validator.FieldLevel) bool {
			return cssClassPattern.MatchString(fl.Field().String())
		})
		validateInst = v
	})
	return validateInst
}

// Load reads a theme file and layers it over Default.
func Load(path string) (*Theme, error) {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = FormatYAML
	case ".toml":
		format = FormatTOML
	default:
		return nil, cssErrors.NewParseError(path, 0, errUnknownFormat)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cssErrors.NewParseError(path, 0, err)
	}
	return Parse(path, data, format)
}

// Parse decodes a theme document and layers it over Default. name is used
// in error messages only.
func Parse(name string, data []byte, format Format) (*Theme, error) {
	var file File
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, cssErrors.NewParseError(name, yamlLine(err), err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, cssErrors.NewParseError(name, tomlLine(err), err)
		}
	default:
		return nil, cssErrors.NewParseError(name, 0, errUnknownFormat)
	}

	if err := validatorInstance().Struct(file); err != nil {
		return nil, convertValidationError(err)
	}

	return fromFile(file)
}

func fromFile(file File) (*Theme, error) {
	scales := make(map[string]map[string]string, len(file.Theme))
	for name, raw := range file.Theme {
		scale := make(map[string]string)
		if err := flattenScale("", raw, scale); err != nil {
			return nil, cssErrors.NewValidationError("theme."+name, err.Error(), err)
		}
		scales[name] = scale
	}

	config := make(map[string]any, len(file.Config)+4)
	for k, v := range file.Config {
		config[k] = v
	}
	if file.DarkMode != "" {
		config["dark_mode"] = file.DarkMode
	}
	if file.DarkClass != "" {
		config["dark_class"] = file.DarkClass
	}
	if file.Important {
		config["important"] = true
	}

	return Default().Merge(New(scales, config)), nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		ve := ves[0]
		field := strings.ToLower(ve.StructNamespace())
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return cssErrors.NewValidationError(field, msg, err)
	}
	return cssErrors.NewValidationError("theme", err.Error(), err)
}

func yamlLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

func tomlLine(err error) int {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, _ := decodeErr.Position()
		return row
	}
	return 0
}
