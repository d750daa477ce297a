package theme

import (
	"fmt"
	"sort"
	"strings"
)

// Theme implements the lookup contract handlers consume: theme scales such as
// colors or breakpoints, plus free-form configuration values.
type Theme struct {
	scales map[string]map[string]string
	config map[string]any
}

// New builds a Theme from flattened scales and configuration values.
func New(scales map[string]map[string]string, config map[string]any) *Theme {
	t := &Theme{
		scales: make(map[string]map[string]string, len(scales)),
		config: make(map[string]any, len(config)),
	}
	for name, scale := range scales {
		t.scales[name] = copyScale(scale)
	}
	for k, v := range config {
		t.config[k] = v
	}
	return t
}

// Theme looks up subkey in the named scale. An empty subkey reads DEFAULT.
func (t *Theme) Theme(key, subkey string) (string, bool) {
	if t == nil {
		return "", false
	}
	if subkey == "" {
		subkey = "DEFAULT"
	}
	v, ok := t.scales[key][subkey]
	return v, ok
}

// Config resolves a dot-separated path into the configuration tree.
func (t *Theme) Config(path string) (any, bool) {
	if t == nil || path == "" {
		return nil, false
	}

	var current any = t.config
	for _, part := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// ConfigString is Config narrowed to strings.
func (t *Theme) ConfigString(path string) string {
	v, ok := t.Config(path)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Scales lists the scale names in sorted order.
func (t *Theme) Scales() []string {
	names := make([]string, 0, len(t.scales))
	for name := range t.scales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Keys lists a scale's keys in sorted order.
func (t *Theme) Keys(scale string) []string {
	keys := make([]string, 0, len(t.scales[scale]))
	for k := range t.scales[scale] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Merge returns a copy of t with other's scale entries and config values
// layered on top.
func (t *Theme) Merge(other *Theme) *Theme {
	merged := New(t.scales, t.config)
	if other == nil {
		return merged
	}
	for name, scale := range other.scales {
		dst, ok := merged.scales[name]
		if !ok {
			dst = make(map[string]string, len(scale))
			merged.scales[name] = dst
		}
		for k, v := range scale {
			dst[k] = v
		}
	}
	for k, v := range other.config {
		merged.config[k] = v
	}
	return merged
}

// flattenScale turns nested maps into "-" joined keys; a DEFAULT entry maps
// to the parent key itself.
func flattenScale(prefix string, value any, out map[string]string) error {
	switch v := value.(type) {
	case map[string]any:
		for k, child := range v {
			key := k
			switch {
			case k == "DEFAULT" && prefix != "":
				key = prefix
			case prefix != "":
				key = prefix + "-" + k
			}
			if err := flattenScale(key, child, out); err != nil {
				return err
			}
		}
	case map[any]any:
		converted := make(map[string]any, len(v))
		for k, child := range v {
			converted[fmt.Sprint(k)] = child
		}
		return flattenScale(prefix, converted, out)
	case string, int, int64, uint64, float64, bool:
		if prefix == "" {
			return fmt.Errorf("scale value %v has no key", v)
		}
		out[prefix] = fmt.Sprint(v)
	case nil:
	default:
		return fmt.Errorf("%s: unsupported scale value of type %T", prefix, v)
	}
	return nil
}

func copyScale(scale map[string]string) map[string]string {
	out := make(map[string]string, len(scale))
	for k, v := range scale {
		out[k] = v
	}
	return out
}
