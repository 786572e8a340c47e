package dom

import (
	"fmt"
	"sort"
	"strings"
)

// CustomElementDefinition binds a custom element name to a constructor
// for its nodes.
type CustomElementDefinition struct {
	Name   string
	Create func(doc *Document) (*Node, error)
}

// CustomElementRegistry holds the custom element definitions of one
// window. Registries are per-window: defining an element on one window
// does not affect any other.
type CustomElementRegistry struct {
	window      *Window
	definitions map[string]CustomElementDefinition
}

func newCustomElementRegistry(w *Window) *CustomElementRegistry {
	return &CustomElementRegistry{
		window:      w,
		definitions: make(map[string]CustomElementDefinition),
	}
}

// Names of elements from the HTML and SVG/MathML specs that contain a
// hyphen and therefore must not be used as custom element names.
var reservedElementNames = map[string]bool{
	"annotation-xml":   true,
	"color-profile":    true,
	"font-face":        true,
	"font-face-src":    true,
	"font-face-uri":    true,
	"font-face-format": true,
	"font-face-name":   true,
	"missing-glyph":    true,
}

// Define registers a custom element definition under a name. The name
// must be a valid custom element name (lower-case, containing a
// hyphen, not reserved) and must not already be defined.
func (r *CustomElementRegistry) Define(name string, def CustomElementDefinition) error {
	if !validCustomElementName(name) {
		return fmt.Errorf("invalid custom element name %q", name)
	}
	if _, exists := r.definitions[name]; exists {
		return fmt.Errorf("custom element %q has already been defined", name)
	}
	def.Name = name
	r.definitions[name] = def
	tracer().Debugf("custom element %q defined", name)
	return nil
}

// Get returns the definition registered under a name, if any.
func (r *CustomElementRegistry) Get(name string) (CustomElementDefinition, bool) {
	def, ok := r.definitions[name]
	return def, ok
}

// Names returns all defined custom element names, sorted.
func (r *CustomElementRegistry) Names() []string {
	names := make([]string, 0, len(r.definitions))
	for n := range r.definitions {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func validCustomElementName(name string) bool {
	if name == "" || reservedElementNames[name] {
		return false
	}
	if !strings.Contains(name, "-") {
		return false
	}
	first := rune(name[0])
	if first < 'a' || first > 'z' {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '.' || r == '_':
		default:
			return false
		}
	}
	return true
}
