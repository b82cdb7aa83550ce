package logparse

import "fmt"

// Template selects the line-parsing strategy for a log source. The set
// is closed: a supervisor is configured with exactly one template and
// every parse call for that source uses it. Formats are never inferred
// per line.
type Template int

const (
	TemplateDefault Template = iota
	TemplateLaravel
	TemplateFastAPI
)

var templateNames = map[Template]string{
	TemplateDefault: "default",
	TemplateLaravel: "laravel",
	TemplateFastAPI: "fastapi",
}

// TemplateNames lists the accepted template identifiers.
func TemplateNames() []string {
	return []string{"default", "laravel", "fastapi"}
}

func (t Template) String() string {
	if name, ok := templateNames[t]; ok {
		return name
	}
	return "default"
}

// ParseTemplate maps a template identifier to its Template. An empty
// identifier selects the default template.
func ParseTemplate(name string) (Template, error) {
	switch name {
	case "", "default":
		return TemplateDefault, nil
	case "laravel":
		return TemplateLaravel, nil
	case "fastapi":
		return TemplateFastAPI, nil
	default:
		return TemplateDefault, fmt.Errorf("unknown log template %q (available: default, laravel, fastapi)", name)
	}
}
