package templates

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/vango-dev/transitiongate/internal/errors"
)

// ScenarioFileName is the file every template writes.
const ScenarioFileName = "scenario.yaml"

// Config contains template variables.
type Config struct {
	// Name is the scenario name.
	Name string

	// EnterClass and ExitClass are the gate classes.
	EnterClass string
	ExitClass  string

	// ExitDurationMs is the gate exit duration.
	ExitDurationMs int
}

// Template is a starter scenario.
type Template struct {
	// Name is the template name.
	Name string

	// Description describes the template.
	Description string

	// Files maps relative paths to file contents.
	Files map[string]string
}

var templates = map[string]*Template{
	"fade": fadeTemplate(),
	"swap": swapTemplate(),
	"wrap": wrapTemplate(),
}

// Get returns a template by name.
func Get(name string) (*Template, error) {
	tmpl, ok := templates[name]
	if !ok {
		return nil, errors.New("E501").
			WithDetail("Template '" + name + "' not found").
			WithSuggestion("Available templates: " + strings.Join(List(), ", "))
	}
	return tmpl, nil
}

// List returns all template names in order.
func List() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create writes the template files into dir. Existing files are kept and
// reported unless force is set.
func (t *Template) Create(dir string, cfg Config, force bool) error {
	cfg = cfg.withDefaults(t.Name)

	paths := make([]string, 0, len(t.Files))
	for relPath := range t.Files {
		paths = append(paths, relPath)
	}
	sort.Strings(paths)

	if !force {
		for _, relPath := range paths {
			if _, err := os.Stat(filepath.Join(dir, relPath)); err == nil {
				return errors.New("E502").
					WithDetailf("%s already exists in %s", relPath, dir).
					WithSuggestion("Use --force to overwrite it")
			}
		}
	}

	for _, relPath := range paths {
		tmpl, err := template.New(relPath).Parse(t.Files[relPath])
		if err != nil {
			return errors.Newf(errors.CategoryCLI, "invalid template %s: %v", relPath, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, cfg); err != nil {
			return errors.Newf(errors.CategoryCLI, "template execute error %s: %v", relPath, err)
		}

		fullPath := filepath.Join(dir, relPath)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(fullPath, buf.Bytes(), 0644); err != nil {
			return err
		}
	}

	return nil
}

func (c Config) withDefaults(name string) Config {
	if c.Name == "" {
		c.Name = name
	}
	if c.EnterClass == "" {
		c.EnterClass = "enter"
	}
	if c.ExitClass == "" {
		c.ExitClass = "exit"
	}
	if c.ExitDurationMs <= 0 {
		c.ExitDurationMs = 300
	}
	return c
}

func fadeTemplate() *Template {
	return &Template{
		Name:        "fade",
		Description: "One element entering and leaving",
		Files: map[string]string{
			ScenarioFileName: `name: {{.Name}}
props:
  enterClass: {{.EnterClass}}
  exitClass: {{.ExitClass}}
  exitDurationMs: {{.ExitDurationMs}}
steps:
  - at: 0
    children: {tag: div, class: toast, text: Saved}
  - at: 2000
    children: null
  - at: 3000
    children: {tag: div, class: toast, text: Saved again}
tailMs: 1000
`,
		},
	}
}

func swapTemplate() *Template {
	return &Template{
		Name:        "swap",
		Description: "Content of different types replacing each other",
		Files: map[string]string{
			ScenarioFileName: `name: {{.Name}}
props:
  enterClass: {{.EnterClass}}
  exitClass: {{.ExitClass}}
  exitDurationMs: {{.ExitDurationMs}}
steps:
  - at: 0
    children: {component: Spinner, text: Loading}
  # Same component type: updates in place.
  - at: 800
    children: {component: Spinner, text: Still loading}
  # New type: the spinner exits before the card enters.
  - at: 1600
    children:
      tag: article
      class: card
      children:
        - {tag: h2, text: Ready}
        - {tag: p, text: Content loaded}
  - at: 4000
    children: null
tailMs: 500
`,
		},
	}
}

func wrapTemplate() *Template {
	return &Template{
		Name:        "wrap",
		Description: "Fragment children animated inside one container",
		Files: map[string]string{
			ScenarioFileName: `name: {{.Name}}
props:
  enterClass: {{.EnterClass}}
  exitClass: {{.ExitClass}}
  exitDurationMs: {{.ExitDurationMs}}
  wrap: true
steps:
  - at: 0
    children:
      fragment:
        - {tag: li, text: One}
        - {tag: li, text: Two}
        - {text: plain text is fine in wrap mode}
  - at: 1500
    children: null
tailMs: 500
`,
		},
	}
}
