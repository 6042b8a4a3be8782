package scenario

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/transitiongate/internal/errors"
	"github.com/vango-dev/transitiongate/pkg/transition"
	"github.com/vango-dev/transitiongate/pkg/vdom"
)

// Scenario is a parsed scenario file.
type Scenario struct {
	Name  string    `yaml:"name" json:"name"`
	Props Overrides `yaml:"props" json:"props"`
	Steps []Step    `yaml:"steps" json:"steps"`

	// TailMs keeps the clock running after the last step and its
	// transitions, for scenarios that end on a timed frame.
	TailMs int `yaml:"tailMs" json:"tailMs"`
}

// Step hands the gate new children at a time offset. Omitted or null
// children clear the gate.
type Step struct {
	At       int       `yaml:"at" json:"at"`
	Children *Node     `yaml:"children" json:"children"`
	Props    Overrides `yaml:"props" json:"props"`
}

// Overrides change gate props. Unset fields keep their current value, and
// a change made by one step persists for the steps after it.
type Overrides struct {
	EnterClass     *string `yaml:"enterClass" json:"enterClass"`
	ExitClass      *string `yaml:"exitClass" json:"exitClass"`
	ExitDurationMs *int    `yaml:"exitDurationMs" json:"exitDurationMs"`
	Wrap           *bool   `yaml:"wrap" json:"wrap"`
}

// Apply returns p with the overrides applied.
func (o Overrides) Apply(p transition.Props) transition.Props {
	if o.EnterClass != nil {
		p.EnterClass = *o.EnterClass
	}
	if o.ExitClass != nil {
		p.ExitClass = *o.ExitClass
	}
	if o.ExitDurationMs != nil {
		p.ExitDuration = time.Duration(*o.ExitDurationMs) * time.Millisecond
	}
	if o.Wrap != nil {
		p.Wrap = *o.Wrap
	}
	return p
}

// Cue is a compiled step: the full props the gate receives at At.
type Cue struct {
	At    time.Duration
	Props transition.Props
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E301").Wrap(err)
	}
	s, err := Parse(data, strings.ToLower(filepath.Ext(path)) == ".json")
	if err != nil {
		if ge, ok := err.(*errors.GateError); ok && ge.Detail == "" {
			ge.WithDetail("In " + path)
		}
		return nil, err
	}
	return s, nil
}

// Parse decodes a scenario from YAML, or from JSON when isJSON is set,
// and validates it.
func Parse(data []byte, isJSON bool) (*Scenario, error) {
	var s Scenario
	if isJSON {
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, errors.New("E302").Wrap(err)
		}
	} else {
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, errors.New("E302").Wrap(err)
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks step ordering, durations and nodes.
func (s *Scenario) Validate() error {
	if len(s.Steps) == 0 {
		return errors.New("E303").WithDetail("A scenario needs at least one step.")
	}
	if err := s.Props.validate(); err != nil {
		return errors.New("E303").WithDetail("props: " + err.Error())
	}
	if s.TailMs < 0 {
		return errors.New("E303").WithDetailf("tailMs is %d; it must not be negative.", s.TailMs)
	}

	last := 0
	for i, step := range s.Steps {
		if step.At < last {
			return errors.New("E303").
				WithDetailf("Step %d is at %dms, before the previous step at %dms.", i, step.At, last).
				WithSuggestion("List steps in time order.")
		}
		last = step.At
		if err := step.Props.validate(); err != nil {
			return errors.New("E303").WithDetailf("step %d props: %v", i, err)
		}
		if step.Children != nil {
			if _, err := step.Children.Build(); err != nil {
				return errors.New("E303").WithDetailf("step %d children: %v", i, err)
			}
		}
	}
	return nil
}

func (o Overrides) validate() error {
	if o.ExitDurationMs != nil && *o.ExitDurationMs < 0 {
		return errors.Newf(errors.CategoryScenario, "exitDurationMs is %d; it must not be negative", *o.ExitDurationMs)
	}
	return nil
}

// Compile resolves every step against base, which the scenario's own props
// override first.
func (s *Scenario) Compile(base transition.Props) ([]Cue, error) {
	props := s.Props.Apply(base)
	cues := make([]Cue, 0, len(s.Steps))
	for i, step := range s.Steps {
		props = step.Props.Apply(props)
		props.Children = nil
		if step.Children != nil {
			node, err := step.Children.Build()
			if err != nil {
				return nil, errors.New("E303").WithDetailf("step %d children: %v", i, err)
			}
			props.Children = node
		}
		cues = append(cues, Cue{
			At:    time.Duration(step.At) * time.Millisecond,
			Props: props,
		})
	}
	return cues, nil
}

// Tail returns the extra time to run after the last transition.
func (s *Scenario) Tail() time.Duration {
	return time.Duration(s.TailMs) * time.Millisecond
}

// Node describes a vdom node in a scenario file. Exactly one of Tag,
// Component, Fragment or Text must be set; Text may accompany Tag or
// Component as their first child.
type Node struct {
	Tag       string `yaml:"tag" json:"tag"`
	Component string `yaml:"component" json:"component"`
	Fragment  []Node `yaml:"fragment" json:"fragment"`
	Class     string `yaml:"class" json:"class"`
	ID        string `yaml:"id" json:"id"`
	Key       string `yaml:"key" json:"key"`
	Text      string `yaml:"text" json:"text"`
	Children  []Node `yaml:"children" json:"children"`
}

// Build converts the description to a vdom node. Component nodes become
// class-accepting components named Component that render a div.
func (n Node) Build() (*vdom.VNode, error) {
	set := 0
	for _, ok := range []bool{n.Tag != "", n.Component != "", n.Fragment != nil} {
		if ok {
			set++
		}
	}
	if set > 1 {
		return nil, errors.Newf(errors.CategoryScenario, "node sets more than one of tag, component and fragment")
	}

	switch {
	case n.Fragment != nil:
		children, err := buildAll(n.Fragment)
		if err != nil {
			return nil, err
		}
		frag := vdom.Fragment(children)
		frag.Key = n.Key
		return frag, nil

	case n.Tag != "" || n.Component != "":
		children, err := buildAll(n.Children)
		if err != nil {
			return nil, err
		}
		if n.Text != "" {
			children = append([]*vdom.VNode{vdom.Text(n.Text)}, children...)
		}
		if n.Tag != "" {
			return vdom.CustomElement(n.Tag,
				vdom.ClassIf(n.Class != "", n.Class),
				vdom.AttrIf(n.ID != "", vdom.ID(n.ID)),
				vdom.AttrIf(n.Key != "", vdom.Key(n.Key)),
				children,
			), nil
		}
		name, own, id := n.Component, n.Class, n.ID
		node := vdom.Comp(vdom.ClassFunc(name, func(class string) *vdom.VNode {
			return vdom.Div(
				vdom.Data("component", name),
				vdom.ClassIf(vdom.JoinClasses(own, class) != "", vdom.JoinClasses(own, class)),
				vdom.AttrIf(id != "", vdom.ID(id)),
				children,
			)
		}))
		node.Key = n.Key
		return node, nil

	case n.Text != "":
		return vdom.Text(n.Text), nil

	default:
		return nil, errors.Newf(errors.CategoryScenario, "node has no tag, component, fragment or text")
	}
}

func buildAll(nodes []Node) ([]*vdom.VNode, error) {
	out := make([]*vdom.VNode, 0, len(nodes))
	for _, n := range nodes {
		v, err := n.Build()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
