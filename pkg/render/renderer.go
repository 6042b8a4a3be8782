package render

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/vango-dev/transitiongate/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty indents block elements one per line. Frames compared in tests
	// and sent to browsers use compact output.
	Pretty bool

	// Indent is one level of indentation in pretty mode (default two spaces).
	Indent string
}

// Renderer turns vnode trees into HTML. It holds no per-render state and
// is safe for concurrent use.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a Renderer.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders node to a string. A nil node renders as "".
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var b strings.Builder
	if err := r.RenderToWriter(&b, node); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderToWriter streams node to w.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	hw := &htmlWriter{w: w, config: r.config}
	hw.node(node, 0)
	return hw.err
}

// htmlWriter writes one tree. The first error stops all further output.
type htmlWriter struct {
	w      io.Writer
	config RendererConfig
	err    error
}

func (h *htmlWriter) write(parts ...string) {
	for _, s := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *htmlWriter) fail(format string, args ...any) {
	if h.err == nil {
		h.err = fmt.Errorf(format, args...)
	}
}

func (h *htmlWriter) indent(depth int) {
	if h.config.Pretty && depth > 0 {
		h.write(strings.Repeat(h.config.Indent, depth))
	}
}

func (h *htmlWriter) newline() {
	if h.config.Pretty {
		h.write("\n")
	}
}

func (h *htmlWriter) node(n *vdom.VNode, depth int) {
	if n == nil || h.err != nil {
		return
	}
	switch n.Kind {
	case vdom.KindElement:
		h.element(n, depth)
	case vdom.KindText:
		h.write(escapeHTML(n.Text))
	case vdom.KindRaw:
		h.write(n.Text)
	case vdom.KindFragment:
		for _, c := range n.Children {
			h.node(c, depth)
		}
	case vdom.KindComponent:
		if n.Comp != nil {
			h.node(n.Comp.Render(), depth)
		}
	default:
		h.fail("unknown node kind: %d", n.Kind)
	}
}

func (h *htmlWriter) element(n *vdom.VNode, depth int) {
	if n.Tag == "" {
		h.fail("element without tag")
		return
	}

	h.indent(depth)
	h.write("<", n.Tag)
	h.attributes(n.Props)
	h.write(">")
	if vdom.IsVoidElement(n.Tag) {
		h.newline()
		return
	}

	block := !inlineElements[n.Tag] && hasElementChild(n)
	if block {
		h.newline()
	}
	for _, c := range n.Children {
		h.node(c, depth+1)
	}
	if block {
		h.indent(depth)
	}
	h.write("</", n.Tag, ">")
	h.newline()
}

// attributes writes props sorted by name. Keys starting with "_" and the
// "key" prop are internal and never rendered.
func (h *htmlWriter) attributes(props vdom.Props) {
	names := make([]string, 0, len(props))
	for name := range props {
		if name != "key" && !strings.HasPrefix(name, "_") {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		value := props[name]
		if alias, ok := attrAliases[name]; ok {
			name = alias
		}
		if b, ok := value.(bool); ok && booleanAttrs[name] {
			if b {
				h.write(" ", name)
			}
			continue
		}
		if s := attrString(value); s != "" {
			h.write(" ", name, `="`, escapeAttr(s), `"`)
		}
	}
}

func attrString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// hasElementChild reports whether any child renders as its own element.
func hasElementChild(n *vdom.VNode) bool {
	for _, c := range n.Children {
		if c != nil && c.Kind != vdom.KindText && c.Kind != vdom.KindRaw {
			return true
		}
	}
	return false
}

var attrAliases = map[string]string{
	"className": "class",
	"htmlFor":   "for",
}

// inlineElements keep their children on the same line in pretty mode.
var inlineElements = map[string]bool{
	"a": true, "b": true, "br": true, "code": true, "em": true,
	"i": true, "small": true, "span": true, "strong": true,
}

// booleanAttrs render as a bare name when true and are omitted when false.
var booleanAttrs = map[string]bool{
	"async": true, "checked": true, "defer": true, "disabled": true,
	"hidden": true, "open": true, "readonly": true, "required": true,
	"selected": true,
}
