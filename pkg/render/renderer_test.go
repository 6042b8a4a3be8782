package render

import (
	"strings"
	"testing"

	"github.com/vango-dev/transitiongate/pkg/vdom"
)

func TestRenderText(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Text("Hello, World!"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "Hello, World!" {
		t.Errorf("got %q, want %q", html, "Hello, World!")
	}
}

func TestRenderTextEscaping(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Text("<script>alert('xss')</script>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("HTML should be escaped, got %q", html)
	}
}

func TestRenderNil(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "" {
		t.Errorf("got %q, want empty", html)
	}
}

func TestRenderElement(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Div(vdom.Class("container"),
		vdom.H1(vdom.Text("Title")),
		vdom.P(vdom.Text("Content")),
	)
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `<div class="container"><h1>Title</h1><p>Content</p></div>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderAttributes(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{
			name: "sorted attributes",
			node: vdom.Span(vdom.ID("x"), vdom.Class("a b")),
			want: `<span class="a b" id="x"></span>`,
		},
		{
			name: "className alias",
			node: &vdom.VNode{Kind: vdom.KindElement, Tag: "p", Props: vdom.Props{"className": "in"}},
			want: `<p class="in"></p>`,
		},
		{
			name: "boolean true",
			node: vdom.Div(vdom.Hidden()),
			want: `<div hidden></div>`,
		},
		{
			name: "boolean false omitted",
			node: vdom.Div(vdom.Attr{Key: "hidden", Value: false}),
			want: `<div></div>`,
		},
		{
			name: "empty value omitted",
			node: vdom.Div(vdom.Class("")),
			want: `<div></div>`,
		},
		{
			name: "attribute escaping",
			node: vdom.Div(vdom.TitleAttr(`say "hi"`)),
			want: `<div title="say &quot;hi&quot;"></div>`,
		},
		{
			name: "void element",
			node: vdom.Img(vdom.Src("/a.png"), vdom.Alt("a")),
			want: `<img alt="a" src="/a.png">`,
		},
		{
			name: "key is not rendered",
			node: vdom.Div(vdom.Key("k1")),
			want: `<div></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderer.RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderFragmentAndComponent(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	comp := vdom.Func(func() *vdom.VNode {
		return vdom.Em("inner")
	})
	node := vdom.Fragment(vdom.Span("a"), comp, vdom.Raw("<b>raw</b>"))

	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<span>a</span><em>inner</em><b>raw</b>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderErrors(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	if _, err := renderer.RenderToString(&vdom.VNode{Kind: vdom.VKind(99)}); err == nil {
		t.Error("expected error for unknown kind")
	}
	if _, err := renderer.RenderToString(&vdom.VNode{Kind: vdom.KindElement}); err == nil {
		t.Error("expected error for element without tag")
	}
}

func TestRenderPretty(t *testing.T) {
	renderer := NewRenderer(RendererConfig{Pretty: true})

	html, err := renderer.RenderToString(vdom.Div(vdom.P("x")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<div>\n  <p>x</p>\n</div>\n"
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}
