// Package render converts VNode trees into HTML.
//
// It handles the parts of producing valid, safe HTML that the transition
// preview and scenario tooling need:
//
//   - Text and attribute escaping
//   - Void elements (img, br, ...)
//   - Boolean attributes (hidden, disabled, ...)
//   - Components and fragments
//   - Optional pretty printing
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// All text content is escaped. KindRaw nodes are written verbatim and
// should only carry trusted content.
package render
