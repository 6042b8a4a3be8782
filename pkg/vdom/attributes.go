package vdom

import "strings"

func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute from one or more class names.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// Data sets a data-* attribute: Data("state", "open") is data-state="open".
func Data(key, value string) Attr { return attr("data-"+key, value) }

func AriaLive(mode string) Attr   { return attr("aria-live", mode) }
func Hidden() Attr                { return attr("hidden", true) }
func TitleAttr(title string) Attr { return attr("title", title) }
func Lang(lang string) Attr       { return attr("lang", lang) }
func Src(url string) Attr         { return attr("src", url) }
func Alt(text string) Attr        { return attr("alt", text) }
func Charset(cs string) Attr      { return attr("charset", cs) }

// ClassIf sets class only when condition holds.
func ClassIf(condition bool, class string) Attr {
	return AttrIf(condition, Class(class))
}

// AttrIf returns a unless condition is false, in which case it returns the
// empty attribute, which element constructors skip.
func AttrIf(condition bool, a Attr) Attr {
	if !condition {
		return Attr{}
	}
	return a
}
