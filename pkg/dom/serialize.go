package dom

import (
	"io"
	"strings"
)

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// WriteHTML serializes a node and its subtree as HTML. Attribute order is
// first-set order, so output is deterministic for a given mutation history.
func WriteHTML(w io.Writer, n Node) error {
	if n.Kind() == KindText {
		_, err := io.WriteString(w, escapeHTML(n.Text()))
		return err
	}

	tag := n.Tag()
	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	for _, name := range n.AttributeNames() {
		value, _ := n.Attribute(name)
		if _, err := io.WriteString(w, " "+name+`="`+escapeAttr(value)+`"`); err != nil {
			return err
		}
	}
	if IsVoidElement(tag) {
		_, err := io.WriteString(w, ">")
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	for _, child := range n.Children() {
		if err := WriteHTML(w, child); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+tag+">")
	return err
}

// InnerHTML serializes a node's children (not the node itself).
func InnerHTML(n Node) string {
	var b strings.Builder
	for _, child := range n.Children() {
		WriteHTML(&b, child)
	}
	return b.String()
}

// OuterHTML serializes a node and its subtree.
func OuterHTML(n Node) string {
	var b strings.Builder
	WriteHTML(&b, n)
	return b.String()
}

// escapeHTML escapes text for safe inclusion in HTML content.
func escapeHTML(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

// escapeAttr escapes text for safe inclusion in HTML attribute values.
// In addition to the standard HTML entities, it also escapes whitespace
// characters that could break attribute parsing.
func escapeAttr(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		case '\n':
			buf.WriteString("&#10;")
		case '\r':
			buf.WriteString("&#13;")
		case '\t':
			buf.WriteString("&#9;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}
