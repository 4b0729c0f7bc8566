// This file re-exports element constructors for the el package.
package el

import (
	"github.com/pulse-ui/pulse/pkg/dom"
	"github.com/pulse-ui/pulse/pkg/mount"
)

// IsVoidElement reports whether tag cannot have children when serialized.
func IsVoidElement(tag string) bool {
	return dom.IsVoidElement(tag)
}
func Html(mods ...Modifier) *Element {
	return mount.El("html", mods...)
}
func Head(mods ...Modifier) *Element {
	return mount.El("head", mods...)
}
func Body(mods ...Modifier) *Element {
	return mount.El("body", mods...)
}
func Title(mods ...Modifier) *Element {
	return mount.El("title", mods...)
}
func Meta(mods ...Modifier) *Element {
	return mount.El("meta", mods...)
}
func LinkEl(mods ...Modifier) *Element {
	return mount.El("link", mods...)
}
func Base(mods ...Modifier) *Element {
	return mount.El("base", mods...)
}
func Header(mods ...Modifier) *Element {
	return mount.El("header", mods...)
}
func Footer(mods ...Modifier) *Element {
	return mount.El("footer", mods...)
}
func Main(mods ...Modifier) *Element {
	return mount.El("main", mods...)
}
func Nav(mods ...Modifier) *Element {
	return mount.El("nav", mods...)
}
func Section(mods ...Modifier) *Element {
	return mount.El("section", mods...)
}
func Article(mods ...Modifier) *Element {
	return mount.El("article", mods...)
}
func Aside(mods ...Modifier) *Element {
	return mount.El("aside", mods...)
}
func Address(mods ...Modifier) *Element {
	return mount.El("address", mods...)
}
func H1(mods ...Modifier) *Element {
	return mount.El("h1", mods...)
}
func H2(mods ...Modifier) *Element {
	return mount.El("h2", mods...)
}
func H3(mods ...Modifier) *Element {
	return mount.El("h3", mods...)
}
func H4(mods ...Modifier) *Element {
	return mount.El("h4", mods...)
}
func H5(mods ...Modifier) *Element {
	return mount.El("h5", mods...)
}
func H6(mods ...Modifier) *Element {
	return mount.El("h6", mods...)
}
func Hgroup(mods ...Modifier) *Element {
	return mount.El("hgroup", mods...)
}
func Div(mods ...Modifier) *Element {
	return mount.El("div", mods...)
}
func P(mods ...Modifier) *Element {
	return mount.El("p", mods...)
}
func Span(mods ...Modifier) *Element {
	return mount.El("span", mods...)
}
func Pre(mods ...Modifier) *Element {
	return mount.El("pre", mods...)
}
func Blockquote(mods ...Modifier) *Element {
	return mount.El("blockquote", mods...)
}
func Ul(mods ...Modifier) *Element {
	return mount.El("ul", mods...)
}
func Ol(mods ...Modifier) *Element {
	return mount.El("ol", mods...)
}
func Li(mods ...Modifier) *Element {
	return mount.El("li", mods...)
}
func Dl(mods ...Modifier) *Element {
	return mount.El("dl", mods...)
}
func Dt(mods ...Modifier) *Element {
	return mount.El("dt", mods...)
}
func Dd(mods ...Modifier) *Element {
	return mount.El("dd", mods...)
}
func Hr(mods ...Modifier) *Element {
	return mount.El("hr", mods...)
}
func Figure(mods ...Modifier) *Element {
	return mount.El("figure", mods...)
}
func Figcaption(mods ...Modifier) *Element {
	return mount.El("figcaption", mods...)
}
func A(mods ...Modifier) *Element {
	return mount.El("a", mods...)
}
func Strong(mods ...Modifier) *Element {
	return mount.El("strong", mods...)
}
func Em(mods ...Modifier) *Element {
	return mount.El("em", mods...)
}
func B(mods ...Modifier) *Element {
	return mount.El("b", mods...)
}
func I(mods ...Modifier) *Element {
	return mount.El("i", mods...)
}
func U(mods ...Modifier) *Element {
	return mount.El("u", mods...)
}
func S(mods ...Modifier) *Element {
	return mount.El("s", mods...)
}
func Small(mods ...Modifier) *Element {
	return mount.El("small", mods...)
}
func Mark(mods ...Modifier) *Element {
	return mount.El("mark", mods...)
}
func Sub(mods ...Modifier) *Element {
	return mount.El("sub", mods...)
}
func Sup(mods ...Modifier) *Element {
	return mount.El("sup", mods...)
}
func Code(mods ...Modifier) *Element {
	return mount.El("code", mods...)
}
func Kbd(mods ...Modifier) *Element {
	return mount.El("kbd", mods...)
}
func Samp(mods ...Modifier) *Element {
	return mount.El("samp", mods...)
}
func Var(mods ...Modifier) *Element {
	return mount.El("var", mods...)
}
func Abbr(mods ...Modifier) *Element {
	return mount.El("abbr", mods...)
}
func Time_(mods ...Modifier) *Element {
	return mount.El("time", mods...)
}
func Cite(mods ...Modifier) *Element {
	return mount.El("cite", mods...)
}
func Q(mods ...Modifier) *Element {
	return mount.El("q", mods...)
}
func Dfn(mods ...Modifier) *Element {
	return mount.El("dfn", mods...)
}
func Ruby(mods ...Modifier) *Element {
	return mount.El("ruby", mods...)
}
func Rt(mods ...Modifier) *Element {
	return mount.El("rt", mods...)
}
func Rp(mods ...Modifier) *Element {
	return mount.El("rp", mods...)
}
func Bdi(mods ...Modifier) *Element {
	return mount.El("bdi", mods...)
}
func Bdo(mods ...Modifier) *Element {
	return mount.El("bdo", mods...)
}
func DataElement(mods ...Modifier) *Element {
	return mount.El("data", mods...)
}
func Br(mods ...Modifier) *Element {
	return mount.El("br", mods...)
}
func Wbr(mods ...Modifier) *Element {
	return mount.El("wbr", mods...)
}
func Form(mods ...Modifier) *Element {
	return mount.El("form", mods...)
}
func Input(mods ...Modifier) *Element {
	return mount.El("input", mods...)
}
func Textarea(mods ...Modifier) *Element {
	return mount.El("textarea", mods...)
}
func Select(mods ...Modifier) *Element {
	return mount.El("select", mods...)
}
func Option(mods ...Modifier) *Element {
	return mount.El("option", mods...)
}
func Optgroup(mods ...Modifier) *Element {
	return mount.El("optgroup", mods...)
}
func Button(mods ...Modifier) *Element {
	return mount.El("button", mods...)
}
func Label(mods ...Modifier) *Element {
	return mount.El("label", mods...)
}
func Fieldset(mods ...Modifier) *Element {
	return mount.El("fieldset", mods...)
}
func Legend(mods ...Modifier) *Element {
	return mount.El("legend", mods...)
}
func Datalist(mods ...Modifier) *Element {
	return mount.El("datalist", mods...)
}
func Output(mods ...Modifier) *Element {
	return mount.El("output", mods...)
}
func Progress(mods ...Modifier) *Element {
	return mount.El("progress", mods...)
}
func Meter(mods ...Modifier) *Element {
	return mount.El("meter", mods...)
}
func Table(mods ...Modifier) *Element {
	return mount.El("table", mods...)
}
func Thead(mods ...Modifier) *Element {
	return mount.El("thead", mods...)
}
func Tbody(mods ...Modifier) *Element {
	return mount.El("tbody", mods...)
}
func Tfoot(mods ...Modifier) *Element {
	return mount.El("tfoot", mods...)
}
func Tr(mods ...Modifier) *Element {
	return mount.El("tr", mods...)
}
func Th(mods ...Modifier) *Element {
	return mount.El("th", mods...)
}
func Td(mods ...Modifier) *Element {
	return mount.El("td", mods...)
}
func Caption(mods ...Modifier) *Element {
	return mount.El("caption", mods...)
}
func Colgroup(mods ...Modifier) *Element {
	return mount.El("colgroup", mods...)
}
func Col(mods ...Modifier) *Element {
	return mount.El("col", mods...)
}
func Img(mods ...Modifier) *Element {
	return mount.El("img", mods...)
}
func Picture(mods ...Modifier) *Element {
	return mount.El("picture", mods...)
}
func SourceEl(mods ...Modifier) *Element {
	return mount.El("source", mods...)
}
func Video(mods ...Modifier) *Element {
	return mount.El("video", mods...)
}
func Audio(mods ...Modifier) *Element {
	return mount.El("audio", mods...)
}
func Track(mods ...Modifier) *Element {
	return mount.El("track", mods...)
}
func Iframe(mods ...Modifier) *Element {
	return mount.El("iframe", mods...)
}
func Embed(mods ...Modifier) *Element {
	return mount.El("embed", mods...)
}
func ObjectEl(mods ...Modifier) *Element {
	return mount.El("object", mods...)
}
func Canvas(mods ...Modifier) *Element {
	return mount.El("canvas", mods...)
}
func Svg(mods ...Modifier) *Element {
	return mount.El("svg", mods...)
}
func Circle(mods ...Modifier) *Element {
	return mount.El("circle", mods...)
}
func Ellipse(mods ...Modifier) *Element {
	return mount.El("ellipse", mods...)
}
func Line(mods ...Modifier) *Element {
	return mount.El("line", mods...)
}
func Path(mods ...Modifier) *Element {
	return mount.El("path", mods...)
}
func Polygon(mods ...Modifier) *Element {
	return mount.El("polygon", mods...)
}
func Polyline(mods ...Modifier) *Element {
	return mount.El("polyline", mods...)
}
func Rect(mods ...Modifier) *Element {
	return mount.El("rect", mods...)
}
func G(mods ...Modifier) *Element {
	return mount.El("g", mods...)
}
func Defs(mods ...Modifier) *Element {
	return mount.El("defs", mods...)
}
func Use(mods ...Modifier) *Element {
	return mount.El("use", mods...)
}
func Details(mods ...Modifier) *Element {
	return mount.El("details", mods...)
}
func Summary(mods ...Modifier) *Element {
	return mount.El("summary", mods...)
}
func Dialog(mods ...Modifier) *Element {
	return mount.El("dialog", mods...)
}
func Menu(mods ...Modifier) *Element {
	return mount.El("menu", mods...)
}
func Noscript(mods ...Modifier) *Element {
	return mount.El("noscript", mods...)
}
func Template(mods ...Modifier) *Element {
	return mount.El("template", mods...)
}
func Slot(mods ...Modifier) *Element {
	return mount.El("slot", mods...)
}

// CustomElement mounts an element with an arbitrary tag name.
func CustomElement(tag string, mods ...Modifier) *Element {
	return mount.El(tag, mods...)
}
