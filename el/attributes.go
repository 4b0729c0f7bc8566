// This file provides attribute helpers for the el package.
package el

import (
	"strconv"
	"strings"

	"github.com/pulse-ui/pulse/pkg/mount"
	"github.com/pulse-ui/pulse/pkg/stream"
)

func boolAttr(name string, on bool) Modifier {
	if !on {
		return mount.Nop
	}
	return mount.Attr(name, "")
}

func ID(id string) Modifier {
	return mount.Attr("id", id)
}
func Class(classes ...string) Modifier {
	return mount.Attr("class", strings.Join(classes, " "))
}
func ClassIf(condition bool, classes ...string) Modifier {
	if !condition {
		return mount.Nop
	}
	return Class(classes...)
}
func AttrIf(condition bool, name, value string) Modifier {
	if !condition {
		return mount.Nop
	}
	return mount.Attr(name, value)
}
func StyleAttr(style string) Modifier {
	return mount.Attr("style", style)
}
func Data(key, value string) Modifier {
	return mount.Attr("data-"+key, value)
}
func Role(role string) Modifier {
	return mount.Attr("role", role)
}
func AriaLabel(label string) Modifier {
	return mount.Attr("aria-label", label)
}
func AriaHidden(hidden bool) Modifier {
	return mount.Attr("aria-hidden", strconv.FormatBool(hidden))
}
func AriaExpanded(expanded bool) Modifier {
	return mount.Attr("aria-expanded", strconv.FormatBool(expanded))
}
func AriaLive(mode string) Modifier {
	return mount.Attr("aria-live", mode)
}
func AriaControls(id string) Modifier {
	return mount.Attr("aria-controls", id)
}
func TabIndex(index int) Modifier {
	return mount.Attr("tabindex", strconv.Itoa(index))
}
func Hidden() Modifier {
	return mount.Attr("hidden", "")
}
func TitleAttr(title string) Modifier {
	return mount.Attr("title", title)
}
func Lang(lang string) Modifier {
	return mount.Attr("lang", lang)
}
func Dir(dir string) Modifier {
	return mount.Attr("dir", dir)
}
func Href(url string) Modifier {
	return mount.Attr("href", url)
}
func Target(target string) Modifier {
	return mount.Attr("target", target)
}
func Rel(rel string) Modifier {
	return mount.Attr("rel", rel)
}
func Name(name string) Modifier {
	return mount.Attr("name", name)
}
func Value(value string) Modifier {
	return mount.Attr("value", value)
}
func Type(t string) Modifier {
	return mount.Attr("type", t)
}
func Placeholder(text string) Modifier {
	return mount.Attr("placeholder", text)
}
func Disabled(disabled bool) Modifier {
	return boolAttr("disabled", disabled)
}
func Readonly(readonly bool) Modifier {
	return boolAttr("readonly", readonly)
}
func Required(required bool) Modifier {
	return boolAttr("required", required)
}
func Checked(checked bool) Modifier {
	return boolAttr("checked", checked)
}
func Selected(selected bool) Modifier {
	return boolAttr("selected", selected)
}
func Multiple() Modifier {
	return mount.Attr("multiple", "")
}
func Autofocus() Modifier {
	return mount.Attr("autofocus", "")
}
func Autocomplete(value string) Modifier {
	return mount.Attr("autocomplete", value)
}
func Pattern(pattern string) Modifier {
	return mount.Attr("pattern", pattern)
}
func MinLength(n int) Modifier {
	return mount.Attr("minlength", strconv.Itoa(n))
}
func MaxLength(n int) Modifier {
	return mount.Attr("maxlength", strconv.Itoa(n))
}
func Min(value string) Modifier {
	return mount.Attr("min", value)
}
func Max(value string) Modifier {
	return mount.Attr("max", value)
}
func Step(value string) Modifier {
	return mount.Attr("step", value)
}
func Rows(n int) Modifier {
	return mount.Attr("rows", strconv.Itoa(n))
}
func Cols(n int) Modifier {
	return mount.Attr("cols", strconv.Itoa(n))
}
func Action(url string) Modifier {
	return mount.Attr("action", url)
}
func Method(method string) Modifier {
	return mount.Attr("method", method)
}
func Enctype(enctype string) Modifier {
	return mount.Attr("enctype", enctype)
}
func For(id string) Modifier {
	return mount.Attr("for", id)
}
func Src(url string) Modifier {
	return mount.Attr("src", url)
}
func Alt(text string) Modifier {
	return mount.Attr("alt", text)
}
func Width(n int) Modifier {
	return mount.Attr("width", strconv.Itoa(n))
}
func Height(n int) Modifier {
	return mount.Attr("height", strconv.Itoa(n))
}
func Loading(mode string) Modifier {
	return mount.Attr("loading", mode)
}
func Colspan(n int) Modifier {
	return mount.Attr("colspan", strconv.Itoa(n))
}
func Rowspan(n int) Modifier {
	return mount.Attr("rowspan", strconv.Itoa(n))
}
func Charset(charset string) Modifier {
	return mount.Attr("charset", charset)
}
func Content(content string) Modifier {
	return mount.Attr("content", content)
}
func Open(open bool) Modifier {
	return boolAttr("open", open)
}

// Reactive attribute bindings.

// BindClass keeps the class attribute synchronized with a stream.
func BindClass(s stream.Stream[string]) Modifier {
	return mount.BindAttr("class", s)
}

// BindValue keeps the value attribute synchronized with a stream. Use it
// together with OnInput to build controlled inputs.
func BindValue(s stream.Stream[string]) Modifier {
	return mount.BindAttr("value", s)
}

// BindStyle keeps the style attribute synchronized with a stream.
func BindStyle(s stream.Stream[string]) Modifier {
	return mount.BindAttr("style", s)
}
