// This file provides event handler helpers for the el package.
package el

import "github.com/pulse-ui/pulse/pkg/mount"

func OnClick(handler func(Event)) Modifier {
	return mount.On("click", handler)
}
func OnDblClick(handler func(Event)) Modifier {
	return mount.On("dblclick", handler)
}
func OnMouseDown(handler func(Event)) Modifier {
	return mount.On("mousedown", handler)
}
func OnMouseUp(handler func(Event)) Modifier {
	return mount.On("mouseup", handler)
}
func OnMouseMove(handler func(Event)) Modifier {
	return mount.On("mousemove", handler)
}
func OnMouseEnter(handler func(Event)) Modifier {
	return mount.On("mouseenter", handler)
}
func OnMouseLeave(handler func(Event)) Modifier {
	return mount.On("mouseleave", handler)
}
func OnMouseOver(handler func(Event)) Modifier {
	return mount.On("mouseover", handler)
}
func OnMouseOut(handler func(Event)) Modifier {
	return mount.On("mouseout", handler)
}
func OnContextMenu(handler func(Event)) Modifier {
	return mount.On("contextmenu", handler)
}
func OnWheel(handler func(Event)) Modifier {
	return mount.On("wheel", handler)
}
func OnKeyDown(handler func(Event)) Modifier {
	return mount.On("keydown", handler)
}
func OnKeyUp(handler func(Event)) Modifier {
	return mount.On("keyup", handler)
}
func OnKeyPress(handler func(Event)) Modifier {
	return mount.On("keypress", handler)
}
func OnInput(handler func(Event)) Modifier {
	return mount.On("input", handler)
}
func OnChange(handler func(Event)) Modifier {
	return mount.On("change", handler)
}
func OnSubmit(handler func(Event)) Modifier {
	return mount.On("submit", handler)
}
func OnReset(handler func(Event)) Modifier {
	return mount.On("reset", handler)
}
func OnInvalid(handler func(Event)) Modifier {
	return mount.On("invalid", handler)
}
func OnSelect(handler func(Event)) Modifier {
	return mount.On("select", handler)
}
func OnFocus(handler func(Event)) Modifier {
	return mount.On("focus", handler)
}
func OnBlur(handler func(Event)) Modifier {
	return mount.On("blur", handler)
}
func OnFocusIn(handler func(Event)) Modifier {
	return mount.On("focusin", handler)
}
func OnFocusOut(handler func(Event)) Modifier {
	return mount.On("focusout", handler)
}
func OnDragStart(handler func(Event)) Modifier {
	return mount.On("dragstart", handler)
}
func OnDrag(handler func(Event)) Modifier {
	return mount.On("drag", handler)
}
func OnDragEnd(handler func(Event)) Modifier {
	return mount.On("dragend", handler)
}
func OnDragEnter(handler func(Event)) Modifier {
	return mount.On("dragenter", handler)
}
func OnDragOver(handler func(Event)) Modifier {
	return mount.On("dragover", handler)
}
func OnDragLeave(handler func(Event)) Modifier {
	return mount.On("dragleave", handler)
}
func OnDrop(handler func(Event)) Modifier {
	return mount.On("drop", handler)
}
func OnTouchStart(handler func(Event)) Modifier {
	return mount.On("touchstart", handler)
}
func OnTouchMove(handler func(Event)) Modifier {
	return mount.On("touchmove", handler)
}
func OnTouchEnd(handler func(Event)) Modifier {
	return mount.On("touchend", handler)
}
func OnTouchCancel(handler func(Event)) Modifier {
	return mount.On("touchcancel", handler)
}
func OnPointerDown(handler func(Event)) Modifier {
	return mount.On("pointerdown", handler)
}
func OnPointerUp(handler func(Event)) Modifier {
	return mount.On("pointerup", handler)
}
func OnPointerMove(handler func(Event)) Modifier {
	return mount.On("pointermove", handler)
}
func OnPointerEnter(handler func(Event)) Modifier {
	return mount.On("pointerenter", handler)
}
func OnPointerLeave(handler func(Event)) Modifier {
	return mount.On("pointerleave", handler)
}
func OnPointerCancel(handler func(Event)) Modifier {
	return mount.On("pointercancel", handler)
}
func OnScroll(handler func(Event)) Modifier {
	return mount.On("scroll", handler)
}
func OnScrollEnd(handler func(Event)) Modifier {
	return mount.On("scrollend", handler)
}
func OnCopy(handler func(Event)) Modifier {
	return mount.On("copy", handler)
}
func OnCut(handler func(Event)) Modifier {
	return mount.On("cut", handler)
}
func OnPaste(handler func(Event)) Modifier {
	return mount.On("paste", handler)
}
func OnToggle(handler func(Event)) Modifier {
	return mount.On("toggle", handler)
}
func OnPlay(handler func(Event)) Modifier {
	return mount.On("play", handler)
}
func OnPause(handler func(Event)) Modifier {
	return mount.On("pause", handler)
}
func OnEnded(handler func(Event)) Modifier {
	return mount.On("ended", handler)
}
func OnTimeUpdate(handler func(Event)) Modifier {
	return mount.On("timeupdate", handler)
}
func OnVolumeChange(handler func(Event)) Modifier {
	return mount.On("volumechange", handler)
}
func OnLoad(handler func(Event)) Modifier {
	return mount.On("load", handler)
}
func OnError(handler func(Event)) Modifier {
	return mount.On("error", handler)
}
func OnAbort(handler func(Event)) Modifier {
	return mount.On("abort", handler)
}
func OnAnimationStart(handler func(Event)) Modifier {
	return mount.On("animationstart", handler)
}
func OnAnimationEnd(handler func(Event)) Modifier {
	return mount.On("animationend", handler)
}
func OnTransitionEnd(handler func(Event)) Modifier {
	return mount.On("transitionend", handler)
}
