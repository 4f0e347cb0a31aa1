package tui

import "fmt"

// actionKind enumerates the navigation requests a screen can make.
type actionKind int

const (
	actionPush actionKind = iota
	actionReplace
	actionBack
	actionClear
	actionRestart
	actionExit
	actionRedraw
)

func (k actionKind) String() string {
	switch k {
	case actionPush:
		return "push"
	case actionReplace:
		return "replace"
	case actionBack:
		return "back"
	case actionClear:
		return "clear"
	case actionRestart:
		return "restart"
	case actionExit:
		return "exit"
	case actionRedraw:
		return "redraw"
	default:
		return fmt.Sprintf("actionKind(%d)", int(k))
	}
}

// action is a single navigation request. id is only meaningful for push and replace.
type action[ID comparable] struct {
	kind actionKind
	id   ID
}

func (a action[ID]) String() string {
	switch a.kind {
	case actionPush, actionReplace:
		return fmt.Sprintf("%s(%v)", a.kind, a.id)
	default:
		return a.kind.String()
	}
}

// Navigator lets screens, and goroutines they start, request navigation.
//
// A Navigator is a small value: copy it freely and hand it to other
// goroutines. Every method enqueues one action for the event loop and returns
// immediately. Actions sent from a single goroutine are applied in order.
//
// Using a Navigator after its App has stopped is a programming error and panics.
type Navigator[ID comparable] struct {
	actions *queue[action[ID]]
}

func newNavigator[ID comparable](actions *queue[action[ID]]) Navigator[ID] {
	return Navigator[ID]{actions: actions}
}

// Push pauses the current screen and opens a new screen for id on top of it.
func (n Navigator[ID]) Push(id ID) {
	n.send(action[ID]{kind: actionPush, id: id})
}

// Replace exits the current screen and opens a new screen for id in its place.
func (n Navigator[ID]) Replace(id ID) {
	n.send(action[ID]{kind: actionReplace, id: id})
}

// Back exits the current screen and resumes the one below it.
// It does nothing when the current screen is the only one.
func (n Navigator[ID]) Back() {
	n.send(action[ID]{kind: actionBack})
}

// Clear exits every screen below the current one. The current screen stays
// active and is not re-entered.
func (n Navigator[ID]) Clear() {
	n.send(action[ID]{kind: actionClear})
}

// Restart exits every screen and starts over from the default screen.
func (n Navigator[ID]) Restart() {
	n.send(action[ID]{kind: actionRestart})
}

// Exit exits every screen and stops the app.
func (n Navigator[ID]) Exit() {
	n.send(action[ID]{kind: actionExit})
}

// Redraw requests that the current screen be drawn again.
func (n Navigator[ID]) Redraw() {
	n.send(action[ID]{kind: actionRedraw})
}

func (n Navigator[ID]) send(a action[ID]) {
	if n.actions == nil {
		panic("tui: zero Navigator used; navigators are only handed out by a running App")
	}
	if !n.actions.Push(a) {
		panic(fmt.Sprintf("tui: navigator used after the app stopped (action %s)", a))
	}
}
