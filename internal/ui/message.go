package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/cinevault/internal/checkout"
	"github.com/desertthunder/cinevault/internal/models"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgCartChanged MsgKind = iota
	MsgSessionChanged
	MsgProgressUpdate
	MsgCheckoutComplete
)

type sessionResult struct {
	user models.User
	err  error
}

type checkoutResult struct {
	order *checkout.Order
	err   error
}

// cartChangedMsg is the constructor for [MsgCartChanged]
func cartChangedMsg(err error) Msg {
	return Msg{kind: MsgCartChanged, data: err}
}

// sessionChangedMsg is the constructor for [MsgSessionChanged]
func sessionChangedMsg(user models.User, err error) Msg {
	return Msg{kind: MsgSessionChanged, data: sessionResult{user: user, err: err}}
}

// progressUpdateMsg is the constructor for [MsgProgressUpdate]
func progressUpdateMsg(update checkout.ProgressUpdate) Msg {
	return Msg{kind: MsgProgressUpdate, data: update}
}

// checkoutCompleteMsg is the constructor for [MsgCheckoutComplete]
func checkoutCompleteMsg(order *checkout.Order, err error) Msg {
	return Msg{kind: MsgCheckoutComplete, data: checkoutResult{order: order, err: err}}
}
