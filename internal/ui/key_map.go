package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	enter    key.Binding
	back     key.Binding
	add      key.Binding
	cart     key.Binding
	remove   key.Binding
	clear    key.Binding
	checkout key.Binding
	login    key.Binding
	logout   key.Binding
	next     key.Binding
	prev     key.Binding
	submit   key.Binding
	restart  key.Binding
	quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add to cart")),
		cart:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cart")),
		remove:   key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "remove")),
		clear:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear")),
		checkout: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "checkout")),
		login:    key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "sign in")),
		logout:   key.NewBinding(key.WithKeys("O"), key.WithHelp("O", "sign out")),
		next:     key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		prev:     key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
		submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		restart:  key.NewBinding(key.WithKeys("r", "enter"), key.WithHelp("r", "keep browsing")),
		quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.enter, k.back, k.add, k.cart},
		{k.remove, k.clear, k.checkout},
		{k.login, k.logout, k.quit},
	}
}
