//go:build !windows

package main

// RegisterUndoHotkey is a no-op outside Windows; undo stays available through
// the UI and the bound methods.
func (a *App) RegisterUndoHotkey() {}
