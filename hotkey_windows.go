package main

import (
	"fmt"
	"syscall"
	"unsafe"
)

var (
	user32             = syscall.NewLazyDLL("user32.dll")
	procRegisterHotKey = user32.NewProc("RegisterHotKey")
	procGetMessage     = user32.NewProc("GetMessageW")
)

const (
	MOD_CONTROL  = 0x0002
	MOD_NOREPEAT = 0x4000
	VK_Z         = 0x5A
	WM_HOTKEY    = 0x0312
)

type MSG struct {
	HWND    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      struct{ X, Y int32 }
}

// RegisterUndoHotkey registers Ctrl+Z as a global hotkey so a throw can be
// corrected without reaching for the mouse mid-turn.
func (a *App) RegisterUndoHotkey() {
	go func() {
		// Register Ctrl+Z (id = 1)
		ret, _, err := procRegisterHotKey.Call(
			0, // hwnd (0 = current thread)
			1, // id
			uintptr(MOD_CONTROL|MOD_NOREPEAT),
			uintptr(VK_Z),
		)
		if ret == 0 {
			fmt.Printf("Failed to register hotkey: %v\n", err)
			return
		}
		fmt.Println("Registered Ctrl+Z hotkey to undo the last dart")

		// Message loop to receive hotkey events
		var msg MSG
		for {
			ret, _, _ := procGetMessage.Call(
				uintptr(unsafe.Pointer(&msg)),
				0, 0, 0,
			)
			if ret == 0 {
				break
			}

			if msg.Message == WM_HOTKEY {
				a.UndoLastDart()
			}
		}
	}()
}
