package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
)

// handleCrash restores the terminal, prints the panic with its stack and exits
func handleCrash(screen tcell.Screen, r any) {
	if r == nil {
		return
	}
	if screen != nil {
		screen.Fini()
	}

	stack := debug.Stack()
	log.Printf("crash: %v\n%s", r, stack)

	// \r\n in case the tty is still raw
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mBULLET-HELL CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", stack)
	os.Exit(1)
}

// goSafe runs fn on a goroutine that routes panics through handleCrash
func goSafe(screen tcell.Screen, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				handleCrash(screen, r)
			}
		}()
		fn()
	}()
}
