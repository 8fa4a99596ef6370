package main

import (
	"log/slog"

	"connectors/diagram"
)

type model struct {
	width          int
	height         int
	panX           int
	panY           int
	state          *diagram.State
	mode           Mode
	help           bool
	confirmAction  ConfirmAction
	held           gesture
	errorMessage   string
	successMessage string
	config         *Config
	logger         *slog.Logger
	clipboard      clipboardWriter
	now            func() string
}

// gesture is the pointer gesture held down in the terminal.
type gesture int

const (
	gestureNone gesture = iota
	gestureMove
	gestureConnect
)

// cell is a terminal position relative to the top-left of the canvas view.
type cell struct {
	X, Y int
}

// clipboardWriter is satisfied by atotto/clipboard; tests swap in a recorder.
type clipboardWriter func(text string) error
