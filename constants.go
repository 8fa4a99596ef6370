package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeConfirm
)

type ConfirmAction int

const (
	ConfirmReset ConfirmAction = iota
	ConfirmQuit
)

// ExportKind picks the renderer used by an export command.
type ExportKind int

const (
	ExportPNG ExportKind = iota
	ExportTXT
)

// Terminal cells cover a fixed patch of model space. A default box is
// 10x3 cells.
const (
	cellWidth  = 10.0
	cellHeight = 22.0
)

// PNG rendering
const (
	gridLineWidth   = 0.2
	captionFontSize = 11.0
	captionPadding  = 6.0
)
