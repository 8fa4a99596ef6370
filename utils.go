package main

import (
	"io"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/atotto/clipboard"

	"connectors/diagram"
	"connectors/geometry"
)

func initialModel(config *Config, logger *slog.Logger) model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return model{
		state:     diagram.New(diagram.WithLogger(logger)),
		mode:      ModeNormal,
		config:    config,
		logger:    logger,
		clipboard: clipboard.WriteAll,
		now:       func() string { return time.Now().Format("20060102-150405") },
	}
}

// toModel maps a terminal cell of the canvas view to the center of the
// model-space patch it shows.
func (m *model) toModel(c cell) geometry.Point {
	return geometry.Pt(
		(float64(c.X+m.panX)+0.5)*cellWidth,
		(float64(c.Y+m.panY)+0.5)*cellHeight,
	)
}

// toCell maps a model point to the terminal cell showing it, before panning.
func toCell(p geometry.Point) cell {
	return cell{X: floorDiv(p.X, cellWidth), Y: floorDiv(p.Y, cellHeight)}
}

func floorDiv(v, size float64) int {
	return int(math.Floor(v / size))
}

// canvasHeight is the number of rows left for the canvas under the status
// line.
func (m *model) canvasHeight() int {
	h := m.height - 1
	if h < 1 {
		h = 1
	}
	return h
}

func (m *model) canvasWidth() int {
	if m.width < 1 {
		return 1
	}
	return m.width
}

func (m *model) clearMessages() {
	m.errorMessage = ""
	m.successMessage = ""
}

func (m *model) fail(action string, err error) {
	m.errorMessage = action + ": " + err.Error()
	m.logger.Error(action+" failed", "err", err)
}

// openLog points slog at path, or discards everything when path is empty.
// The returned closer is never nil.
func openLog(path string, level slog.Level) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, f, nil
}

// extentPoint is the bottom-right corner of the canvas extent.
func (m *model) extentPoint() geometry.Point {
	return geometry.Pt(m.state.Width(), m.state.Height())
}
