package main

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"connectors/diagram"
	"connectors/geometry"
)

var (
	colorBackground   = color.White
	colorGrid         = color.RGBA{R: 0, G: 122, B: 255, A: 255}
	colorBoxFill      = color.RGBA{R: 246, G: 246, B: 246, A: 255}
	colorBoxStroke    = color.RGBA{R: 255, G: 149, B: 0, A: 255}
	colorAccent       = color.RGBA{R: 0, G: 122, B: 255, A: 255}
	colorConnector    = color.RGBA{R: 142, G: 142, B: 147, A: 255}
	colorConnSelected = color.RGBA{R: 255, G: 59, B: 48, A: 255}
	colorCaption      = color.RGBA{R: 51, G: 51, B: 51, A: 255}
)

// renderPNG paints the whole canvas extent of state into a gg context.
func renderPNG(state *diagram.State, showGrid bool) (*gg.Context, error) {
	width := int(math.Ceil(state.Width()))
	height := int(math.Ceil(state.Height()))

	dc := gg.NewContext(width, height)
	dc.SetColor(colorBackground)
	dc.Clear()

	if showGrid {
		drawGridPNG(dc, float64(width), float64(height))
	}

	for _, node := range state.Renders() {
		switch node.Kind {
		case diagram.KindConnector:
			stroke := colorConnector
			if node.Selected {
				stroke = colorConnSelected
			}
			drawLinePNG(dc, node.Shape.Line, stroke)
		case diagram.KindBox:
			stroke := colorBoxStroke
			if node.Selected || node.Target {
				stroke = colorAccent
			}
			drawBoxPNG(dc, node.Shape.Box, stroke)
		}
	}
	if line, ok := state.ActiveConnection(); ok {
		drawLinePNG(dc, line, colorAccent)
	}

	if err := drawCaptionPNG(dc, state); err != nil {
		return nil, err
	}
	return dc, nil
}

func drawGridPNG(dc *gg.Context, width, height float64) {
	dc.SetColor(colorGrid)
	dc.SetLineWidth(gridLineWidth)
	for y := 0.0; y <= height; y += diagram.GridPitch {
		dc.DrawLine(0, y, width, y)
	}
	for x := 0.0; x <= width; x += diagram.GridPitch {
		dc.DrawLine(x, 0, x, height)
	}
	dc.DrawRectangle(0, 0, width, height)
	dc.Stroke()
}

func drawLinePNG(dc *gg.Context, line geometry.Line, stroke color.Color) {
	dc.SetColor(stroke)
	dc.SetLineWidth(line.Width)
	dc.SetLineCapRound()
	dc.DrawLine(line.From.X, line.From.Y, line.To.X, line.To.Y)
	dc.Stroke()
}

func drawBoxPNG(dc *gg.Context, box geometry.RoundedRect, stroke color.Color) {
	r := box.Rect
	dc.DrawRoundedRectangle(r.MinX(), r.MinY(), r.Size.Width, r.Size.Height, box.Radius)
	dc.SetColor(colorBoxFill)
	dc.FillPreserve()
	dc.SetColor(stroke)
	dc.SetLineWidth(diagram.BoxStrokeWidth)
	dc.Stroke()
}

func drawCaptionPNG(dc *gg.Context, state *diagram.State) error {
	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    captionFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	dc.SetFontFace(face)
	dc.SetColor(colorCaption)
	caption := fmt.Sprintf("%d boxes, %d connectors", len(state.Boxes()), len(state.Connectors()))
	dc.DrawStringAnchored(caption, captionPadding, float64(dc.Height())-captionPadding, 0, 0)
	return nil
}

// ExportToPNG writes the canvas as a PNG image to filename.
func ExportToPNG(state *diagram.State, filename string, showGrid bool) error {
	dc, err := renderPNG(state, showGrid)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	return nil
}

// WritePNG encodes the canvas as a PNG image to w.
func WritePNG(state *diagram.State, w io.Writer, showGrid bool) error {
	dc, err := renderPNG(state, showGrid)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// visualText is the unstyled terminal rendering of the whole canvas with
// trailing blanks trimmed.
func visualText(state *diagram.State, showGrid bool) string {
	lines := renderWholeCanvas(state, showGrid).Lines()
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n") + "\n"
}

func ExportToTXT(state *diagram.State, filename string, showGrid bool) error {
	if err := os.WriteFile(filename, []byte(visualText(state, showGrid)), 0o644); err != nil {
		return fmt.Errorf("write txt: %w", err)
	}
	return nil
}

// export renders the canvas to a timestamped file in the export directory
// and reports the path on the status line.
func (m *model) export(kind ExportKind) {
	ext := "png"
	if kind == ExportTXT {
		ext = "txt"
	}
	path, err := m.config.GetExportPath(fmt.Sprintf("connectors-%s.%s", m.now(), ext))
	if err != nil {
		m.fail("export", err)
		return
	}

	switch kind {
	case ExportPNG:
		err = ExportToPNG(m.state, path, m.config.ShowGrid)
	case ExportTXT:
		err = ExportToTXT(m.state, path, m.config.ShowGrid)
	}
	if err != nil {
		m.fail("export", err)
		return
	}
	m.successMessage = "Exported " + path
	m.logger.Info("canvas exported", "path", path)
}

// copyToClipboard puts the text rendering of the canvas on the clipboard.
func (m *model) copyToClipboard() {
	if err := m.clipboard(visualText(m.state, false)); err != nil {
		m.fail("copy", err)
		return
	}
	m.successMessage = "Copied canvas to clipboard"
	m.logger.Info("canvas copied to clipboard")
}
