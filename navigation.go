package main

func (m *model) handlePan(key string, speed int) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.panX -= speed
	case "l", "right", "L", "shift+right":
		m.panX += speed
	case "k", "up", "K", "shift+up":
		m.panY -= speed
	case "j", "down", "J", "shift+down":
		m.panY += speed
	}
	m.clampPan()
}

// clampPan keeps the view from scrolling past the top-left corner or beyond
// the canvas extent.
func (m *model) clampPan() {
	extent := toCell(m.extentPoint())
	maxX := extent.X + 1 - m.canvasWidth()
	maxY := extent.Y + 1 - m.canvasHeight()
	m.panX = min(m.panX, max(maxX, 0))
	m.panY = min(m.panY, max(maxY, 0))
	m.panX = max(m.panX, 0)
	m.panY = max(m.panY, 0)
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}
