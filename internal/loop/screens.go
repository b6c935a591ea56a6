package loop

import (
	"strings"

	"github.com/tomz197/roadrush/internal/draw"
	"github.com/tomz197/roadrush/internal/object"
)

const controlsHint = "WASD or arrows to steer, Q to quit"

// drawFrame renders the scene into fw: entities in layer order, then the
// labels on top.
func drawFrame(fw *draw.FrameWriter, canvas *draw.Canvas, scene *object.Scene) error {
	draw.ClearScreen(fw)
	canvas.Clear()

	for _, e := range scene.DrawOrder() {
		drawEntity(canvas, e)
	}
	if err := canvas.Render(fw); err != nil {
		return err
	}

	drawLabels(fw, canvas, scene)
	fw.WriteAt(2, canvas.TerminalHeight(), controlsHint)
	return nil
}

// drawEntity draws an entity's footprint. Cars are boxes, the red car only
// outlined so the two stay apart on a monochrome screen, cones are
// triangles pointing up.
func drawEntity(canvas *draw.Canvas, e *object.Entity) {
	c := e.Corners()
	box := []draw.Point{
		{X: c[0][0], Y: c[0][1]},
		{X: c[1][0], Y: c[1][1]},
		{X: c[2][0], Y: c[2][1]},
		{X: c[3][0], Y: c[3][1]},
	}

	switch e.Sprite {
	case object.SpriteCarRed:
		for i := range box {
			canvas.DrawLine(box[i], box[(i+1)%len(box)])
		}
	case object.SpriteCone:
		apex := draw.Point{X: (box[2].X + box[3].X) / 2, Y: (box[2].Y + box[3].Y) / 2}
		canvas.FillPolygon([]draw.Point{box[0], box[1], apex})
	default:
		canvas.FillPolygon(box)
	}
}

// drawLabels writes every label centered on its world position. Labels
// asked for a larger font are letter-spaced.
func drawLabels(fw *draw.FrameWriter, canvas *draw.Canvas, scene *object.Scene) {
	for _, id := range scene.LabelIDs() {
		l := scene.MustLabel(id)
		col, row := canvas.WorldToCell(l.X, l.Y)
		row = min(max(row, 1), canvas.TerminalHeight())
		fw.WriteCentered(col, row, labelText(l))
	}
}

func labelText(l *object.Label) string {
	if l.FontSize <= object.DefaultFontSize {
		return l.Text
	}
	runes := []rune(l.Text)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
