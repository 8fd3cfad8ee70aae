// Package export writes frames to vector documents.
package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/Faultbox/rocketsim/internal/engine/render"
	"github.com/Faultbox/rocketsim/pkg/math"
)

// LineWidth is the outline width in points.
const LineWidth = 1.0

// PDF is a render.Surface that draws onto a single PDF page. One pixel maps
// to one point.
type PDF struct {
	doc    *gofpdf.Fpdf
	shapes int
}

// NewPDF creates a one-page document of width x height points filled with bg.
func NewPDF(width, height float64, bg render.Color) *PDF {
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	doc.SetLineWidth(LineWidth)

	p := &PDF{doc: doc}
	p.setFill(bg)
	doc.Rect(0, 0, width, height, "F")
	return p
}

// FillTriangle fills the triangle abc.
func (p *PDF) FillTriangle(a, b, c math.Vec2, col render.Color) {
	p.setFill(col)
	p.doc.Polygon([]gofpdf.PointType{point(a), point(b), point(c)}, "F")
	p.shapes++
}

// StrokeRect outlines the rectangle [min, max].
func (p *PDF) StrokeRect(min, max math.Vec2, col render.Color) {
	c := col.NRGBA()
	p.doc.SetDrawColor(int(c.R), int(c.G), int(c.B))
	p.doc.SetAlpha(float64(col.A), "Normal")
	size := max.Sub(min)
	p.doc.Rect(float64(min.X), float64(min.Y), float64(size.X), float64(size.Y), "D")
	p.shapes++
}

// Shapes returns the number of shapes drawn so far, background excluded.
func (p *PDF) Shapes() int {
	return p.shapes
}

// Write emits the document to w. The PDF cannot be drawn on afterwards.
func (p *PDF) Write(w io.Writer) error {
	if err := p.doc.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

// Save writes the document to path.
func (p *PDF) Save(path string) error {
	if err := p.doc.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func (p *PDF) setFill(col render.Color) {
	c := col.NRGBA()
	p.doc.SetFillColor(int(c.R), int(c.G), int(c.B))
	p.doc.SetAlpha(float64(col.A), "Normal")
}

func point(v math.Vec2) gofpdf.PointType {
	return gofpdf.PointType{X: float64(v.X), Y: float64(v.Y)}
}
