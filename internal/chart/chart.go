// Package chart draws the transactions overview: expense bars and a net
// balance line placed by literal pixel arithmetic. No axes, grid or legend.
package chart

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/dafibh/finai/finai-web/internal/domain"
	"github.com/disintegration/imaging"
	"golang.org/x/image/vector"
)

const (
	// MaxPoints is how many of the most recent points are drawn
	MaxPoints = 20

	minBarWidth    = 6
	leftPadding    = 10
	barHeightFrac  = 0.5
	barBaseline    = 30
	lineHeightFrac = 0.6
	lineBaseline   = 40
	lineWidth      = 2
)

var (
	expenseColor = color.NRGBA{R: 255, G: 80, B: 80, A: 230}
	netColor     = color.NRGBA{R: 240, G: 200, B: 50, A: 255}
)

// Series is the visible window of chart data
type Series struct {
	Labels     []string
	Expense    []float64
	NetBalance []float64
}

// Window keeps the most recent MaxPoints entries of every series
func Window(data domain.ChartData) Series {
	return Series{
		Labels:     tail(data.Labels, MaxPoints),
		Expense:    tail(data.Expense, MaxPoints),
		NetBalance: tail(data.NetBalance, MaxPoints),
	}
}

func tail[T any](s []T, n int) []T {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// Rect is a filled bar in canvas pixels
type Rect struct {
	X, Y, W, H float64
}

// Point is a vertex of the net balance line
type Point struct {
	X, Y float64
}

// Layout is the computed placement of everything drawn
type Layout struct {
	BarWidth float64
	Bars     []Rect
	Line     []Point
}

// Compute places bars and line vertices on a width x height canvas.
// Bars are scaled against the window's maximum expense (at least 1); the
// line is min-max normalized with a +1 denominator so a flat series stays finite.
func Compute(s Series, width, height int) Layout {
	n := len(s.Labels)
	if n == 0 || width <= 0 || height <= 0 {
		return Layout{}
	}

	w := float64(width)
	h := float64(height)
	step := w / float64(n)
	barW := math.Max(minBarWidth, math.Floor(w/float64(n)/2))

	maxExp := 1.0
	for _, v := range s.Expense {
		maxExp = math.Max(maxExp, v)
	}

	layout := Layout{
		BarWidth: barW,
		Bars:     make([]Rect, 0, len(s.Expense)),
		Line:     make([]Point, 0, len(s.NetBalance)),
	}

	for i, v := range s.Expense {
		bh := v / maxExp * (h * barHeightFrac)
		layout.Bars = append(layout.Bars, Rect{
			X: float64(i)*step + leftPadding,
			Y: h - bh - barBaseline,
			W: barW,
			H: bh,
		})
	}

	if len(s.NetBalance) > 0 {
		lo, hi := s.NetBalance[0], s.NetBalance[0]
		for _, v := range s.NetBalance {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		for i, v := range s.NetBalance {
			norm := (v - lo) / (hi - lo + 1)
			layout.Line = append(layout.Line, Point{
				X: float64(i)*step + leftPadding + barW,
				Y: h - norm*(h*lineHeightFrac) - lineBaseline,
			})
		}
	}

	return layout
}

// Render paints the series onto a fresh transparent canvas
func Render(s Series, width, height int) *image.NRGBA {
	canvas := imaging.New(width, height, color.NRGBA{})
	layout := Compute(s, width, height)
	if len(layout.Bars) == 0 && len(layout.Line) == 0 {
		return canvas
	}

	r := vector.NewRasterizer(width, height)
	for _, b := range layout.Bars {
		if b.H <= 0 {
			continue
		}
		r.MoveTo(clamp(b.X, width), clamp(b.Y, height))
		r.LineTo(clamp(b.X+b.W, width), clamp(b.Y, height))
		r.LineTo(clamp(b.X+b.W, width), clamp(b.Y+b.H, height))
		r.LineTo(clamp(b.X, width), clamp(b.Y+b.H, height))
		r.ClosePath()
	}
	r.Draw(canvas, canvas.Bounds(), image.NewUniform(expenseColor), image.Point{})

	if len(layout.Line) > 1 {
		r.Reset(width, height)
		for i := 1; i < len(layout.Line); i++ {
			strokeSegment(r, layout.Line[i-1], layout.Line[i], lineWidth)
		}
		r.Draw(canvas, canvas.Bounds(), image.NewUniform(netColor), image.Point{})
	}

	return canvas
}

// strokeSegment adds a width-wide quad along a->b. Each quad is its own
// closed path; overlapping joints are filled once under the non-zero rule.
func strokeSegment(r *vector.Rasterizer, a, b Point, width float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2

	w, h := r.Size().X, r.Size().Y
	r.MoveTo(clamp(a.X+nx, w), clamp(a.Y+ny, h))
	r.LineTo(clamp(b.X+nx, w), clamp(b.Y+ny, h))
	r.LineTo(clamp(b.X-nx, w), clamp(b.Y-ny, h))
	r.LineTo(clamp(a.X-nx, w), clamp(a.Y-ny, h))
	r.ClosePath()
}

// clamp keeps a coordinate inside [0, limit]
func clamp(v float64, limit int) float32 {
	return float32(math.Min(math.Max(v, 0), float64(limit)))
}

// EncodePNG writes the canvas as PNG
func EncodePNG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}
