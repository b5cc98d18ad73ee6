// 15 Oct 2026

// Package plot draws a single line chart, step against energy, as a
// PNG. Labels are drawn with freetype using the Go regular font, so no
// font files are needed on the machine.
package plot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	Width    = 640
	Height   = 400
	mLeft    = 100 // margins in pixels
	mRight   = 20
	mTop     = 30
	mBottom  = 40
	fontSize = 11
)

var ErrEmpty = errors.New("plot: no points to draw")

var lineColour = color.RGBA{R: 0x1f, G: 0x4e, B: 0xa0, A: 0xff}

var loadFont = sync.OnceValues(func() (*truetype.Font, error) {
	return freetype.ParseFont(goregular.TTF)
})

// Series is a list of points, x ascending.
type Series struct {
	X []int
	Y []float64
}

// Add appends one point. Its signature matches the sampling callback
// in nbody.
func (s *Series) Add(x int, y float64) {
	s.X = append(s.X, x)
	s.Y = append(s.Y, y)
}

// Len is the number of points
func (s *Series) Len() int { return len(s.X) }

// yRange gives the limits of the y axis. A flat series is given a
// little height so we do not divide by zero.
func (s *Series) yRange() (lo, hi float64) {
	lo, hi = s.Y[0], s.Y[0]
	for _, y := range s.Y[1:] {
		lo = min(lo, y)
		hi = max(hi, y)
	}
	if hi == lo {
		pad := 1e-9
		if lo != 0 {
			pad = 1e-9 * max(lo, -lo)
		}
		lo, hi = lo-pad, hi+pad
	}
	return lo, hi
}

// line draws from (x0,y0) to (x1,y1) with Bresenham's method.
func line(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		img.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		if e2 := 2 * e; e2 >= dy {
			e += dy
			x0 += sx
		} else {
			e += dx
			y0 += sy
		}
	}
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

// Draw renders the series into a new image.
func Draw(s *Series, title string) (*image.RGBA, error) {
	if s.Len() == 0 {
		return nil, ErrEmpty
	}
	if len(s.X) != len(s.Y) {
		return nil, fmt.Errorf("plot: %d x values but %d y values", len(s.X), len(s.Y))
	}
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	x0, x1 := mLeft, Width-mRight
	y0, y1 := Height-mBottom, mTop // y runs downwards in the image
	line(img, x0, y0, x1, y0, color.Black)
	line(img, x0, y0, x0, y1, color.Black)

	xlo, xhi := s.X[0], s.X[len(s.X)-1]
	xspan := float64(max(xhi-xlo, 1))
	ylo, yhi := s.yRange()
	px := func(x int) int { return x0 + int(float64(x-xlo)/xspan*float64(x1-x0)) }
	py := func(y float64) int { return y0 - int((y-ylo)/(yhi-ylo)*float64(y0-y1)) }

	lastX, lastY := px(s.X[0]), py(s.Y[0])
	img.Set(lastX, lastY, lineColour)
	for i := 1; i < s.Len(); i++ {
		nx, ny := px(s.X[i]), py(s.Y[i])
		line(img, lastX, lastY, nx, ny, lineColour)
		lastX, lastY = nx, ny
	}

	f, err := loadFont()
	if err != nil {
		return nil, fmt.Errorf("plot: loading font: %w", err)
	}
	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(f)
	c.SetFontSize(fontSize)
	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetSrc(image.Black)
	labels := []struct {
		s    string
		x, y int
	}{
		{title, x0, mTop - 10},
		{fmt.Sprintf("%.9f", yhi), 4, y1 + fontSize},
		{fmt.Sprintf("%.9f", ylo), 4, y0},
		{fmt.Sprint(xlo), x0, y0 + 2*fontSize},
		{fmt.Sprint(xhi), x1 - 6*fontSize, y0 + 2*fontSize},
	}
	for _, l := range labels {
		if _, err := c.DrawString(l.s, freetype.Pt(l.x, l.y)); err != nil {
			return nil, fmt.Errorf("plot: label %q: %w", l.s, err)
		}
	}
	return img, nil
}

// Write draws the series and encodes it as PNG.
func Write(w io.Writer, s *Series, title string) error {
	img, err := Draw(s, title)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
