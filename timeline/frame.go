// seehuhn.de/go/floodfill - scanline flood fill for pixel buffers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package timeline

import (
	"errors"
	"fmt"
	"image/color"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/floodfill"
)

// ErrNoTarget is returned when a frame which draws has no target grid.
var ErrNoTarget = errors.New("frame without target")

// Frame is one of Empty, Layered, Fill, *Marker or *Texture.
// Frames are shown and hidden using [Apply].
type Frame interface {
	isFrame()
}

// Empty shows nothing.  It is used to clear the picture at the end of a
// timeline.
type Empty struct{}

func (Empty) isFrame() {}

// Layered shows or hides several frames at once.
type Layered struct {
	Frames []Frame
}

func (Layered) isFrame() {}

// Fill paints a precomputed fill region.
// Showing the frame writes Color at the pixels of Mask, hiding writes
// Restore.  Target must have the size of the mask.
type Fill struct {
	Target  *floodfill.Grid[color.NRGBA]
	Mask    *floodfill.Mask
	Color   color.NRGBA
	Restore color.NRGBA
}

func (Fill) isFrame() {}

// Marker paints a filled disc.  The pixels under the disc are saved when
// the marker is shown and put back when it is hidden.
type Marker struct {
	Target *floodfill.Grid[color.NRGBA]
	Center vec.Vec2 // in pixel coordinates
	Radius float64
	Color  color.NRGBA

	saved []savedPixel
}

func (*Marker) isFrame() {}

type savedPixel struct {
	idx int
	c   color.NRGBA
}

// Texture replaces the contents of Target by the contents of Source.
// Hiding the frame restores the previous contents of Target.
type Texture struct {
	Target *floodfill.Grid[color.NRGBA]
	Source *floodfill.Grid[color.NRGBA]

	saved []color.NRGBA
}

func (*Texture) isFrame() {}

// Apply shows the frame if visible is true, and hides it otherwise.
// Showing a frame which is already shown, or hiding a frame which is not
// shown, has no effect.
func Apply(f Frame, visible bool) error {
	switch f := f.(type) {
	case Empty:
		return nil

	case Layered:
		if visible {
			for _, child := range f.Frames {
				if err := Apply(child, true); err != nil {
					return err
				}
			}
			return nil
		}
		// hide in reverse, so that overlapping layers restore correctly
		for i := len(f.Frames) - 1; i >= 0; i-- {
			if err := Apply(f.Frames[i], false); err != nil {
				return err
			}
		}
		return nil

	case Fill:
		if f.Target == nil || f.Mask == nil {
			return ErrNoTarget
		}
		c := f.Restore
		if visible {
			c = f.Color
		}
		return floodfill.ApplyMask(f.Mask, f.Target, c)

	case *Marker:
		if f.Target == nil {
			return ErrNoTarget
		}
		if visible {
			f.show()
		} else {
			f.hide()
		}
		return nil

	case *Texture:
		if f.Target == nil || f.Source == nil {
			return ErrNoTarget
		}
		if visible {
			return f.show()
		}
		f.hide()
		return nil
	}
	return fmt.Errorf("unknown frame type %T", f)
}

func (m *Marker) show() {
	if m.saved != nil {
		return
	}
	g := m.Target
	p := floodfill.NewPainter(rect.Rect{URx: float64(g.Width), URy: float64(g.Height)})
	m.saved = []savedPixel{}
	p.FillNonZero(floodfill.Circle(m.Center, m.Radius, true), func(y, xMin, xMax int) {
		for x := xMin; x < xMax; x++ {
			idx := g.Index(x, y)
			m.saved = append(m.saved, savedPixel{idx: idx, c: g.Pix[idx]})
			g.Pix[idx] = m.Color
		}
	})
}

func (m *Marker) hide() {
	for i := len(m.saved) - 1; i >= 0; i-- {
		s := m.saved[i]
		m.Target.Pix[s.idx] = s.c
	}
	m.saved = nil
}

func (t *Texture) show() error {
	if t.saved != nil {
		return nil
	}
	if !t.Target.SameSize(t.Source) {
		return fmt.Errorf("texture %dx%d on %dx%d target: %w",
			t.Source.Width, t.Source.Height, t.Target.Width, t.Target.Height,
			floodfill.ErrDimensionMismatch)
	}
	t.saved = append([]color.NRGBA{}, t.Target.Pix...)
	copy(t.Target.Pix, t.Source.Pix)
	return nil
}

func (t *Texture) hide() {
	if t.saved == nil {
		return
	}
	copy(t.Target.Pix, t.saved)
	t.saved = nil
}
