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

// Package timeline shows a sequence of frames, such as precomputed fills,
// as a clock value advances.
//
// The clock is supplied by the caller, for example the playback position
// of an audio track.  At any time at most one cue is visible: the last
// cue whose time is not after the clock.
package timeline

import (
	"cmp"
	"fmt"
	"slices"
	"sort"

	"seehuhn.de/go/floodfill"
)

// Cue schedules a frame.
type Cue struct {
	At    float64 // clock value, typically seconds, at which the frame is shown
	Frame Frame
}

// Timeline is a list of cues, ordered by time.
//
// A Timeline is not safe for concurrent use.
type Timeline struct {
	cues    []Cue
	current int // index of the visible cue, or -1
}

// New returns a timeline holding the given cues.  Cues with equal
// times keep their relative order.  Initially no cue is visible.
func New(cues ...Cue) *Timeline {
	sorted := slices.Clone(cues)
	slices.SortStableFunc(sorted, func(a, b Cue) int {
		return cmp.Compare(a.At, b.At)
	})
	return &Timeline{cues: sorted, current: -1}
}

// Len returns the number of cues.
func (t *Timeline) Len() int {
	return len(t.cues)
}

// Current returns the visible cue.
func (t *Timeline) Current() (Cue, bool) {
	if t.current < 0 {
		return Cue{}, false
	}
	return t.cues[t.current], true
}

// Seek makes the last cue with At <= clock visible.  If this is not
// the cue which is currently visible, the current cue is hidden first.
// Cues skipped over are never shown.
func (t *Timeline) Seek(clock float64) error {
	next := sort.Search(len(t.cues), func(i int) bool {
		return t.cues[i].At > clock
	}) - 1
	if next == t.current {
		return nil
	}

	if err := t.hideCurrent(); err != nil {
		return err
	}
	if next < 0 {
		return nil
	}

	if err := Apply(t.cues[next].Frame, true); err != nil {
		return fmt.Errorf("cue %d at %g: %w", next, t.cues[next].At, err)
	}
	t.current = next
	floodfill.Logger().Debug("timeline cue", "index", next, "at", t.cues[next].At)
	return nil
}

// Reset hides the visible cue and rewinds the timeline.
func (t *Timeline) Reset() error {
	return t.hideCurrent()
}

func (t *Timeline) hideCurrent() error {
	if t.current < 0 {
		return nil
	}
	cur := t.current
	t.current = -1
	if err := Apply(t.cues[cur].Frame, false); err != nil {
		return fmt.Errorf("cue %d at %g: %w", cur, t.cues[cur].At, err)
	}
	return nil
}
