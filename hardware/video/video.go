// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package video

import "github.com/hexwick/gopher8/environment"

// Width and Height of the display in pixels.
const (
	Width  = 64
	Height = 32
)

// Video is the 64x32 1bit display. It is the single source of truth for the
// screen: there is no double buffering, renderers read the same pixels the
// draw instruction mutates.
type Video struct {
	env *environment.Environment

	pixels [Height][Width]bool
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo(env *environment.Environment) *Video {
	return &Video{env: env}
}

// Reset the display to all pixels off.
func (vid *Video) Reset() {
	vid.Clear()
}

// Clear every pixel.
func (vid *Video) Clear() {
	for y := range vid.pixels {
		for x := range vid.pixels[y] {
			vid.pixels[y][x] = false
		}
	}
}

// Pixel returns the state of the pixel at the coordinate. Coordinates
// outside the display read as off.
func (vid *Video) Pixel(x int, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return vid.pixels[y][x]
}

// DrawSprite XORs a sprite of n rows onto the display, one byte per row,
// most significant bit leftmost. Rows are fetched one at a time through the
// read function; rows that would fall below the display are clipped and
// never fetched.
//
// The start position wraps around the display but the sprite body does not:
// pixels past the right edge or the bottom edge are clipped. Returns true if
// any sprite bit was drawn over an already lit pixel.
func (vid *Video) DrawSprite(x uint8, y uint8, n uint8, read func(row uint8) (uint8, error)) (bool, error) {
	px := int(x) % Width
	py := int(y) % Height

	collision := false

	for r := 0; r < int(n); r++ {
		if py+r >= Height {
			break
		}

		b, err := read(uint8(r))
		if err != nil {
			return collision, err
		}

		for c := 0; c < 8; c++ {
			if px+c >= Width {
				break
			}
			if b&(0x80>>c) == 0 {
				continue
			}

			p := &vid.pixels[py+r][px+c]
			if *p {
				collision = true
			}
			*p = !*p
		}
	}

	return collision, nil
}
