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

package sdlimgui

import (
	"image"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/hexwick/gopher8/hardware/video"
)

// how much the native 64x32 display is scaled by when drawn to the display
// window.
const pixelScaling = 12.0

// screen owns the OpenGL texture the emulated display is drawn with. the
// texture is refreshed from the video framebuffer once per rendered frame.
type screen struct {
	img *SdlImgui

	// texture is recreated on first render rather than updated
	createTexture bool

	texture uint32
	pixels  *image.RGBA
}

// newScreen is the preferred method of initialisation for the screen type.
func newScreen(img *SdlImgui) *screen {
	scr := &screen{
		img:           img,
		createTexture: true,
		pixels:        image.NewRGBA(image.Rect(0, 0, video.Width, video.Height)),
	}

	gl.GenTextures(1, &scr.texture)
	gl.BindTexture(gl.TEXTURE_2D, scr.texture)

	// nearest-neighbour filtering. the display is chunky pixels and should
	// stay that way when scaled
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)

	return scr
}

func (scr *screen) destroy() {
	gl.DeleteTextures(1, &scr.texture)
}

// render copies the video framebuffer into the texture. must be called from
// the #mainthread.
func (scr *screen) render() {
	for y := 0; y < video.Height; y++ {
		for x := 0; x < video.Width; x++ {
			if scr.img.c8.Video.Pixel(x, y) {
				scr.pixels.SetRGBA(x, y, scr.img.cols.PixelOn)
			} else {
				scr.pixels.SetRGBA(x, y, scr.img.cols.PixelOff)
			}
		}
	}

	gl.BindTexture(gl.TEXTURE_2D, scr.texture)

	if scr.createTexture {
		scr.createTexture = false
		gl.TexImage2D(gl.TEXTURE_2D, 0,
			gl.RGBA, int32(scr.pixels.Bounds().Size().X), int32(scr.pixels.Bounds().Size().Y), 0,
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(scr.pixels.Pix))
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0,
			0, 0, int32(scr.pixels.Bounds().Size().X), int32(scr.pixels.Bounds().Size().Y),
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(scr.pixels.Pix))
	}
}

func (scr *screen) scaledWidth() float32 {
	return float32(scr.pixels.Bounds().Size().X) * pixelScaling
}

func (scr *screen) scaledHeight() float32 {
	return float32(scr.pixels.Bounds().Size().Y) * pixelScaling
}
