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

package performance

// CalcFPS takes the number of frames and the duration in which those frames
// were generated, and returns the frames per second and the accuracy of that
// value as a percentage of the requested frame rate.
//
// A requested rate of zero or less means the emulation was running uncapped
// and accuracy has no meaning. Zero is returned in that instance.
func CalcFPS(numFrames int, duration float64, requestedFPS int) (fps float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	fps = float64(numFrames) / duration
	if requestedFPS > 0 {
		accuracy = 100 * fps / float64(requestedFPS)
	}
	return fps, accuracy
}
