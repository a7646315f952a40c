/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

import "fmt"

// Direction is a set of constants for moving squares within a Bitboard by
// one step. Diagonal and "knight-ish" directions are sums of the
// cardinal ones.
type Direction int8

// Cardinal, diagonal and knight-leap directions. North is toward rank 8,
// East is toward file h.
const (
	North Direction = 8
	East  Direction = 1
	South Direction = -North
	West  Direction = -East

	Northeast Direction = North + East
	Southeast Direction = South + East
	Southwest Direction = South + West
	Northwest Direction = North + West

	NorthNorthEast Direction = North + North + East
	NorthNorthWest Direction = North + North + West
	NorthEastEast  Direction = North + East + East
	NorthWestWest  Direction = North + West + West
	SouthSouthEast Direction = South + South + East
	SouthSouthWest Direction = South + South + West
	SouthEastEast  Direction = South + East + East
	SouthWestWest  Direction = South + West + West
)

// Directions lists the 8 cardinal/diagonal directions used by sliders and
// the king.
var Directions = [8]Direction{North, East, South, West, Northeast, Southeast, Southwest, Northwest}

// KnightDirections lists the 8 knight-leap directions.
var KnightDirections = [8]Direction{
	NorthNorthEast, NorthNorthWest, NorthEastEast, NorthWestWest,
	SouthSouthEast, SouthSouthWest, SouthEastEast, SouthWestWest,
}

// String returns a short mnemonic for the direction (e.g. "N", "NE", "NNE").
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	case Northeast:
		return "NE"
	case Southeast:
		return "SE"
	case Southwest:
		return "SW"
	case Northwest:
		return "NW"
	case NorthNorthEast:
		return "NNE"
	case NorthNorthWest:
		return "NNW"
	case NorthEastEast:
		return "NEE"
	case NorthWestWest:
		return "NWW"
	case SouthSouthEast:
		return "SSE"
	case SouthSouthWest:
		return "SSW"
	case SouthEastEast:
		return "SEE"
	case SouthWestWest:
		return "SWW"
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
}
