//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package types

// PieceType enumerates the six chess piece kinds the oracle answers
// queries for. Values are bit-exact to the encoding the oracle's external
// interface is specified against and must not be renumbered: callers index
// flat attack tables with them directly.
type PieceType uint8

const (
	King     PieceType = 0
	Queen    PieceType = 1
	Knight   PieceType = 2
	Bishop   PieceType = 3
	Rook     PieceType = 4
	Pawn     PieceType = 5
	PtNone   PieceType = 6
	PtLength PieceType = 6
)

// IsValid reports whether pt is one of the six piece kinds.
func (pt PieceType) IsValid() bool {
	return pt < PtNone
}

// IsSlider reports whether pt slides along rays (Queen, Bishop, Rook), as
// opposed to leaping directly to its target squares (King, Knight, Pawn).
func (pt PieceType) IsSlider() bool {
	switch pt {
	case Queen, Bishop, Rook:
		return true
	default:
		return false
	}
}

var pieceTypeToString = [PtLength]string{"King", "Queen", "Knight", "Bishop", "Rook", "Pawn"}

// String returns the piece kind's name, or "-" if pt is not valid.
func (pt PieceType) String() string {
	if !pt.IsValid() {
		return "-"
	}
	return pieceTypeToString[pt]
}

var pieceTypeToChar = "KQNBRP"

// Char returns the piece kind's single-letter algebraic symbol, or "-" if
// pt is not valid.
func (pt PieceType) Char() string {
	if !pt.IsValid() {
		return "-"
	}
	return string(pieceTypeToChar[pt])
}
