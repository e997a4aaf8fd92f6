// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package utf8

import "github.com/efreet-labs/utf8codec/ints"

// uncheckedIter walks character boundaries without verifying that the
// input is well-formed UTF-8. Every method is undefined behavior if
// that precondition is violated; it exists for callers that have
// already validated their input and want to avoid re-walking the DFA.
type uncheckedIter struct{}

// Unchecked is the namespace for unchecked cursor movement.
var Unchecked uncheckedIter

// Next treats data[cursor] as a valid leading byte and returns the
// offset of the following character.
func (uncheckedIter) Next(data []byte, cursor int) int {
	return cursor + charLengthFromLeading(data[cursor])
}

// Prev decrements cursor past any continuation bytes until it lands on
// a leading byte, then returns that offset.
func (uncheckedIter) Prev(data []byte, cursor int) int {
	cursor--
	for cursor > 0 && isContinuation(data[cursor]) {
		cursor--
	}
	return cursor
}

// Advance applies Next (n > 0) or Prev (n < 0) n times, stopping early
// once a forward step reaches len(data), and clamps the result to
// [0, len(data)].
func (uncheckedIter) Advance(data []byte, cursor, n int) int {
	for ; n > 0 && cursor < len(data); n-- {
		cursor = Unchecked.Next(data, cursor)
	}
	for ; n < 0; n++ {
		cursor = Unchecked.Prev(data, cursor)
	}
	return ints.Clamp(cursor, 0, len(data))
}

// charLengthFromLeading returns the byte length of the character a
// valid leading byte begins: 1 for ASCII, otherwise derived from the
// DFA state it enters (2 for s1, 3 for s2..s4, 4 for s5..s7).
func charLengthFromLeading(b byte) int {
	if isASCII(b) {
		return 1
	}
	switch leadingOf(b).next {
	case s1:
		return 2
	case s2, s3, s4:
		return 3
	default:
		return 4
	}
}

// checkedIter walks character boundaries via the DFA, surfacing every
// RFC 3629 violation it encounters instead of assuming well-formed
// input.
type checkedIter struct{}

// Checked is the namespace for checked cursor movement.
var Checked checkedIter

// Next steps cursor forward over exactly one character, or returns the
// mapped error at the offset where the DFA left its accepting state.
// bound is the exclusive upper limit, normally len(data).
func (checkedIter) Next(data []byte, cursor, bound int) (int, error) {
	state, next := advanceForwardOnce(data, cursor, bound)
	if state != accept {
		return cursor, errorAt(state, next-1)
	}
	return next, nil
}

// Prev steps cursor backward over exactly one character and returns
// the offset of its leading byte, or an error. lowerBound is the
// inclusive lower limit of the valid range, normally 0.
//
// advanceBackwardOnce expects cursor to point at the terminal byte of
// the character to step over, so Prev first decrements. On accept the
// primitive lands one byte before the leading byte of the character it
// consumed, the terminal byte of whatever precedes it by byte
// contiguity, so Prev adds 1 back to land on that leading byte itself,
// keeping Prev(Next(cursor, bound), lowerBound) == cursor. The same +1
// recovers the offset of the byte that actually failed when the walk
// errors, since advanceBackwardOnce steps its cursor back once after
// every byte it inspects, including the byte that fails.
func (checkedIter) Prev(data []byte, cursor, lowerBound int) (int, error) {
	state, landed := advanceBackwardOnce(data, cursor-1, lowerBound-1)
	if state != accept {
		return cursor, errorAt(state, landed+1)
	}
	return landed + 1, nil
}

// Advance applies Next (n > 0, bounded above by hi) or Prev (n < 0,
// bounded below by lo) n times or until the cursor reaches that bound,
// whichever comes first, stopping and returning the first error
// encountered, if any.
func (checkedIter) Advance(data []byte, cursor, n, lo, hi int) (int, error) {
	var err error
	for ; n > 0 && cursor != hi; n-- {
		cursor, err = Checked.Next(data, cursor, hi)
		if err != nil {
			return cursor, err
		}
	}
	for ; n < 0 && cursor != lo; n++ {
		cursor, err = Checked.Prev(data, cursor, lo)
		if err != nil {
			return cursor, err
		}
	}
	return cursor, nil
}
