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

import "fmt"

// Kind identifies which RFC 3629 rule a byte sequence violated.
type Kind int

const (
	// LeadingByte means a byte that should begin a character did not:
	// a stray continuation byte, an illegal byte, or a backward walk
	// that ran off the start of the range without finding a lead.
	LeadingByte Kind = iota + 1
	// OverlongEncoded means a well-formed sequence shape encodes a code
	// point that a shorter sequence could have encoded.
	OverlongEncoded
	// ContinuationByte means a continuation byte was expected and a
	// different class of byte appeared, including the case where a
	// 3-byte sequence starting with 0xED encodes a surrogate.
	ContinuationByte
	// MissingByte means the input was exhausted mid-character.
	MissingByte
	// TrailingBytes means DecodeOne decoded exactly one character but
	// the input range had bytes left over.
	TrailingBytes
	// OutOfRange means a raw integer exceeded the maximum code point,
	// 0x10FFFF, during validation.
	OutOfRange
	// Surrogate means a raw integer fell in the UTF-16 surrogate range
	// [0xD800, 0xDFFF] during validation.
	Surrogate
)

// String renders the stable, human-readable message for k.
func (k Kind) String() string {
	switch k {
	case LeadingByte:
		return "expected a leading byte"
	case OverlongEncoded:
		return "detected overlong encoding"
	case ContinuationByte:
		return "expected a continuation byte"
	case MissingByte:
		return "expected more bytes"
	case TrailingBytes:
		return "input contained bytes beyond one character"
	case OutOfRange:
		return "code point out of range"
	case Surrogate:
		return "code point is a UTF-16 surrogate"
	default:
		return "unknown UTF-8 error"
	}
}

// Error reports a single RFC 3629 violation: which rule was broken and
// the byte offset, as an index into the data slice the caller passed
// in, at which the DFA left its accepting state.
type Error struct {
	Kind   Kind
	Offset int
}

// Error implements error.
func (e *Error) Error() string {
	return fmt.Sprintf("utf8: %s at offset %d", e.Kind, e.Offset)
}

// Is lets errors.Is(err, &Error{Kind: OverlongEncoded}) (etc.) match
// any *Error with that Kind, without the caller needing to know or
// compare the Offset.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e.Kind == t.Kind
}

// errorAt builds the *Error a caller sees when the DFA ends in a
// non-accept state at the given offset.
func errorAt(state dfaState, offset int) *Error {
	return &Error{Kind: endingStateToError(state), Offset: offset}
}
