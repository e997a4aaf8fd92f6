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

// dfaState is a state of the forward or backward UTF-8 recognizer.
//
// S1..S7 are working states: the DFA needs more bytes before it can
// decide. accept and the err* states are terminal.
type dfaState uint8

const (
	s1 dfaState = iota
	s2
	s3
	s4
	s5
	s6
	s7

	accept // exactly one well-formed character was consumed

	errLead  // expected a leading byte
	errOvrlg // detected an overlong encoding
	errCont  // expected a continuation byte
	errMiss  // ran out of bytes mid-character
)

// numWorkingStates is the number of rows in the forward transition table.
const numWorkingStates = int(s7) + 1

// isWorking reports whether s still needs more input before it can be
// resolved to accept or an error.
func (s dfaState) isWorking() bool {
	return s < accept
}
