// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bitio implements sequential bit-, nibble- and byte-granular
// access over a caller-owned byte buffer: a front cursor that advances
// as values are written or read, and a back cursor used to reserve and
// later compact variable-length size slots. Reads and writes work in
// the caller's buffer, with three exceptions that allocate: ReadString
// copies its bytes into a new string, WriteUNib32 builds a small
// temporary slice of nibbles, and CompactFrom (and so Finish) builds
// temporary slices of slot values and nibbles.
package bitio

import "errors"

// Forward cursor exhausted the available space (including the part of
// the buffer reserved for not-yet-compacted slots at the back).
var ErrOutOfBounds = errors.New("bitio: out of bounds")

// Back cursor ran into the front cursor (reverse-slot reservation) or
// the start of the buffer (reverse-slot patch, reverse-nibble read).
var ErrOutOfBoundsRev = errors.New("bitio: out of bounds (reverse)")

var ErrOutOfBoundsReadBool = errors.New("bitio: out of bounds reading bool")
var ErrOutOfBoundsReadU4 = errors.New("bitio: out of bounds reading u4")
var ErrOutOfBoundsReadU8 = errors.New("bitio: out of bounds reading u8")
var ErrOutOfBoundsReadRawSlice = errors.New("bitio: out of bounds reading raw slice")

var ErrMalformedUTF8 = errors.New("bitio: malformed utf-8")
var ErrInternalSliceToArrayCast = errors.New("bitio: internal slice-to-array cast failed")

var ErrStrTooLong = errors.New("bitio: string longer than 0xffff bytes")
var ErrItemTooLong = errors.New("bitio: item longer than 0xffff bytes")

// Returned by Finish/CompactFrom when a reverse-nibble region would
// have to be written at or past the front cursor.
var ErrOutOfBoundsRevCompact = errors.New("bitio: out of bounds compacting reverse slots")
