// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wire

import "code.hybscloud.com/wireweaver/bitio"

// Marshaler is satisfied by every wire-encodable type in this module.
// ElementSize reports which of the four shapes (Sized, SelfDescribing,
// Unsized, UnsizedFinalStructure) the type encodes as, so Write can
// decide whether MarshalWire's bytes need a reverse-size scope wrapped
// around them or stand on their own.
type Marshaler interface {
	MarshalWire(w *bitio.Writer) error
	ElementSize() ElementSize
}

// Write encodes v onto w. If v is Unsized, Write opens the reverse-size
// scope v's bytes need; Sized, SelfDescribing and UnsizedFinalStructure
// values are written as-is, since they either carry a fixed width the
// caller already accounts for, carry their own size inline (UNib32), or
// are meant to share whatever scope their parent already opened.
func Write[T Marshaler](w *bitio.Writer, v T) error {
	if v.ElementSize().IsUnsized() {
		return WriteUnsizedScope(w, func() error { return v.MarshalWire(w) })
	}
	return v.MarshalWire(w)
}

// Read decodes a T via unmarshal, mirroring the framing Write chose for
// it: size must be the ElementSize the encoder used (a zero T's
// ElementSize() method, typically), since Go generics cannot express
// "however T itself reports its size" as a constraint on a bare decode
// function. An Unsized T gets a matching reverse-size scope opened
// around unmarshal; every other shape reads directly off r.
func Read[T any](r *bitio.Reader, size ElementSize, unmarshal func(*bitio.Reader) (T, error)) (T, error) {
	if size.IsUnsized() {
		return ReadUnsizedScope(r, unmarshal)
	}
	return unmarshal(r)
}
