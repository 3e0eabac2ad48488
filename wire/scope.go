// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wire

import "code.hybscloud.com/wireweaver/bitio"

// WriteUnsizedScope reserves a reverse size slot, runs fn to write the
// Unsized value's forward bytes, then patches the slot with the number
// of bytes fn wrote. The value starts and ends on a byte boundary, the
// same boundaries Reader.Split uses on the way back. It does not
// compact: compaction of every
// outstanding reverse slot, at every nesting depth, happens exactly
// once, when the top-level Writer.Finish runs, since all of them share
// one back region.
func WriteUnsizedScope(w *bitio.Writer, fn func() error) error {
	pos, err := w.WriteU16Rev(0)
	if err != nil {
		return err
	}
	w.AlignByte()
	start := w.BytePos()
	if err := fn(); err != nil {
		return err
	}
	w.AlignByte()
	size := w.BytePos() - start
	return w.PatchU16Rev(pos, uint16(size))
}

// ReadUnsizedScope reads a tail size, splits a sub-reader of exactly
// that many bytes, and decodes T from it. Trailing bytes the sub-reader
// does not consume are skipped (forward compatibility: an older decoder
// reading a newer, larger encoding of T still lands back in the right
// place for whatever follows).
func ReadUnsizedScope[T any](r *bitio.Reader, decode func(*bitio.Reader) (T, error)) (T, error) {
	var zero T
	n, err := r.ReadUNib32Rev()
	if err != nil {
		return zero, err
	}
	sub, err := r.Split(int(n))
	if err != nil {
		return zero, err
	}
	return decode(sub)
}
