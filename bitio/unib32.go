// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bitio

// UNib32 nibbles are `c NNN`: a continuation bit followed by the next
// three most-significant bits of the value, most-significant nibble
// first. The last nibble (c=0) carries the least-significant bits. One
// to eleven nibbles encode any uint32.

// unib32NibbleCount returns how many 4-bit groups v's UNib32 form needs.
func unib32NibbleCount(v uint32) int {
	n := 1
	for v>>uint(3*n) != 0 {
		n++
	}
	return n
}

// unib32Nibbles returns v's UNib32 nibbles (each in 0..15, continuation
// bit included), most-significant group first.
func unib32Nibbles(v uint32) []byte {
	n := unib32NibbleCount(v)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		shift := uint(3 * (n - 1 - i))
		group := byte(v>>shift) & 0x7
		if i != n-1 {
			group |= 0x8
		}
		out[i] = group
	}
	return out
}

// WriteUNib32 writes v at the front cursor, aligned to a nibble boundary.
func (w *Writer) WriteUNib32(v uint32) error {
	w.AlignNibble()
	for _, nb := range unib32Nibbles(v) {
		if err := w.WriteBits(4, uint32(nb)); err != nil {
			return err
		}
	}
	return nil
}

// ReadUNib32 reads a forward UNib32 at the front cursor, aligned to a
// nibble boundary first.
func (r *Reader) ReadUNib32() (uint32, error) {
	r.AlignNibble()
	var result uint32
	for {
		nb, err := r.ReadBits(4)
		if err != nil {
			return 0, err
		}
		result = (result << 3) | (nb & 0x7)
		if nb&0x8 == 0 {
			return result, nil
		}
	}
}

// ReadUNib32Rev reads one UNib32 from the shared tail cursor: a flat
// nibble stream packed two-per-byte from the end of the buffer towards
// the front, written by Writer.CompactFrom in the same order values
// were reserved. Every count, length or patched size produced by the
// reverse-slot mechanism is read back through this single primitive.
func (r *Reader) ReadUNib32Rev() (uint32, error) {
	var result uint32
	for {
		nb, err := r.tail.readNibble(r.buf)
		if err != nil {
			return 0, err
		}
		result = (result << 3) | (uint32(nb) & 0x7)
		if nb&0x8 == 0 {
			return result, nil
		}
	}
}
