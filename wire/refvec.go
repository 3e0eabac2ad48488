// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wire

import "code.hybscloud.com/wireweaver/bitio"

// RefVec is a lazy, finite, single-pass sequence of T: either a Slice
// built from caller memory for encoding, or a Buf decoding elements one
// at a time from a shared reader as the caller iterates. Its element
// size is UnsizedFinalStructure: the vector itself never opens a
// reverse scope of its own, only a reverse element count; individual
// Unsized elements still open their own scopes as they are decoded.
//
// A Buf-state RefVec is valid only while the reader it was built from
// is not reused for anything else; call Owned to copy it out.
type RefVec[T any] struct {
	items  []T
	reader *bitio.Reader
	decode func(*bitio.Reader) (T, error)
	count  int
	pos    int
	isBuf  bool
	err    error
}

// NewRefVec builds a Slice-state RefVec over caller-owned memory, ready
// for EncodeTo.
func NewRefVec[T any](items []T) RefVec[T] {
	return RefVec[T]{items: items}
}

// DecodeRefVec reads a reverse element count and returns a Buf-state
// RefVec that decodes one element at a time, via decodeElem, as the
// caller calls Next.
func DecodeRefVec[T any](r *bitio.Reader, decodeElem func(*bitio.Reader) (T, error)) (RefVec[T], error) {
	n, err := r.ReadUNib32Rev()
	if err != nil {
		return RefVec[T]{}, err
	}
	return RefVec[T]{reader: r, decode: decodeElem, count: int(n), isBuf: true}, nil
}

// Len returns the element count: len(items) for a Slice, or the
// decoded count for a Buf, regardless of how much has been consumed.
func (v RefVec[T]) Len() int {
	if v.isBuf {
		return v.count
	}
	return len(v.items)
}

// Next advances the iterator, reporting ok=false at end of sequence or
// after the first decode error (query it via Err).
func (v *RefVec[T]) Next() (item T, ok bool) {
	if v.err != nil {
		return item, false
	}
	if v.isBuf {
		if v.pos >= v.count {
			return item, false
		}
		decoded, err := v.decode(v.reader)
		if err != nil {
			v.err = err
			v.pos = v.count
			return item, false
		}
		v.pos++
		return decoded, true
	}
	if v.pos >= len(v.items) {
		return item, false
	}
	item = v.items[v.pos]
	v.pos++
	return item, true
}

// Err returns the first decode error encountered by Next, if any.
func (v *RefVec[T]) Err() error { return v.err }

// Owned decodes every remaining element into a plain slice, detaching
// it from the backing reader.
func (v *RefVec[T]) Owned() ([]T, error) {
	out := make([]T, 0, v.Len()-v.pos)
	for {
		item, ok := v.Next()
		if !ok {
			break
		}
		out = append(out, item)
	}
	return out, v.Err()
}

// EncodeTo writes the element count as a reverse slot (ahead of the
// elements, so a decoder reading the tail before the forward content
// knows how many to expect), then each element via encodeElem. For a
// Buf-state RefVec this drains the underlying iterator exactly once.
func (v RefVec[T]) EncodeTo(w *bitio.Writer, encodeElem func(*bitio.Writer, T) error) error {
	n := v.Len() - v.pos
	if n > 0xFFFF {
		return ErrVecTooLong
	}
	if _, err := w.WriteU16Rev(uint16(n)); err != nil {
		return err
	}
	if !v.isBuf {
		for _, item := range v.items[v.pos:] {
			if err := encodeElem(w, item); err != nil {
				return err
			}
		}
		return nil
	}
	for i := 0; i < n; i++ {
		item, ok := v.Next()
		if !ok {
			return v.Err()
		}
		if err := encodeElem(w, item); err != nil {
			return err
		}
	}
	return nil
}
