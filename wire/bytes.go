// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wire

import "code.hybscloud.com/wireweaver/bitio"

// WriteBytes writes b's length as a reverse slot, then b forward,
// unchecked for UTF-8 validity. This is RefVec<u8>'s specialized
// backing: the length-prefixed raw writer used internally by every
// envelope field that carries an opaque, already-serialized payload
// (Call.args, Write.data, ReturnValue.data, ...).
func WriteBytes(w *bitio.Writer, b []byte) error {
	if len(b) > 0xFFFF {
		return bitio.ErrItemTooLong
	}
	if _, err := w.WriteU16Rev(uint16(len(b))); err != nil {
		return err
	}
	return w.WriteRawSlice(b)
}

// ReadBytes reads a length-prefixed raw byte slice, zero-copy.
func ReadBytes(r *bitio.Reader) ([]byte, error) {
	n, err := r.ReadUNib32Rev()
	if err != nil {
		return nil, err
	}
	return r.ReadRawSlice(int(n))
}
