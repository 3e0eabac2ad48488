// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wire

import "code.hybscloud.com/wireweaver/bitio"

// Result carries a synthesized is-ok flag ahead of whichever of its two
// payloads applies.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

func Ok[T, E any](v T) Result[T, E]  { return Result[T, E]{value: v, ok: true} }
func Err[T, E any](e E) Result[T, E] { return Result[T, E]{err: e, ok: false} }

func (r Result[T, E]) IsOk() bool { return r.ok }

// Unwrap returns the ok value and whether it is present.
func (r Result[T, E]) Unwrap() (T, bool) { return r.value, r.ok }

// UnwrapErr returns the error value and whether it is present.
func (r Result[T, E]) UnwrapErr() (E, bool) { return r.err, !r.ok }

// WriteResult writes the is-ok flag, then the ok or error payload.
func WriteResult[T, E any](w *bitio.Writer, res Result[T, E], encodeOk func(*bitio.Writer, T) error, encodeErr func(*bitio.Writer, E) error) error {
	if err := w.WriteBool(res.ok); err != nil {
		return err
	}
	if res.ok {
		return encodeOk(w, res.value)
	}
	return encodeErr(w, res.err)
}

// ReadResult reads the is-ok flag and the corresponding payload. Unlike
// Option, there is no forward-compatible default for a missing Result
// field: the error propagates.
func ReadResult[T, E any](r *bitio.Reader, decodeOk func(*bitio.Reader) (T, error), decodeErr func(*bitio.Reader) (E, error)) (Result[T, E], error) {
	ok, err := r.ReadBool()
	if err != nil {
		return Result[T, E]{}, err
	}
	if ok {
		v, err := decodeOk(r)
		if err != nil {
			return Result[T, E]{}, err
		}
		return Ok[T, E](v), nil
	}
	e, err := decodeErr(r)
	if err != nil {
		return Result[T, E]{}, err
	}
	return Err[T, E](e), nil
}
