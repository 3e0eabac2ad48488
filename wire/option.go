// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wire

import "code.hybscloud.com/wireweaver/bitio"

// Option carries a synthesized is-some flag ahead of its payload.
type Option[T any] struct {
	value T
	valid bool
}

func Some[T any](v T) Option[T] { return Option[T]{value: v, valid: true} }
func None[T any]() Option[T]    { return Option[T]{} }

func (o Option[T]) IsSome() bool { return o.valid }

// Get returns the payload and whether it was present.
func (o Option[T]) Get() (T, bool) { return o.value, o.valid }

// WriteOption writes the is-some flag, then the payload if present.
func WriteOption[T any](w *bitio.Writer, o Option[T], encode func(*bitio.Writer, T) error) error {
	if err := w.WriteBool(o.valid); err != nil {
		return err
	}
	if !o.valid {
		return nil
	}
	return encode(w, o.value)
}

// ReadOption reads the is-some flag and, if set, the payload. A reader
// exhausted before the flag is reachable at all (an old buffer missing
// a field a new decoder added) yields None rather than an error, per
// the forward-compatibility default.
func ReadOption[T any](r *bitio.Reader, decode func(*bitio.Reader) (T, error)) (Option[T], error) {
	some, err := r.ReadBool()
	if err != nil {
		return None[T](), nil
	}
	if !some {
		return None[T](), nil
	}
	v, err := decode(r)
	if err != nil {
		return Option[T]{}, err
	}
	return Some(v), nil
}
