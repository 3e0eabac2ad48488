// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rpc

import (
	"code.hybscloud.com/wireweaver/bitio"
	"code.hybscloud.com/wireweaver/wire"
)

// Request is sent from client to server, addressing a resource and
// asking the dispatcher to perform an action on it. It is Unsized (not
// a final structure): a top-level encode/decode wraps it in its own
// reverse-size scope.
type Request struct {
	// Seq starts from 1 and wraps back to 1, letting a client map
	// responses back to requests. 0 means no answer is expected.
	Seq      uint16
	PathKind PathKind
	Kind     RequestKind
}

// NewRequest builds a Request addressed by full path from the API root.
func NewRequest(seq uint16, path []uint32, kind RequestKind) Request {
	return Request{Seq: seq, PathKind: Absolute{Path: path}, Kind: kind}
}

func (r Request) marshal(w *bitio.Writer) error {
	if err := w.WriteU16(r.Seq); err != nil {
		return err
	}
	if err := MarshalPathKind(w, r.PathKind); err != nil {
		return err
	}
	return MarshalRequestKind(w, r.Kind)
}

// MarshalWire encodes r as a top-level, size-prefixed Request.
func (r Request) MarshalWire(w *bitio.Writer) error {
	return wire.WriteUnsizedScope(w, func() error { return r.marshal(w) })
}

func unmarshalRequest(r *bitio.Reader) (Request, error) {
	var req Request
	var err error
	if req.Seq, err = r.ReadU16(); err != nil {
		return Request{}, err
	}
	if req.PathKind, err = UnmarshalPathKind(r); err != nil {
		return Request{}, err
	}
	if req.Kind, err = UnmarshalRequestKind(r); err != nil {
		return Request{}, err
	}
	return req, nil
}

// UnmarshalRequest decodes a top-level, size-prefixed Request.
func UnmarshalRequest(r *bitio.Reader) (Request, error) {
	return wire.ReadUnsizedScope(r, unmarshalRequest)
}

// Error is the failure counterpart to EventKind, carried as the Err
// arm of an Event's wire.Result.
type Error struct {
	// ErrSeq uniquely identifies this error's call site, letting a
	// client map a wire error back to the source line that raised it.
	ErrSeq uint32
	Kind   ErrorKind
}

// NewError builds an Error of the given kind.
func NewError(errSeq uint32, kind ErrorKind) Error {
	return Error{ErrSeq: errSeq, Kind: kind}
}

func NotSupported(errSeq uint32) Error   { return Error{ErrSeq: errSeq, Kind: OperationNotSupported{}} }
func BadPathError(errSeq uint32) Error   { return Error{ErrSeq: errSeq, Kind: BadPath{}} }
func ResponseSerFailedError(errSeq uint32) Error {
	return Error{ErrSeq: errSeq, Kind: ResponseSerFailed{}}
}

func (e Error) marshal(w *bitio.Writer) error {
	if err := w.WriteU32(e.ErrSeq); err != nil {
		return err
	}
	return MarshalErrorKind(w, e.Kind)
}

// MarshalWire encodes e as a top-level, size-prefixed Error.
func (e Error) MarshalWire(w *bitio.Writer) error {
	return wire.WriteUnsizedScope(w, func() error { return e.marshal(w) })
}

func unmarshalError(r *bitio.Reader) (Error, error) {
	var e Error
	var err error
	if e.ErrSeq, err = r.ReadU32(); err != nil {
		return Error{}, err
	}
	if e.Kind, err = UnmarshalErrorKind(r); err != nil {
		return Error{}, err
	}
	return e, nil
}

// UnmarshalError decodes a top-level, size-prefixed Error.
func UnmarshalError(r *bitio.Reader) (Error, error) {
	return wire.ReadUnsizedScope(r, unmarshalError)
}

// Event is sent from server to client: the outcome of a dispatched
// Request, or an unsolicited stream/property update (Seq == 0). It is
// Unsized: a top-level encode/decode wraps it in its own reverse-size
// scope.
type Event struct {
	Seq    uint16
	Result wire.Result[EventKind, Error]
}

// NewOkEvent builds a successful Event.
func NewOkEvent(seq uint16, kind EventKind) Event {
	return Event{Seq: seq, Result: wire.Ok[EventKind, Error](kind)}
}

// NewErrEvent builds a failed Event.
func NewErrEvent(seq uint16, err Error) Event {
	return Event{Seq: seq, Result: wire.Err[EventKind, Error](err)}
}

func (e Event) marshal(w *bitio.Writer) error {
	if err := w.WriteU16(e.Seq); err != nil {
		return err
	}
	return wire.WriteResult(w, e.Result, MarshalEventKind, func(w *bitio.Writer, errArm Error) error { return errArm.MarshalWire(w) })
}

// MarshalWire encodes e as a top-level, size-prefixed Event.
func (e Event) MarshalWire(w *bitio.Writer) error {
	return wire.WriteUnsizedScope(w, func() error { return e.marshal(w) })
}

func unmarshalEvent(r *bitio.Reader) (Event, error) {
	var e Event
	var err error
	if e.Seq, err = r.ReadU16(); err != nil {
		return Event{}, err
	}
	if e.Result, err = wire.ReadResult(r, UnmarshalEventKind, UnmarshalError); err != nil {
		return Event{}, err
	}
	return e, nil
}

// UnmarshalEvent decodes a top-level, size-prefixed Event.
func UnmarshalEvent(r *bitio.Reader) (Event, error) {
	return wire.ReadUnsizedScope(r, unmarshalEvent)
}
