// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rpc

import "code.hybscloud.com/wireweaver/wire"

// cloneBytes and cloneU32s detach a decoded slice from the reader's
// backing buffer: every byte slice this package hands back from
// Unmarshal* is a zero-copy view, so a caller that wants to retain it
// past the buffer's lifetime (e.g. queuing it for another goroutine)
// must copy it out first. UNib32 path slices are already decoded into
// fresh slices; Owned copies them too, so the result shares nothing
// with the decoded value.
func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

func cloneU32s(s []uint32) []uint32 {
	if s == nil {
		return nil
	}
	out := make([]uint32, len(s))
	copy(out, s)
	return out
}

// Owned returns a deep copy of p, detached from whatever buffer it was
// decoded from.
func (p Absolute) Owned() Absolute {
	return Absolute{Path: cloneU32s(p.Path)}
}

func (p GlobalCompact) Owned() GlobalCompact {
	return GlobalCompact{GID: p.GID, PathFromTrait: cloneU32s(p.PathFromTrait)}
}

func (p GlobalFull) Owned() GlobalFull {
	return GlobalFull{GID: p.GID.Owned(), PathFromTrait: cloneU32s(p.PathFromTrait)}
}

// OwnedPathKind returns a deep copy of p, detached from its backing
// buffer. p must be one of this package's concrete PathKind variants.
func OwnedPathKind(p PathKind) PathKind {
	switch v := p.(type) {
	case Absolute:
		return v.Owned()
	case GlobalCompact:
		return v.Owned()
	case GlobalFull:
		return v.Owned()
	default:
		return p
	}
}

func (k Call) Owned() Call   { return Call{Args: cloneBytes(k.Args)} }
func (k Write) Owned() Write { return Write{Data: cloneBytes(k.Data)} }

// OwnedRequestKind returns a deep copy of k, detached from its backing
// buffer.
func OwnedRequestKind(k RequestKind) RequestKind {
	switch v := k.(type) {
	case Call:
		return v.Owned()
	case Write:
		return v.Owned()
	default:
		return k
	}
}

// Owned returns a deep copy of req, detached from the buffer it was
// decoded from — the Go analogue of the original's make_owned.
func (req Request) Owned() Request {
	return Request{
		Seq:      req.Seq,
		PathKind: OwnedPathKind(req.PathKind),
		Kind:     OwnedRequestKind(req.Kind),
	}
}

func (k ReturnValue) Owned() ReturnValue { return ReturnValue{Data: cloneBytes(k.Data)} }
func (k ReadValue) Owned() ReadValue     { return ReadValue{Data: cloneBytes(k.Data)} }
func (k StreamData) Owned() StreamData {
	return StreamData{Path: cloneU32s(k.Path), Data: cloneBytes(k.Data)}
}
func (k EventStreamSideband) Owned() EventStreamSideband {
	return EventStreamSideband{Path: cloneU32s(k.Path), SidebandEvent: k.SidebandEvent}
}
func (k Subscribed) Owned() Subscribed     { return Subscribed{Path: cloneU32s(k.Path)} }
func (k Unsubscribed) Owned() Unsubscribed { return Unsubscribed{Path: cloneU32s(k.Path)} }
func (k EventIntrospect) Owned() EventIntrospect {
	return EventIntrospect{BytesChunk: cloneBytes(k.BytesChunk)}
}

// OwnedEventKind returns a deep copy of k, detached from its backing
// buffer.
func OwnedEventKind(k EventKind) EventKind {
	switch v := k.(type) {
	case ReturnValue:
		return v.Owned()
	case ReadValue:
		return v.Owned()
	case StreamData:
		return v.Owned()
	case EventStreamSideband:
		return v.Owned()
	case Subscribed:
		return v.Owned()
	case Unsubscribed:
		return v.Owned()
	case EventIntrospect:
		return v.Owned()
	default:
		return k
	}
}

func (k UserBytes) Owned() UserBytes { return UserBytes{Bytes: cloneBytes(k.Bytes)} }

// OwnedErrorKind returns a deep copy of k, detached from its backing
// buffer.
func OwnedErrorKind(k ErrorKind) ErrorKind {
	if v, ok := k.(UserBytes); ok {
		return v.Owned()
	}
	return k
}

// Owned returns a deep copy of e, detached from the buffer it was
// decoded from.
func (e Error) Owned() Error {
	return Error{ErrSeq: e.ErrSeq, Kind: OwnedErrorKind(e.Kind)}
}

// Owned returns a deep copy of evt, detached from the buffer it was
// decoded from.
func (evt Event) Owned() Event {
	if evt.Result.IsOk() {
		kind, _ := evt.Result.Unwrap()
		return Event{Seq: evt.Seq, Result: wire.Ok[EventKind, Error](OwnedEventKind(kind))}
	}
	errArm, _ := evt.Result.UnwrapErr()
	return Event{Seq: evt.Seq, Result: wire.Err[EventKind, Error](errArm.Owned())}
}
