// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rpc

import (
	"code.hybscloud.com/wireweaver/bitio"
	"code.hybscloud.com/wireweaver/wire"
)

// EventKind is the successful outcome of a dispatched Request, carried
// as the Ok arm of an Event's wire.Result. UnsizedFinalStructure: a u4
// discriminant then payload, flattened into the Event's own scope.
type EventKind interface {
	isEventKind()
}

const (
	eventKindReturnValue uint8 = iota
	eventKindReadValue
	eventKindWritten
	eventKindStreamData
	eventKindStreamSideband
	eventKindSubscribed
	eventKindUnsubscribed
	eventKindRateChanged
	eventKindIntrospect
)

// ReturnValue answers a Call with the method's serialized return value.
type ReturnValue struct{ Data []byte }

func (ReturnValue) isEventKind() {}

// ReadValue answers a Read with the property's current serialized value.
type ReadValue struct{ Data []byte }

func (ReadValue) isEventKind() {}

// Written acknowledges a successful Write.
type Written struct{}

func (Written) isEventKind() {}

// StreamData delivers one update from a subscribed stream, Path
// identifying which subscription it belongs to.
type StreamData struct {
	Path []uint32
	Data []byte
}

func (StreamData) isEventKind() {}

// EventStreamSideband carries a control acknowledgement for a stream.
type EventStreamSideband struct {
	Path          []uint32
	SidebandEvent StreamSidebandEvent
}

func (EventStreamSideband) isEventKind() {}

// Subscribed acknowledges a Subscribe request.
type Subscribed struct{ Path []uint32 }

func (Subscribed) isEventKind() {}

// Unsubscribed acknowledges an Unsubscribe request.
type Unsubscribed struct{ Path []uint32 }

func (Unsubscribed) isEventKind() {}

// RateChanged acknowledges a ChangeRate request.
type RateChanged struct{}

func (RateChanged) isEventKind() {}

// EventIntrospect answers an Introspect request with a chunk of the
// node's self-description. The Dispatcher in this package does not
// handle Introspect and never produces this event.
type EventIntrospect struct{ BytesChunk []byte }

func (EventIntrospect) isEventKind() {}

func MarshalEventKind(w *bitio.Writer, k EventKind) error {
	switch v := k.(type) {
	case ReturnValue:
		if err := w.WriteU4(eventKindReturnValue); err != nil {
			return err
		}
		return wire.WriteBytes(w, v.Data)
	case ReadValue:
		if err := w.WriteU4(eventKindReadValue); err != nil {
			return err
		}
		return wire.WriteBytes(w, v.Data)
	case Written:
		return w.WriteU4(eventKindWritten)
	case StreamData:
		if err := w.WriteU4(eventKindStreamData); err != nil {
			return err
		}
		if err := writeUNib32Path(w, v.Path); err != nil {
			return err
		}
		return wire.WriteBytes(w, v.Data)
	case EventStreamSideband:
		if err := w.WriteU4(eventKindStreamSideband); err != nil {
			return err
		}
		if err := writeUNib32Path(w, v.Path); err != nil {
			return err
		}
		return MarshalStreamSidebandEvent(w, v.SidebandEvent)
	case Subscribed:
		if err := w.WriteU4(eventKindSubscribed); err != nil {
			return err
		}
		return writeUNib32Path(w, v.Path)
	case Unsubscribed:
		if err := w.WriteU4(eventKindUnsubscribed); err != nil {
			return err
		}
		return writeUNib32Path(w, v.Path)
	case RateChanged:
		return w.WriteU4(eventKindRateChanged)
	case EventIntrospect:
		if err := w.WriteU4(eventKindIntrospect); err != nil {
			return err
		}
		return wire.WriteBytes(w, v.BytesChunk)
	default:
		return wire.ErrEnumFutureVersionOrMalformedData
	}
}

func UnmarshalEventKind(r *bitio.Reader) (EventKind, error) {
	disc, err := r.ReadU4()
	if err != nil {
		return nil, err
	}
	switch disc {
	case eventKindReturnValue:
		data, err := wire.ReadBytes(r)
		if err != nil {
			return nil, err
		}
		return ReturnValue{Data: data}, nil
	case eventKindReadValue:
		data, err := wire.ReadBytes(r)
		if err != nil {
			return nil, err
		}
		return ReadValue{Data: data}, nil
	case eventKindWritten:
		return Written{}, nil
	case eventKindStreamData:
		path, err := readUNib32Path(r)
		if err != nil {
			return nil, err
		}
		data, err := wire.ReadBytes(r)
		if err != nil {
			return nil, err
		}
		return StreamData{Path: path, Data: data}, nil
	case eventKindStreamSideband:
		path, err := readUNib32Path(r)
		if err != nil {
			return nil, err
		}
		evt, err := UnmarshalStreamSidebandEvent(r)
		if err != nil {
			return nil, err
		}
		return EventStreamSideband{Path: path, SidebandEvent: evt}, nil
	case eventKindSubscribed:
		path, err := readUNib32Path(r)
		if err != nil {
			return nil, err
		}
		return Subscribed{Path: path}, nil
	case eventKindUnsubscribed:
		path, err := readUNib32Path(r)
		if err != nil {
			return nil, err
		}
		return Unsubscribed{Path: path}, nil
	case eventKindRateChanged:
		return RateChanged{}, nil
	case eventKindIntrospect:
		chunk, err := wire.ReadBytes(r)
		if err != nil {
			return nil, err
		}
		return EventIntrospect{BytesChunk: chunk}, nil
	default:
		return nil, wire.ErrEnumFutureVersionOrMalformedData
	}
}
