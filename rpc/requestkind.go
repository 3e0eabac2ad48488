// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rpc

import (
	"code.hybscloud.com/wireweaver/bitio"
	"code.hybscloud.com/wireweaver/wire"
)

// RequestKind is the operation a Request asks the dispatcher to
// perform. UnsizedFinalStructure: a u4 discriminant, then payload,
// flattened into the Request's own scope.
type RequestKind interface {
	isRequestKind()
}

const (
	requestKindCall uint8 = iota
	requestKindRead
	requestKindWrite
	requestKindSubscribe
	requestKindUnsubscribe
	requestKindChangeRate
	requestKindStreamSideband
	requestKindIntrospect
)

// Call invokes a method resource, args holding its serialized
// arguments opaque to the dispatcher.
type Call struct{ Args []byte }

func (Call) isRequestKind() {}

// Read fetches the current value of a property resource.
type Read struct{}

func (Read) isRequestKind() {}

// Write sets a property resource to the serialized value in Data.
type Write struct{ Data []byte }

func (Write) isRequestKind() {}

// Subscribe begins a property or stream's update feed.
type Subscribe struct{}

func (Subscribe) isRequestKind() {}

// Unsubscribe ends a previously started feed.
type Unsubscribe struct{}

func (Unsubscribe) isRequestKind() {}

// ChangeRate adjusts how often a subscribed feed delivers updates.
type ChangeRate struct{ ShaperConfig ShaperConfig }

func (ChangeRate) isRequestKind() {}

// StreamSideband carries a control message for an open stream.
type StreamSideband struct{ SidebandCmd StreamSidebandCommand }

func (StreamSideband) isRequestKind() {}

// Introspect asks a node to describe its own shape.
type Introspect struct{}

func (Introspect) isRequestKind() {}

func MarshalRequestKind(w *bitio.Writer, k RequestKind) error {
	switch v := k.(type) {
	case Call:
		if err := w.WriteU4(requestKindCall); err != nil {
			return err
		}
		return wire.WriteBytes(w, v.Args)
	case Read:
		return w.WriteU4(requestKindRead)
	case Write:
		if err := w.WriteU4(requestKindWrite); err != nil {
			return err
		}
		return wire.WriteBytes(w, v.Data)
	case Subscribe:
		return w.WriteU4(requestKindSubscribe)
	case Unsubscribe:
		return w.WriteU4(requestKindUnsubscribe)
	case ChangeRate:
		if err := w.WriteU4(requestKindChangeRate); err != nil {
			return err
		}
		return MarshalShaperConfig(w, v.ShaperConfig)
	case StreamSideband:
		if err := w.WriteU4(requestKindStreamSideband); err != nil {
			return err
		}
		return MarshalStreamSidebandCommand(w, v.SidebandCmd)
	case Introspect:
		return w.WriteU4(requestKindIntrospect)
	default:
		return wire.ErrEnumFutureVersionOrMalformedData
	}
}

func UnmarshalRequestKind(r *bitio.Reader) (RequestKind, error) {
	disc, err := r.ReadU4()
	if err != nil {
		return nil, err
	}
	switch disc {
	case requestKindCall:
		args, err := wire.ReadBytes(r)
		if err != nil {
			return nil, err
		}
		return Call{Args: args}, nil
	case requestKindRead:
		return Read{}, nil
	case requestKindWrite:
		data, err := wire.ReadBytes(r)
		if err != nil {
			return nil, err
		}
		return Write{Data: data}, nil
	case requestKindSubscribe:
		return Subscribe{}, nil
	case requestKindUnsubscribe:
		return Unsubscribe{}, nil
	case requestKindChangeRate:
		cfg, err := UnmarshalShaperConfig(r)
		if err != nil {
			return nil, err
		}
		return ChangeRate{ShaperConfig: cfg}, nil
	case requestKindStreamSideband:
		cmd, err := UnmarshalStreamSidebandCommand(r)
		if err != nil {
			return nil, err
		}
		return StreamSideband{SidebandCmd: cmd}, nil
	case requestKindIntrospect:
		return Introspect{}, nil
	default:
		return nil, wire.ErrEnumFutureVersionOrMalformedData
	}
}
