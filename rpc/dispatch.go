// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rpc

import (
	"code.hybscloud.com/wireweaver/bitio"
	"code.hybscloud.com/wireweaver/wire"
)

// NodeKind distinguishes the three resource shapes a Dispatcher tree
// can hold. Generated dispatchers in the original system emit one
// concrete match arm per node; here a single tree-walking Dispatcher
// plays that role against hand-registered nodes.
type NodeKind int

const (
	MethodNodeKind NodeKind = iota
	PropertyNodeKind
	StreamNodeKind
)

// MethodHandler runs a Call: args is the method's already-deserialized
// argument bytes, and the returned bytes are the method's serialized
// return value (already wrapped in its one-field struct if the method
// returns a bare value).
type MethodHandler func(args []byte) ([]byte, error)

// PropertyHandler reads or writes a property. Read is requested by
// passing a nil data; the handler's own return value is then the
// current serialized value. Write is requested by passing non-nil
// data; the handler's return value is ignored.
type PropertyHandler func(data []byte) ([]byte, error)

// SidebandHandler processes one inbound stream control message and
// optionally answers with an outbound one.
type SidebandHandler func(cmd StreamSidebandCommand) (StreamSidebandEvent, bool)

// StreamWriteHandler receives one decoded down-stream payload.
type StreamWriteHandler func(data []byte) error

// Node is one entry in a Dispatcher's resource tree, reached by
// walking an Absolute path one UNib32 index per level.
type Node struct {
	Kind NodeKind

	// Array reports whether this node is array-multiplicity: if so,
	// one extra UNib32 index must follow the resource id in the path.
	Array bool

	Children map[uint32]*Node

	Method   MethodHandler
	Property PropertyHandler
	Sideband SidebandHandler
	Write    StreamWriteHandler
}

// NewNode constructs an empty interior node ready to receive children.
func NewNode(kind NodeKind) *Node {
	return &Node{Kind: kind, Children: make(map[uint32]*Node)}
}

// Dispatcher walks Absolute-addressed requests through a tree of
// Nodes and turns the result of each into an Event or Error.
type Dispatcher struct {
	Root *Node
}

// NewDispatcher returns a Dispatcher rooted at root.
func NewDispatcher(root *Node) *Dispatcher {
	return &Dispatcher{Root: root}
}

// walk descends path through the tree starting at Root, consuming one
// index per level plus, for Array nodes, one additional index
// immediately after the node that owns it.
func (d *Dispatcher) walk(path []uint32) (*Node, error) {
	n := d.Root
	for i := 0; i < len(path); i++ {
		child, ok := n.Children[path[i]]
		if !ok {
			return nil, nil
		}
		n = child
		if n.Array {
			if i+1 >= len(path) {
				return nil, ErrExpectedArrayIndexGotNone
			}
			i++
		}
	}
	return n, nil
}

// Dispatch runs req against the tree and produces the Event to send
// back. If req.Seq == 0 no response is expected and Dispatch returns
// (Event{}, false, nil); callers must check the ok result before
// writing anything to the wire.
func (d *Dispatcher) Dispatch(req Request) (evt Event, ok bool, err error) {
	abs, isAbsolute := req.PathKind.(Absolute)
	if !isAbsolute {
		return d.respond(req.Seq, nil, singleErrArm(PathKindNotSupported{}))
	}

	node, walkErr := d.walk(abs.Path)
	if walkErr != nil {
		return d.respond(req.Seq, nil, singleErrArm(walkErr2Kind(walkErr)))
	}
	if node == nil {
		return d.respond(req.Seq, nil, singleErrArm(BadPath{}))
	}

	kind, dispErr := d.dispatchNode(node, req)
	return d.respond(req.Seq, kind, dispErr)
}

func walkErr2Kind(err error) ErrorKind {
	switch err {
	case ErrExpectedArrayIndexGotNone:
		return ExpectedArrayIndexGotNone{}
	case ErrArrayIndexDesFailed:
		return ArrayIndexDesFailed{}
	case ErrPathDesFailed:
		return PathDesFailed{}
	default:
		return BadPath{}
	}
}

// walkWire decodes an Absolute path directly off r, one UNib32 segment
// at a time, descending d's tree as each segment resolves: the segment
// an Array node additionally requires is only decoded once that node
// is known to need one. This mirrors how the original's generated
// dispatcher resolves a path level by level instead of materializing
// the whole path up front, so a segment that fails to deserialize only
// after several valid levels is distinguishable from one that is
// simply missing.
func (d *Dispatcher) walkWire(r *bitio.Reader) (*Node, error) {
	v, err := wire.DecodeRefVec(r, func(r *bitio.Reader) (uint32, error) { return r.ReadUNib32() })
	if err != nil {
		return nil, ErrPathDesFailed
	}
	n := d.Root
	for {
		idx, ok := v.Next()
		if !ok {
			if v.Err() != nil {
				return nil, ErrArrayIndexDesFailed
			}
			return n, nil
		}
		child, ok := n.Children[idx]
		if !ok {
			return nil, nil
		}
		n = child
		if n.Array {
			if _, ok := v.Next(); !ok {
				if v.Err() != nil {
					return nil, ErrArrayIndexDesFailed
				}
				return nil, ErrExpectedArrayIndexGotNone
			}
		}
	}
}

type dispatchWireResult struct {
	evt Event
	ok  bool
}

func (d *Dispatcher) dispatchRequestBody(r *bitio.Reader) (dispatchWireResult, error) {
	seq, err := r.ReadU16()
	if err != nil {
		return dispatchWireResult{}, err
	}

	disc, err := r.ReadU4()
	if err != nil {
		evt, ok, respErr := d.respond(seq, nil, singleErrArm(PathDesFailed{}))
		return dispatchWireResult{evt, ok}, respErr
	}
	if disc != pathKindAbsolute {
		evt, ok, respErr := d.respond(seq, nil, singleErrArm(PathKindNotSupported{}))
		return dispatchWireResult{evt, ok}, respErr
	}

	node, walkErr := d.walkWire(r)
	if walkErr != nil {
		evt, ok, respErr := d.respond(seq, nil, singleErrArm(walkErr2Kind(walkErr)))
		return dispatchWireResult{evt, ok}, respErr
	}
	if node == nil {
		evt, ok, respErr := d.respond(seq, nil, singleErrArm(BadPath{}))
		return dispatchWireResult{evt, ok}, respErr
	}

	kind, err := UnmarshalRequestKind(r)
	if err != nil {
		errKind := ErrorKind(ArgsDesFailed{})
		if err == wire.ErrEnumFutureVersionOrMalformedData {
			errKind = OperationNotSupported{}
		}
		evt, ok, respErr := d.respond(seq, nil, singleErrArm(errKind))
		return dispatchWireResult{evt, ok}, respErr
	}

	evtKind, dispErr := d.dispatchNode(node, Request{Seq: seq, Kind: kind})
	evt, ok, respErr := d.respond(seq, evtKind, dispErr)
	return dispatchWireResult{evt, ok}, respErr
}

func singleErrArm(kind ErrorKind) *Error {
	e := NewError(0, kind)
	return &e
}

// DispatchWire decodes one framed Request directly from r and
// dispatches it against d in a single pass, without materializing the
// whole Absolute path up front the way UnmarshalRequest does: path
// segments are decoded one at a time as the tree is walked. Seq is
// always decoded first, so every failure after it — a malformed path
// segment, an unsupported path kind, a request kind that fails to
// deserialize — still produces an Event with Seq echoed back, the same
// as any other dispatch failure; only a failure to decode Seq itself
// leaves nothing to echo and is returned as a bare error.
func (d *Dispatcher) DispatchWire(r *bitio.Reader) (evt Event, ok bool, err error) {
	res, err := wire.ReadUnsizedScope(r, d.dispatchRequestBody)
	if err != nil {
		return Event{}, false, err
	}
	return res.evt, res.ok, nil
}

func (d *Dispatcher) dispatchNode(n *Node, req Request) (EventKind, *Error) {
	switch n.Kind {
	case MethodNodeKind:
		return dispatchMethod(n, req)
	case PropertyNodeKind:
		return dispatchProperty(n, req)
	case StreamNodeKind:
		return dispatchStream(n, req)
	default:
		e := NewError(0, OperationNotSupported{})
		return nil, &e
	}
}

func dispatchMethod(n *Node, req Request) (EventKind, *Error) {
	call, ok := req.Kind.(Call)
	if !ok {
		e := NewError(0, OperationNotSupported{})
		return nil, &e
	}
	if n.Method == nil {
		e := NewError(0, OperationNotImplemented{})
		return nil, &e
	}
	result, err := n.Method(call.Args)
	if err != nil {
		e := NewError(0, ArgsDesFailed{})
		return nil, &e
	}
	return ReturnValue{Data: result}, nil
}

func dispatchProperty(n *Node, req Request) (EventKind, *Error) {
	if n.Property == nil {
		e := NewError(0, OperationNotImplemented{})
		return nil, &e
	}
	switch v := req.Kind.(type) {
	case Read:
		if req.Seq == 0 {
			e := NewError(0, ReadPropertyWithSeqZero{})
			return nil, &e
		}
		data, err := n.Property(nil)
		if err != nil {
			e := NewError(0, PropertyDesFailed{})
			return nil, &e
		}
		return ReadValue{Data: data}, nil
	case Write:
		if _, err := n.Property(v.Data); err != nil {
			e := NewError(0, PropertyDesFailed{})
			return nil, &e
		}
		return Written{}, nil
	default:
		e := NewError(0, OperationNotSupported{})
		return nil, &e
	}
}

func dispatchStream(n *Node, req Request) (EventKind, *Error) {
	switch v := req.Kind.(type) {
	case StreamSideband:
		if n.Sideband == nil {
			e := NewError(0, OperationNotImplemented{})
			return nil, &e
		}
		reply, has := n.Sideband(v.SidebandCmd)
		if !has {
			return nil, nil
		}
		return EventStreamSideband{SidebandEvent: reply}, nil
	case Write:
		if n.Write == nil {
			e := NewError(0, OperationNotImplemented{})
			return nil, &e
		}
		if err := n.Write(v.Data); err != nil {
			e := NewError(0, PropertyDesFailed{})
			return nil, &e
		}
		return Written{}, nil
	case Subscribe:
		return Subscribed{}, nil
	case Unsubscribe:
		return Unsubscribed{}, nil
	case ChangeRate:
		return RateChanged{}, nil
	default:
		e := NewError(0, OperationNotSupported{})
		return nil, &e
	}
}

// respond assembles the final Event: Err(errArm) when errArm is set,
// otherwise Ok(kind), and no Event at all when seq == 0. It applies no
// ResponseSerFailed fallback itself; kind is already in memory, so the
// only failure left is encoding it onto the wire, and that fallback
// lives in (Dispatcher).Encode.
func (d *Dispatcher) respond(seq uint16, kind EventKind, errArm *Error) (Event, bool, error) {
	if seq == 0 {
		return Event{}, false, nil
	}
	if errArm != nil {
		return NewErrEvent(seq, *errArm), true, nil
	}
	return NewOkEvent(seq, kind), true, nil
}

// Encode serializes evt into scratchEvent. If that fails (the handler
// produced a value too large for scratchEvent), a fresh
// ResponseSerFailed error event is written into scratchErr instead, so
// the caller still has something to write out. Encode only returns an
// error when even that fallback doesn't fit scratchErr, at which point
// the caller has nothing to transmit and must log the failure itself.
func (d *Dispatcher) Encode(scratchEvent, scratchErr []byte, evt Event) ([]byte, error) {
	w := bitio.NewWriter(scratchEvent)
	if err := evt.MarshalWire(w); err == nil {
		if out, finErr := w.Finish(); finErr == nil {
			return out, nil
		}
	}

	w = bitio.NewWriter(scratchErr)
	fallback := NewErrEvent(evt.Seq, ResponseSerFailedError(0))
	if err := fallback.MarshalWire(w); err != nil {
		return nil, err
	}
	return w.Finish()
}
