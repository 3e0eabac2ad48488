// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rpc

import "errors"

// ErrExpectedArrayIndexGotNone, ErrArrayIndexDesFailed and
// ErrPathDesFailed are surfaced by the dispatcher, not carried on the
// wire; a matching ErrorKind is what actually gets sent back to the
// client. ErrArrayIndexDesFailed and ErrPathDesFailed are only
// reachable through (*Dispatcher).DispatchWire, which decodes an
// Absolute path one segment at a time against the tree instead of
// materializing it up front, so a segment that fails to deserialize
// mid-walk is distinguishable from a segment that is simply absent.
var (
	ErrExpectedArrayIndexGotNone = errors.New("rpc: array-multiplicity resource addressed without an index")
	ErrArrayIndexDesFailed       = errors.New("rpc: array index failed to deserialize")
	ErrPathDesFailed             = errors.New("rpc: path failed to deserialize")
)

// ErrNoResponseExpected describes a Request with seq == 0, which takes
// no response. Nothing in this package returns it: Dispatch and
// DispatchWire report that case with ok == false instead.
var ErrNoResponseExpected = errors.New("rpc: seq == 0, no response expected")
