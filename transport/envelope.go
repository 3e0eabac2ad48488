// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"io"

	"code.hybscloud.com/wireweaver/bitio"
	"code.hybscloud.com/wireweaver/rpc"
)

// WriteRequest serializes req into scratch and writes the result as a
// single framed message on w. scratch is caller-owned and reused
// across calls; it must be large enough to hold the encoded Request
// or WriteRequest returns a bitio bounds error.
func WriteRequest(w io.Writer, scratch []byte, req rpc.Request) error {
	bw := bitio.NewWriter(scratch)
	if err := req.MarshalWire(bw); err != nil {
		return err
	}
	out, err := bw.Finish()
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// ReadRequest reads one framed message from r into scratch and decodes
// it as a Request. scratch is caller-owned and reused across calls.
func ReadRequest(r io.Reader, scratch []byte) (rpc.Request, error) {
	n, err := r.Read(scratch)
	if err != nil {
		return rpc.Request{}, err
	}
	return rpc.UnmarshalRequest(bitio.NewReader(scratch[:n]))
}

// WriteEvent serializes evt into scratch and writes the result as a
// single framed message on w.
func WriteEvent(w io.Writer, scratch []byte, evt rpc.Event) error {
	bw := bitio.NewWriter(scratch)
	if err := evt.MarshalWire(bw); err != nil {
		return err
	}
	out, err := bw.Finish()
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// ReadEvent reads one framed message from r into scratch and decodes
// it as an Event.
func ReadEvent(r io.Reader, scratch []byte) (rpc.Event, error) {
	n, err := r.Read(scratch)
	if err != nil {
		return rpc.Event{}, err
	}
	return rpc.UnmarshalEvent(bitio.NewReader(scratch[:n]))
}

// Serve reads Requests off r, one framed message at a time, dispatches
// each against d, and writes the resulting Event to w when the
// request's seq asks for a response. scratchArgs stages the raw
// Request bytes; scratchEvent and scratchErr are passed straight
// through to (*rpc.Dispatcher).Encode.
//
// Each framed message is handed to (*rpc.Dispatcher).DispatchWire
// rather than decoded up front: DispatchWire resolves the Absolute
// path against d's tree one segment at a time, so a path that fails
// to deserialize partway through still does so after Seq is already
// known, and the resulting error Event carries that Seq back to the
// peer instead of the connection being dropped silently. DispatchWire
// only returns a bare error (dropping the connection) when Seq itself
// could not be read.
//
// Serve returns on the first read or dispatch error (including
// io.EOF, which indicates a clean peer disconnect).
func Serve(r io.Reader, w io.Writer, d *rpc.Dispatcher, scratchArgs, scratchEvent, scratchErr []byte) error {
	for {
		n, err := r.Read(scratchArgs)
		if err != nil {
			return err
		}

		evt, ok, err := d.DispatchWire(bitio.NewReader(scratchArgs[:n]))
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		out, err := d.Encode(scratchEvent, scratchErr, evt)
		if err != nil {
			// Even the ResponseSerFailed fallback didn't fit scratchErr:
			// nothing can be written back for this request. The caller
			// is responsible for logging this before continuing to serve.
			return err
		}
		if _, err := w.Write(out); err != nil {
			return err
		}
	}
}
