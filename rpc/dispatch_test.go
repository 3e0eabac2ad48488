// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rpc

import (
	"bytes"
	"testing"

	"code.hybscloud.com/wireweaver/bitio"
	"code.hybscloud.com/wireweaver/wire"
)

func buildTestTree() *Dispatcher {
	root := NewNode(MethodNodeKind)

	echo := NewNode(MethodNodeKind)
	echo.Method = func(args []byte) ([]byte, error) {
		out := make([]byte, len(args))
		copy(out, args)
		return out, nil
	}
	root.Children[1] = echo

	brightness := NewNode(PropertyNodeKind)
	value := []byte{50}
	brightness.Property = func(data []byte) ([]byte, error) {
		if data == nil {
			return value, nil
		}
		value = append([]byte(nil), data...)
		return nil, nil
	}
	root.Children[2] = brightness

	stream := NewNode(StreamNodeKind)
	stream.Sideband = func(cmd StreamSidebandCommand) (StreamSidebandEvent, bool) {
		if _, ok := cmd.(SidebandOpen); ok {
			return SidebandOpened{}, true
		}
		return nil, false
	}
	root.Children[3] = stream

	return NewDispatcher(root)
}

func TestDispatchMethodCall(t *testing.T) {
	d := buildTestTree()
	req := NewRequest(1, []uint32{1}, Call{Args: []byte{9, 9}})
	evt, ok, err := d.Dispatch(req)
	if err != nil {
		t.Fatalf("dispatch error: %v", err)
	}
	if !ok {
		t.Fatal("expected a response")
	}
	if !evt.Result.IsOk() {
		t.Fatal("expected Ok arm")
	}
	kind, _ := evt.Result.Unwrap()
	rv, ok := kind.(ReturnValue)
	if !ok || !bytes.Equal(rv.Data, []byte{9, 9}) {
		t.Fatalf("got %#v", kind)
	}
}

func TestDispatchSeqZeroSuppressesResponse(t *testing.T) {
	d := buildTestTree()
	req := NewRequest(0, []uint32{1}, Call{Args: nil})
	_, ok, err := d.Dispatch(req)
	if err != nil {
		t.Fatalf("dispatch error: %v", err)
	}
	if ok {
		t.Fatal("seq == 0 must suppress a response")
	}
}

func TestDispatchPropertyReadWrite(t *testing.T) {
	d := buildTestTree()

	readReq := NewRequest(2, []uint32{2}, Read{})
	evt, ok, err := d.Dispatch(readReq)
	if err != nil || !ok {
		t.Fatalf("read dispatch: ok=%v err=%v", ok, err)
	}
	kind, _ := evt.Result.Unwrap()
	rv, ok := kind.(ReadValue)
	if !ok || !bytes.Equal(rv.Data, []byte{50}) {
		t.Fatalf("got %#v", kind)
	}

	writeReq := NewRequest(3, []uint32{2}, Write{Data: []byte{77}})
	evt, ok, err = d.Dispatch(writeReq)
	if err != nil || !ok {
		t.Fatalf("write dispatch: ok=%v err=%v", ok, err)
	}
	kind, _ = evt.Result.Unwrap()
	if _, ok := kind.(Written); !ok {
		t.Fatalf("got %#v, want Written", kind)
	}
}

func TestDispatchUnknownPathYieldsBadPath(t *testing.T) {
	d := buildTestTree()
	req := NewRequest(4, []uint32{99}, Read{})
	evt, ok, err := d.Dispatch(req)
	if err != nil || !ok {
		t.Fatalf("dispatch: ok=%v err=%v", ok, err)
	}
	if evt.Result.IsOk() {
		t.Fatal("expected Err arm")
	}
	gotErr, _ := evt.Result.UnwrapErr()
	if _, ok := gotErr.Kind.(BadPath); !ok {
		t.Fatalf("got %#v, want BadPath", gotErr.Kind)
	}
}

func TestDispatchStreamSidebandOpen(t *testing.T) {
	d := buildTestTree()
	req := NewRequest(5, []uint32{3}, StreamSideband{SidebandCmd: SidebandOpen{}})
	evt, ok, err := d.Dispatch(req)
	if err != nil || !ok {
		t.Fatalf("dispatch: ok=%v err=%v", ok, err)
	}
	kind, _ := evt.Result.Unwrap()
	sb, ok := kind.(EventStreamSideband)
	if !ok {
		t.Fatalf("got %#v, want EventStreamSideband", kind)
	}
	if _, ok := sb.SidebandEvent.(SidebandOpened); !ok {
		t.Fatalf("got %#v, want SidebandOpened", sb.SidebandEvent)
	}
}

func TestDispatchArrayNodeWithoutIndex(t *testing.T) {
	root := NewNode(MethodNodeKind)
	arr := NewNode(MethodNodeKind)
	arr.Array = true
	arr.Method = func(args []byte) ([]byte, error) { return nil, nil }
	root.Children[7] = arr
	d := NewDispatcher(root)

	req := NewRequest(1, []uint32{7}, Call{})
	evt, ok, err := d.Dispatch(req)
	if err != nil || !ok {
		t.Fatalf("dispatch: ok=%v err=%v", ok, err)
	}
	gotErr, _ := evt.Result.UnwrapErr()
	if _, ok := gotErr.Kind.(ExpectedArrayIndexGotNone); !ok {
		t.Fatalf("got %#v, want ExpectedArrayIndexGotNone", gotErr.Kind)
	}
}

// TestDispatchWireArrayIndexDesFailedPreservesSeq hand-builds a
// request whose array index segment is a UNib32 with its continuation
// bit set but no following nibble within the request's declared
// scope, so the index fails to deserialize partway through the walk
// rather than simply being absent. DispatchWire must still echo the
// already-decoded Seq back in the resulting Error Event instead of
// dropping the connection.
func TestDispatchWireArrayIndexDesFailedPreservesSeq(t *testing.T) {
	root := NewNode(MethodNodeKind)
	arr := NewNode(MethodNodeKind)
	arr.Array = true
	arr.Method = func(args []byte) ([]byte, error) { return nil, nil }
	root.Children[7] = arr
	d := NewDispatcher(root)

	buf := make([]byte, 64)
	w := bitio.NewWriter(buf)
	err := wire.WriteUnsizedScope(w, func() error {
		if err := w.WriteU16(42); err != nil {
			return err
		}
		if err := w.WriteU4(pathKindAbsolute); err != nil {
			return err
		}
		if _, err := w.WriteU16Rev(2); err != nil {
			return err
		}
		if err := w.WriteUNib32(7); err != nil {
			return err
		}
		// Two continuation nibbles with nothing after them: the third
		// nibble ReadUNib32 would need to terminate falls outside the
		// scope's declared size, so decoding this segment genuinely
		// fails instead of reading harmless zero padding.
		if err := w.WriteBits(4, 0x8); err != nil {
			return err
		}
		return w.WriteBits(4, 0x8)
	})
	if err != nil {
		t.Fatalf("build malformed request: %v", err)
	}
	out, err := w.Finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}

	evt, ok, dispErr := d.DispatchWire(bitio.NewReader(out))
	if dispErr != nil {
		t.Fatalf("dispatch error: %v", dispErr)
	}
	if !ok {
		t.Fatal("expected a response")
	}
	if evt.Seq != 42 {
		t.Fatalf("seq = %d, want 42 (must survive a mid-walk decode failure)", evt.Seq)
	}
	if evt.Result.IsOk() {
		t.Fatal("expected Err arm")
	}
	gotErr, _ := evt.Result.UnwrapErr()
	if _, ok := gotErr.Kind.(ArrayIndexDesFailed); !ok {
		t.Fatalf("got %#v, want ArrayIndexDesFailed", gotErr.Kind)
	}
}

func TestDispatcherEncodeProducesDecodableEvent(t *testing.T) {
	d := buildTestTree()
	req := NewRequest(9, []uint32{1}, Call{Args: []byte{1}})
	evt, ok, err := d.Dispatch(req)
	if err != nil || !ok {
		t.Fatalf("dispatch: ok=%v err=%v", ok, err)
	}
	scratchEvent := make([]byte, 64)
	scratchErr := make([]byte, 32)
	out, err := d.Encode(scratchEvent, scratchErr, evt)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := UnmarshalEvent(bitio.NewReader(out))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Seq != 9 {
		t.Fatalf("seq = %d, want 9", got.Seq)
	}
}

func TestDispatcherEncodeFallsBackOnTooSmallScratch(t *testing.T) {
	d := buildTestTree()
	evt := NewOkEvent(1, ReturnValue{Data: bytes.Repeat([]byte{0xAB}, 200)})
	scratchEvent := make([]byte, 32)
	scratchErr := make([]byte, 32)
	out, err := d.Encode(scratchEvent, scratchErr, evt)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := UnmarshalEvent(bitio.NewReader(out))
	if err != nil {
		t.Fatalf("decode fallback event: %v", err)
	}
	if got.Result.IsOk() {
		t.Fatal("expected fallback Err(ResponseSerFailed) arm")
	}
	gotErr, _ := got.Result.UnwrapErr()
	if _, ok := gotErr.Kind.(ResponseSerFailed); !ok {
		t.Fatalf("got %#v, want ResponseSerFailed", gotErr.Kind)
	}
}
