// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rpc

import (
	"reflect"
	"testing"

	"code.hybscloud.com/wireweaver/bitio"
)

func roundTripEventKind(t *testing.T, k EventKind) EventKind {
	t.Helper()
	buf := make([]byte, 128)
	w := bitio.NewWriter(buf)
	if err := MarshalEventKind(w, k); err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out, err := w.Finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	r := bitio.NewReader(out)
	got, err := UnmarshalEventKind(r)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return got
}

func TestEventKindReturnValueRoundTrip(t *testing.T) {
	want := ReturnValue{Data: []byte{0xAA, 0xBB}}
	got := roundTripEventKind(t, want)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestEventKindStreamDataRoundTrip(t *testing.T) {
	want := StreamData{Path: []uint32{4, 5}, Data: []byte{9}}
	got := roundTripEventKind(t, want)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestEventKindNoPayloadVariants(t *testing.T) {
	cases := []EventKind{Written{}, RateChanged{}}
	for _, c := range cases {
		got := roundTripEventKind(t, c)
		if !reflect.DeepEqual(got, c) {
			t.Fatalf("got %#v, want %#v", got, c)
		}
	}
}

func TestEventKindSubscribedRoundTrip(t *testing.T) {
	want := Subscribed{Path: []uint32{1}}
	got := roundTripEventKind(t, want)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestEventKindStreamSidebandRoundTrip(t *testing.T) {
	want := EventStreamSideband{Path: []uint32{2, 3}, SidebandEvent: SidebandEventSizeHint{Hint: 99}}
	got := roundTripEventKind(t, want)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestEventKindIntrospectRoundTrip(t *testing.T) {
	want := EventIntrospect{BytesChunk: []byte("node-desc")}
	got := roundTripEventKind(t, want)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}
