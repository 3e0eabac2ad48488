// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rpc

import (
	"reflect"
	"testing"

	"code.hybscloud.com/wireweaver/bitio"
)

func roundTripRequestKind(t *testing.T, k RequestKind) RequestKind {
	t.Helper()
	buf := make([]byte, 128)
	w := bitio.NewWriter(buf)
	if err := MarshalRequestKind(w, k); err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out, err := w.Finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	r := bitio.NewReader(out)
	got, err := UnmarshalRequestKind(r)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return got
}

func TestRequestKindCallRoundTrip(t *testing.T) {
	want := Call{Args: []byte{1, 2, 3}}
	got := roundTripRequestKind(t, want)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestRequestKindNoPayloadVariants(t *testing.T) {
	cases := []RequestKind{Read{}, Subscribe{}, Unsubscribe{}, Introspect{}}
	for _, c := range cases {
		got := roundTripRequestKind(t, c)
		if !reflect.DeepEqual(got, c) {
			t.Fatalf("got %#v, want %#v", got, c)
		}
	}
}

func TestRequestKindChangeRateRoundTrip(t *testing.T) {
	want := ChangeRate{ShaperConfig: MaxRate{EventsPerSecond: 10}}
	got := roundTripRequestKind(t, want)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestRequestKindStreamSidebandRoundTrip(t *testing.T) {
	want := StreamSideband{SidebandCmd: SidebandSizeHint{Hint: 42}}
	got := roundTripRequestKind(t, want)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}
