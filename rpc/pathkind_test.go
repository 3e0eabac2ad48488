// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rpc

import (
	"reflect"
	"testing"

	"code.hybscloud.com/wireweaver/bitio"
)

func roundTripPathKind(t *testing.T, p PathKind) PathKind {
	t.Helper()
	buf := make([]byte, 128)
	w := bitio.NewWriter(buf)
	if err := MarshalPathKind(w, p); err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out, err := w.Finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	r := bitio.NewReader(out)
	got, err := UnmarshalPathKind(r)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return got
}

func TestAbsolutePathKindRoundTrip(t *testing.T) {
	want := Absolute{Path: []uint32{4, 5}}
	got := roundTripPathKind(t, want)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestGlobalCompactPathKindRoundTrip(t *testing.T) {
	want := GlobalCompact{
		GID:           CompactVersion{Major: 1, Minor: 2, Patch: 3},
		PathFromTrait: []uint32{7},
	}
	got := roundTripPathKind(t, want)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestGlobalFullPathKindRoundTrip(t *testing.T) {
	want := GlobalFull{
		GID:           FullVersion{CrateID: "acme.thermostat", Major: 1, Minor: 0, Patch: 0},
		PathFromTrait: []uint32{0, 1},
	}
	got := roundTripPathKind(t, want)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestPathKindEmptyPath(t *testing.T) {
	want := Absolute{Path: nil}
	got := roundTripPathKind(t, want)
	gotAbs, ok := got.(Absolute)
	if !ok || len(gotAbs.Path) != 0 {
		t.Fatalf("got %+v, want empty Absolute", got)
	}
}
