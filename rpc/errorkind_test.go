// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rpc

import (
	"reflect"
	"testing"

	"code.hybscloud.com/wireweaver/bitio"
)

func roundTripErrorKind(t *testing.T, k ErrorKind) ErrorKind {
	t.Helper()
	buf := make([]byte, 128)
	w := bitio.NewWriter(buf)
	if err := MarshalErrorKind(w, k); err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out, err := w.Finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	r := bitio.NewReader(out)
	got, err := UnmarshalErrorKind(r)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return got
}

func TestErrorKindAllBuiltinVariantsRoundTrip(t *testing.T) {
	cases := []ErrorKind{
		OperationNotSupported{}, BadPath{}, BadIndex{},
		ExpectedArrayIndexGotNone{}, ArrayIndexDesFailed{}, ArgsDesFailed{},
		PathDesFailed{}, PropertyDesFailed{}, ResponseSerFailed{},
		OperationNotImplemented{}, ReadPropertyWithSeqZero{}, PathKindNotSupported{},
	}
	for _, c := range cases {
		got := roundTripErrorKind(t, c)
		if !reflect.DeepEqual(got, c) {
			t.Fatalf("got %#v, want %#v", got, c)
		}
	}
}

func TestErrorKindUserBytesRoundTrip(t *testing.T) {
	want := UserBytes{Bytes: []byte{1, 2, 3, 4}}
	got := roundTripErrorKind(t, want)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

// TestErrorKindUsesUNib32Discriminant pins the one structural
// difference between ErrorKind and the other envelope enums: its
// discriminant is a UNib32, not a fixed u4, so OperationNotSupported
// (discriminant 0) takes a single nibble while a discriminant needing
// more than 7 still self-describes its own width.
func TestErrorKindUsesUNib32Discriminant(t *testing.T) {
	buf := make([]byte, 16)
	w := bitio.NewWriter(buf)
	if err := MarshalErrorKind(w, OperationNotSupported{}); err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out, err := w.Finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	r := bitio.NewReader(out)
	disc, err := r.ReadUNib32()
	if err != nil {
		t.Fatalf("read discriminant: %v", err)
	}
	if disc != errorKindOperationNotSupported {
		t.Fatalf("got discriminant %d, want %d", disc, errorKindOperationNotSupported)
	}
}
