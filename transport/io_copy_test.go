// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transport_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"code.hybscloud.com/wireweaver/transport"
	"code.hybscloud.com/iox"
)

// These cover the io.ReaderFrom/io.WriterTo fast paths that
// iox.CopyPolicy picks up when relaying a framed rpc.Request or
// rpc.Event between two transport endpoints (e.g. a proxy forwarding
// a client's call to a backend dispatcher without decoding it): the
// payload sizes below are picked to force the same extended-length
// header shape a sizable Call's Args would, so a framing bug that
// only shows up on that byte shape would surface here.

type spyReader struct {
	r      io.Reader
	called int
}

func (s *spyReader) Read(p []byte) (int, error) { return s.r.Read(p) }
func (s *spyReader) WriteTo(w io.Writer) (int64, error) {
	s.called++
	return s.r.(io.WriterTo).WriteTo(w)
}

type spyWriter struct {
	w      io.Writer
	called int
}

func (s *spyWriter) Write(p []byte) (int, error) { return s.w.Write(p) }
func (s *spyWriter) ReadFrom(src io.Reader) (int64, error) {
	s.called++
	return s.w.(io.ReaderFrom).ReadFrom(src)
}

func TestFramedRequestForwardingPrefersFastPaths(t *testing.T) {
	payload := []byte("a framed rpc.Request payload, opaque to the relay")
	var raw bytes.Buffer
	w := transport.NewWriter(&raw, transport.WithWriteTCP())
	if _, err := w.Write(payload); err != nil {
		t.Fatalf("encode: %v", err)
	}

	src := transport.NewReader(&raw, transport.WithReadTCP())
	spy := &spyReader{r: src}

	var dst bytes.Buffer
	n, err := iox.CopyPolicy(&dst, spy, &iox.ReturnPolicy{})
	if err != nil || n != int64(len(payload)) || dst.String() != string(payload) {
		t.Fatalf("n=%d err=%v dst=%q", n, err, dst.String())
	}
	if spy.called == 0 {
		t.Fatal("expected CopyPolicy to use the Reader's WriteTo fast path")
	}

	dstW := transport.NewWriter(&bytes.Buffer{}, transport.WithWriteTCP())
	spyW := &spyWriter{w: dstW}
	src2 := &plainSrc{b: []byte("another message")}
	n2, err2 := iox.CopyPolicy(spyW, src2, &iox.ReturnPolicy{})
	if err2 != nil || n2 != int64(len("another message")) {
		t.Fatalf("n=%d err=%v", n2, err2)
	}
	if spyW.called == 0 {
		t.Fatal("expected CopyPolicy to use the Writer's ReadFrom fast path")
	}
}

// plainSrc is a bare io.Reader, deliberately not implementing WriterTo,
// so the Writer side's ReadFrom fast path is what gets exercised.
type plainSrc struct{ b []byte }

func (s *plainSrc) Read(p []byte) (int, error) {
	if len(s.b) == 0 {
		return 0, io.EOF
	}
	n := copy(p, s.b)
	s.b = s.b[n:]
	return n, nil
}

func TestFramedRelayPropagatesWouldBlockMidMessage(t *testing.T) {
	var raw bytes.Buffer
	w := transport.NewWriter(&raw, transport.WithWriteTCP())
	payload := bytes.Repeat([]byte{'r'}, 300) // forces extended-length header, as a Call with a sizable Args would
	if _, err := w.Write(payload); err != nil {
		t.Fatalf("encode: %v", err)
	}

	sr := &scriptedReader{steps: []struct {
		b   []byte
		err error
	}{
		{b: raw.Bytes()[:2], err: nil},
		{b: nil, err: iox.ErrWouldBlock},
		{b: raw.Bytes()[2:], err: io.EOF},
	}}
	r := transport.NewReader(sr, transport.WithReadTCP()).(*transport.Reader)

	var dst bytes.Buffer
	_, err := r.WriteTo(&dst)
	if !errors.Is(err, iox.ErrWouldBlock) {
		t.Fatalf("want ErrWouldBlock, got %v", err)
	}

	// Resuming after WouldBlock must still produce the full payload,
	// matching how Serve's caller would retry a non-blocking relay loop.
	n2, err2 := r.WriteTo(&dst)
	if err2 != nil || dst.Len() != len(payload) {
		t.Fatalf("resume n=%d err=%v dst.Len()=%d", n2, err2, dst.Len())
	}
}

func TestFramedRelayPacketModeIsPassThrough(t *testing.T) {
	messages := [][]byte{
		[]byte("seq=1 request bytes"),
		[]byte("seq=2 request bytes"),
	}
	for _, proto := range []transport.Protocol{transport.SeqPacket, transport.Datagram} {
		sr := &scriptedReader{steps: make([]struct {
			b   []byte
			err error
		}, len(messages)+1)}
		for i, m := range messages {
			sr.steps[i] = struct {
				b   []byte
				err error
			}{b: m, err: nil}
		}
		sr.steps[len(messages)] = struct {
			b   []byte
			err error
		}{b: nil, err: io.EOF}

		r := transport.NewReader(sr, transport.WithProtocol(proto)).(*transport.Reader)
		var dst bytes.Buffer
		n, err := r.WriteTo(&dst)
		if err != nil {
			t.Fatalf("proto=%d: %v", proto, err)
		}
		var want int64
		for _, m := range messages {
			want += int64(len(m))
		}
		if n != want {
			t.Fatalf("proto=%d: n=%d want=%d", proto, n, want)
		}
	}
}
