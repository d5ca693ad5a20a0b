// Copyright 2026 Jean-Christophe Dubois. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heatshrink

import (
	"bytes"
	"testing"
)

func TestWriter(t *testing.T) {
	src := bytes.Repeat([]byte("in the middle of difficulty lies opportunity. "), 60)
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	if err != nil {
		t.Fatalf("NewWriter error %s", err)
	}
	n, err := w.Write(src)
	if err != nil {
		t.Fatalf("Write error %s", err)
	}
	if n != len(src) {
		t.Fatalf("Write consumed %d bytes; want %d", n, len(src))
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close error %s", err)
	}
	want, err := Encode(make([]byte, len(src)+len(src)/8+4), src)
	if err != nil {
		t.Fatalf("Encode error %s", err)
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("Writer stream differs from Encode: %d vs %d bytes",
			buf.Len(), len(want))
	}
}

func TestWriterSmallWrites(t *testing.T) {
	src := []byte("sequences of small writes must not change the stream")
	var whole, pieces bytes.Buffer

	w, err := NewIndexedWriter(&whole)
	if err != nil {
		t.Fatalf("NewIndexedWriter error %s", err)
	}
	if _, err := w.Write(src); err != nil {
		t.Fatalf("Write error %s", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close error %s", err)
	}

	w, err = NewIndexedWriter(&pieces)
	if err != nil {
		t.Fatalf("NewIndexedWriter error %s", err)
	}
	for i := range src {
		if _, err := w.Write(src[i : i+1]); err != nil {
			t.Fatalf("Write error %s", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close error %s", err)
	}

	if !bytes.Equal(whole.Bytes(), pieces.Bytes()) {
		t.Fatalf("split writes changed the stream: %d vs %d bytes",
			whole.Len(), pieces.Len())
	}
}

func TestWriterMisuse(t *testing.T) {
	if _, err := NewWriter(nil); err == nil {
		t.Fatalf("NewWriter(nil) didn't return an error")
	}
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	if err != nil {
		t.Fatalf("NewWriter error %s", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close error %s", err)
	}
	// Close is idempotent, Write after Close is not allowed.
	if err := w.Close(); err != nil {
		t.Fatalf("second Close error %s", err)
	}
	if _, err := w.Write([]byte{1}); err != ErrMisuse {
		t.Fatalf("Write after Close returned %v; want ErrMisuse", err)
	}
}
