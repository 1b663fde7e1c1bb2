//go:build !windows && !plan9 && !js && !wasip1

package input

import (
	"os"
	"testing"
	"time"
)

func TestTTYDeviceBoundedReadTimesOut(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer func() {
		_ = r.Close()
		_ = w.Close()
	}()

	dev := NewTTYDevice(r)
	start := time.Now()
	_, ok, err := dev.ReadByteWithin(20 * time.Millisecond)
	if err != nil {
		t.Fatalf("ReadByteWithin: %v", err)
	}
	if ok {
		t.Fatalf("expected timeout on empty pipe")
	}
	if elapsed := time.Since(start); elapsed < 15*time.Millisecond {
		t.Fatalf("returned after %v, before the timeout", elapsed)
	}
}

func TestTTYDeviceBoundedReadReturnsPendingByte(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer func() {
		_ = r.Close()
		_ = w.Close()
	}()

	if _, err := w.Write([]byte("[B")); err != nil {
		t.Fatalf("write: %v", err)
	}
	dev := NewTTYDevice(r)
	b, ok, err := dev.ReadByteWithin(time.Second)
	if err != nil || !ok || b != '[' {
		t.Fatalf("ReadByteWithin=(%q,%v,%v) want ('[',true,nil)", b, ok, err)
	}
	b, err = dev.ReadByte()
	if err != nil || b != 'B' {
		t.Fatalf("ReadByte=(%q,%v) want ('B',nil)", b, err)
	}
}
