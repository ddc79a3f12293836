package main

import "testing"

func TestRingBufferTap(t *testing.T) {
	r := newRingBuffer(7)

	// read before write, the way the delay effects use it
	for i := 1; i <= 10000; i++ {
		for d := 1; d < r.Len(); d++ {
			want := float64(i - d)
			if i-d < 1 {
				want = 0 // never pushed
			}
			if got := r.Tap(d); got != want {
				t.Fatalf("before push %d, Tap(%d) = %f, want %f", i, d, got, want)
			}
		}
		r.Push(float64(i))
	}
}

func TestRingBufferTapClamps(t *testing.T) {
	r := newRingBuffer(8)
	for i := 1; i <= 20; i++ {
		r.Push(float64(i))
	}

	if r.Tap(0) != r.Tap(1) {
		t.Fatal("Tap(0) not clamped to 1")
	}
	if r.Tap(100) != r.Tap(7) {
		t.Fatal("oversized delay not clamped to capacity-1")
	}
}

func TestRingBufferOldest(t *testing.T) {
	r := newRingBuffer(5)
	for i := 1; i <= 12; i++ {
		r.Push(float64(i))
		// the next push will overwrite the value from 5 pushes ago
		if i > 5 {
			if got := r.Oldest(); got != float64(i-4) {
				t.Fatalf("after %d pushes, Oldest() = %f, want %d", i, got, i-4)
			}
		}
	}
}
