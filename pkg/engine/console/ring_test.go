// Package console tests the ring buffer: eviction order, occupancy, and
// index bounds.
package console

import "testing"

func TestRing_PushAndGet(t *testing.T) {
	r := NewRing[int](3)
	if r.Len() != 0 {
		t.Fatalf("new ring Len() = %d, want 0", r.Len())
	}
	r.Push(1)
	r.Push(2)
	if got, _ := r.Get(0); got != 2 {
		t.Errorf("Get(0) = %d, want most recent 2", got)
	}
	if got, _ := r.Get(1); got != 1 {
		t.Errorf("Get(1) = %d, want 1", got)
	}
}

func TestRing_CountIsMinOfPushesAndCapacity(t *testing.T) {
	const capacity = 5
	r := NewRing[int](capacity)
	for n := 1; n <= 12; n++ {
		r.Push(n)
		want := n
		if want > capacity {
			want = capacity
		}
		if r.Len() != want {
			t.Errorf("after %d pushes Len() = %d, want %d", n, r.Len(), want)
		}
		if got, _ := r.Get(0); got != n {
			t.Errorf("after %d pushes Get(0) = %d, want %d", n, got, n)
		}
	}
}

func TestRing_EvictsExactlyOldest(t *testing.T) {
	r := NewRing[string](3)
	for _, s := range []string{"a", "b", "c"} {
		r.Push(s)
	}
	r.Push("d") // evicts "a"
	if r.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", r.Len())
	}
	want := []string{"d", "c", "b"}
	for i, w := range want {
		got, err := r.Get(i)
		if err != nil {
			t.Fatalf("Get(%d): %v", i, err)
		}
		if got != w {
			t.Errorf("Get(%d) = %q, want %q", i, got, w)
		}
	}
}

func TestRing_GetOutOfRange(t *testing.T) {
	r := NewRing[int](3)
	r.Push(1)
	for _, i := range []int{-1, 1, 3} {
		if _, err := r.Get(i); err != ErrIndexOutOfRange {
			t.Errorf("Get(%d) err = %v, want ErrIndexOutOfRange", i, err)
		}
	}
}

func TestRing_Clear(t *testing.T) {
	r := NewRing[int](2)
	r.Push(1)
	r.Push(2)
	r.Clear()
	if r.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", r.Len())
	}
	r.Push(9)
	if got, _ := r.Get(0); got != 9 {
		t.Errorf("Get(0) after Clear+Push = %d, want 9", got)
	}
}
