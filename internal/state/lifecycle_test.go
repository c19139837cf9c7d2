package state

import (
	"testing"

	"github.com/san-kum/qsim/internal/quantum"
)

func TestLifecycle_AllocateOne(t *testing.T) {
	s := NewStore()
	l := NewLifecycle(s)

	h0 := l.AllocateOne()
	h1 := l.AllocateOne()

	if h0 != 0 || h1 != 1 {
		t.Errorf("handles = %d, %d, want 0, 1", h0, h1)
	}
	if l.Count() != 2 || s.Len() != 4 {
		t.Errorf("count=%d len=%d, want 2, 4", l.Count(), s.Len())
	}
}

func TestLifecycle_AllocateMany(t *testing.T) {
	s := NewStore()
	l := NewLifecycle(s)

	handles := l.AllocateMany(3)
	if len(handles) != 3 {
		t.Fatalf("AllocateMany(3) returned %d handles", len(handles))
	}
	for i, h := range handles {
		if h != quantum.QubitHandle(i) {
			t.Errorf("handle[%d] = %d, want %d", i, h, i)
		}
	}
	if s.Len() != 8 {
		t.Errorf("state length = %d, want 8", s.Len())
	}
}

func TestLifecycle_AllocateZero(t *testing.T) {
	s := NewStore()
	l := NewLifecycle(s)
	l.AllocateMany(2)

	// Disturb the state so a spurious reset would be visible.
	v := quantum.NewBasisVector(2)
	v[0], v[3] = 0, 1
	if err := s.Replace(v); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	handles := l.AllocateMany(0)
	if len(handles) != 0 {
		t.Errorf("AllocateMany(0) returned %d handles, want 0", len(handles))
	}
	if l.Count() != 2 {
		t.Errorf("count = %d, want 2", l.Count())
	}
	if s.Amplitudes()[3] != 1 {
		t.Error("AllocateMany(0) reset the register")
	}
}

func TestLifecycle_Release(t *testing.T) {
	s := NewStore()
	l := NewLifecycle(s)
	l.AllocateMany(3)

	l.ReleaseOne(2)
	if l.Count() != 2 || s.Len() != 4 {
		t.Errorf("after release: count=%d len=%d, want 2, 4", l.Count(), s.Len())
	}
	if s.Amplitudes()[0] != 1 {
		t.Error("release did not reset remaining register to |00>")
	}

	l.ReleaseAll()
	if l.Count() != 0 || s.Len() != 1 {
		t.Errorf("after ReleaseAll: count=%d len=%d, want 0, 1", l.Count(), s.Len())
	}
}

func TestLifecycle_ReleaseEmptyIsNoOp(t *testing.T) {
	s := NewStore()
	l := NewLifecycle(s)

	l.ReleaseOne(0)
	l.ReleaseAll()

	if l.Count() != 0 || s.Len() != 1 {
		t.Errorf("release on empty register changed state: count=%d len=%d", l.Count(), s.Len())
	}
}
