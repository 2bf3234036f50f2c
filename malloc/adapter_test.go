package malloc

import "testing"
import "unsafe"

import s "github.com/bnclabs/gosettings"

func TestAdapt(t *testing.T) {
	arena := NewArena("adapter", s.Settings{"capacity": int64(1024 * 1024)})
	adapter := Adapt[int64](arena)
	if adapter.Mallocer() != arena {
		t.Errorf("expected adapter bound to arena")
	}
	// adapters over the same allocator compare equal.
	if adapter != Adapt[int64](arena) {
		t.Errorf("expected equal adapters")
	}
	other := NewArena("other", s.Settings{"capacity": int64(1024 * 1024)})
	if adapter == Adapt[int64](other) {
		t.Errorf("expected unequal adapters")
	}
	// panic case
	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("expected panic")
			}
		}()
		Adapt[int64](nil)
	}()
	other.Release()
	arena.Release()
}

func TestAdapterAllocate(t *testing.T) {
	arena := NewArena("adapter", s.Settings{"capacity": int64(1024 * 1024)})
	adapter := Adapt[int64](arena)
	elems, err := adapter.Allocate(100)
	if err != nil {
		t.Fatalf("unexpected %v", err)
	} else if len(elems) != 100 {
		t.Errorf("expected %v, got %v", 100, len(elems))
	} else if x := uintptr(unsafe.Pointer(&elems[0])) % 8; x != 0 {
		t.Errorf("expected 8 byte aligned, got %v", x)
	}
	for i := range elems {
		elems[i] = int64(i)
	}
	if x := arena.Allocated(); x != 800 {
		t.Errorf("expected %v, got %v", 800, x)
	}
	if x, err := adapter.Allocate(0); err != nil {
		t.Errorf("unexpected %v", err)
	} else if x != nil {
		t.Errorf("expected nil slice")
	}
	arena.Release()
}

func TestAdapterDeallocate(t *testing.T) {
	arena := NewArena("adapter", s.Settings{"capacity": int64(1024 * 1024)})
	adapter := Adapt[int64](arena)
	elems, err := adapter.Allocate(100)
	if err != nil {
		t.Fatalf("unexpected %v", err)
	}
	allocated := arena.Allocated()
	adapter.Deallocate(elems, 100)
	// memory goes back only in bulk, with Reset or Release.
	if x := arena.Allocated(); x != allocated {
		t.Errorf("expected %v, got %v", allocated, x)
	}
	arena.Reset()
	if x := arena.Allocated(); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	}
	arena.Release()
}

func TestRebind(t *testing.T) {
	arena := NewArena("adapter", s.Settings{"capacity": int64(1024 * 1024)})
	ints := Adapt[int64](arena)
	bs := Rebind[int64, byte](ints)
	elems, err := bs.Allocate(64)
	if err != nil {
		t.Fatalf("unexpected %v", err)
	} else if len(elems) != 64 {
		t.Errorf("expected %v, got %v", 64, len(elems))
	}
	if Same(ints, bs) == false {
		t.Errorf("expected same allocator across rebind")
	}
	other := NewArena("other", s.Settings{"capacity": int64(1024 * 1024)})
	if Same(ints, Adapt[byte](other)) == true {
		t.Errorf("expected different allocators")
	}
	other.Release()
	arena.Release()
}
