package malloc

import "testing"

func TestDefaultsettings(t *testing.T) {
	setts := Defaultsettings()
	if x := setts.Int64("blocksize"); x != Defaultblocksize {
		t.Errorf("expected %v, got %v", Defaultblocksize, x)
	}
	if x := setts.Int64("capacity"); x <= 0 || x > Maxarenasize {
		t.Errorf("unexpected capacity %v", x)
	}
	if x := setts.String("allocator"); x != "malloc" {
		t.Errorf("expected %v, got %v", "malloc", x)
	}
}

func TestGetsysmem(t *testing.T) {
	total, used, free := getsysmem()
	if total > 0 && used > total {
		t.Errorf("used %v exceeds total %v", used, total)
	}
	if total > 0 && free > total {
		t.Errorf("free %v exceeds total %v", free, total)
	}
}
