package regmap

import (
	"errors"
	"testing"

	"usb2phy-go/errcode"
)

func TestGenMask(t *testing.T) {
	cases := []struct {
		hi, lo uint8
		want   uint32
	}{
		{0, 0, 0x00000001},
		{8, 0, 0x000001ff},
		{3, 0, 0x0000000f},
		{7, 6, 0x000000c0},
		{29, 29, 0x20000000},
		{31, 0, 0xffffffff},
		{31, 31, 0x80000000},
	}
	for _, c := range cases {
		if got := GenMask(c.hi, c.lo); got != c.want {
			t.Fatalf("GenMask(%d,%d) = %#x, want %#x", c.hi, c.lo, got, c.want)
		}
	}
}

func TestMemPlainStore(t *testing.T) {
	m := NewMem(0x100, false)
	if err := m.Write32(0x10, 0xdeadbeef); err != nil {
		t.Fatal(err)
	}
	v, err := m.Read32(0x10)
	if err != nil || v != 0xdeadbeef {
		t.Fatalf("Read32 = %#x, %v", v, err)
	}
	r, w := m.Counts()
	if r != 1 || w != 1 {
		t.Fatalf("counts = %d/%d, want 1/1", r, w)
	}
}

func TestMemHiWordMask(t *testing.T) {
	m := NewMem(0, true)
	m.Poke(0x0, 0x00ff_00f0)

	// Only bits 3..0 are unlocked; bits 7..4 keep their value.
	if err := m.Write32(0x0, 0x000f_0005); err != nil {
		t.Fatal(err)
	}
	if got := m.Peek(0x0); got != 0x00ff_00f5 {
		t.Fatalf("after masked write = %#x, want 0x00ff00f5", got)
	}

	// No mask bits means no change.
	if err := m.Write32(0x0, 0x0000_ffff); err != nil {
		t.Fatal(err)
	}
	if got := m.Peek(0x0); got != 0x00ff_00f5 {
		t.Fatalf("unmasked write changed register: %#x", got)
	}
}

func TestMemOffsetChecks(t *testing.T) {
	m := NewMem(0x10, false)
	if _, err := m.Read32(0x2); !errors.Is(err, ErrUnaligned) || !errors.Is(err, errcode.IOError) {
		t.Fatalf("unaligned read err = %v", err)
	}
	if err := m.Write32(0x10, 1); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("out of range write err = %v", err)
	}
	if _, err := m.Read32(0xc); err != nil {
		t.Fatalf("last word should be readable: %v", err)
	}
}

func TestMemFailHook(t *testing.T) {
	m := NewMem(0, false)
	boom := errcode.Wrap(errcode.IOError, "sim", errors.New("bus down"))
	m.Fail = func(write bool, off uint32) error {
		if write && off == 0x8 {
			return boom
		}
		return nil
	}
	if err := m.Write32(0x4, 1); err != nil {
		t.Fatal(err)
	}
	if err := m.Write32(0x8, 1); !errors.Is(err, errcode.IOError) {
		t.Fatalf("err = %v, want io_error", err)
	}
}

func TestUpdateHelpers(t *testing.T) {
	m := NewMem(0, false)
	m.Poke(0x30, 0xf0)

	if err := Update(m, 0x30, GenMask(6, 4), 0x5<<4); err != nil {
		t.Fatal(err)
	}
	if got := m.Peek(0x30); got != 0xd0 {
		t.Fatalf("Update = %#x, want 0xd0", got)
	}
	if err := ClearBits(m, 0x30, 1<<7); err != nil {
		t.Fatal(err)
	}
	if err := SetBits(m, 0x30, 1<<2); err != nil {
		t.Fatal(err)
	}
	if got := m.Peek(0x30); got != 0x54 {
		t.Fatalf("after clear/set = %#x, want 0x54", got)
	}

	// A no-op update does not write.
	_, before := m.Counts()
	if err := SetBits(m, 0x30, 1<<2); err != nil {
		t.Fatal(err)
	}
	if _, after := m.Counts(); after != before {
		t.Fatalf("no-op update wrote: %d -> %d", before, after)
	}
}
