// Package regmap provides 32-bit register spaces for PHY and GRF banks:
// an in-memory simulation, a /dev/mem mapping on Linux and a bridge over an
// I²C bus.
//
// All spaces address registers by byte offset and move whole 32-bit words.
// Offsets must be word aligned.
package regmap

import (
	"errors"
	"fmt"

	"usb2phy-go/errcode"
)

// Space is a register bank addressed by byte offset.
type Space interface {
	Read32(off uint32) (uint32, error)
	Write32(off, val uint32) error
}

var (
	ErrUnaligned  = errors.New("unaligned register offset")
	ErrOutOfRange = errors.New("register offset out of range")
	ErrClosed     = errors.New("register space closed")
)

// checkOffset validates a word access inside a bank of size bytes (0 = unbounded).
func checkOffset(op string, off, size uint32) error {
	if off%4 != 0 {
		return &errcode.E{C: errcode.IOError, Op: op, Msg: fmt.Sprintf("offset 0x%x", off), Err: ErrUnaligned}
	}
	if size != 0 && (off >= size || size-off < 4) {
		return &errcode.E{C: errcode.IOError, Op: op, Msg: fmt.Sprintf("offset 0x%x size 0x%x", off, size), Err: ErrOutOfRange}
	}
	return nil
}

// ---------------- Read-modify-write helpers ----------------

// Update replaces the bits selected by mask with val. Unchanged registers are
// not rewritten.
func Update(s Space, off, mask, val uint32) error {
	cur, err := s.Read32(off)
	if err != nil {
		return err
	}
	next := (cur &^ mask) | (val & mask)
	if next == cur {
		return nil
	}
	return s.Write32(off, next)
}

// SetBits sets bits in the register at off.
func SetBits(s Space, off, bits uint32) error { return Update(s, off, bits, bits) }

// ClearBits clears bits in the register at off.
func ClearBits(s Space, off, bits uint32) error { return Update(s, off, bits, 0) }

// GenMask returns a mask with bits hi..lo set. hi must be >= lo and < 32.
func GenMask(hi, lo uint8) uint32 {
	return (^uint32(0) >> (31 - hi)) &^ ((uint32(1) << lo) - 1)
}
