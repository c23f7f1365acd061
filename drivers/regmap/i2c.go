package regmap

import (
	"sync"

	"tinygo.org/x/drivers"

	"usb2phy-go/errcode"
)

// I2C reaches a register bank through an I²C bridge. The bridge takes a
// 16-bit big-endian register offset followed by 32-bit little-endian data.
// PHYs sharing a bank share one I2C, so accesses are serialised.
type I2C struct {
	bus  drivers.I2C
	addr uint16
	size uint32

	// mu guards the frame buffers across fill, Tx and decode.
	mu sync.Mutex
	// Fixed buffers to avoid per-call heap allocations.
	w [6]byte
	r [4]byte
}

// NewI2C binds a bridge at addr on bus. size bounds the offsets (0 = 64 KiB).
func NewI2C(bus drivers.I2C, addr uint16, size uint32) *I2C {
	if size == 0 || size > 0x10000 {
		size = 0x10000
	}
	return &I2C{bus: bus, addr: addr, size: size}
}

func (b *I2C) Read32(off uint32) (uint32, error) {
	if err := checkOffset("i2c read32", off, b.size); err != nil {
		return 0, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.w[0] = byte(off >> 8)
	b.w[1] = byte(off)
	if err := b.bus.Tx(b.addr, b.w[:2], b.r[:4]); err != nil {
		return 0, errcode.Wrap(errcode.IOError, "i2c read32", err)
	}
	return uint32(b.r[0]) | uint32(b.r[1])<<8 | uint32(b.r[2])<<16 | uint32(b.r[3])<<24, nil
}

func (b *I2C) Write32(off, val uint32) error {
	if err := checkOffset("i2c write32", off, b.size); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.w[0] = byte(off >> 8)
	b.w[1] = byte(off)
	b.w[2] = byte(val)
	b.w[3] = byte(val >> 8)
	b.w[4] = byte(val >> 16)
	b.w[5] = byte(val >> 24)
	if err := b.bus.Tx(b.addr, b.w[:6], nil); err != nil {
		return errcode.Wrap(errcode.IOError, "i2c write32", err)
	}
	return nil
}
