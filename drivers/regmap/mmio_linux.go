//go:build linux

package regmap

import (
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"

	"usb2phy-go/errcode"
)

// DevMem is the default physical memory device.
const DevMem = "/dev/mem"

// MMIO maps a physical register window through /dev/mem.
type MMIO struct {
	f    *os.File
	mem  []byte
	off  uint32 // offset of base inside the page-aligned mapping
	size uint32
	base uint64
}

// OpenMMIO maps size bytes of physical memory at base from path (DevMem if "").
func OpenMMIO(path string, base uint64, size uint32) (*MMIO, error) {
	if path == "" {
		path = DevMem
	}
	if size == 0 {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "mmio open", Msg: "zero size"}
	}
	page := uint64(os.Getpagesize())
	aligned := base &^ (page - 1)
	delta := uint32(base - aligned)
	length := (uint64(delta) + uint64(size) + page - 1) &^ (page - 1)

	f, err := os.OpenFile(path, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, errcode.Wrap(errcode.IOError, "mmio open", err)
	}
	mem, err := unix.Mmap(int(f.Fd()), int64(aligned), int(length),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, &errcode.E{C: errcode.IOError, Op: "mmio mmap", Msg: fmt.Sprintf("base 0x%x", base), Err: err}
	}
	return &MMIO{f: f, mem: mem, off: delta, size: size, base: base}, nil
}

func (m *MMIO) word(op string, off uint32) (*uint32, error) {
	if m.mem == nil {
		return nil, &errcode.E{C: errcode.IOError, Op: op, Err: ErrClosed}
	}
	if err := checkOffset(op, off, m.size); err != nil {
		return nil, err
	}
	return (*uint32)(unsafe.Pointer(&m.mem[m.off+off])), nil
}

func (m *MMIO) Read32(off uint32) (uint32, error) {
	p, err := m.word("mmio read32", off)
	if err != nil {
		return 0, err
	}
	return atomic.LoadUint32(p), nil
}

func (m *MMIO) Write32(off, val uint32) error {
	p, err := m.word("mmio write32", off)
	if err != nil {
		return err
	}
	atomic.StoreUint32(p, val)
	return nil
}

// Base returns the physical address of offset 0.
func (m *MMIO) Base() uint64 { return m.base }

// Close unmaps the window.
func (m *MMIO) Close() error {
	if m.mem == nil {
		return nil
	}
	err := unix.Munmap(m.mem)
	m.mem = nil
	if cerr := m.f.Close(); err == nil {
		err = cerr
	}
	return err
}
