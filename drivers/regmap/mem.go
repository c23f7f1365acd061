package regmap

import "sync"

// Mem is a sparse in-memory register bank used by host builds and tests.
//
// With HiWordMask set, writes follow the GRF convention: the upper half-word
// of the written value selects which lower half-word bits change, and the
// upper half of the stored word is left alone. Peek/Poke bypass that logic
// and model hardware-driven status bits.
type Mem struct {
	mu         sync.Mutex
	regs       map[uint32]uint32
	size       uint32
	hiWordMask bool

	// Fail, when non-nil, is consulted before every access.
	Fail func(write bool, off uint32) error

	reads, writes int
}

// NewMem returns a bank of size bytes (0 = unbounded).
func NewMem(size uint32, hiWordMask bool) *Mem {
	return &Mem{regs: make(map[uint32]uint32), size: size, hiWordMask: hiWordMask}
}

func (m *Mem) Read32(off uint32) (uint32, error) {
	if err := checkOffset("read32", off, m.size); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		if err := m.Fail(false, off); err != nil {
			return 0, err
		}
	}
	m.reads++
	return m.regs[off], nil
}

func (m *Mem) Write32(off, val uint32) error {
	if err := checkOffset("write32", off, m.size); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		if err := m.Fail(true, off); err != nil {
			return err
		}
	}
	m.writes++
	if !m.hiWordMask {
		m.regs[off] = val
		return nil
	}
	cur := m.regs[off]
	mask := val >> 16
	low := (cur &^ mask) | (val & mask)
	m.regs[off] = (cur & 0xffff0000) | (low & 0x0000ffff)
	return nil
}

// Peek returns the stored word without counting an access.
func (m *Mem) Peek(off uint32) uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.regs[off]
}

// Poke stores a raw word without masking or counting.
func (m *Mem) Poke(off, val uint32) {
	m.mu.Lock()
	m.regs[off] = val
	m.mu.Unlock()
}

// PokeBits replaces the bits under mask, leaving the rest of the word.
func (m *Mem) PokeBits(off, mask, val uint32) {
	m.mu.Lock()
	m.regs[off] = (m.regs[off] &^ mask) | (val & mask)
	m.mu.Unlock()
}

// Counts reports how many reads and writes reached the bank.
func (m *Mem) Counts() (reads, writes int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reads, m.writes
}
