package platform

import (
	"errors"
	"sync"

	"usb2phy-go/drivers/regmap"
	"usb2phy-go/drivers/usb2phy"
	"usb2phy-go/errcode"
	"usb2phy-go/services/phy/config"
)

// Sim is a host-side Factory. Banks are GRF-style in-memory registers, I²C
// banks sit behind simulated bridges and every GPIO is a fake. A PHY with a
// sim_charger entry gets a charger model on its active bank.
type Sim struct {
	mu       sync.Mutex
	banks    map[bankKey]*regmap.Mem
	buses    map[string]*SimBus
	pins     map[string]*FakePin
	supplies map[string]*FakeSupply
	resets   map[string]*FakeReset
	chargers map[string]*Charger // by PHY id
	vbusPins map[string]*FakePin // by PHY id
}

func NewSim() *Sim {
	return &Sim{
		banks:    make(map[bankKey]*regmap.Mem),
		buses:    make(map[string]*SimBus),
		pins:     make(map[string]*FakePin),
		supplies: make(map[string]*FakeSupply),
		resets:   make(map[string]*FakeReset),
		chargers: make(map[string]*Charger),
		vbusPins: make(map[string]*FakePin),
	}
}

func (s *Sim) Bank(p config.PHY, role Role, b config.Bank) (regmap.Space, error) {
	s.mu.Lock()
	k := keyOf(b)
	mem, ok := s.banks[k]
	if !ok {
		mem = regmap.NewMem(b.Size, true)
		s.banks[k] = mem
	}
	var space regmap.Space = mem
	if b.Bus != "" {
		bus, ok := s.buses[b.Bus]
		if !ok {
			bus = NewSimBus()
			s.buses[b.Bus] = bus
		}
		bus.Attach(b.Addr, mem)
		space = regmap.NewI2C(bus, b.Addr, b.Size)
	}
	s.mu.Unlock()

	if p.SimCharger == "" || role != ActiveRole(p) {
		return space, nil
	}
	var t usb2phy.ChargerType
	if err := t.UnmarshalText([]byte(p.SimCharger)); err != nil {
		return nil, err
	}
	v, err := usb2phy.Lookup(p.Compatible, p.Regs()...)
	if err != nil {
		return nil, err
	}
	c := NewCharger(space, mem, v, t)
	s.mu.Lock()
	s.chargers[p.ID] = c
	s.mu.Unlock()
	return c, nil
}

// VBusPin reads high whenever the PHY's simulated charger is attached.
func (s *Sim) VBusPin(p config.PHY) (usb2phy.VBusSensor, error) {
	if p.VBusDetGPIO == "" {
		return nil, nil
	}
	var t usb2phy.ChargerType
	if p.SimCharger != "" {
		if err := t.UnmarshalText([]byte(p.SimCharger)); err != nil {
			return nil, err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	pin, ok := s.pins[p.VBusDetGPIO]
	if !ok {
		pin = &FakePin{}
		pin.Set(t != usb2phy.ChargerUnknown)
		s.pins[p.VBusDetGPIO] = pin
	}
	s.vbusPins[p.ID] = pin
	return pin, nil
}

func (s *Sim) Supply(gpio string) (usb2phy.Supply, error) {
	if gpio == "" {
		return nil, &errcode.E{C: errcode.UnknownPin, Op: "supply", Msg: "empty gpio name"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sup, ok := s.supplies[gpio]
	if !ok {
		sup = &FakeSupply{}
		s.supplies[gpio] = sup
	}
	return sup, nil
}

func (s *Sim) Reset(gpio string) (usb2phy.ResetControl, error) {
	if gpio == "" {
		return nil, &errcode.E{C: errcode.UnknownPin, Op: "reset", Msg: "empty gpio name"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.resets[gpio]
	if !ok {
		r = &FakeReset{}
		s.resets[gpio] = r
	}
	return r, nil
}

func (s *Sim) Close() error { return nil }

// Plug attaches t to PHY id's charger model and drives its VBUS detect pin.
// ChargerUnknown unplugs. It reports false when id has no charger model.
func (s *Sim) Plug(id string, t usb2phy.ChargerType) bool {
	s.mu.Lock()
	c, ok := s.chargers[id]
	pin := s.vbusPins[id]
	s.mu.Unlock()
	if !ok {
		return false
	}
	c.Attach(t)
	if pin != nil {
		pin.Set(t != usb2phy.ChargerUnknown)
	}
	return true
}

// Mem returns the simulated bank backing b, if it has been opened.
func (s *Sim) Mem(b config.Bank) (*regmap.Mem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.banks[keyOf(b)]
	return m, ok
}

// Pin returns a fake pin by GPIO name, if it has been handed out.
func (s *Sim) Pin(gpio string) (*FakePin, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pins[gpio]
	return p, ok
}

// SupplyState returns a fake supply by GPIO name, if it has been handed out.
func (s *Sim) SupplyState(gpio string) (*FakeSupply, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.supplies[gpio]
	return p, ok
}

// ResetState returns a fake reset line by GPIO name, if it has been handed out.
func (s *Sim) ResetState(gpio string) (*FakeReset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.resets[gpio]
	return r, ok
}

// ----------------------------- I²C bridge ------------------------------------

var errNack = errors.New("i2c: no device at address")

// SimBus implements tinygo drivers.I2C for register bridges. Each address
// maps to a bank; frames carry a 16-bit big-endian offset and, for writes,
// 32-bit little-endian data.
type SimBus struct {
	mu   sync.Mutex
	devs map[uint16]*regmap.Mem
}

func NewSimBus() *SimBus { return &SimBus{devs: make(map[uint16]*regmap.Mem)} }

// Attach places mem at addr, replacing any previous device.
func (b *SimBus) Attach(addr uint16, mem *regmap.Mem) {
	b.mu.Lock()
	b.devs[addr] = mem
	b.mu.Unlock()
}

func (b *SimBus) Tx(addr uint16, w, r []byte) error {
	b.mu.Lock()
	mem, ok := b.devs[addr]
	b.mu.Unlock()
	if !ok {
		return errNack
	}
	if len(w) < 2 {
		return &errcode.E{C: errcode.InvalidParams, Op: "i2c tx", Msg: "short frame"}
	}
	off := uint32(w[0])<<8 | uint32(w[1])
	switch {
	case len(w) == 6 && len(r) == 0:
		v := uint32(w[2]) | uint32(w[3])<<8 | uint32(w[4])<<16 | uint32(w[5])<<24
		return mem.Write32(off, v)
	case len(w) == 2 && len(r) == 4:
		v, err := mem.Read32(off)
		if err != nil {
			return err
		}
		r[0], r[1], r[2], r[3] = byte(v), byte(v>>8), byte(v>>16), byte(v>>24)
		return nil
	default:
		return &errcode.E{C: errcode.InvalidParams, Op: "i2c tx", Msg: "unexpected frame"}
	}
}

// ----------------------------- GPIO fakes ------------------------------------

// FakePin is a settable input level.
type FakePin struct {
	mu    sync.RWMutex
	level bool
	err   error
}

func (p *FakePin) Set(level bool) {
	p.mu.Lock()
	p.level = level
	p.mu.Unlock()
}

// Fail makes subsequent reads return err (nil clears).
func (p *FakePin) Fail(err error) {
	p.mu.Lock()
	p.err = err
	p.mu.Unlock()
}

func (p *FakePin) Get() (bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.level, p.err
}

// FakeSupply records the regulator state.
type FakeSupply struct {
	mu      sync.Mutex
	on      bool
	toggles int
}

func (s *FakeSupply) SetEnabled(on bool) error {
	s.mu.Lock()
	if s.on != on {
		s.toggles++
	}
	s.on = on
	s.mu.Unlock()
	return nil
}

func (s *FakeSupply) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.on
}

func (s *FakeSupply) Toggles() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.toggles
}

// FakeReset counts completed assert/deassert pulses.
type FakeReset struct {
	mu       sync.Mutex
	asserted bool
	pulses   int
}

func (r *FakeReset) Assert() error {
	r.mu.Lock()
	r.asserted = true
	r.mu.Unlock()
	return nil
}

func (r *FakeReset) Deassert() error {
	r.mu.Lock()
	if r.asserted {
		r.pulses++
	}
	r.asserted = false
	r.mu.Unlock()
	return nil
}

func (r *FakeReset) Pulses() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pulses
}
