package usb2phy

import (
	"errors"
	"testing"
	"time"

	"usb2phy-go/drivers/regmap"
	"usb2phy-go/x/logx"
	"usb2phy-go/x/timex"
)

// Status registers of the test layout. Each holds one sensed bit.
const (
	offBValid = 0x0120
	offCPDet  = 0x0124
	offDCPDet = 0x0128
	offDPDet  = 0x012c
)

// testVariant keeps every field in its own bit range so restore and
// bundle state can be checked independently.
func testVariant() *Variant {
	return &Variant{
		Reg:       0x100,
		NumPorts:  2,
		ClkOutCtl: BitField{0x0108, 4, 4, 1, 0},
		Ports: [NumPorts]PortRegs{
			PortOTG: {
				PhySuspend:    BitField{0x0100, 8, 0, 0, 0x1d1},
				UTMIAValid:    BitField{0x0130, 10, 10, 0, 1},
				UTMIBValid:    BitField{offBValid, 0, 0, 0, 1},
				UTMIIDDig:     BitField{0x0130, 6, 6, 0, 1},
				UTMILineState: BitField{0x0130, 5, 4, 0, 1},
			},
			PortHost: {
				PhySuspend:         BitField{0x0104, 8, 0, 0, 0x1d1},
				UTMILineState:      BitField{0x0130, 17, 16, 0, 1},
				UTMIHostDisconnect: BitField{0x0130, 19, 19, 0, 1},
			},
		},
		ChargeDetect: &ChargeDetectRegs{
			OpMode:    BitField{0x0110, 3, 0, 5, 1},
			CPDet:     BitField{offCPDet, 0, 0, 0, 1},
			DCPDet:    BitField{offDCPDet, 0, 0, 0, 1},
			DPDet:     BitField{offDPDet, 0, 0, 0, 1},
			IDMSinkEn: BitField{0x0108, 8, 8, 0, 1},
			IDPSinkEn: BitField{0x0108, 7, 7, 0, 1},
			IDPSrcEn:  BitField{0x0108, 9, 9, 0, 1},
			RDMPdwnEn: BitField{0x0108, 10, 10, 0, 1},
			VDMSrcEn:  BitField{0x0108, 12, 12, 0, 1},
			VDPSrcEn:  BitField{0x0108, 11, 11, 0, 1},
		},
	}
}

type access struct {
	write bool
	off   uint32
	val   uint32
}

// fakeGRF is a GRF bank whose status registers are driven by sense
// functions of the per-offset read count (1-based).
type fakeGRF struct {
	mem   *regmap.Mem
	sense map[uint32]func(n int) bool
	reads map[uint32]int
	log   []access
	fail  func(write bool, off uint32) error
}

func newFakeGRF() *fakeGRF {
	return &fakeGRF{
		mem:   regmap.NewMem(0x1000, true),
		sense: map[uint32]func(int) bool{},
		reads: map[uint32]int{},
	}
}

func (f *fakeGRF) Read32(off uint32) (uint32, error) {
	if f.fail != nil {
		if err := f.fail(false, off); err != nil {
			return 0, err
		}
	}
	f.log = append(f.log, access{off: off})
	if s, ok := f.sense[off]; ok {
		f.reads[off]++
		if s(f.reads[off]) {
			return 1, nil
		}
		return 0, nil
	}
	return f.mem.Read32(off)
}

func (f *fakeGRF) Write32(off, val uint32) error {
	if f.fail != nil {
		if err := f.fail(true, off); err != nil {
			return err
		}
	}
	f.log = append(f.log, access{write: true, off: off, val: val})
	return f.mem.Write32(off, val)
}

func (f *fakeGRF) writes() int {
	n := 0
	for _, a := range f.log {
		if a.write {
			n++
		}
	}
	return n
}

// always senses a constant level.
func always(v bool) func(int) bool { return func(int) bool { return v } }

// at asserts only on the listed reads.
func at(reads ...int) func(int) bool {
	return func(n int) bool {
		for _, r := range reads {
			if r == n {
				return true
			}
		}
		return false
	}
}

type fakePin struct {
	level bool
	err   error
	reads int
}

func (p *fakePin) Get() (bool, error) {
	p.reads++
	return p.level, p.err
}

type fakeSupply struct {
	calls []bool
	err   error
}

func (s *fakeSupply) SetEnabled(on bool) error {
	s.calls = append(s.calls, on)
	return s.err
}

type fakeReset struct {
	clk        *timex.Recorder
	assertAt   []time.Duration
	deassertAt []time.Duration
	err        error
}

func (r *fakeReset) Assert() error {
	r.assertAt = append(r.assertAt, r.clk.Elapsed)
	return r.err
}

func (r *fakeReset) Deassert() error {
	r.deassertAt = append(r.deassertAt, r.clk.Elapsed)
	return nil
}

var errBus = errors.New("bus stalled")

// newTestDevice builds a Device on a fake GRF with a recording clock.
func newTestDevice(t *testing.T, v *Variant, mutate func(*Config)) (*Device, *fakeGRF, *timex.Recorder) {
	t.Helper()
	grf := newFakeGRF()
	clk := &timex.Recorder{}
	cfg := DefaultConfig()
	cfg.GRF = grf
	cfg.Variant = v
	cfg.Clock = clk
	cfg.Logger = logx.Discard()
	if mutate != nil {
		mutate(&cfg)
	}
	d, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return d, grf, clk
}

// mustRead reads a property from the fake's backing memory.
func mustRead(t *testing.T, s RegisterSpace, f BitField) bool {
	t.Helper()
	on, err := ReadProperty(s, f)
	if err != nil {
		t.Fatalf("ReadProperty(%v): %v", f, err)
	}
	return on
}
