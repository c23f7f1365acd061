package usb2phy

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"usb2phy-go/errcode"
)

func TestInitExitPort(t *testing.T) {
	d, grf, clk := newTestDevice(t, testVariant(), nil)
	for _, p := range []Port{PortOTG, PortHost} {
		sus := d.variant.Ports[p].PhySuspend
		if err := d.ExitPort(p); err != nil {
			t.Fatal(err)
		}
		if !mustRead(t, grf.mem, sus) {
			t.Fatalf("%v not suspended after ExitPort", p)
		}
		before := clk.Elapsed
		if err := d.InitPort(p); err != nil {
			t.Fatal(err)
		}
		if mustRead(t, grf.mem, sus) {
			t.Fatalf("%v still suspended after InitPort", p)
		}
		if clk.Elapsed-before != 2*time.Millisecond {
			t.Fatalf("InitPort waited %v", clk.Elapsed-before)
		}
	}
}

func TestUnsupportedPort(t *testing.T) {
	v, err := Lookup("rockchip,rk3576-usb2phy", 0x2000)
	if err != nil {
		t.Fatal(err)
	}
	supply := &fakeSupply{}
	d, grf, clk := newTestDevice(t, v, func(c *Config) { c.Supplies[PortHost] = supply })
	calls := map[string]func() error{
		"init":      func() error { return d.InitPort(PortHost) },
		"exit":      func() error { return d.ExitPort(PortHost) },
		"power-on":  func() error { return d.PowerOn(PortHost) },
		"power-off": func() error { return d.PowerOff(PortHost) },
		"invalid":   func() error { return d.InitPort(NumPorts) },
		"status":    func() error { _, err := d.PortStatus(PortHost); return err },
	}
	for name, call := range calls {
		if err := call(); !errors.Is(err, errcode.UnsupportedPort) {
			t.Fatalf("%s: err = %v", name, err)
		}
	}
	if len(grf.log) != 0 || len(supply.calls) != 0 || clk.Elapsed != 0 {
		t.Fatal("hardware touched for an undefined port")
	}
}

func TestResetOTG(t *testing.T) {
	d, grf, clk := newTestDevice(t, testVariant(), nil)
	if err := d.ResetOTG(); err != nil {
		t.Fatal(err)
	}
	want := []access{
		{write: true, off: 0x0108, val: 0x00100000}, // clkout on
		{write: true, off: 0x0100, val: 0x01ff01d1},
		{write: true, off: 0x0100, val: 0x01ff0000},
	}
	if diff := cmp.Diff(want, grf.log, cmp.AllowUnexported(access{})); diff != "" {
		t.Fatalf("ResetOTG accesses (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]time.Duration{20 * time.Microsecond, 2 * time.Millisecond}, clk.Calls); diff != "" {
		t.Fatalf("delays (-want +got):\n%s", diff)
	}
}

func TestResetOTGWithoutClockGate(t *testing.T) {
	v := testVariant()
	v.ClkOutCtl = BitField{}
	d, grf, _ := newTestDevice(t, v, nil)
	if err := d.ResetOTG(); err != nil {
		t.Fatal(err)
	}
	if grf.writes() != 2 {
		t.Fatalf("writes = %d, want 2", grf.writes())
	}
}

func TestPower(t *testing.T) {
	otg := &fakeSupply{}
	d, grf, _ := newTestDevice(t, testVariant(), func(c *Config) { c.Supplies[PortOTG] = otg })
	if err := d.PowerOn(PortOTG); err != nil {
		t.Fatal(err)
	}
	if err := d.PowerOff(PortOTG); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]bool{true, false}, otg.calls); diff != "" {
		t.Fatalf("supply calls (-want +got):\n%s", diff)
	}
	// No supply bound: no-op.
	if err := d.PowerOn(PortHost); err != nil {
		t.Fatal(err)
	}
	if len(grf.log) != 0 {
		t.Fatal("power touched registers")
	}

	otg.err = errBus
	if err := d.PowerOn(PortOTG); !errors.Is(err, errcode.IOError) {
		t.Fatalf("err = %v", err)
	}
}

func TestResetPHY(t *testing.T) {
	d, _, clk := newTestDevice(t, testVariant(), nil)
	if err := d.ResetPHY(); err != nil {
		t.Fatal(err)
	}
	if clk.Elapsed != 0 {
		t.Fatal("reset without a line slept")
	}

	rst := &fakeReset{clk: clk}
	d, _, _ = newTestDevice(t, testVariant(), func(c *Config) {
		c.Reset = rst
		c.Clock = clk
	})
	if err := d.ResetPHY(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]time.Duration{0}, rst.assertAt); diff != "" {
		t.Fatalf("assert times (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]time.Duration{20 * time.Microsecond}, rst.deassertAt); diff != "" {
		t.Fatalf("deassert times (-want +got):\n%s", diff)
	}
	if clk.Elapsed != 120*time.Microsecond {
		t.Fatalf("elapsed %v", clk.Elapsed)
	}

	rst.err = errBus
	if err := d.ResetPHY(); !errors.Is(err, errcode.IOError) {
		t.Fatalf("err = %v", err)
	}
}

func TestPortStatus(t *testing.T) {
	d, grf, _ := newTestDevice(t, testVariant(), nil)
	grf.mem.Poke(0x0130, 1<<10|2<<4|3<<16|1<<19)
	grf.mem.Poke(offBValid, 1)

	otg, err := d.PortStatus(PortOTG)
	if err != nil {
		t.Fatal(err)
	}
	want := PortStatus{
		Bits:         StatusAValid | StatusBValid,
		Available:    StatusAValid | StatusBValid | StatusIDDig,
		LineState:    2,
		HasLineState: true,
	}
	if diff := cmp.Diff(want, otg); diff != "" {
		t.Fatalf("otg status (-want +got):\n%s", diff)
	}

	host, err := d.PortStatus(PortHost)
	if err != nil {
		t.Fatal(err)
	}
	if !host.Bits.Has(StatusHostDisconnect) || host.Available.Has(StatusBValid) || host.LineState != 3 {
		t.Fatalf("host status = %+v", host)
	}
}

func TestParsePort(t *testing.T) {
	for in, want := range map[string]Port{
		"otg-port": PortOTG, "OTG": PortOTG, "host-port": PortHost, " host ": PortHost,
	} {
		got, err := ParsePort(in)
		if err != nil || got != want {
			t.Fatalf("ParsePort(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParsePort("usb3"); !errors.Is(err, errcode.InvalidParams) {
		t.Fatalf("err = %v", err)
	}
	if PortHost.String() != "host-port" {
		t.Fatal(PortHost.String())
	}

	var p Port
	if err := p.UnmarshalText([]byte("host")); err != nil || p != PortHost {
		t.Fatalf("UnmarshalText = %v, %v", p, err)
	}
	if b, _ := PortOTG.MarshalText(); string(b) != "otg-port" {
		t.Fatalf("MarshalText = %q", b)
	}
	if err := p.UnmarshalText([]byte("usb3")); err == nil {
		t.Fatal("usb3 accepted")
	}
}
