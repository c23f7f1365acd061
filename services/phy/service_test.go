package phy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"usb2phy-go/drivers/usb2phy"
	"usb2phy-go/errcode"
	"usb2phy-go/services/phy/config"
	"usb2phy-go/services/phy/internal/platform"
	"usb2phy-go/types"
	"usb2phy-go/x/logx"
)

// noSleep is safe to share between concurrently running PHYs.
type noSleep struct{}

func (noSleep) Sleep(time.Duration) {}

func newService(t *testing.T, board string) (*Service, *platform.Sim) {
	t.Helper()
	cfg, err := config.Load(board)
	if err != nil {
		t.Fatal(err)
	}
	sim := platform.NewSim()
	s, err := New(cfg, sim, WithClock(noSleep{}), WithLogger(logx.Discard()), WithNow(func() int64 { return 42 }))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s, sim
}

func TestDetectEmbeddedBoards(t *testing.T) {
	cases := []struct {
		board, phy string
		want       types.ChargerValue
	}{
		{"rock-3a", "usb2phy0", types.ChargerValue{PHY: "usb2phy0", Type: "cdp", Kind: "USB_CDP_CHARGER", DataCapable: true, TS: 42}},
		{"rock-3a", "usb2phy1", types.ChargerValue{PHY: "usb2phy1", Type: "unknown", Kind: "INVALID_CHARGER", TS: 42}},
		{"rk3399-evb", "u2phy0", types.ChargerValue{PHY: "u2phy0", Type: "dcp", Kind: "USB_DCP_CHARGER", TS: 42}},
		{"rk3036-kylin", "usb2phy", types.ChargerValue{PHY: "usb2phy", Type: "sdp", Kind: "USB_SDP_CHARGER", DataCapable: true, TS: 42}},
		{"bench-rk3328", "u2phy", types.ChargerValue{PHY: "u2phy", Type: "floating", Kind: "USB_FLOATING_CHARGER", TS: 42}},
	}
	for _, c := range cases {
		t.Run(c.board+"/"+c.phy, func(t *testing.T) {
			s, _ := newService(t, c.board)
			got, err := s.Detect(c.phy)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Fatalf("Detect mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDetectUnknownPHY(t *testing.T) {
	s, _ := newService(t, "rock-3a")
	v, err := s.Detect("usb2phy9")
	if !errors.Is(err, errcode.UnknownPHY) {
		t.Fatalf("err = %v, want unknown_phy", err)
	}
	if v.Error != "unknown_phy" || v.Type != "unknown" {
		t.Fatalf("value = %+v", v)
	}
}

func TestDetectAllKeepsOrder(t *testing.T) {
	s, _ := newService(t, "rk3399-evb")
	got, err := s.DetectAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	var seen []string
	for _, v := range got {
		seen = append(seen, v.PHY+"="+v.Type)
	}
	if diff := cmp.Diff([]string{"u2phy0=dcp", "u2phy1=unknown"}, seen); diff != "" {
		t.Fatalf("DetectAll mismatch (-want +got):\n%s", diff)
	}
}

func TestDetectAllCancelled(t *testing.T) {
	s, _ := newService(t, "rock-3a")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	got, err := s.DetectAll(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	for _, v := range got {
		if v.Error == "" {
			t.Fatalf("%s ran after cancellation: %+v", v.PHY, v)
		}
	}
}

func TestPortOps(t *testing.T) {
	s, sim := newService(t, "rk3399-evb")

	if _, err := s.Port("u2phy0", usb2phy.PortHost, OpPowerOn); err != nil {
		t.Fatal(err)
	}
	sup, ok := sim.SupplyState("VCC5V0_HOST_EN")
	if !ok || !sup.Enabled() {
		t.Fatal("host supply not enabled")
	}
	if _, err := s.Port("u2phy0", usb2phy.PortHost, OpPowerOff); err != nil {
		t.Fatal(err)
	}
	if sup.Enabled() {
		t.Fatal("host supply still enabled")
	}

	for _, op := range []Op{OpInit, OpExit, OpReset} {
		if v, err := s.Port("u2phy0", usb2phy.PortOTG, op); err != nil || v.Error != "" {
			t.Fatalf("%s: %+v, %v", op, v, err)
		}
	}

	v, err := s.Port("u2phy0", usb2phy.PortOTG, OpStatus)
	if err != nil {
		t.Fatal(err)
	}
	if v.BValid == nil || !*v.BValid {
		t.Fatalf("otg bvalid = %v, want asserted with a charger attached", v.BValid)
	}
	if v.LineState == nil {
		t.Fatal("linestate missing")
	}
	if v.Port != "otg-port" || v.Op != "status" || v.TS != 42 {
		t.Fatalf("value = %+v", v)
	}
}

func TestPortOpErrors(t *testing.T) {
	s, _ := newService(t, "rk3399-evb")
	cases := []struct {
		id   string
		port usb2phy.Port
		op   Op
		want errcode.Code
	}{
		{"u2phy0", usb2phy.PortHost, OpReset, errcode.UnsupportedPort},
		{"u2phy0", usb2phy.PortOTG, Op("bogus"), errcode.InvalidParams},
		{"nope", usb2phy.PortOTG, OpInit, errcode.UnknownPHY},
	}
	for _, c := range cases {
		v, err := s.Port(c.id, c.port, c.op)
		if !errors.Is(err, c.want) || v.Error != string(c.want) {
			t.Fatalf("%s %v %s: %+v, %v; want %s", c.id, c.port, c.op, v, err, c.want)
		}
	}
}

func TestPHYReset(t *testing.T) {
	s, sim := newService(t, "bench-rk3328")
	if _, err := s.Port("u2phy", usb2phy.PortOTG, OpPHYReset); err != nil {
		t.Fatal(err)
	}
	r, ok := sim.ResetState("U2PHY_RESET_N")
	if !ok || r.Pulses() != 1 {
		t.Fatal("reset line not pulsed")
	}
}

func TestInfo(t *testing.T) {
	s, _ := newService(t, "rock-3a")
	want := []types.PHYInfo{
		{ID: "usb2phy0", Compatible: "rockchip,rk3568-usb2phy", Reg: "0xfe8a0000", Ports: []string{"otg-port", "host-port"}, Charger: true},
		{ID: "usb2phy1", Compatible: "rockchip,rk3568-usb2phy", Reg: "0xfe8b0000", Ports: []string{"otg-port", "host-port"}, Charger: false},
	}
	if diff := cmp.Diff(want, s.Info()); diff != "" {
		t.Fatalf("Info mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"usb2phy0", "usb2phy1"}, s.IDs()); diff != "" {
		t.Fatalf("IDs mismatch (-want +got):\n%s", diff)
	}
}

func TestNewRejects(t *testing.T) {
	sim := platform.NewSim()
	if _, err := New(config.BoardConfig{}, sim); !errors.Is(err, errcode.ConfigError) {
		t.Fatalf("empty board err = %v", err)
	}
	bad := config.BoardConfig{PHYs: []config.PHY{{
		ID:         "x",
		Compatible: "rockchip,rk3399-usb2phy",
		Reg:        []config.Addr{0x1234},
		GRF:        config.Bank{Size: 0x10000},
	}}}
	if _, err := New(bad, sim); !errors.Is(err, errcode.ConfigError) {
		t.Fatalf("unmatched reg err = %v", err)
	}
}

func TestParseOp(t *testing.T) {
	for _, o := range ops {
		got, err := ParseOp(string(o))
		if err != nil || got != o {
			t.Fatalf("ParseOp(%q) = %q, %v", o, got, err)
		}
	}
	if _, err := ParseOp("reboot"); !errors.Is(err, errcode.InvalidParams) {
		t.Fatalf("err = %v", err)
	}
}
