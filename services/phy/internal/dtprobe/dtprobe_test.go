package dtprobe

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"usb2phy-go/drivers/usb2phy"
	"usb2phy-go/errcode"
	"usb2phy-go/services/phy/config"
)

func TestParseFindsPHYs(t *testing.T) {
	got, err := Parse(blob(boardTree()))
	if err != nil {
		t.Fatal(err)
	}
	want := []PHY{
		{
			Name:       "usb2phy@e450",
			Path:       "/syscon@ff770000/usb2phy@e450",
			Compatible: "rockchip,rk3399-usb2phy",
			Reg:        0xe450,
			Enabled:    true,
			GRF:        &Window{Base: 0xff770000, Size: 0x10000},
			Ports:      []usb2phy.Port{usb2phy.PortOTG, usb2phy.PortHost},
		},
		{
			Name:       "usb2phy@e460",
			Path:       "/syscon@ff770000/usb2phy@e460",
			Compatible: "rockchip,rk3399-usb2phy",
			Reg:        0xe460,
			GRF:        &Window{Base: 0xff770000, Size: 0x10000},
			Ports:      []usb2phy.Port{usb2phy.PortOTG},
		},
		{
			Name:       "usb2phy@fe8a0000",
			Path:       "/usb2phy@fe8a0000",
			Compatible: "rockchip,rk3568-usb2phy",
			Reg:        0xfe8a0000,
			Enabled:    true,
			USBGRF:     &Window{Base: 0xfdca0000, Size: 0x8000},
			PHYBase:    &Window{Base: 0xfe8a0000, Size: 0x10000},
			Ports:      []usb2phy.Port{usb2phy.PortOTG, usb2phy.PortHost},
			VBusDet:    true,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestBoardFromProbe(t *testing.T) {
	phys, err := Parse(blob(boardTree()))
	if err != nil {
		t.Fatal(err)
	}
	b := Board("probed", phys)
	if err := b.Validate(); err != nil {
		t.Fatalf("probed board invalid: %v", err)
	}
	want := config.BoardConfig{
		Board: "probed",
		PHYs: []config.PHY{
			{
				ID:         "usb2phy@e450",
				Compatible: "rockchip,rk3399-usb2phy",
				Reg:        []config.Addr{0xe450},
				GRF:        config.Bank{Base: 0xff770000, Size: 0x10000},
			},
			{
				ID:         "usb2phy@fe8a0000",
				Compatible: "rockchip,rk3568-usb2phy",
				Reg:        []config.Addr{0xfe8a0000},
				USBGRF:     &config.Bank{Base: 0xfdca0000, Size: 0x8000},
				PHYBase:    &config.Bank{Base: 0xfe8a0000, Size: 0x10000},
			},
		},
	}
	if diff := cmp.Diff(want, b); diff != "" {
		t.Fatalf("Board mismatch (-want +got):\n%s", diff)
	}

	// Every probed instance resolves to a variant table.
	for _, p := range b.PHYs {
		if _, err := usb2phy.Lookup(p.Compatible, p.Regs()...); err != nil {
			t.Fatalf("%s: %v", p.ID, err)
		}
	}
}

func TestBoardDisambiguatesNames(t *testing.T) {
	phys := []PHY{
		{Name: "usb2phy@0", Path: "/a/usb2phy@0", Enabled: true, Compatible: "rockchip,rk3576-usb2phy", GRF: &Window{Size: 0x4000}},
		{Name: "usb2phy@0", Path: "/b/usb2phy@0", Enabled: true, Compatible: "rockchip,rk3576-usb2phy", GRF: &Window{Size: 0x4000}},
	}
	b := Board("", phys)
	if len(b.PHYs) != 2 || b.PHYs[0].ID != "/a/usb2phy@0" || b.PHYs[1].ID != "/b/usb2phy@0" {
		t.Fatalf("ids = %+v", b.PHYs)
	}
}

func TestPickCompatible(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"rockchip,rk3399-usb2phy\x00", "rockchip,rk3399-usb2phy", true},
		{"vendor,board-usb2phy\x00rockchip,rk3328-usb2phy\x00", "rockchip,rk3328-usb2phy", true},
		{"vendor,board-usb2phy\x00", "vendor,board-usb2phy", true},
		{"rockchip,rk3568-usb2phy-grf\x00syscon\x00", "", false},
	}
	for _, c := range cases {
		got, ok := pickCompatible(c.in)
		if got != c.want || ok != c.ok {
			t.Fatalf("pickCompatible(%q) = %q, %v; want %q, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestParseRejectsBadBlobs(t *testing.T) {
	good := blob(boardTree())

	badStruct := append([]byte(nil), good...)
	binary.BigEndian.PutUint32(badStruct[8:], uint32(len(good)+64))

	cases := map[string][]byte{
		"empty":       nil,
		"bad magic":   append([]byte{0, 0, 0, 0}, good[4:]...),
		"truncated":   good[:len(good)/2],
		"struct past": badStruct,
	}
	for name, b := range cases {
		if _, err := Parse(b); !errors.Is(err, errcode.ConfigError) {
			t.Fatalf("%s: err = %v, want config_error", name, err)
		}
	}
}

func TestParseNodeErrors(t *testing.T) {
	noReg := &node{kids: []*node{{name: "usb2phy@1", props: []prop{{"compatible", str("rockchip,rk3328-usb2phy")}}}}}
	dangling := &node{kids: []*node{{
		name: "usb2phy@fe8a0000",
		props: []prop{
			{"compatible", str("rockchip,rk3568-usb2phy")},
			{"reg", u32(0, 0xfe8a0000, 0, 0x10000)},
			{"rockchip,usbgrf", u32(0x99)},
		},
	}}}
	for name, tree := range map[string]*node{"no reg": noReg, "dangling usbgrf": dangling} {
		if _, err := Parse(blob(tree)); !errors.Is(err, errcode.ConfigError) {
			t.Fatalf("%s: err = %v, want config_error", name, err)
		}
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.dtb")
	if err := os.WriteFile(path, blob(boardTree()), 0o600); err != nil {
		t.Fatal(err)
	}
	phys, err := ReadFile(path)
	if err != nil || len(phys) != 3 {
		t.Fatalf("ReadFile = %d phys, %v", len(phys), err)
	}
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.dtb")); !errors.Is(err, errcode.ConfigError) {
		t.Fatalf("missing file err = %v", err)
	}
}
