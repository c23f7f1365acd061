// Package dtprobe finds USB2 PHY nodes in a flattened device tree and turns
// them into board descriptions.
package dtprobe

import (
	"encoding/binary"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/platinasystems/fdt"

	"usb2phy-go/drivers/usb2phy"
	"usb2phy-go/errcode"
	"usb2phy-go/services/phy/config"
	"usb2phy-go/x/logx"
)

const (
	fdtMagic   = 0xd00dfeed
	headerSize = 40
)

// Window is a register window decoded from a reg property.
type Window struct {
	Base uint64 `json:"base"`
	Size uint32 `json:"size"`
}

// PHY is one probed PHY node.
type PHY struct {
	Name       string `json:"name"` // e.g. "usb2phy@e450"
	Path       string `json:"path"`
	Compatible string `json:"compatible"`
	// Reg is the instance identifier the variant tables are keyed on.
	Reg     uint64 `json:"reg"`
	Enabled bool   `json:"enabled"`

	GRF     *Window `json:"grf,omitempty"`      // parent syscon
	USBGRF  *Window `json:"usbgrf,omitempty"`   // rockchip,usbgrf target
	PHYBase *Window `json:"phy_base,omitempty"` // own window, for nodes outside a syscon

	Ports   []usb2phy.Port `json:"ports"`
	VBusDet bool           `json:"vbus_det"`
}

// ReadFile probes the device tree blob at path.
func ReadFile(path string) ([]PHY, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errcode.Wrap(errcode.ConfigError, "read dtb", err)
	}
	return Parse(b)
}

// Parse returns the PHY nodes of a device tree blob, sorted by path.
func Parse(b []byte) ([]PHY, error) {
	t, err := parseTree(b)
	if err != nil {
		return nil, err
	}
	w := newWalker(t)
	log := logx.For(logx.ComponentProbe)

	var out []PHY
	var bad error
	t.EachProperty("compatible", "-usb2phy", func(n *fdt.Node, _ string, value string) {
		compat, ok := pickCompatible(value)
		if !ok || bad != nil {
			return
		}
		p, err := w.phy(n, compat)
		if err != nil {
			bad = err
			return
		}
		log.Debug("phy node", "path", p.Path, "compatible", p.Compatible, "reg", fmt.Sprintf("0x%x", p.Reg))
		out = append(out, p)
	})
	if bad != nil {
		return nil, bad
	}
	slices.SortFunc(out, func(a, b PHY) int { return strings.Compare(a.Path, b.Path) })
	return out, nil
}

func parseTree(b []byte) (t *fdt.Tree, err error) {
	if len(b) < headerSize || binary.BigEndian.Uint32(b) != fdtMagic {
		return nil, &errcode.E{C: errcode.ConfigError, Op: "parse dtb", Msg: "bad magic"}
	}
	if total := binary.BigEndian.Uint32(b[4:]); int(total) > len(b) {
		return nil, &errcode.E{C: errcode.ConfigError, Op: "parse dtb", Msg: "truncated blob"}
	}
	defer func() {
		if r := recover(); r != nil {
			t, err = nil, &errcode.E{C: errcode.ConfigError, Op: "parse dtb", Msg: fmt.Sprint(r)}
		}
	}()
	t = &fdt.Tree{Debug: false, IsLittleEndian: false}
	if err := t.Parse(b); err != nil {
		return nil, errcode.Wrap(errcode.ConfigError, "parse dtb", err)
	}
	if t.RootNode == nil {
		return nil, &errcode.E{C: errcode.ConfigError, Op: "parse dtb", Msg: "no root node"}
	}
	return t, nil
}

// pickCompatible prefers a compatible the driver has tables for.
func pickCompatible(value string) (string, bool) {
	var first string
	for _, c := range strings.Split(value, "\x00") {
		if !strings.HasSuffix(c, "-usb2phy") {
			continue
		}
		if first == "" {
			first = c
		}
		if slices.Contains(usb2phy.Compatibles(), c) {
			return c, true
		}
	}
	return first, first != ""
}

type walker struct {
	t       *fdt.Tree
	parent  map[*fdt.Node]*fdt.Node
	handles map[uint32]*fdt.Node
}

func newWalker(t *fdt.Tree) *walker {
	w := &walker{t: t, parent: make(map[*fdt.Node]*fdt.Node), handles: make(map[uint32]*fdt.Node)}
	w.visit(t.RootNode, nil)
	return w
}

func (w *walker) visit(n, p *fdt.Node) {
	w.parent[n] = p
	for _, prop := range []string{"phandle", "linux,phandle"} {
		if v := n.Properties[prop]; len(v) == 4 {
			w.handles[w.t.PropUint32(v)] = n
		}
	}
	for _, c := range n.Children {
		w.visit(c, n)
	}
}

func (w *walker) phy(n *fdt.Node, compat string) (PHY, error) {
	p := PHY{
		Name:       n.Name,
		Path:       w.path(n),
		Compatible: compat,
		Enabled:    enabled(n),
	}
	cells := w.t.PropUint32Slice(n.Properties["reg"])
	if len(cells) == 0 {
		return PHY{}, &errcode.E{C: errcode.ConfigError, Op: "probe", Msg: p.Path + ": no reg"}
	}
	// With two address cells the first one is usually zero.
	p.Reg = uint64(cells[0])
	if len(cells) > 2 && cells[0] == 0 {
		p.Reg = uint64(cells[1])
	}

	if parent := w.parent[n]; parent != nil && isSyscon(parent) {
		p.GRF = w.window(parent)
	} else {
		p.PHYBase = w.window(n)
	}
	if ph := n.Properties["rockchip,usbgrf"]; len(ph) == 4 {
		target, ok := w.handles[w.t.PropUint32(ph)]
		if !ok {
			return PHY{}, &errcode.E{C: errcode.ConfigError, Op: "probe", Msg: p.Path + ": dangling rockchip,usbgrf"}
		}
		p.USBGRF = w.window(target)
	}

	p.VBusDet = hasVBusDet(n)
	for name, c := range n.Children {
		port, err := usb2phy.ParsePort(strings.SplitN(name, "@", 2)[0])
		if err != nil {
			continue
		}
		p.Ports = append(p.Ports, port)
		if hasVBusDet(c) {
			p.VBusDet = true
		}
	}
	slices.Sort(p.Ports)
	return p, nil
}

func (w *walker) path(n *fdt.Node) string {
	var parts []string
	for ; n != nil && w.parent[n] != nil; n = w.parent[n] {
		parts = append(parts, n.Name)
	}
	slices.Reverse(parts)
	return "/" + strings.Join(parts, "/")
}

// window decodes the first reg entry of n using its parent's cell sizes.
func (w *walker) window(n *fdt.Node) *Window {
	ac, sc := 2, 1
	if p := w.parent[n]; p != nil {
		ac = w.cells(p, "#address-cells", ac)
		sc = w.cells(p, "#size-cells", sc)
	}
	cells := w.t.PropUint32Slice(n.Properties["reg"])
	if ac == 0 || len(cells) < ac+sc {
		return nil
	}
	var win Window
	for _, c := range cells[:ac] {
		win.Base = win.Base<<32 | uint64(c)
	}
	if sc > 0 {
		win.Size = cells[ac+sc-1]
	}
	return &win
}

func (w *walker) cells(n *fdt.Node, prop string, def int) int {
	if v := n.Properties[prop]; len(v) == 4 {
		return int(w.t.PropUint32(v))
	}
	return def
}

func isSyscon(n *fdt.Node) bool {
	return slices.Contains(strings.Split(string(n.Properties["compatible"]), "\x00"), "syscon")
}

func enabled(n *fdt.Node) bool {
	v, ok := n.Properties["status"]
	if !ok {
		return true
	}
	s := strings.TrimRight(string(v), "\x00")
	return s == "okay" || s == "ok"
}

func hasVBusDet(n *fdt.Node) bool {
	for name := range n.Properties {
		if strings.Contains(name, "vbus-det") {
			return true
		}
	}
	return false
}

// Config converts the node into a board entry. GPIO names are not part of
// the tree and have to be added by the caller.
func (p PHY) Config(id string) config.PHY {
	c := config.PHY{
		ID:         id,
		Compatible: p.Compatible,
		Reg:        []config.Addr{config.Addr(p.Reg)},
	}
	if p.GRF != nil {
		c.GRF = bank(p.GRF)
	}
	if p.USBGRF != nil {
		b := bank(p.USBGRF)
		c.USBGRF = &b
	}
	if p.PHYBase != nil {
		b := bank(p.PHYBase)
		c.PHYBase = &b
	}
	return c
}

func bank(w *Window) config.Bank { return config.Bank{Base: config.Addr(w.Base), Size: w.Size} }

// Board builds a board description from the enabled PHYs. Node names become
// IDs, falling back to the full path when a name repeats.
func Board(name string, phys []PHY) config.BoardConfig {
	count := map[string]int{}
	for _, p := range phys {
		count[p.Name]++
	}
	b := config.BoardConfig{Board: name}
	for _, p := range phys {
		if !p.Enabled {
			continue
		}
		id := p.Name
		if count[id] > 1 {
			id = p.Path
		}
		b.PHYs = append(b.PHYs, p.Config(id))
	}
	return b
}
