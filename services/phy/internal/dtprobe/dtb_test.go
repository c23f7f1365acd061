package dtprobe

import (
	"bytes"
	"encoding/binary"
)

// node and prop describe a device tree to be flattened by blob.
type node struct {
	name  string
	props []prop
	kids  []*node
}

type prop struct {
	name string
	val  []byte
}

func u32(vs ...uint32) []byte {
	b := make([]byte, 4*len(vs))
	for i, v := range vs {
		binary.BigEndian.PutUint32(b[4*i:], v)
	}
	return b
}

func str(ss ...string) []byte {
	var b []byte
	for _, s := range ss {
		b = append(append(b, s...), 0)
	}
	return b
}

// blob flattens root into a version 17 DTB.
func blob(root *node) []byte {
	var st, strs bytes.Buffer
	offs := map[string]int{}
	put := func(v uint32) { st.Write(u32(v)) }
	pad := func() {
		for st.Len()%4 != 0 {
			st.WriteByte(0)
		}
	}
	var emit func(n *node)
	emit = func(n *node) {
		put(0x1)
		st.WriteString(n.name)
		st.WriteByte(0)
		pad()
		for _, p := range n.props {
			off, ok := offs[p.name]
			if !ok {
				off = strs.Len()
				offs[p.name] = off
				strs.WriteString(p.name)
				strs.WriteByte(0)
			}
			put(0x3)
			put(uint32(len(p.val)))
			put(uint32(off))
			st.Write(p.val)
			pad()
		}
		for _, k := range n.kids {
			emit(k)
		}
		put(0x2)
	}
	emit(root)
	put(0x9)

	total := headerSize + st.Len() + strs.Len()
	hdr := u32(
		fdtMagic,
		uint32(total),
		headerSize,                    // struct
		uint32(headerSize+st.Len()),   // strings
		0,                             // reserve map
		17, 16, 0,
		uint32(strs.Len()),
		uint32(st.Len()),
	)
	out := append(hdr, st.Bytes()...)
	return append(out, strs.Bytes()...)
}

// boardTree holds an rk3399-style PHY inside its GRF and an rk3568-style PHY
// with a separate USB GRF.
func boardTree() *node {
	return &node{
		props: []prop{
			{"#address-cells", u32(2)},
			{"#size-cells", u32(2)},
		},
		kids: []*node{
			{name: "aliases", props: []prop{{"gpio0", str("/gpio@ff720000")}}},
			{
				name: "gpio@ff720000",
				props: []prop{{"gpio-controller", nil}},
				kids: []*node{
					{name: "USB_OTG_VBUS_DET@5", props: []prop{{"gpio-pin-desc", nil}, {"input", nil}}},
					{name: "VCC5V0_HOST_EN@6", props: []prop{{"gpio-pin-desc", nil}, {"output-low", nil}}},
				},
			},
			{
				name: "syscon@ff770000",
				props: []prop{
					{"compatible", str("rockchip,rk3399-grf", "syscon", "simple-mfd")},
					{"reg", u32(0, 0xff770000, 0, 0x10000)},
					{"#address-cells", u32(1)},
					{"#size-cells", u32(1)},
				},
				kids: []*node{
					{
						name:  "usb2phy@e450",
						props: []prop{{"compatible", str("rockchip,rk3399-usb2phy")}, {"reg", u32(0xe450, 0x10)}},
						kids:  []*node{{name: "otg-port"}, {name: "host-port"}},
					},
					{
						name: "usb2phy@e460",
						props: []prop{
							{"compatible", str("rockchip,rk3399-usb2phy")},
							{"reg", u32(0xe460, 0x10)},
							{"status", str("disabled")},
						},
						kids: []*node{{name: "otg-port"}},
					},
				},
			},
			{
				name: "syscon@fdca0000",
				props: []prop{
					{"compatible", str("rockchip,rk3568-usb2phy-grf", "syscon")},
					{"reg", u32(0, 0xfdca0000, 0, 0x8000)},
					{"phandle", u32(0x42)},
				},
			},
			{
				name: "usb2phy@fe8a0000",
				props: []prop{
					{"compatible", str("rockchip,rk3568-usb2phy")},
					{"reg", u32(0, 0xfe8a0000, 0, 0x10000)},
					{"rockchip,usbgrf", u32(0x42)},
					{"status", str("okay")},
				},
				kids: []*node{
					{name: "host-port"},
					{name: "otg-port", props: []prop{{"vbus-det-gpios", u32(1, 5, 0)}}},
				},
			},
		},
	}
}
