package platform

import (
	"sync"

	"usb2phy-go/drivers/regmap"
	"usb2phy-go/drivers/usb2phy"
)

// Charger models a BC1.2 port attached to a simulated PHY. Reads of the
// status fields reflect the attached type and whichever detection sources
// the driver has switched on; everything else passes through.
type Charger struct {
	space regmap.Space
	mem   *regmap.Mem
	v     *usb2phy.Variant

	mu       sync.Mutex
	attached usb2phy.ChargerType
}

// NewCharger wraps space. mem must be the bank space reads from, so source
// enables can be inspected without counting as accesses.
func NewCharger(space regmap.Space, mem *regmap.Mem, v *usb2phy.Variant, t usb2phy.ChargerType) *Charger {
	return &Charger{space: space, mem: mem, v: v, attached: t}
}

// Attach swaps the attached charger; ChargerUnknown unplugs it.
func (c *Charger) Attach(t usb2phy.ChargerType) {
	c.mu.Lock()
	c.attached = t
	c.mu.Unlock()
}

func (c *Charger) Attached() usb2phy.ChargerType {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.attached
}

func (c *Charger) Write32(off, val uint32) error { return c.space.Write32(off, val) }

func (c *Charger) Read32(off uint32) (uint32, error) {
	raw, err := c.space.Read32(off)
	if err != nil {
		return 0, err
	}
	t := c.Attached()
	present := t != usb2phy.ChargerUnknown

	raw = overlay(raw, off, c.v.Ports[usb2phy.PortOTG].UTMIBValid, present)

	cd := c.v.ChargeDetect
	if cd == nil {
		return raw, nil
	}
	if c.on(cd.IDPSrcEn) {
		raw = overlay(raw, off, cd.DPDet, present && t != usb2phy.ChargerFloating)
	}
	if c.on(cd.VDPSrcEn) {
		raw = overlay(raw, off, cd.CPDet, t == usb2phy.ChargerDCP || t == usb2phy.ChargerCDP)
	}
	if c.on(cd.VDMSrcEn) && cd.DCPDet != cd.CPDet {
		raw = overlay(raw, off, cd.DCPDet, t == usb2phy.ChargerDCP)
	}
	return raw, nil
}

func (c *Charger) on(f usb2phy.BitField) bool {
	if !f.Present() {
		return false
	}
	return (c.mem.Peek(f.Offset)&f.Mask())>>f.Low == f.Enable
}

// overlay forces f's bits in raw to its enable or disable code when raw is
// the word holding f.
func overlay(raw, off uint32, f usb2phy.BitField, en bool) uint32 {
	if !f.Present() || f.Offset != off {
		return raw
	}
	code := f.Disable
	if en {
		code = f.Enable
	}
	m := f.Mask()
	return raw&^m | (code<<f.Low)&m
}
