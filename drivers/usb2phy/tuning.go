package usb2phy

import (
	"usb2phy-go/drivers/regmap"
	"usb2phy-go/errcode"
)

// SoC revisions that select alternate tuning.
const (
	RevisionPX30S    = "px30s"
	RevisionRK3308BS = "rk3308bs"
)

// regOp is one tuning step: a plain write, or a masked update when mask != 0.
type regOp struct {
	off, mask, val uint32
}

func apply(s RegisterSpace, ops []regOp) error {
	for _, op := range ops {
		var err error
		if op.mask == 0 {
			err = s.Write32(op.off, op.val)
		} else {
			err = regmap.Update(s, op.off, op.mask, op.val)
		}
		if err != nil {
			return errcode.Wrap(errcode.IOError, "tuning", err)
		}
	}
	return nil
}

func (d *Device) phyRegs() (RegisterSpace, error) {
	if d.phyBase == nil {
		return nil, &errcode.E{C: errcode.ConfigError, Op: "tuning", Msg: "phy base not mapped"}
	}
	return d.phyBase, nil
}

func alwaysSDP(*Device) (ChargerType, bool) { return ChargerSDP, true }

func tuneRK322x(d *Device) error {
	// Pre-emphasis in non-chirp state for the PHY0 OTG port.
	if d.variant.Reg != 0x760 {
		return nil
	}
	return apply(d.regs, []regOp{{0x76c, 0, 0x00070004}})
}

func tuneRK3308(d *Device) error {
	if d.rev != RevisionRK3308BS {
		return nil
	}
	return apply(d.regs, []regOp{
		{0x000, regmap.GenMask(2, 0), 1 << 2}, // otg pre-emphasis, non-chirp
		{0x004, regmap.GenMask(7, 5), 0x40},   // otg squelch 100 mV
		{0x008, 1 << 0, 1},
		{0x400, regmap.GenMask(2, 0), 1 << 2}, // host pre-emphasis, non-chirp
		{0x404, regmap.GenMask(7, 5), 0x40},   // host squelch 100 mV
		{0x408, 1 << 0, 1},
	})
}

func tuneRK3328(d *Device) error {
	if d.rev == RevisionPX30S {
		return apply(d.regs, []regOp{
			{0x8000, regmap.GenMask(2, 0), 1 << 2},
			{0x8004, regmap.GenMask(7, 5), 0x40},
			{0x8008, 1 << 0, 1},
			{0x8400, regmap.GenMask(2, 0), 1 << 2},
			{0x8404, regmap.GenMask(7, 5), 0x40},
			{0x8408, 1 << 0, 1},
		})
	}
	return apply(d.regs, []regOp{
		{0x2c, 0, 0xffff0400}, // debug mode
		{0x00, 0, 0x00070004}, // otg pre-emphasis, non-chirp
		{0x30, 0, 0x00070004}, // host pre-emphasis, non-chirp
	})
}

func tuneRV1103B(d *Device) error {
	phy, err := d.phyRegs()
	if err != nil {
		return err
	}
	return apply(phy, []regOp{
		{0x030, regmap.GenMask(2, 0), 0x07},
		{0x040, regmap.GenMask(5, 3), 0x01 << 3},
		{0x064, regmap.GenMask(6, 3), 0},
		{0x100, 1 << 6, 0}, // differential receiver off
		{0x11c, regmap.GenMask(4, 0), 0x17},
		{0x124, regmap.GenMask(4, 2), 0x03 << 2},
		{0x1a4, regmap.GenMask(7, 4), 0x01 << 4},
		{0x1b4, regmap.GenMask(7, 4), 0x01 << 4},
		{0x070, 1 << 2, 1 << 2}, // single ended disconnect detect
		{0x060, regmap.GenMask(1, 0), 0},
		{0x064, 1 << 7, 1 << 7},
		{0x068, 1 << 0, 0},
	})
}

func tuneRV1106(d *Device) error {
	phy, err := d.phyRegs()
	if err != nil {
		return err
	}
	// Single ended host disconnect detect.
	return apply(phy, []regOp{{0x70, 1 << 2, 1 << 2}})
}

func tuneRK3506(d *Device) error {
	phy, err := d.phyRegs()
	if err != nil {
		return err
	}
	return apply(phy, []regOp{
		{0x030, 1 << 2, 0},
		{0x430, 1 << 2, 0},
		{0x030, regmap.GenMask(6, 4), 0x05 << 4},
		{0x430, regmap.GenMask(6, 4), 0x05 << 4},
		{0x094, regmap.GenMask(6, 3), 0x03 << 3},
		{0x494, regmap.GenMask(6, 3), 0x03 << 3},
	})
}

func tuneRK3528(d *Device) error {
	phy, err := d.phyRegs()
	if err != nil {
		return err
	}
	return apply(phy, []regOp{
		{0x030, 1 << 2, 0},
		{0x430, 1 << 2, 0},
		{0x030, regmap.GenMask(6, 4), 0},
		{0x430, regmap.GenMask(6, 4), 0},
		{0x094, regmap.GenMask(6, 3), 0x03 << 3},
		{0x41c, regmap.GenMask(7, 2), 0x27 << 2}, // output clock on
	})
}

func tuneRK3562(d *Device) error {
	phy, err := d.phyRegs()
	if err != nil {
		return err
	}
	return apply(phy, []regOp{
		{0x030, 1 << 2, 0},
		{0x430, 1 << 2, 0},
		{0x000, regmap.GenMask(2, 0), 0x04},
		{0x400, regmap.GenMask(2, 0), 0x04},
		{0x030, regmap.GenMask(6, 4), 0x05 << 4},
		{0x430, regmap.GenMask(6, 4), 0x05 << 4},
	})
}

// siddqTune powers the analog block, resets the PHY, then raises the HS DC
// level by 5.89% and sets 2x pre-emphasis current.
func siddqTune(d *Device, ctl, dc uint32) error {
	if err := apply(d.regs, []regOp{{ctl, 0, regmap.GenMask(29, 29)}}); err != nil {
		return err
	}
	if err := d.ResetPHY(); err != nil {
		return err
	}
	return apply(d.regs, []regOp{
		{dc, 0, regmap.GenMask(27, 24) | 0x0900},
		{ctl, 0, regmap.GenMask(20, 19) | 0x0010},
	})
}

func tuneRK3576(d *Device) error {
	switch d.variant.Reg {
	case 0x0000:
		return siddqTune(d, 0x0010, 0x000c)
	case 0x2000:
		return siddqTune(d, 0x2010, 0x200c)
	}
	return nil
}

func tuneRK3588(d *Device) error { return siddqTune(d, 0x0008, 0x0004) }
