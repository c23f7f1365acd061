package usb2phy

import (
	"fmt"

	"usb2phy-go/drivers/regmap"
	"usb2phy-go/errcode"
)

// BitField names one hardware property as a bit range of a 32-bit register
// plus the codes that mean "disabled" and "enabled" for it.
//
// The zero value is an absent field: the variant does not wire that property.
type BitField struct {
	Offset  uint32
	High    uint8
	Low     uint8
	Disable uint32
	Enable  uint32
}

// Present reports whether the variant defines this field.
func (f BitField) Present() bool { return f != BitField{} }

// Width returns the number of bits in the range.
func (f BitField) Width() uint8 { return f.High - f.Low + 1 }

// Mask returns GENMASK(High, Low).
func (f BitField) Mask() uint32 { return regmap.GenMask(f.High, f.Low) }

// Validate checks the range and that both encodings fit the field.
func (f BitField) Validate() error {
	if f.High < f.Low || f.High > 31 {
		return &errcode.E{C: errcode.InvalidField, Msg: fmt.Sprintf("bits %d:%d at 0x%x", f.High, f.Low, f.Offset)}
	}
	limit := f.Mask() >> f.Low
	if f.Disable&^limit != 0 || f.Enable&^limit != 0 {
		return &errcode.E{C: errcode.InvalidField, Msg: fmt.Sprintf("encoding %#x/%#x exceeds %d bits at 0x%x", f.Disable, f.Enable, f.Width(), f.Offset)}
	}
	return nil
}

// word builds the value written for en: the field code in place plus the
// write-enable mask for the same bits in the upper half-word.
func (f BitField) word(en bool) uint32 {
	code := f.Disable
	if en {
		code = f.Enable
	}
	mask := f.Mask()
	return (code<<f.Low)&mask | mask<<writeEnableShift
}

// extract pulls the field out of a raw register value.
func (f BitField) extract(raw uint32) uint32 { return (raw & f.Mask()) >> f.Low }

func (f BitField) String() string {
	if !f.Present() {
		return "absent"
	}
	return fmt.Sprintf("0x%04x[%d:%d]", f.Offset, f.High, f.Low)
}
