package usb2phy

import (
	"usb2phy-go/drivers/regmap"
	"usb2phy-go/errcode"
)

// RegisterSpace is a 32-bit register bank (simulated, /dev/mem or I²C bridged).
type RegisterSpace = regmap.Space

// WriteProperty drives f to its enabled or disabled code with a single masked
// write. No read-modify-write is performed.
func WriteProperty(s RegisterSpace, f BitField, en bool) error {
	if !f.Present() {
		return &errcode.E{C: errcode.FieldAbsent, Op: "write property"}
	}
	return errcode.Wrap(errcode.IOError, "write property "+f.String(), s.Write32(f.Offset, f.word(en)))
}

// ReadProperty reports whether f currently holds exactly its enabled code.
// Fields whose two codes are equal always read as enabled.
func ReadProperty(s RegisterSpace, f BitField) (bool, error) {
	v, err := ReadField(s, f)
	if err != nil {
		return false, err
	}
	return v == f.Enable, nil
}

// ReadField returns the raw value of the bit range.
func ReadField(s RegisterSpace, f BitField) (uint32, error) {
	if !f.Present() {
		return 0, &errcode.E{C: errcode.FieldAbsent, Op: "read property"}
	}
	raw, err := s.Read32(f.Offset)
	if err != nil {
		return 0, errcode.Wrap(errcode.IOError, "read property "+f.String(), err)
	}
	return f.extract(raw), nil
}
