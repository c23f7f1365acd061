package usb2phy

import (
	"fmt"
	"strings"

	"usb2phy-go/errcode"
)

// Port selects one of the logical ports of a PHY instance.
type Port uint8

const (
	PortOTG Port = iota
	PortHost
	NumPorts
)

func (p Port) String() string {
	switch p {
	case PortOTG:
		return "otg-port"
	case PortHost:
		return "host-port"
	default:
		return "invalid-port"
	}
}

// ParsePort accepts the device-tree child node names and their short forms.
func ParsePort(s string) (Port, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "otg-port", "otg":
		return PortOTG, nil
	case "host-port", "host":
		return PortHost, nil
	}
	return 0, &errcode.E{C: errcode.InvalidParams, Op: "parse port", Msg: s}
}

func (p Port) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Port) UnmarshalText(b []byte) error {
	v, err := ParsePort(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// PortRegs holds the per-port fields. Absent fields are zero.
type PortRegs struct {
	PhySuspend BitField

	BValidDetEn  BitField
	BValidDetSt  BitField
	BValidDetClr BitField

	LSDetEn  BitField
	LSDetSt  BitField
	LSDetClr BitField

	IDDigOutput BitField
	IDDigEn     BitField

	IDFallDetEn  BitField
	IDFallDetSt  BitField
	IDFallDetClr BitField
	IDRiseDetEn  BitField
	IDRiseDetSt  BitField
	IDRiseDetClr BitField

	UTMIAValid         BitField
	UTMIBValid         BitField
	UTMIIDDig          BitField
	UTMILineState      BitField
	UTMIHostDisconnect BitField

	VBusDetEn BitField
}

// Defined reports whether the variant wires this port at all.
func (r *PortRegs) Defined() bool { return r.PhySuspend.Present() }

func (r *PortRegs) fields() []BitField {
	return []BitField{
		r.PhySuspend,
		r.BValidDetEn, r.BValidDetSt, r.BValidDetClr,
		r.LSDetEn, r.LSDetSt, r.LSDetClr,
		r.IDDigOutput, r.IDDigEn,
		r.IDFallDetEn, r.IDFallDetSt, r.IDFallDetClr,
		r.IDRiseDetEn, r.IDRiseDetSt, r.IDRiseDetClr,
		r.UTMIAValid, r.UTMIBValid, r.UTMIIDDig, r.UTMILineState, r.UTMIHostDisconnect,
		r.VBusDetEn,
	}
}

// ChargeDetectRegs holds the battery-charging detection fields.
type ChargeDetectRegs struct {
	OpMode BitField

	CPDet  BitField // primary detect comparator
	DCPDet BitField // secondary detect comparator
	DPDet  BitField // data contact

	IDMSinkEn BitField
	IDPSinkEn BitField
	IDPSrcEn  BitField
	RDMPdwnEn BitField
	VDMSrcEn  BitField
	VDPSrcEn  BitField
}

func (c *ChargeDetectRegs) fields() []BitField {
	return []BitField{
		c.OpMode, c.CPDet, c.DCPDet, c.DPDet,
		c.IDMSinkEn, c.IDPSinkEn, c.IDPSrcEn, c.RDMPdwnEn, c.VDMSrcEn, c.VDPSrcEn,
	}
}

// TuningFunc applies one-time analog parameter writes after bring-up.
type TuningFunc func(d *Device) error

// Variant is the register layout of one PHY instance on one SoC. Tables are
// package-level data and must not be mutated after registration.
type Variant struct {
	// Reg is the instance address from the device tree "reg" property.
	Reg uint64
	// NumPorts is how many entries of Ports are defined.
	NumPorts int

	ClkOutCtl    BitField
	Ports        [NumPorts]PortRegs
	ChargeDetect *ChargeDetectRegs

	Tuning TuningFunc
	// ChargerOverride runs after the VBUS presence check. Returning true
	// ends detection with the given type.
	ChargerOverride func(d *Device) (ChargerType, bool)
}

// Validate checks every present field of the table.
func (v *Variant) Validate() error {
	check := func(fs []BitField) error {
		for _, f := range fs {
			if !f.Present() {
				continue
			}
			if err := f.Validate(); err != nil {
				return err
			}
		}
		return nil
	}
	if v.ClkOutCtl.Present() {
		if err := v.ClkOutCtl.Validate(); err != nil {
			return err
		}
	}
	defined := 0
	for i := range v.Ports {
		if v.Ports[i].Defined() {
			defined++
		}
		if err := check(v.Ports[i].fields()); err != nil {
			return err
		}
	}
	if defined != v.NumPorts {
		return &errcode.E{C: errcode.ConfigError, Op: "variant", Msg: fmt.Sprintf("reg 0x%x: %d ports defined, table says %d", v.Reg, defined, v.NumPorts)}
	}
	if v.ChargeDetect != nil {
		return check(v.ChargeDetect.fields())
	}
	return nil
}

// Port returns the register map for p, or UnsupportedPort.
func (v *Variant) Port(p Port) (*PortRegs, error) {
	if p >= NumPorts || !v.Ports[p].Defined() {
		return nil, &errcode.E{C: errcode.UnsupportedPort, Msg: p.String()}
	}
	return &v.Ports[p], nil
}
