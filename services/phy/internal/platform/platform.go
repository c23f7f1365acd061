// Package platform turns board descriptions into the register banks, pins,
// supplies and reset lines a PHY Device needs.
package platform

import (
	"usb2phy-go/drivers/regmap"
	"usb2phy-go/drivers/usb2phy"
	"usb2phy-go/services/phy/config"
)

// Role names which of a PHY's banks is being opened.
type Role uint8

const (
	RoleGRF Role = iota
	RoleUSBGRF
	RolePHYBase
)

func (r Role) String() string {
	switch r {
	case RoleGRF:
		return "grf"
	case RoleUSBGRF:
		return "usbgrf"
	case RolePHYBase:
		return "phy_base"
	default:
		return "unknown"
	}
}

// Factory supplies hardware resources. Resources are shared: asking twice for
// the same bank or GPIO returns the same object.
type Factory interface {
	Bank(p config.PHY, role Role, b config.Bank) (regmap.Space, error)
	// VBusPin returns nil when the PHY has no VBUS detect GPIO.
	VBusPin(p config.PHY) (usb2phy.VBusSensor, error)
	Supply(gpio string) (usb2phy.Supply, error)
	Reset(gpio string) (usb2phy.ResetControl, error)
	Close() error
}

// ActiveRole is the role of the bank that carries the PHY's control and
// status fields.
func ActiveRole(p config.PHY) Role {
	if p.USBGRF != nil {
		return RoleUSBGRF
	}
	return RoleGRF
}

type bankKey struct {
	base uint64
	bus  string
	addr uint16
}

func keyOf(b config.Bank) bankKey {
	if b.Bus != "" {
		return bankKey{bus: b.Bus, addr: b.Addr}
	}
	return bankKey{base: uint64(b.Base)}
}
