// Package config describes boards: which USB2 PHY instances exist, where
// their register banks live and which GPIOs serve them.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"usb2phy-go/drivers/usb2phy"
	"usb2phy-go/errcode"
)

// BoardConfig lists the PHY instances of one board.
type BoardConfig struct {
	Board string `json:"board,omitempty"`
	PHYs  []PHY  `json:"phys"`
}

// PHY describes one PHY instance.
type PHY struct {
	ID         string `json:"id"`
	Compatible string `json:"compatible"`
	// Reg holds candidate instance addresses, tried in order.
	Reg         []Addr `json:"reg"`
	SoCRevision string `json:"soc_revision,omitempty"`

	GRF     Bank  `json:"grf"`
	USBGRF  *Bank `json:"usbgrf,omitempty"`
	PHYBase *Bank `json:"phy_base,omitempty"`

	VBusDetGPIO string            `json:"vbus_det_gpio,omitempty"`
	Supplies    map[string]string `json:"supplies,omitempty"` // port name -> gpio
	ResetGPIO   string            `json:"reset_gpio,omitempty"`

	// SimCharger selects what the host simulation reports as attached.
	SimCharger string `json:"sim_charger,omitempty"`
}

// Bank locates a register bank, either in physical memory or behind an I²C
// bridge when Bus is set.
type Bank struct {
	Base Addr   `json:"base"`
	Size uint32 `json:"size"`
	Bus  string `json:"bus,omitempty"`
	Addr uint16 `json:"addr,omitempty"`
}

// Addr is a physical address. JSON accepts a number or a "0x" string.
type Addr uint64

func (a Addr) MarshalJSON() ([]byte, error) {
	return json.Marshal(fmt.Sprintf("0x%x", uint64(a)))
}

func (a *Addr) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		s = string(b)
	}
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 64)
	if err != nil {
		return fmt.Errorf("address %s: %w", b, err)
	}
	*a = Addr(v)
	return nil
}

// Regs returns the candidate addresses as plain integers.
func (p PHY) Regs() []uint64 {
	out := make([]uint64, len(p.Reg))
	for i, r := range p.Reg {
		out[i] = uint64(r)
	}
	return out
}

// Validate checks the fields the service relies on.
func (c BoardConfig) Validate() error {
	if len(c.PHYs) == 0 {
		return invalid("no phys")
	}
	seen := map[string]bool{}
	for _, p := range c.PHYs {
		if p.ID == "" {
			return invalid("phy without id")
		}
		if seen[p.ID] {
			return invalid("duplicate phy id " + p.ID)
		}
		seen[p.ID] = true
		if p.Compatible == "" {
			return invalid(p.ID + ": compatible must be set")
		}
		if len(p.Reg) == 0 {
			return invalid(p.ID + ": reg must be set")
		}
		if p.GRF.Size == 0 && p.USBGRF == nil {
			return invalid(p.ID + ": grf bank must have a size")
		}
		for port := range p.Supplies {
			if _, err := usb2phy.ParsePort(port); err != nil {
				return invalid(p.ID + ": supply for unknown port " + port)
			}
		}
		if p.SimCharger != "" {
			var t usb2phy.ChargerType
			if err := t.UnmarshalText([]byte(p.SimCharger)); err != nil {
				return invalid(p.ID + ": sim_charger " + p.SimCharger)
			}
		}
	}
	return nil
}

// PHY returns the instance named id.
func (c BoardConfig) PHY(id string) (PHY, bool) {
	for _, p := range c.PHYs {
		if p.ID == id {
			return p, true
		}
	}
	return PHY{}, false
}

func invalid(msg string) error {
	return &errcode.E{C: errcode.ConfigError, Op: "board config", Msg: msg}
}

// DecodeJSON decodes raw JSON bytes, a string, or an already-decoded value
// into dst.
func DecodeJSON[T any](src any, dst *T) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		return json.Unmarshal(b, dst)
	}
}

// Load resolves an embedded board by name.
func Load(board string) (BoardConfig, error) {
	raw, ok := EmbeddedConfigLookup(board)
	if !ok || len(raw) == 0 {
		return BoardConfig{}, &errcode.E{C: errcode.ConfigError, Op: "load", Msg: "no embedded config for board " + board}
	}
	return parse(raw)
}

// LoadFile reads a board description from path.
func LoadFile(path string) (BoardConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return BoardConfig{}, errcode.Wrap(errcode.ConfigError, "load", err)
	}
	return parse(raw)
}

func parse(raw []byte) (BoardConfig, error) {
	var c BoardConfig
	if err := DecodeJSON(raw, &c); err != nil {
		return BoardConfig{}, errcode.Wrap(errcode.ConfigError, "decode", err)
	}
	return c, c.Validate()
}
