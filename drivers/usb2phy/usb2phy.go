// Package usb2phy drives the Innosilicon USB2 PHY found in Rockchip SoCs:
// per-port suspend and reset, VBUS supplies, one-time analog tuning and
// BC1.2 charger type detection by register polling.
//
// A Device is not safe for concurrent use. Distinct Devices are independent.
package usb2phy

import (
	"log/slog"

	"usb2phy-go/errcode"
	"usb2phy-go/x/logx"
	"usb2phy-go/x/timex"
)

// VBusSensor reports the level of a board VBUS detect input.
type VBusSensor interface {
	Get() (bool, error)
}

// Supply is a switchable VBUS regulator.
type Supply interface {
	SetEnabled(on bool) error
}

// ResetControl drives the PHY reset line.
type ResetControl interface {
	Assert() error
	Deassert() error
}

// Config carries the resources for one PHY instance.
type Config struct {
	// GRF is the primary register bank. USBGRF, when set, is used instead.
	GRF    RegisterSpace
	USBGRF RegisterSpace
	// PHYBase is the PHY's own register window, needed by some tuning hooks.
	PHYBase RegisterSpace

	Variant *Variant

	VBusDetect VBusSensor
	Supplies   [NumPorts]Supply
	Reset      ResetControl

	// SoCRevision selects revision-specific tuning ("px30s", "rk3308bs").
	SoCRevision string

	Clock  timex.Sleeper
	Logger *slog.Logger
}

// DefaultConfig returns a Config with the wall clock and the package logger.
// Register banks and the variant must still be supplied.
func DefaultConfig() Config {
	return Config{
		Clock:  timex.Real{},
		Logger: logx.For(logx.ComponentPHY),
	}
}

// Validate checks the fields New relies on.
func (c Config) Validate() error {
	if c.GRF == nil && c.USBGRF == nil {
		return &errcode.E{C: errcode.ConfigError, Op: "validate", Msg: "no register bank"}
	}
	if c.Variant == nil {
		return &errcode.E{C: errcode.ConfigError, Op: "validate", Msg: "no variant"}
	}
	return c.Variant.Validate()
}

// Device is one PHY instance bound to its register space and variant table.
type Device struct {
	regs    RegisterSpace
	phyBase RegisterSpace
	variant *Variant

	vbus     VBusSensor
	supplies [NumPorts]Supply
	reset    ResetControl
	rev      string

	clk timex.Sleeper
	log *slog.Logger
	chg *slog.Logger // charger detection

	// Working budgets of the current detection run.
	dcdRetries     uint8
	primaryRetries uint8
}

// New builds a Device from cfg. It performs no hardware access.
func New(cfg Config) (*Device, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	regs := cfg.GRF
	if cfg.USBGRF != nil {
		regs = cfg.USBGRF
	}
	clk := cfg.Clock
	if clk == nil {
		clk = timex.Real{}
	}
	lg := cfg.Logger
	if lg == nil {
		lg = logx.For(logx.ComponentPHY)
	}
	lg = lg.With("reg", cfg.Variant.Reg)
	return &Device{
		regs:     regs,
		phyBase:  cfg.PHYBase,
		variant:  cfg.Variant,
		vbus:     cfg.VBusDetect,
		supplies: cfg.Supplies,
		reset:    cfg.Reset,
		rev:      cfg.SoCRevision,
		clk:      clk,
		log:      lg,
		chg:      logx.Sub(lg, logx.ComponentCharger),
	}, nil
}

// NewAuto looks up the variant for compatible and the candidate reg values,
// builds the Device and runs the variant's tuning hook once.
func NewAuto(cfg Config, compatible string, regs ...uint64) (*Device, error) {
	v, err := Lookup(compatible, regs...)
	if err != nil {
		return nil, err
	}
	cfg.Variant = v
	d, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if err := d.Tune(); err != nil {
		return nil, err
	}
	return d, nil
}

// Tune runs the variant's tuning hook, if any.
func (d *Device) Tune() error {
	if d.variant.Tuning == nil {
		return nil
	}
	if err := d.variant.Tuning(d); err != nil {
		return errcode.Wrap(errcode.Of(err), "tune", err)
	}
	d.log.Debug("tuning applied")
	return nil
}

// Variant returns the active register table.
func (d *Device) Variant() *Variant { return d.variant }

// Regs returns the register space selected at construction.
func (d *Device) Regs() RegisterSpace { return d.regs }

// ReadField returns the raw value of f from the selected register space.
func (d *Device) ReadField(f BitField) (uint32, error) { return ReadField(d.regs, f) }

func (d *Device) set(f BitField, en bool) error { return WriteProperty(d.regs, f, en) }

func (d *Device) get(f BitField) (bool, error) { return ReadProperty(d.regs, f) }
