// Package phy binds the PHY instances of a board and runs charger detection
// and port operations on them by ID.
package phy

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"usb2phy-go/drivers/regmap"
	"usb2phy-go/drivers/usb2phy"
	"usb2phy-go/errcode"
	"usb2phy-go/services/phy/config"
	"usb2phy-go/services/phy/internal/platform"
	"usb2phy-go/types"
	"usb2phy-go/x/logx"
	"usb2phy-go/x/timex"
)

// Op is a port operation.
type Op string

const (
	OpInit     Op = "init"
	OpExit     Op = "exit"
	OpReset    Op = "reset" // OTG port reset
	OpPowerOn  Op = "power-on"
	OpPowerOff Op = "power-off"
	OpStatus   Op = "status"
	OpPHYReset Op = "phy-reset" // pulse the PHY reset line
)

var ops = []Op{OpInit, OpExit, OpReset, OpPowerOn, OpPowerOff, OpStatus, OpPHYReset}

// ParseOp accepts the names above.
func ParseOp(s string) (Op, error) {
	for _, o := range ops {
		if string(o) == strings.ToLower(s) {
			return o, nil
		}
	}
	return "", &errcode.E{C: errcode.InvalidParams, Op: "parse op", Msg: s}
}

type entry struct {
	cfg config.PHY
	// Devices are not re-entrant; mu serialises calls on one instance.
	mu  sync.Mutex
	dev *usb2phy.Device
}

// Service owns one Device per configured PHY.
type Service struct {
	factory platform.Factory
	clk     timex.Sleeper
	log     *slog.Logger
	now     func() int64

	entries map[string]*entry
	order   []string
}

type Option func(*Service)

// WithClock replaces the wall clock used for PHY delays.
func WithClock(c timex.Sleeper) Option { return func(s *Service) { s.clk = c } }

func WithLogger(l *slog.Logger) Option { return func(s *Service) { s.log = l } }

// WithNow replaces the timestamp source for reported values.
func WithNow(now func() int64) Option { return func(s *Service) { s.now = now } }

// New validates cfg and binds every PHY through f. On failure nothing is
// kept open.
func New(cfg config.BoardConfig, f platform.Factory, opts ...Option) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Service{
		factory: f,
		clk:     timex.Real{},
		log:     logx.For(logx.ComponentService),
		now:     timex.NowMs,
		entries: make(map[string]*entry, len(cfg.PHYs)),
	}
	for _, o := range opts {
		o(s)
	}
	for _, p := range cfg.PHYs {
		d, err := s.bind(p)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("phy %s: %w", p.ID, err)
		}
		s.entries[p.ID] = &entry{cfg: p, dev: d}
		s.order = append(s.order, p.ID)
		s.log.Info("phy bound", "phy", p.ID, "compatible", p.Compatible, "reg", fmt.Sprintf("0x%x", d.Variant().Reg))
	}
	return s, nil
}

func (s *Service) bank(p config.PHY, role platform.Role, b *config.Bank) (regmap.Space, error) {
	if b == nil || (b.Size == 0 && b.Bus == "") {
		return nil, nil
	}
	return s.factory.Bank(p, role, *b)
}

func (s *Service) bind(p config.PHY) (*usb2phy.Device, error) {
	cfg := usb2phy.DefaultConfig()
	cfg.Clock = s.clk
	cfg.Logger = s.log.With("phy", p.ID)
	cfg.SoCRevision = p.SoCRevision

	var err error
	if cfg.GRF, err = s.bank(p, platform.RoleGRF, &p.GRF); err != nil {
		return nil, err
	}
	if cfg.USBGRF, err = s.bank(p, platform.RoleUSBGRF, p.USBGRF); err != nil {
		return nil, err
	}
	if cfg.PHYBase, err = s.bank(p, platform.RolePHYBase, p.PHYBase); err != nil {
		return nil, err
	}
	if cfg.VBusDetect, err = s.factory.VBusPin(p); err != nil {
		return nil, err
	}
	for name, gpio := range p.Supplies {
		port, err := usb2phy.ParsePort(name)
		if err != nil {
			return nil, err
		}
		if cfg.Supplies[port], err = s.factory.Supply(gpio); err != nil {
			return nil, err
		}
	}
	if p.ResetGPIO != "" {
		if cfg.Reset, err = s.factory.Reset(p.ResetGPIO); err != nil {
			return nil, err
		}
	}
	return usb2phy.NewAuto(cfg, p.Compatible, p.Regs()...)
}

// Close releases the factory's resources.
func (s *Service) Close() error { return s.factory.Close() }

// IDs lists the bound PHYs in configuration order.
func (s *Service) IDs() []string { return append([]string(nil), s.order...) }

func (s *Service) lookup(id string) (*entry, error) {
	e, ok := s.entries[id]
	if !ok {
		return nil, &errcode.E{C: errcode.UnknownPHY, Op: "phy", Msg: id}
	}
	return e, nil
}

// Info describes the bound PHYs.
func (s *Service) Info() []types.PHYInfo {
	out := make([]types.PHYInfo, 0, len(s.order))
	for _, id := range s.order {
		e := s.entries[id]
		v := e.dev.Variant()
		info := types.PHYInfo{
			ID:         id,
			Compatible: e.cfg.Compatible,
			Reg:        fmt.Sprintf("0x%x", v.Reg),
			Charger:    v.ChargeDetect != nil,
		}
		for p := usb2phy.PortOTG; p < usb2phy.NumPorts; p++ {
			if v.Ports[p].Defined() {
				info.Ports = append(info.Ports, p.String())
			}
		}
		out = append(out, info)
	}
	return out
}

func (s *Service) unknown(id string, err error) types.ChargerValue {
	v := types.ChargerValue{
		PHY:  id,
		Type: usb2phy.ChargerUnknown.Name(),
		Kind: usb2phy.ChargerUnknown.String(),
		TS:   s.now(),
	}
	if err != nil {
		v.Error = string(errcode.Of(err))
	}
	return v
}

// Detect runs one charger detection on PHY id. Failures are reported both
// in the value and as the error.
func (s *Service) Detect(id string) (types.ChargerValue, error) {
	e, err := s.lookup(id)
	if err != nil {
		return s.unknown(id, err), err
	}
	e.mu.Lock()
	t, err := e.dev.DetectCharger()
	e.mu.Unlock()

	v := types.ChargerValue{
		PHY:         id,
		Type:        t.Name(),
		Kind:        t.String(),
		DataCapable: t.DataCapable(),
		TS:          s.now(),
	}
	if err != nil {
		v.Error = string(errcode.Of(err))
		s.log.Warn("charger detection failed", "phy", id, "err", err)
	}
	return v, err
}

// DetectAll runs detection on every PHY concurrently and returns the values
// in configuration order. PHYs not yet started when ctx ends are reported
// with the context error; a run in progress is not interrupted.
func (s *Service) DetectAll(ctx context.Context) ([]types.ChargerValue, error) {
	out := make([]types.ChargerValue, len(s.order))
	g, ctx := errgroup.WithContext(ctx)
	for i, id := range s.order {
		i, id := i, id
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				out[i] = s.unknown(id, err)
				return err
			}
			v, err := s.Detect(id)
			out[i] = v
			return err
		})
	}
	return out, g.Wait()
}

// Port runs op on one port of PHY id. OpReset applies to the OTG port only;
// OpPHYReset ignores the port.
func (s *Service) Port(id string, port usb2phy.Port, op Op) (types.PortValue, error) {
	v := types.PortValue{PHY: id, Port: port.String(), Op: string(op)}
	e, err := s.lookup(id)
	if err == nil {
		e.mu.Lock()
		err = s.run(e.dev, port, op, &v)
		e.mu.Unlock()
	}
	v.TS = s.now()
	if err != nil {
		v.Error = string(errcode.Of(err))
		s.log.Warn("port op failed", "phy", id, "port", port.String(), "op", string(op), "err", err)
	}
	return v, err
}

func (s *Service) run(d *usb2phy.Device, port usb2phy.Port, op Op, v *types.PortValue) error {
	switch op {
	case OpInit:
		return d.InitPort(port)
	case OpExit:
		return d.ExitPort(port)
	case OpReset:
		if port != usb2phy.PortOTG {
			return &errcode.E{C: errcode.UnsupportedPort, Op: "reset", Msg: "otg port only"}
		}
		return d.ResetOTG()
	case OpPowerOn:
		return d.PowerOn(port)
	case OpPowerOff:
		return d.PowerOff(port)
	case OpPHYReset:
		return d.ResetPHY()
	case OpStatus:
		st, err := d.PortStatus(port)
		if err != nil {
			return err
		}
		fill(v, st)
		return nil
	default:
		return &errcode.E{C: errcode.InvalidParams, Op: "port", Msg: string(op)}
	}
}

func fill(v *types.PortValue, st usb2phy.PortStatus) {
	bit := func(b usb2phy.StatusBits) *bool {
		if !st.Available.Has(b) {
			return nil
		}
		on := st.Bits.Has(b)
		return &on
	}
	v.AValid = bit(usb2phy.StatusAValid)
	v.BValid = bit(usb2phy.StatusBValid)
	v.IDDig = bit(usb2phy.StatusIDDig)
	v.HostDisconnect = bit(usb2phy.StatusHostDisconnect)
	if st.HasLineState {
		ls := st.LineState
		v.LineState = &ls
	}
}
