//go:build linux

package platform

import (
	"errors"
	"fmt"
	"sync"

	"github.com/platinasystems/gpio"

	"usb2phy-go/drivers/regmap"
	"usb2phy-go/drivers/usb2phy"
	"usb2phy-go/errcode"
	"usb2phy-go/services/phy/config"
	"usb2phy-go/services/phy/internal/dtprobe"
)

// Options configures the hardware factory.
type Options struct {
	// DevMem overrides regmap.DevMem.
	DevMem string
	// DTB is parsed for GPIO aliases and pins. When empty the running
	// kernel's tree under /proc/device-tree is used.
	DTB string
}

// Hardware maps banks through /dev/mem or i2c-dev and resolves GPIOs by name
// from the device tree.
type Hardware struct {
	opts Options

	mu    sync.Mutex
	mmio  map[bankKey]*regmap.MMIO
	buses map[string]*DevI2C
	i2c   map[bankKey]*regmap.I2C
}

// NewHardware loads the GPIO pin map and returns an empty factory.
func NewHardware(opts Options) (Factory, error) {
	if err := loadGPIO(opts); err != nil {
		return nil, err
	}
	return &Hardware{
		opts:  opts,
		mmio:  make(map[bankKey]*regmap.MMIO),
		buses: make(map[string]*DevI2C),
		i2c:   make(map[bankKey]*regmap.I2C),
	}, nil
}

// loadGPIO reads the pin map from opts.DTB, or from the kernel when unset.
var loadGPIO = func(opts Options) error {
	if opts.DTB != "" {
		return dtprobe.LoadGPIO(opts.DTB)
	}
	return dtprobe.LoadKernelGPIO()
}

func (h *Hardware) Bank(p config.PHY, role Role, b config.Bank) (regmap.Space, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	k := keyOf(b)
	if b.Bus != "" {
		if s, ok := h.i2c[k]; ok {
			return s, nil
		}
		bus, ok := h.buses[b.Bus]
		if !ok {
			var err error
			if bus, err = OpenI2C(b.Bus); err != nil {
				return nil, err
			}
			h.buses[b.Bus] = bus
		}
		s := regmap.NewI2C(bus, b.Addr, b.Size)
		h.i2c[k] = s
		return s, nil
	}
	if m, ok := h.mmio[k]; ok {
		return m, nil
	}
	m, err := regmap.OpenMMIO(h.opts.DevMem, uint64(b.Base), b.Size)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", p.ID, role, err)
	}
	h.mmio[k] = m
	return m, nil
}

func (h *Hardware) VBusPin(p config.PHY) (usb2phy.VBusSensor, error) {
	if p.VBusDetGPIO == "" {
		return nil, nil
	}
	l, err := line(p.VBusDetGPIO, false)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (h *Hardware) Supply(name string) (usb2phy.Supply, error) { return line(name, false) }

// Reset lines are active low.
func (h *Hardware) Reset(name string) (usb2phy.ResetControl, error) { return line(name, true) }

func (h *Hardware) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	var errs []error
	for k, m := range h.mmio {
		errs = append(errs, m.Close())
		delete(h.mmio, k)
	}
	for k, b := range h.buses {
		errs = append(errs, b.Close())
		delete(h.buses, k)
	}
	clear(h.i2c)
	return errors.Join(errs...)
}

// gpioLine adapts a named platinasystems pin.
type gpioLine struct {
	name      string
	pin       gpio.Pin
	activeLow bool
}

func line(name string, activeLow bool) (*gpioLine, error) {
	pin, ok := gpio.Pins[name]
	if !ok {
		return nil, &errcode.E{C: errcode.UnknownPin, Op: "gpio", Msg: name}
	}
	return &gpioLine{name: name, pin: pin, activeLow: activeLow}, nil
}

func (l *gpioLine) Get() (bool, error) {
	v, err := l.pin.Value()
	if err != nil {
		return false, errcode.Wrap(errcode.IOError, "gpio "+l.name, err)
	}
	return v, nil
}

func (l *gpioLine) drive(v bool) error {
	if err := l.pin.SetValue(v); err != nil {
		return errcode.Wrap(errcode.IOError, "gpio "+l.name, err)
	}
	got, err := l.Get()
	if err != nil {
		return err
	}
	if got != v {
		return &errcode.E{C: errcode.IOError, Op: "gpio " + l.name, Msg: "readback mismatch"}
	}
	return nil
}

func (l *gpioLine) SetEnabled(on bool) error { return l.drive(on) }

func (l *gpioLine) Assert() error { return l.drive(!l.activeLow) }

func (l *gpioLine) Deassert() error { return l.drive(l.activeLow) }
