//go:build linux

package dtprobe

import (
	"os"
	"strconv"
	"strings"

	"github.com/platinasystems/fdt"
	"github.com/platinasystems/gpio"

	"usb2phy-go/errcode"
	"usb2phy-go/x/logx"
)

// LoadGPIO rebuilds gpio.Aliases and gpio.Pins from the device tree at path
// and applies each pin's default direction.
func LoadGPIO(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return errcode.Wrap(errcode.ConfigError, "read dtb", err)
	}
	t, err := parseTree(b)
	if err != nil {
		return err
	}
	applyGPIO(t)
	return nil
}

// kernelTree returns the running kernel's tree, or nil when there is none.
var kernelTree = fdt.DefaultTree

// LoadKernelGPIO is LoadGPIO for the tree under /proc/device-tree.
func LoadKernelGPIO() error {
	t := kernelTree()
	if t == nil {
		return &errcode.E{C: errcode.ConfigError, Op: "load gpio", Msg: "no kernel device tree"}
	}
	applyGPIO(t)
	return nil
}

func applyGPIO(t *fdt.Tree) {
	gatherGPIO(t)
	log := logx.For(logx.ComponentProbe)
	for name, p := range gpio.Pins {
		if err := p.SetDirection(); err != nil {
			// Keep going; one bad pin should not hide the rest.
			log.Warn("gpio direction", "pin", name, "err", err)
		}
	}
	log.Debug("gpio map loaded", "pins", len(gpio.Pins))
}

func gatherGPIO(t *fdt.Tree) {
	gpio.Aliases = make(gpio.GpioAliasMap)
	gpio.Pins = make(gpio.PinMap)
	t.MatchNode("aliases", gatherAliases)
	t.EachProperty("gpio-controller", "", gatherPins)
}

func gatherAliases(n *fdt.Node) {
	for p, v := range n.Properties {
		if strings.Contains(p, "gpio") {
			path := strings.Split(string(v), "\x00")[0]
			parts := strings.Split(path, "/")
			gpio.Aliases[p] = parts[len(parts)-1]
		}
	}
}

// gatherPins maps the "NAME@index" children of an aliased controller.
func gatherPins(n *fdt.Node, _, _ string) {
	for bank, target := range gpio.Aliases {
		if target != n.Name {
			continue
		}
		for _, c := range n.Children {
			name, index, ok := strings.Cut(c.Name, "@")
			if _, desc := c.Properties["gpio-pin-desc"]; !desc || !ok {
				continue
			}
			var mode string
			for _, m := range []string{"output-high", "output-low", "input"} {
				if _, has := c.Properties[m]; has {
					mode = m
				}
			}
			if mode == "" {
				continue
			}
			i, err := strconv.Atoi(index)
			if err != nil {
				continue
			}
			gpio.Pins[name] = gpio.GpioPinMode[mode] | gpio.GpioBankToBase[bank] | gpio.Pin(i)
		}
	}
}
