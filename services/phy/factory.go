package phy

import (
	"usb2phy-go/services/phy/config"
	"usb2phy-go/services/phy/internal/dtprobe"
	"usb2phy-go/services/phy/internal/platform"
)

// Factory supplies register banks, pins, supplies and reset lines.
type Factory = platform.Factory

// ProbedPHY is a PHY node found in a device tree.
type ProbedPHY = dtprobe.PHY

// Simulated returns a host-side factory with charger models attached where
// the board asks for them.
func Simulated() Factory { return platform.NewSim() }

// Hardware returns the Linux factory. devMem defaults to /dev/mem; GPIOs come
// from dtb, or from the running kernel's device tree when dtb is empty.
func Hardware(devMem, dtb string) (Factory, error) {
	return platform.NewHardware(platform.Options{DevMem: devMem, DTB: dtb})
}

// Probe lists the PHY nodes of the device tree blob at path.
func Probe(path string) ([]ProbedPHY, error) { return dtprobe.ReadFile(path) }

// ProbeBoard builds a board description from the enabled PHY nodes at path.
func ProbeBoard(path string) (config.BoardConfig, error) {
	phys, err := dtprobe.ReadFile(path)
	if err != nil {
		return config.BoardConfig{}, err
	}
	b := dtprobe.Board(path, phys)
	return b, b.Validate()
}
