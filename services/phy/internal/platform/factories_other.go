//go:build !linux

package platform

import "usb2phy-go/errcode"

// Options configures the hardware factory.
type Options struct {
	DevMem string
	DTB    string
}

// NewHardware is only available on Linux.
func NewHardware(Options) (Factory, error) {
	return nil, &errcode.E{C: errcode.Unsupported, Op: "hardware factory", Msg: "linux only"}
}
