//go:build linux

package platform

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"

	"usb2phy-go/errcode"
)

const (
	i2cRDWR = 0x0707
	i2cMRD  = 0x0001
)

type i2cMsg struct {
	addr  uint16
	flags uint16
	len   uint16
	_     uint16
	buf   *byte
}

type i2cRdwrData struct {
	msgs  *i2cMsg
	nmsgs uint32
}

// DevI2C implements tinygo drivers.I2C over a Linux i2c-dev node.
type DevI2C struct {
	mu sync.Mutex
	f  *os.File
}

// OpenI2C opens bus "i2cN" as /dev/i2c-N.
func OpenI2C(bus string) (*DevI2C, error) {
	n, ok := strings.CutPrefix(bus, "i2c")
	if !ok || n == "" {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "i2c open", Msg: "bus name " + bus}
	}
	f, err := os.OpenFile(fmt.Sprintf("/dev/i2c-%s", n), os.O_RDWR, 0)
	if err != nil {
		return nil, errcode.Wrap(errcode.IOError, "i2c open", err)
	}
	return &DevI2C{f: f}, nil
}

func (d *DevI2C) Tx(addr uint16, w, r []byte) error {
	var msgs [2]i2cMsg
	n := 0
	if len(w) > 0 {
		msgs[n] = i2cMsg{addr: addr, len: uint16(len(w)), buf: &w[0]}
		n++
	}
	if len(r) > 0 {
		msgs[n] = i2cMsg{addr: addr, flags: i2cMRD, len: uint16(len(r)), buf: &r[0]}
		n++
	}
	if n == 0 {
		return nil
	}
	data := i2cRdwrData{msgs: &msgs[0], nmsgs: uint32(n)}

	d.mu.Lock()
	defer d.mu.Unlock()
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, d.f.Fd(), i2cRDWR, uintptr(unsafe.Pointer(&data)))
	if errno != 0 {
		return errno
	}
	return nil
}

func (d *DevI2C) Close() error { return d.f.Close() }
