//go:build linux

package platform

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"usb2phy-go/errcode"
)

func TestNewHardwareRejectsBadDTB(t *testing.T) {
	dir := t.TempDir()
	junk := filepath.Join(dir, "junk.dtb")
	if err := os.WriteFile(junk, []byte("not a device tree at all, just text"), 0o600); err != nil {
		t.Fatal(err)
	}
	for _, path := range []string{filepath.Join(dir, "missing.dtb"), junk} {
		if _, err := NewHardware(Options{DTB: path}); !errors.Is(err, errcode.ConfigError) {
			t.Fatalf("%s: err = %v, want config_error", filepath.Base(path), err)
		}
	}
}

func TestNewHardwareDefaultsToKernelTree(t *testing.T) {
	orig := loadGPIO
	t.Cleanup(func() { loadGPIO = orig })

	var got Options
	loadGPIO = func(o Options) error { got = o; return nil }
	f, err := NewHardware(Options{DevMem: "/dev/null"})
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if got.DTB != "" {
		t.Fatalf("DTB = %q", got.DTB)
	}
	if err := orig(Options{DTB: filepath.Join(t.TempDir(), "none.dtb")}); !errors.Is(err, errcode.ConfigError) {
		t.Fatalf("explicit dtb not read: %v", err)
	}
}
