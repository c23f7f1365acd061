package usb2phy

import (
	"fmt"
	"sort"
	"sync"

	"usb2phy-go/errcode"
)

var (
	mu       sync.RWMutex
	variants = map[string][]Variant{}
)

// RegisterVariants installs the tables for a device-tree compatible string.
// It panics if the string is already registered.
func RegisterVariants(compatible string, vs []Variant) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := variants[compatible]; exists {
		panic(fmt.Sprintf("usb2phy variants already registered for %q", compatible))
	}
	variants[compatible] = vs
}

// Lookup returns the table for compatible whose Reg equals one of regs.
// Candidates are tried in order.
func Lookup(compatible string, regs ...uint64) (*Variant, error) {
	mu.RLock()
	vs, ok := variants[compatible]
	mu.RUnlock()
	if !ok {
		return nil, &errcode.E{C: errcode.ConfigError, Op: "lookup", Msg: "unknown compatible " + compatible}
	}
	for _, r := range regs {
		for i := range vs {
			if vs[i].Reg == r {
				return &vs[i], nil
			}
		}
	}
	return nil, &errcode.E{C: errcode.ConfigError, Op: "lookup", Msg: fmt.Sprintf("no table for %s at %#x", compatible, regs)}
}

// Compatibles lists the registered compatible strings, sorted.
func Compatibles() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(variants))
	for c := range variants {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
