package config

// -----------------------------------------------------------------------------
// Embedded board descriptions
//
// Key: board name (-config flag)
// Val: raw JSON bytes for that board
// -----------------------------------------------------------------------------

const cfgRK3399 = `{
  "board": "rk3399-evb",
  "phys": [
    {
      "id": "u2phy0",
      "compatible": "rockchip,rk3399-usb2phy",
      "reg": ["0xe450"],
      "grf": {"base": "0xff770000", "size": 65536},
      "supplies": {"host-port": "VCC5V0_HOST_EN"},
      "sim_charger": "dcp"
    },
    {
      "id": "u2phy1",
      "compatible": "rockchip,rk3399-usb2phy",
      "reg": ["0xe460"],
      "grf": {"base": "0xff770000", "size": 65536},
      "supplies": {"host-port": "VCC5V0_HOST_EN"}
    }
  ]
}`

const cfgRock3A = `{
  "board": "rock-3a",
  "phys": [
    {
      "id": "usb2phy0",
      "compatible": "rockchip,rk3568-usb2phy",
      "reg": ["0xfe8a0000"],
      "grf": {"base": "0xfdca0000", "size": 32768},
      "phy_base": {"base": "0xfe8a0000", "size": 65536},
      "vbus_det_gpio": "USB_OTG_VBUS_DET",
      "supplies": {"otg-port": "VCC5V0_OTG_EN", "host-port": "VCC5V0_HOST_EN"},
      "sim_charger": "cdp"
    },
    {
      "id": "usb2phy1",
      "compatible": "rockchip,rk3568-usb2phy",
      "reg": ["0xfe8b0000"],
      "grf": {"base": "0xfdca8000", "size": 32768},
      "phy_base": {"base": "0xfe8b0000", "size": 65536}
    }
  ]
}`

const cfgRK3036 = `{
  "board": "rk3036-kylin",
  "phys": [
    {
      "id": "usb2phy",
      "compatible": "rockchip,rk3036-usb2phy",
      "reg": ["0x17c"],
      "grf": {"base": "0x20008000", "size": 4096},
      "sim_charger": "sdp"
    }
  ]
}`

// Bench fixture: the GRF is reached through an I²C bridge on i2c0.
const cfgBenchRK3328 = `{
  "board": "bench-rk3328",
  "phys": [
    {
      "id": "u2phy",
      "compatible": "rockchip,rk3328-usb2phy",
      "reg": ["0x100"],
      "grf": {"size": 4096, "bus": "i2c0", "addr": 66},
      "reset_gpio": "U2PHY_RESET_N",
      "sim_charger": "floating"
    }
  ]
}`

var embeddedConfigs = map[string][]byte{
	"rk3399-evb":   []byte(cfgRK3399),
	"rock-3a":      []byte(cfgRock3A),
	"rk3036-kylin": []byte(cfgRK3036),
	"bench-rk3328": []byte(cfgBenchRK3328),
}

// DefaultBoard is used when no board is named.
const DefaultBoard = "rock-3a"

// EmbeddedConfigLookup allows overriding how board configs are resolved.
var EmbeddedConfigLookup = func(board string) ([]byte, bool) {
	b, ok := embeddedConfigs[board]
	return b, ok
}

// Boards lists the embedded board names.
func Boards() []string {
	out := make([]string, 0, len(embeddedConfigs))
	for k := range embeddedConfigs {
		out = append(out, k)
	}
	return out
}
