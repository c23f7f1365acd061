package types

// ------------------------
// USB2 PHY service values
// ------------------------

// One charger detection run on phy <PHY>.
type ChargerValue struct {
	PHY         string `json:"phy"`
	Type        string `json:"type"` // "sdp" | "dcp" | "cdp" | "floating" | "unknown"
	Kind        string `json:"kind"` // power-supply name, e.g. "USB_DCP_CHARGER"
	DataCapable bool   `json:"data_capable"`
	Error       string `json:"error,omitempty"` // errcode
	TS          int64  `json:"ts_ms"`
}

// Result of a port operation. Status fields are set only by the "status" op
// and only for signals the PHY wires.
type PortValue struct {
	PHY  string `json:"phy"`
	Port string `json:"port"` // "otg-port" | "host-port"
	Op   string `json:"op"`

	AValid         *bool   `json:"avalid,omitempty"`
	BValid         *bool   `json:"bvalid,omitempty"`
	IDDig          *bool   `json:"iddig,omitempty"`
	HostDisconnect *bool   `json:"host_disconnect,omitempty"`
	LineState      *uint32 `json:"linestate,omitempty"`

	Error string `json:"error,omitempty"`
	TS    int64  `json:"ts_ms"`
}

// Static description of a bound PHY instance.
type PHYInfo struct {
	ID         string   `json:"id"`
	Compatible string   `json:"compatible"`
	Reg        string   `json:"reg"` // hex
	Ports      []string `json:"ports"`
	Charger    bool     `json:"charger_detect"`
}
