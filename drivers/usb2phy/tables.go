package usb2phy

// Register tables per SoC. Fields are {offset, high bit, low bit, disable, enable}.

var rk1808Variants = []Variant{
	{
		Reg:       0x100,
		NumPorts:  2,
		ClkOutCtl: BitField{0x0108, 4, 4, 1, 0},
		Ports: [NumPorts]PortRegs{
			PortOTG: {
				PhySuspend:    BitField{0x0100, 8, 0, 0, 0x1d1},
				BValidDetEn:   BitField{0x0110, 2, 2, 0, 1},
				BValidDetSt:   BitField{0x0114, 2, 2, 0, 1},
				BValidDetClr:  BitField{0x0118, 2, 2, 0, 1},
				IDDigOutput:   BitField{0x0100, 10, 10, 0, 1},
				IDDigEn:       BitField{0x0100, 9, 9, 0, 1},
				IDFallDetEn:   BitField{0x0110, 5, 5, 0, 1},
				IDFallDetSt:   BitField{0x0114, 5, 5, 0, 1},
				IDFallDetClr:  BitField{0x0118, 5, 5, 0, 1},
				IDRiseDetEn:   BitField{0x0110, 4, 4, 0, 1},
				IDRiseDetSt:   BitField{0x0114, 4, 4, 0, 1},
				IDRiseDetClr:  BitField{0x0118, 4, 4, 0, 1},
				LSDetEn:       BitField{0x0110, 0, 0, 0, 1},
				LSDetSt:       BitField{0x0114, 0, 0, 0, 1},
				LSDetClr:      BitField{0x0118, 0, 0, 0, 1},
				UTMIAValid:    BitField{0x0120, 10, 10, 0, 1},
				UTMIBValid:    BitField{0x0120, 9, 9, 0, 1},
				UTMIIDDig:     BitField{0x0120, 6, 6, 0, 1},
				UTMILineState: BitField{0x0120, 5, 4, 0, 1},
				VBusDetEn:     BitField{0x001c, 15, 15, 1, 0},
			},
			PortHost: {
				PhySuspend:         BitField{0x0104, 8, 0, 0, 0x1d1},
				LSDetEn:            BitField{0x0110, 1, 1, 0, 1},
				LSDetSt:            BitField{0x0114, 1, 1, 0, 1},
				LSDetClr:           BitField{0x0118, 1, 1, 0, 1},
				UTMILineState:      BitField{0x0120, 17, 16, 0, 1},
				UTMIHostDisconnect: BitField{0x0120, 19, 19, 0, 1},
			},
		},
		ChargeDetect: &ChargeDetectRegs{
			OpMode:    BitField{0x0100, 3, 0, 5, 1},
			CPDet:     BitField{0x0120, 24, 24, 0, 1},
			DCPDet:    BitField{0x0120, 23, 23, 0, 1},
			DPDet:     BitField{0x0120, 25, 25, 0, 1},
			IDMSinkEn: BitField{0x0108, 8, 8, 0, 1},
			IDPSinkEn: BitField{0x0108, 7, 7, 0, 1},
			IDPSrcEn:  BitField{0x0108, 9, 9, 0, 1},
			RDMPdwnEn: BitField{0x0108, 10, 10, 0, 1},
			VDMSrcEn:  BitField{0x0108, 12, 12, 0, 1},
			VDPSrcEn:  BitField{0x0108, 11, 11, 0, 1},
		},
	},
}

var rk3036Variants = []Variant{
	{
		Reg:             0x17c,
		NumPorts:        2,
		ClkOutCtl:       BitField{0x017c, 11, 11, 1, 0},
		ChargerOverride: alwaysSDP,
		Ports: [NumPorts]PortRegs{
			PortOTG: {
				PhySuspend:    BitField{0x017c, 8, 0, 0, 0x1d1},
				BValidDetEn:   BitField{0x017c, 14, 14, 0, 1},
				BValidDetSt:   BitField{0x017c, 15, 15, 0, 1},
				BValidDetClr:  BitField{0x017c, 15, 15, 0, 1},
				IDDigOutput:   BitField{0x017c, 10, 10, 0, 1},
				IDDigEn:       BitField{0x017c, 9, 9, 0, 1},
				IDFallDetEn:   BitField{0x01a0, 2, 2, 0, 1},
				IDFallDetSt:   BitField{0x01a0, 3, 3, 0, 1},
				IDFallDetClr:  BitField{0x01a0, 3, 3, 0, 1},
				IDRiseDetEn:   BitField{0x01a0, 0, 0, 0, 1},
				IDRiseDetSt:   BitField{0x01a0, 1, 1, 0, 1},
				IDRiseDetClr:  BitField{0x01a0, 1, 1, 0, 1},
				LSDetEn:       BitField{0x017c, 12, 12, 0, 1},
				LSDetSt:       BitField{0x017c, 13, 13, 0, 1},
				LSDetClr:      BitField{0x017c, 13, 13, 0, 1},
				UTMIBValid:    BitField{0x014c, 5, 5, 0, 1},
				UTMIIDDig:     BitField{0x014c, 8, 8, 0, 1},
				UTMILineState: BitField{0x014c, 7, 6, 0, 1},
			},
			PortHost: {
				PhySuspend: BitField{0x0194, 8, 0, 0, 0x1d1},
				LSDetEn:    BitField{0x0194, 14, 14, 0, 1},
				LSDetSt:    BitField{0x0194, 15, 15, 0, 1},
				LSDetClr:   BitField{0x0194, 15, 15, 0, 1},
			},
		},
	},
}

var rk312xVariants = []Variant{
	{
		Reg:       0x17c,
		NumPorts:  2,
		ClkOutCtl: BitField{0x0190, 15, 15, 1, 0},
		Ports: [NumPorts]PortRegs{
			PortOTG: {
				PhySuspend:    BitField{0x017c, 8, 0, 0, 0x1d1},
				BValidDetEn:   BitField{0x017c, 14, 14, 0, 1},
				BValidDetSt:   BitField{0x017c, 15, 15, 0, 1},
				BValidDetClr:  BitField{0x017c, 15, 15, 0, 1},
				IDDigOutput:   BitField{0x017c, 10, 10, 0, 1},
				IDDigEn:       BitField{0x017c, 9, 9, 0, 1},
				IDFallDetEn:   BitField{0x01a0, 2, 2, 0, 1},
				IDFallDetSt:   BitField{0x01a0, 3, 3, 0, 1},
				IDFallDetClr:  BitField{0x01a0, 3, 3, 0, 1},
				IDRiseDetEn:   BitField{0x01a0, 0, 0, 0, 1},
				IDRiseDetSt:   BitField{0x01a0, 1, 1, 0, 1},
				IDRiseDetClr:  BitField{0x01a0, 1, 1, 0, 1},
				LSDetEn:       BitField{0x017c, 12, 12, 0, 1},
				LSDetSt:       BitField{0x017c, 13, 13, 0, 1},
				LSDetClr:      BitField{0x017c, 13, 13, 0, 1},
				UTMIBValid:    BitField{0x014c, 5, 5, 0, 1},
				UTMIIDDig:     BitField{0x014c, 8, 8, 0, 1},
				UTMILineState: BitField{0x014c, 7, 6, 0, 1},
			},
			PortHost: {
				PhySuspend: BitField{0x0194, 8, 0, 0, 0x1d1},
				LSDetEn:    BitField{0x0194, 14, 14, 0, 1},
				LSDetSt:    BitField{0x0194, 15, 15, 0, 1},
				LSDetClr:   BitField{0x0194, 15, 15, 0, 1},
			},
		},
		ChargeDetect: &ChargeDetectRegs{
			OpMode:    BitField{0x017c, 3, 0, 5, 1},
			CPDet:     BitField{0x02c0, 6, 6, 0, 1},
			DCPDet:    BitField{0x02c0, 5, 5, 0, 1},
			DPDet:     BitField{0x02c0, 7, 7, 0, 1},
			IDMSinkEn: BitField{0x0184, 8, 8, 0, 1},
			IDPSinkEn: BitField{0x0184, 7, 7, 0, 1},
			IDPSrcEn:  BitField{0x0184, 9, 9, 0, 1},
			RDMPdwnEn: BitField{0x0184, 10, 10, 0, 1},
			VDMSrcEn:  BitField{0x0184, 12, 12, 0, 1},
			VDPSrcEn:  BitField{0x0184, 11, 11, 0, 1},
		},
	},
}

var rk322xVariants = []Variant{
	{
		Reg:       0x760,
		NumPorts:  2,
		ClkOutCtl: BitField{0x0768, 4, 4, 1, 0},
		Ports: [NumPorts]PortRegs{
			PortOTG: {
				PhySuspend:    BitField{0x0760, 8, 0, 0, 0x1d1},
				BValidDetEn:   BitField{0x0680, 3, 3, 0, 1},
				BValidDetSt:   BitField{0x0690, 3, 3, 0, 1},
				BValidDetClr:  BitField{0x06a0, 3, 3, 0, 1},
				IDDigOutput:   BitField{0x0760, 10, 10, 0, 1},
				IDDigEn:       BitField{0x0760, 9, 9, 0, 1},
				IDFallDetEn:   BitField{0x0680, 6, 6, 0, 1},
				IDFallDetSt:   BitField{0x0690, 6, 6, 0, 1},
				IDFallDetClr:  BitField{0x06a0, 6, 6, 0, 1},
				IDRiseDetEn:   BitField{0x0680, 5, 5, 0, 1},
				IDRiseDetSt:   BitField{0x0690, 5, 5, 0, 1},
				IDRiseDetClr:  BitField{0x06a0, 5, 5, 0, 1},
				LSDetEn:       BitField{0x0680, 2, 2, 0, 1},
				LSDetSt:       BitField{0x0690, 2, 2, 0, 1},
				LSDetClr:      BitField{0x06a0, 2, 2, 0, 1},
				UTMIBValid:    BitField{0x0480, 4, 4, 0, 1},
				UTMIIDDig:     BitField{0x0480, 1, 1, 0, 1},
				UTMILineState: BitField{0x0480, 3, 2, 0, 1},
				VBusDetEn:     BitField{0x0788, 15, 15, 1, 0},
			},
			PortHost: {
				PhySuspend: BitField{0x0764, 8, 0, 0, 0x1d1},
				LSDetEn:    BitField{0x0680, 4, 4, 0, 1},
				LSDetSt:    BitField{0x0690, 4, 4, 0, 1},
				LSDetClr:   BitField{0x06a0, 4, 4, 0, 1},
			},
		},
		ChargeDetect: &ChargeDetectRegs{
			OpMode:    BitField{0x0760, 3, 0, 5, 1},
			CPDet:     BitField{0x0884, 4, 4, 0, 1},
			DCPDet:    BitField{0x0884, 3, 3, 0, 1},
			DPDet:     BitField{0x0884, 5, 5, 0, 1},
			IDMSinkEn: BitField{0x0768, 8, 8, 0, 1},
			IDPSinkEn: BitField{0x0768, 7, 7, 0, 1},
			IDPSrcEn:  BitField{0x0768, 9, 9, 0, 1},
			RDMPdwnEn: BitField{0x0768, 10, 10, 0, 1},
			VDMSrcEn:  BitField{0x0768, 12, 12, 0, 1},
			VDPSrcEn:  BitField{0x0768, 11, 11, 0, 1},
		},
		Tuning: tuneRK322x,
	},
	{
		Reg:       0x800,
		NumPorts:  2,
		ClkOutCtl: BitField{0x0808, 4, 4, 1, 0},
		Ports: [NumPorts]PortRegs{
			PortOTG: {
				PhySuspend: BitField{0x0804, 8, 0, 0, 0x1d1},
				LSDetEn:    BitField{0x0684, 1, 1, 0, 1},
				LSDetSt:    BitField{0x0694, 1, 1, 0, 1},
				LSDetClr:   BitField{0x06a4, 1, 1, 0, 1},
			},
			PortHost: {
				PhySuspend: BitField{0x0800, 8, 0, 0, 0x1d1},
				LSDetEn:    BitField{0x0684, 0, 0, 0, 1},
				LSDetSt:    BitField{0x0694, 0, 0, 0, 1},
				LSDetClr:   BitField{0x06a4, 0, 0, 0, 1},
			},
		},
	},
}

var rk3308Variants = []Variant{
	{
		Reg:       0x100,
		NumPorts:  2,
		ClkOutCtl: BitField{0x0108, 4, 4, 1, 0},
		Ports: [NumPorts]PortRegs{
			PortOTG: {
				PhySuspend:    BitField{0x0100, 8, 0, 0, 0x1d1},
				BValidDetEn:   BitField{0x3020, 2, 2, 0, 1},
				BValidDetSt:   BitField{0x3024, 2, 2, 0, 1},
				BValidDetClr:  BitField{0x3028, 2, 2, 0, 1},
				IDDigOutput:   BitField{0x0100, 10, 10, 0, 1},
				IDDigEn:       BitField{0x0100, 9, 9, 0, 1},
				IDFallDetEn:   BitField{0x3020, 5, 5, 0, 1},
				IDFallDetSt:   BitField{0x3024, 5, 5, 0, 1},
				IDFallDetClr:  BitField{0x3028, 5, 5, 0, 1},
				IDRiseDetEn:   BitField{0x3020, 4, 4, 0, 1},
				IDRiseDetSt:   BitField{0x3024, 4, 4, 0, 1},
				IDRiseDetClr:  BitField{0x3028, 4, 4, 0, 1},
				LSDetEn:       BitField{0x3020, 0, 0, 0, 1},
				LSDetSt:       BitField{0x3024, 0, 0, 0, 1},
				LSDetClr:      BitField{0x3028, 0, 0, 0, 1},
				UTMIAValid:    BitField{0x0120, 10, 10, 0, 1},
				UTMIBValid:    BitField{0x0120, 9, 9, 0, 1},
				UTMIIDDig:     BitField{0x0120, 6, 6, 0, 1},
				UTMILineState: BitField{0x0120, 5, 4, 0, 1},
				VBusDetEn:     BitField{0x001c, 15, 15, 1, 0},
			},
			PortHost: {
				PhySuspend:         BitField{0x0104, 8, 0, 0, 0x1d1},
				LSDetEn:            BitField{0x3020, 1, 1, 0, 1},
				LSDetSt:            BitField{0x3024, 1, 1, 0, 1},
				LSDetClr:           BitField{0x3028, 1, 1, 0, 1},
				UTMILineState:      BitField{0x0120, 17, 16, 0, 1},
				UTMIHostDisconnect: BitField{0x0120, 19, 19, 0, 1},
			},
		},
		ChargeDetect: &ChargeDetectRegs{
			OpMode:    BitField{0x0100, 3, 0, 5, 1},
			CPDet:     BitField{0x0120, 24, 24, 0, 1},
			DCPDet:    BitField{0x0120, 23, 23, 0, 1},
			DPDet:     BitField{0x0120, 25, 25, 0, 1},
			IDMSinkEn: BitField{0x0108, 8, 8, 0, 1},
			IDPSinkEn: BitField{0x0108, 7, 7, 0, 1},
			IDPSrcEn:  BitField{0x0108, 9, 9, 0, 1},
			RDMPdwnEn: BitField{0x0108, 10, 10, 0, 1},
			VDMSrcEn:  BitField{0x0108, 12, 12, 0, 1},
			VDPSrcEn:  BitField{0x0108, 11, 11, 0, 1},
		},
		Tuning: tuneRK3308,
	},
}

var rk3328Variants = []Variant{
	{
		Reg:       0x100,
		NumPorts:  2,
		ClkOutCtl: BitField{0x0108, 4, 4, 1, 0},
		Ports: [NumPorts]PortRegs{
			PortOTG: {
				PhySuspend:    BitField{0x0100, 8, 0, 0, 0x1d1},
				BValidDetEn:   BitField{0x0110, 2, 2, 0, 1},
				BValidDetSt:   BitField{0x0114, 2, 2, 0, 1},
				BValidDetClr:  BitField{0x0118, 2, 2, 0, 1},
				IDDigOutput:   BitField{0x0100, 10, 10, 0, 1},
				IDDigEn:       BitField{0x0100, 9, 9, 0, 1},
				IDFallDetEn:   BitField{0x0110, 5, 5, 0, 1},
				IDFallDetSt:   BitField{0x0114, 5, 5, 0, 1},
				IDFallDetClr:  BitField{0x0118, 5, 5, 0, 1},
				IDRiseDetEn:   BitField{0x0110, 4, 4, 0, 1},
				IDRiseDetSt:   BitField{0x0114, 4, 4, 0, 1},
				IDRiseDetClr:  BitField{0x0118, 4, 4, 0, 1},
				LSDetEn:       BitField{0x0110, 0, 0, 0, 1},
				LSDetSt:       BitField{0x0114, 0, 0, 0, 1},
				LSDetClr:      BitField{0x0118, 0, 0, 0, 1},
				UTMIAValid:    BitField{0x0120, 10, 10, 0, 1},
				UTMIBValid:    BitField{0x0120, 9, 9, 0, 1},
				UTMIIDDig:     BitField{0x0120, 6, 6, 0, 1},
				UTMILineState: BitField{0x0120, 5, 4, 0, 1},
				VBusDetEn:     BitField{0x001c, 15, 15, 1, 0},
			},
			PortHost: {
				PhySuspend:         BitField{0x0104, 8, 0, 0, 0x1d1},
				LSDetEn:            BitField{0x0110, 1, 1, 0, 1},
				LSDetSt:            BitField{0x0114, 1, 1, 0, 1},
				LSDetClr:           BitField{0x0118, 1, 1, 0, 1},
				UTMILineState:      BitField{0x0120, 17, 16, 0, 1},
				UTMIHostDisconnect: BitField{0x0120, 19, 19, 0, 1},
			},
		},
		ChargeDetect: &ChargeDetectRegs{
			OpMode:    BitField{0x0100, 3, 0, 5, 1},
			CPDet:     BitField{0x0120, 24, 24, 0, 1},
			DCPDet:    BitField{0x0120, 23, 23, 0, 1},
			DPDet:     BitField{0x0120, 25, 25, 0, 1},
			IDMSinkEn: BitField{0x0108, 8, 8, 0, 1},
			IDPSinkEn: BitField{0x0108, 7, 7, 0, 1},
			IDPSrcEn:  BitField{0x0108, 9, 9, 0, 1},
			RDMPdwnEn: BitField{0x0108, 10, 10, 0, 1},
			VDMSrcEn:  BitField{0x0108, 12, 12, 0, 1},
			VDPSrcEn:  BitField{0x0108, 11, 11, 0, 1},
		},
		Tuning: tuneRK3328,
	},
}

var rk3368Variants = []Variant{
	{
		Reg:       0x700,
		NumPorts:  2,
		ClkOutCtl: BitField{0x0724, 15, 15, 1, 0},
		Ports: [NumPorts]PortRegs{
			PortOTG: {
				PhySuspend:    BitField{0x0700, 8, 0, 0, 0x1d1},
				BValidDetEn:   BitField{0x0680, 3, 3, 0, 1},
				BValidDetSt:   BitField{0x0690, 3, 3, 0, 1},
				BValidDetClr:  BitField{0x06a0, 3, 3, 0, 1},
				LSDetEn:       BitField{0x0680, 2, 2, 0, 1},
				LSDetSt:       BitField{0x0690, 2, 2, 0, 1},
				LSDetClr:      BitField{0x06a0, 2, 2, 0, 1},
				UTMIBValid:    BitField{0x04bc, 23, 23, 0, 1},
				UTMILineState: BitField{0x04bc, 25, 24, 0, 1},
			},
			PortHost: {
				PhySuspend: BitField{0x0728, 8, 0, 0, 0x1d1},
				LSDetEn:    BitField{0x0680, 4, 4, 0, 1},
				LSDetSt:    BitField{0x0690, 4, 4, 0, 1},
				LSDetClr:   BitField{0x06a0, 4, 4, 0, 1},
			},
		},
		ChargeDetect: &ChargeDetectRegs{
			OpMode:    BitField{0x0700, 3, 0, 5, 1},
			CPDet:     BitField{0x04b8, 30, 30, 0, 1},
			DCPDet:    BitField{0x04b8, 29, 29, 0, 1},
			DPDet:     BitField{0x04b8, 31, 31, 0, 1},
			IDMSinkEn: BitField{0x0718, 8, 8, 0, 1},
			IDPSinkEn: BitField{0x0718, 7, 7, 0, 1},
			IDPSrcEn:  BitField{0x0718, 9, 9, 0, 1},
			RDMPdwnEn: BitField{0x0718, 10, 10, 0, 1},
			VDMSrcEn:  BitField{0x0718, 12, 12, 0, 1},
			VDPSrcEn:  BitField{0x0718, 11, 11, 0, 1},
		},
	},
}

var rk3399Variants = []Variant{
	{
		Reg:       0xe450,
		NumPorts:  2,
		ClkOutCtl: BitField{0xe450, 4, 4, 1, 0},
		Ports: [NumPorts]PortRegs{
			PortOTG: {
				PhySuspend:    BitField{0xe454, 8, 0, 0x52, 0x1d1},
				BValidDetEn:   BitField{0xe3c0, 3, 3, 0, 1},
				BValidDetSt:   BitField{0xe3e0, 3, 3, 0, 1},
				BValidDetClr:  BitField{0xe3d0, 3, 3, 0, 1},
				IDFallDetEn:   BitField{0xe3c0, 5, 5, 0, 1},
				IDFallDetSt:   BitField{0xe3e0, 5, 5, 0, 1},
				IDFallDetClr:  BitField{0xe3d0, 5, 5, 0, 1},
				IDRiseDetEn:   BitField{0xe3c0, 4, 4, 0, 1},
				IDRiseDetSt:   BitField{0xe3e0, 4, 4, 0, 1},
				IDRiseDetClr:  BitField{0xe3d0, 4, 4, 0, 1},
				LSDetEn:       BitField{0xe3c0, 2, 2, 0, 1},
				LSDetSt:       BitField{0xe3e0, 2, 2, 0, 1},
				LSDetClr:      BitField{0xe3d0, 2, 2, 0, 1},
				UTMIAValid:    BitField{0xe2ac, 7, 7, 0, 1},
				UTMIBValid:    BitField{0xe2ac, 12, 12, 0, 1},
				UTMIIDDig:     BitField{0xe2ac, 8, 8, 0, 1},
				UTMILineState: BitField{0xe2ac, 14, 13, 0, 1},
				VBusDetEn:     BitField{0x449c, 15, 15, 1, 0},
			},
			PortHost: {
				PhySuspend:         BitField{0xe458, 1, 0, 2, 1},
				LSDetEn:            BitField{0xe3c0, 6, 6, 0, 1},
				LSDetSt:            BitField{0xe3e0, 6, 6, 0, 1},
				LSDetClr:           BitField{0xe3d0, 6, 6, 0, 1},
				UTMILineState:      BitField{0xe2ac, 22, 21, 0, 1},
				UTMIHostDisconnect: BitField{0xe2ac, 23, 23, 0, 1},
			},
		},
		ChargeDetect: &ChargeDetectRegs{
			OpMode:    BitField{0xe454, 3, 0, 5, 1},
			CPDet:     BitField{0xe2ac, 2, 2, 0, 1},
			DCPDet:    BitField{0xe2ac, 1, 1, 0, 1},
			DPDet:     BitField{0xe2ac, 0, 0, 0, 1},
			IDMSinkEn: BitField{0xe450, 8, 8, 0, 1},
			IDPSinkEn: BitField{0xe450, 7, 7, 0, 1},
			IDPSrcEn:  BitField{0xe450, 9, 9, 0, 1},
			RDMPdwnEn: BitField{0xe450, 10, 10, 0, 1},
			VDMSrcEn:  BitField{0xe450, 12, 12, 0, 1},
			VDPSrcEn:  BitField{0xe450, 11, 11, 0, 1},
		},
	},
	{
		Reg:       0xe460,
		NumPorts:  2,
		ClkOutCtl: BitField{0xe460, 4, 4, 1, 0},
		Ports: [NumPorts]PortRegs{
			PortOTG: {
				PhySuspend:    BitField{0xe464, 8, 0, 0x52, 0x1d1},
				BValidDetEn:   BitField{0xe3c0, 8, 8, 0, 1},
				BValidDetSt:   BitField{0xe3e0, 8, 8, 0, 1},
				BValidDetClr:  BitField{0xe3d0, 8, 8, 0, 1},
				IDFallDetEn:   BitField{0xe3c0, 10, 10, 0, 1},
				IDFallDetSt:   BitField{0xe3e0, 10, 10, 0, 1},
				IDFallDetClr:  BitField{0xe3d0, 10, 10, 0, 1},
				IDRiseDetEn:   BitField{0xe3c0, 9, 9, 0, 1},
				IDRiseDetSt:   BitField{0xe3e0, 9, 9, 0, 1},
				IDRiseDetClr:  BitField{0xe3d0, 9, 9, 0, 1},
				LSDetEn:       BitField{0xe3c0, 7, 7, 0, 1},
				LSDetSt:       BitField{0xe3e0, 7, 7, 0, 1},
				LSDetClr:      BitField{0xe3d0, 7, 7, 0, 1},
				UTMIAValid:    BitField{0xe2ac, 10, 10, 0, 1},
				UTMIBValid:    BitField{0xe2ac, 16, 16, 0, 1},
				UTMIIDDig:     BitField{0xe2ac, 11, 11, 0, 1},
				UTMILineState: BitField{0xe2ac, 18, 17, 0, 1},
				VBusDetEn:     BitField{0x451c, 15, 15, 1, 0},
			},
			PortHost: {
				PhySuspend:         BitField{0xe468, 1, 0, 2, 1},
				LSDetEn:            BitField{0xe3c0, 11, 11, 0, 1},
				LSDetSt:            BitField{0xe3e0, 11, 11, 0, 1},
				LSDetClr:           BitField{0xe3d0, 11, 11, 0, 1},
				UTMILineState:      BitField{0xe2ac, 26, 25, 0, 1},
				UTMIHostDisconnect: BitField{0xe2ac, 27, 27, 0, 1},
			},
		},
		ChargeDetect: &ChargeDetectRegs{
			OpMode:    BitField{0xe464, 3, 0, 5, 1},
			CPDet:     BitField{0xe2ac, 5, 5, 0, 1},
			DCPDet:    BitField{0xe2ac, 4, 4, 0, 1},
			DPDet:     BitField{0xe2ac, 3, 3, 0, 1},
			IDMSinkEn: BitField{0xe460, 8, 8, 0, 1},
			IDPSinkEn: BitField{0xe460, 7, 7, 0, 1},
			IDPSrcEn:  BitField{0xe460, 9, 9, 0, 1},
			RDMPdwnEn: BitField{0xe460, 10, 10, 0, 1},
			VDMSrcEn:  BitField{0xe460, 12, 12, 0, 1},
			VDPSrcEn:  BitField{0xe460, 11, 11, 0, 1},
		},
	},
}

var rv1103bVariants = []Variant{
	{
		Reg:       0x20e10000,
		NumPorts:  1,
		ClkOutCtl: BitField{0x50058, 4, 4, 1, 0},
		Ports: [NumPorts]PortRegs{
			PortOTG: {
				PhySuspend:    BitField{0x50050, 8, 0, 0, 0x1d1},
				BValidDetEn:   BitField{0x50100, 2, 2, 0, 1},
				BValidDetSt:   BitField{0x50104, 2, 2, 0, 1},
				BValidDetClr:  BitField{0x50108, 2, 2, 0, 1},
				IDDigOutput:   BitField{0x50050, 10, 10, 0, 1},
				IDDigEn:       BitField{0x50050, 9, 9, 0, 1},
				IDFallDetEn:   BitField{0x50100, 5, 5, 0, 1},
				IDFallDetSt:   BitField{0x50104, 5, 5, 0, 1},
				IDFallDetClr:  BitField{0x50108, 5, 5, 0, 1},
				IDRiseDetEn:   BitField{0x50100, 4, 4, 0, 1},
				IDRiseDetSt:   BitField{0x50104, 4, 4, 0, 1},
				IDRiseDetClr:  BitField{0x50108, 4, 4, 0, 1},
				LSDetEn:       BitField{0x50100, 0, 0, 0, 1},
				LSDetSt:       BitField{0x50104, 0, 0, 0, 1},
				LSDetClr:      BitField{0x50108, 0, 0, 0, 1},
				UTMIAValid:    BitField{0x50060, 10, 10, 0, 1},
				UTMIBValid:    BitField{0x50060, 9, 9, 0, 1},
				UTMIIDDig:     BitField{0x50060, 6, 6, 0, 1},
				UTMILineState: BitField{0x50060, 5, 4, 0, 1},
			},
		},
		ChargeDetect: &ChargeDetectRegs{
			OpMode:    BitField{0x50050, 3, 0, 5, 1},
			CPDet:     BitField{0x50060, 13, 13, 0, 1},
			DCPDet:    BitField{0x50060, 12, 12, 0, 1},
			DPDet:     BitField{0x50060, 14, 14, 0, 1},
			IDMSinkEn: BitField{0x50058, 8, 8, 0, 1},
			IDPSinkEn: BitField{0x50058, 7, 7, 0, 1},
			IDPSrcEn:  BitField{0x50058, 9, 9, 0, 1},
			RDMPdwnEn: BitField{0x50058, 10, 10, 0, 1},
			VDMSrcEn:  BitField{0x50058, 12, 12, 0, 1},
			VDPSrcEn:  BitField{0x50058, 11, 11, 0, 1},
		},
		Tuning: tuneRV1103B,
	},
}

var rv1106Variants = []Variant{
	{
		Reg:       0xff3e0000,
		NumPorts:  1,
		ClkOutCtl: BitField{0x0058, 4, 4, 1, 0},
		Ports: [NumPorts]PortRegs{
			PortOTG: {
				PhySuspend:    BitField{0x0050, 8, 0, 0, 0x1d1},
				BValidDetEn:   BitField{0x0100, 2, 2, 0, 1},
				BValidDetSt:   BitField{0x0104, 2, 2, 0, 1},
				BValidDetClr:  BitField{0x0108, 2, 2, 0, 1},
				IDDigOutput:   BitField{0x0050, 10, 10, 0, 1},
				IDDigEn:       BitField{0x0050, 9, 9, 0, 1},
				IDFallDetEn:   BitField{0x0100, 5, 5, 0, 1},
				IDFallDetSt:   BitField{0x0104, 5, 5, 0, 1},
				IDFallDetClr:  BitField{0x0108, 5, 5, 0, 1},
				IDRiseDetEn:   BitField{0x0100, 4, 4, 0, 1},
				IDRiseDetSt:   BitField{0x0104, 4, 4, 0, 1},
				IDRiseDetClr:  BitField{0x0108, 4, 4, 0, 1},
				LSDetEn:       BitField{0x0100, 0, 0, 0, 1},
				LSDetSt:       BitField{0x0104, 0, 0, 0, 1},
				LSDetClr:      BitField{0x0108, 0, 0, 0, 1},
				UTMIAValid:    BitField{0x0060, 10, 10, 0, 1},
				UTMIBValid:    BitField{0x0060, 9, 9, 0, 1},
				UTMIIDDig:     BitField{0x0060, 6, 6, 0, 1},
				UTMILineState: BitField{0x0060, 5, 4, 0, 1},
			},
		},
		ChargeDetect: &ChargeDetectRegs{
			OpMode:    BitField{0x0050, 3, 0, 5, 1},
			CPDet:     BitField{0x0060, 13, 13, 0, 1},
			DCPDet:    BitField{0x0060, 12, 12, 0, 1},
			DPDet:     BitField{0x0060, 14, 14, 0, 1},
			IDMSinkEn: BitField{0x0058, 8, 8, 0, 1},
			IDPSinkEn: BitField{0x0058, 7, 7, 0, 1},
			IDPSrcEn:  BitField{0x0058, 9, 9, 0, 1},
			RDMPdwnEn: BitField{0x0058, 10, 10, 0, 1},
			VDMSrcEn:  BitField{0x0058, 12, 12, 0, 1},
			VDPSrcEn:  BitField{0x0058, 11, 11, 0, 1},
		},
		Tuning: tuneRV1106,
	},
}

var rv1108Variants = []Variant{
	{
		Reg:       0x100,
		NumPorts:  2,
		ClkOutCtl: BitField{0x0108, 4, 4, 1, 0},
		Ports: [NumPorts]PortRegs{
			PortOTG: {
				PhySuspend:    BitField{0xffa0100, 8, 0, 0, 0x1d1},
				BValidDetEn:   BitField{0x0680, 3, 3, 0, 1},
				BValidDetSt:   BitField{0x0690, 3, 3, 0, 1},
				BValidDetClr:  BitField{0x06a0, 3, 3, 0, 1},
				LSDetEn:       BitField{0x0680, 2, 2, 0, 1},
				LSDetSt:       BitField{0x0690, 2, 2, 0, 1},
				LSDetClr:      BitField{0x06a0, 2, 2, 0, 1},
				UTMIBValid:    BitField{0x0804, 10, 10, 0, 1},
				UTMILineState: BitField{0x0804, 13, 12, 0, 1},
			},
			PortHost: {
				PhySuspend:         BitField{0xffa0104, 8, 0, 0, 0x1d1},
				LSDetEn:            BitField{0x0680, 4, 4, 0, 1},
				LSDetSt:            BitField{0x0690, 4, 4, 0, 1},
				LSDetClr:           BitField{0x06a0, 4, 4, 0, 1},
				UTMILineState:      BitField{0x0804, 9, 8, 0, 1},
				UTMIHostDisconnect: BitField{0x0804, 7, 7, 0, 1},
			},
		},
		ChargeDetect: &ChargeDetectRegs{
			OpMode:    BitField{0xffa0100, 3, 0, 5, 1},
			CPDet:     BitField{0x0804, 1, 1, 0, 1},
			DCPDet:    BitField{0x0804, 0, 0, 0, 1},
			DPDet:     BitField{0x0804, 2, 2, 0, 1},
			IDMSinkEn: BitField{0xffa0108, 8, 8, 0, 1},
			IDPSinkEn: BitField{0xffa0108, 7, 7, 0, 1},
			IDPSrcEn:  BitField{0xffa0108, 9, 9, 0, 1},
			RDMPdwnEn: BitField{0xffa0108, 10, 10, 0, 1},
			VDMSrcEn:  BitField{0xffa0108, 12, 12, 0, 1},
			VDPSrcEn:  BitField{0xffa0108, 11, 11, 0, 1},
		},
	},
}

var rk3506Variants = []Variant{
	{
		Reg:      0xff2b0000,
		NumPorts: 2,
		Ports: [NumPorts]PortRegs{
			PortOTG: {
				PhySuspend:    BitField{0x0060, 8, 0, 0, 0x1d1},
				BValidDetEn:   BitField{0x0150, 2, 2, 0, 1},
				BValidDetSt:   BitField{0x0154, 2, 2, 0, 1},
				BValidDetClr:  BitField{0x0158, 2, 2, 0, 1},
				IDDigOutput:   BitField{0x0060, 10, 10, 0, 1},
				IDDigEn:       BitField{0x0060, 9, 9, 0, 1},
				IDFallDetEn:   BitField{0x0150, 5, 5, 0, 1},
				IDFallDetSt:   BitField{0x0154, 5, 5, 0, 1},
				IDFallDetClr:  BitField{0x0158, 5, 5, 0, 1},
				IDRiseDetEn:   BitField{0x0150, 4, 4, 0, 1},
				IDRiseDetSt:   BitField{0x0154, 4, 4, 0, 1},
				IDRiseDetClr:  BitField{0x0158, 4, 4, 0, 1},
				LSDetEn:       BitField{0x0150, 0, 0, 0, 1},
				LSDetSt:       BitField{0x0154, 0, 0, 0, 1},
				LSDetClr:      BitField{0x0158, 0, 0, 0, 1},
				UTMIAValid:    BitField{0x0118, 1, 1, 0, 1},
				UTMIBValid:    BitField{0x0118, 0, 0, 0, 1},
				UTMIIDDig:     BitField{0x0118, 6, 6, 0, 1},
				UTMILineState: BitField{0x0118, 5, 4, 0, 1},
			},
			PortHost: {
				PhySuspend:         BitField{0x0070, 8, 0, 0x1d2, 0x1d1},
				LSDetEn:            BitField{0x0170, 0, 0, 0, 1},
				LSDetSt:            BitField{0x0174, 0, 0, 0, 1},
				LSDetClr:           BitField{0x0178, 0, 0, 0, 1},
				UTMILineState:      BitField{0x0118, 13, 12, 0, 1},
				UTMIHostDisconnect: BitField{0x0118, 15, 15, 0, 1},
			},
		},
		ChargeDetect: &ChargeDetectRegs{
			OpMode:    BitField{0x0060, 3, 0, 5, 1},
			CPDet:     BitField{0x0118, 19, 19, 0, 1},
			DCPDet:    BitField{0x0118, 18, 18, 0, 1},
			DPDet:     BitField{0x0118, 20, 20, 0, 1},
			IDMSinkEn: BitField{0x006c, 1, 1, 0, 1},
			IDPSinkEn: BitField{0x006c, 0, 0, 0, 1},
			IDPSrcEn:  BitField{0x006c, 2, 2, 0, 1},
			RDMPdwnEn: BitField{0x006c, 3, 3, 0, 1},
			VDMSrcEn:  BitField{0x006c, 5, 5, 0, 1},
			VDPSrcEn:  BitField{0x006c, 4, 4, 0, 1},
		},
		Tuning: tuneRK3506,
	},
}

var rk3528Variants = []Variant{
	{
		Reg:      0xffdf0000,
		NumPorts: 2,
		Ports: [NumPorts]PortRegs{
			PortOTG: {
				PhySuspend:    BitField{0x6004c, 8, 0, 0, 0x1d1},
				BValidDetEn:   BitField{0x60074, 2, 2, 0, 1},
				BValidDetSt:   BitField{0x60078, 2, 2, 0, 1},
				BValidDetClr:  BitField{0x6007c, 2, 2, 0, 1},
				IDDigOutput:   BitField{0x6004c, 10, 10, 0, 1},
				IDDigEn:       BitField{0x6004c, 9, 9, 0, 1},
				IDFallDetEn:   BitField{0x60074, 5, 5, 0, 1},
				IDFallDetSt:   BitField{0x60078, 5, 5, 0, 1},
				IDFallDetClr:  BitField{0x6007c, 5, 5, 0, 1},
				IDRiseDetEn:   BitField{0x60074, 4, 4, 0, 1},
				IDRiseDetSt:   BitField{0x60078, 4, 4, 0, 1},
				IDRiseDetClr:  BitField{0x6007c, 4, 4, 0, 1},
				LSDetEn:       BitField{0x60074, 0, 0, 0, 1},
				LSDetSt:       BitField{0x60078, 0, 0, 0, 1},
				LSDetClr:      BitField{0x6007c, 0, 0, 0, 1},
				UTMIAValid:    BitField{0x6006c, 1, 1, 0, 1},
				UTMIBValid:    BitField{0x6006c, 0, 0, 0, 1},
				UTMIIDDig:     BitField{0x6006c, 6, 6, 0, 1},
				UTMILineState: BitField{0x6006c, 5, 4, 0, 1},
			},
			PortHost: {
				PhySuspend:         BitField{0x6005c, 8, 0, 0x1d2, 0x1d1},
				LSDetEn:            BitField{0x60090, 0, 0, 0, 1},
				LSDetSt:            BitField{0x60094, 0, 0, 0, 1},
				LSDetClr:           BitField{0x60098, 0, 0, 0, 1},
				UTMILineState:      BitField{0x6006c, 13, 12, 0, 1},
				UTMIHostDisconnect: BitField{0x6006c, 15, 15, 0, 1},
			},
		},
		ChargeDetect: &ChargeDetectRegs{
			OpMode:    BitField{0x6004c, 3, 0, 5, 1},
			CPDet:     BitField{0x6006c, 19, 19, 0, 1},
			DCPDet:    BitField{0x6006c, 18, 18, 0, 1},
			DPDet:     BitField{0x6006c, 20, 20, 0, 1},
			IDMSinkEn: BitField{0x60058, 1, 1, 0, 1},
			IDPSinkEn: BitField{0x60058, 0, 0, 0, 1},
			IDPSrcEn:  BitField{0x60058, 2, 2, 0, 1},
			RDMPdwnEn: BitField{0x60058, 3, 3, 0, 1},
			VDMSrcEn:  BitField{0x60058, 5, 5, 0, 1},
			VDPSrcEn:  BitField{0x60058, 4, 4, 0, 1},
		},
		Tuning: tuneRK3528,
	},
}

var rk3562Variants = []Variant{
	{
		Reg:       0xff740000,
		NumPorts:  2,
		ClkOutCtl: BitField{0x0108, 4, 4, 1, 0},
		Ports: [NumPorts]PortRegs{
			PortOTG: {
				PhySuspend:    BitField{0x0100, 8, 0, 0, 0x1d1},
				BValidDetEn:   BitField{0x0110, 2, 2, 0, 1},
				BValidDetSt:   BitField{0x0114, 2, 2, 0, 1},
				BValidDetClr:  BitField{0x0118, 2, 2, 0, 1},
				IDDigOutput:   BitField{0x0100, 10, 10, 0, 1},
				IDDigEn:       BitField{0x0100, 9, 9, 0, 1},
				IDFallDetEn:   BitField{0x0110, 5, 5, 0, 1},
				IDFallDetSt:   BitField{0x0114, 5, 5, 0, 1},
				IDFallDetClr:  BitField{0x0118, 5, 5, 0, 1},
				IDRiseDetEn:   BitField{0x0110, 4, 4, 0, 1},
				IDRiseDetSt:   BitField{0x0114, 4, 4, 0, 1},
				IDRiseDetClr:  BitField{0x0118, 4, 4, 0, 1},
				LSDetEn:       BitField{0x0110, 0, 0, 0, 1},
				LSDetSt:       BitField{0x0114, 0, 0, 0, 1},
				LSDetClr:      BitField{0x0118, 0, 0, 0, 1},
				UTMIAValid:    BitField{0x0120, 10, 10, 0, 1},
				UTMIBValid:    BitField{0x0120, 9, 9, 0, 1},
				UTMIIDDig:     BitField{0x0120, 6, 6, 0, 1},
				UTMILineState: BitField{0x0120, 5, 4, 0, 1},
			},
			PortHost: {
				PhySuspend:         BitField{0x0104, 8, 0, 0x1d2, 0x1d1},
				LSDetEn:            BitField{0x0110, 1, 1, 0, 1},
				LSDetSt:            BitField{0x0114, 1, 1, 0, 1},
				LSDetClr:           BitField{0x0118, 1, 1, 0, 1},
				UTMILineState:      BitField{0x0120, 17, 16, 0, 1},
				UTMIHostDisconnect: BitField{0x0120, 19, 19, 0, 1},
			},
		},
		ChargeDetect: &ChargeDetectRegs{
			OpMode:    BitField{0x0100, 3, 0, 5, 1},
			CPDet:     BitField{0x0120, 24, 24, 0, 1},
			DCPDet:    BitField{0x0120, 23, 23, 0, 1},
			DPDet:     BitField{0x0120, 25, 25, 0, 1},
			IDMSinkEn: BitField{0x0108, 8, 8, 0, 1},
			IDPSinkEn: BitField{0x0108, 7, 7, 0, 1},
			IDPSrcEn:  BitField{0x0108, 9, 9, 0, 1},
			RDMPdwnEn: BitField{0x0108, 10, 10, 0, 1},
			VDMSrcEn:  BitField{0x0108, 12, 12, 0, 1},
			VDPSrcEn:  BitField{0x0108, 11, 11, 0, 1},
		},
		Tuning: tuneRK3562,
	},
}

var rk3568Variants = []Variant{
	{
		Reg:       0xfe8a0000,
		NumPorts:  2,
		ClkOutCtl: BitField{0x0008, 4, 4, 1, 0},
		Ports: [NumPorts]PortRegs{
			PortOTG: {
				PhySuspend:    BitField{0x0000, 8, 0, 0x52, 0x1d1},
				BValidDetEn:   BitField{0x0080, 2, 2, 0, 1},
				BValidDetSt:   BitField{0x0084, 2, 2, 0, 1},
				BValidDetClr:  BitField{0x0088, 2, 2, 0, 1},
				IDDigOutput:   BitField{0x0000, 10, 10, 0, 1},
				IDDigEn:       BitField{0x0000, 9, 9, 0, 1},
				IDFallDetEn:   BitField{0x0080, 5, 5, 0, 1},
				IDFallDetSt:   BitField{0x0084, 5, 5, 0, 1},
				IDFallDetClr:  BitField{0x0088, 5, 5, 0, 1},
				IDRiseDetEn:   BitField{0x0080, 4, 4, 0, 1},
				IDRiseDetSt:   BitField{0x0084, 4, 4, 0, 1},
				IDRiseDetClr:  BitField{0x0088, 4, 4, 0, 1},
				LSDetEn:       BitField{0x0080, 0, 0, 0, 1},
				LSDetSt:       BitField{0x0084, 0, 0, 0, 1},
				LSDetClr:      BitField{0x0088, 0, 0, 0, 1},
				UTMIAValid:    BitField{0x00c0, 10, 10, 0, 1},
				UTMIBValid:    BitField{0x00c0, 9, 9, 0, 1},
				UTMIIDDig:     BitField{0x00c0, 6, 6, 0, 1},
				UTMILineState: BitField{0x00c0, 5, 4, 0, 1},
			},
			PortHost: {
				PhySuspend:         BitField{0x0004, 8, 0, 0x1d2, 0x1d1},
				LSDetEn:            BitField{0x0080, 1, 1, 0, 1},
				LSDetSt:            BitField{0x0084, 1, 1, 0, 1},
				LSDetClr:           BitField{0x0088, 1, 1, 0, 1},
				UTMILineState:      BitField{0x00c0, 17, 16, 0, 1},
				UTMIHostDisconnect: BitField{0x00c0, 19, 19, 0, 1},
			},
		},
		ChargeDetect: &ChargeDetectRegs{
			OpMode:    BitField{0x0000, 3, 0, 5, 1},
			CPDet:     BitField{0x00c0, 24, 24, 0, 1},
			DCPDet:    BitField{0x00c0, 23, 23, 0, 1},
			DPDet:     BitField{0x00c0, 25, 25, 0, 1},
			IDMSinkEn: BitField{0x0008, 8, 8, 0, 1},
			IDPSinkEn: BitField{0x0008, 7, 7, 0, 1},
			IDPSrcEn:  BitField{0x0008, 9, 9, 0, 1},
			RDMPdwnEn: BitField{0x0008, 10, 10, 0, 1},
			VDMSrcEn:  BitField{0x0008, 12, 12, 0, 1},
			VDPSrcEn:  BitField{0x0008, 11, 11, 0, 1},
		},
	},
	{
		Reg:       0xfe8b0000,
		NumPorts:  2,
		ClkOutCtl: BitField{0x0008, 4, 4, 1, 0},
		Ports: [NumPorts]PortRegs{
			PortOTG: {
				PhySuspend:         BitField{0x0000, 8, 0, 0x1d2, 0x1d1},
				LSDetEn:            BitField{0x0080, 0, 0, 0, 1},
				LSDetSt:            BitField{0x0084, 0, 0, 0, 1},
				LSDetClr:           BitField{0x0088, 0, 0, 0, 1},
				UTMILineState:      BitField{0x00c0, 5, 4, 0, 1},
				UTMIHostDisconnect: BitField{0x00c0, 7, 7, 0, 1},
			},
			PortHost: {
				PhySuspend:         BitField{0x0004, 8, 0, 0x1d2, 0x1d1},
				LSDetEn:            BitField{0x0080, 1, 1, 0, 1},
				LSDetSt:            BitField{0x0084, 1, 1, 0, 1},
				LSDetClr:           BitField{0x0088, 1, 1, 0, 1},
				UTMILineState:      BitField{0x00c0, 17, 16, 0, 1},
				UTMIHostDisconnect: BitField{0x00c0, 19, 19, 0, 1},
			},
		},
	},
}

var rk3576Variants = []Variant{
	{
		Reg:       0x0000,
		NumPorts:  1,
		ClkOutCtl: BitField{0x0008, 0, 0, 1, 0},
		Ports: [NumPorts]PortRegs{
			PortOTG: {
				PhySuspend:    BitField{0x0000, 8, 0, 0, 0x1d1},
				LSDetEn:       BitField{0x00c0, 0, 0, 0, 1},
				LSDetSt:       BitField{0x00c4, 0, 0, 0, 1},
				LSDetClr:      BitField{0x00c8, 0, 0, 0, 1},
				UTMIAValid:    BitField{0x0080, 1, 1, 0, 1},
				UTMIBValid:    BitField{0x0080, 0, 0, 0, 1},
				UTMIIDDig:     BitField{0x0080, 6, 6, 0, 1},
				UTMILineState: BitField{0x0080, 5, 4, 0, 1},
			},
		},
		ChargeDetect: &ChargeDetectRegs{
			OpMode:    BitField{0x0000, 8, 0, 0x55, 1},
			CPDet:     BitField{0x0080, 8, 8, 0, 1},
			DCPDet:    BitField{0x0080, 8, 8, 0, 1},
			DPDet:     BitField{0x0080, 9, 9, 1, 0},
			IDMSinkEn: BitField{0x0010, 5, 5, 1, 0},
			IDPSinkEn: BitField{0x0010, 5, 5, 0, 1},
			IDPSrcEn:  BitField{0x0010, 14, 14, 0, 1},
			RDMPdwnEn: BitField{0x0010, 14, 14, 0, 1},
			VDMSrcEn:  BitField{0x0010, 7, 6, 0, 3},
			VDPSrcEn:  BitField{0x0010, 7, 6, 0, 3},
		},
		Tuning: tuneRK3576,
	},
	{
		Reg:       0x2000,
		NumPorts:  1,
		ClkOutCtl: BitField{0x2008, 0, 0, 1, 0},
		Ports: [NumPorts]PortRegs{
			PortOTG: {
				PhySuspend:    BitField{0x2000, 8, 0, 0, 0x1d1},
				LSDetEn:       BitField{0x20c0, 0, 0, 0, 1},
				LSDetSt:       BitField{0x20c4, 0, 0, 0, 1},
				LSDetClr:      BitField{0x20c8, 0, 0, 0, 1},
				UTMIAValid:    BitField{0x2080, 1, 1, 0, 1},
				UTMIBValid:    BitField{0x2080, 0, 0, 0, 1},
				UTMIIDDig:     BitField{0x2080, 6, 6, 0, 1},
				UTMILineState: BitField{0x2080, 5, 4, 0, 1},
			},
		},
		Tuning: tuneRK3576,
	},
}

var rk3588Variants = []Variant{
	{
		Reg:       0x0000,
		NumPorts:  1,
		ClkOutCtl: BitField{0x0000, 0, 0, 1, 0},
		Ports: [NumPorts]PortRegs{
			PortOTG: {
				PhySuspend:    BitField{0x000c, 11, 11, 0, 1},
				LSDetEn:       BitField{0x0080, 0, 0, 0, 1},
				LSDetSt:       BitField{0x0084, 0, 0, 0, 1},
				LSDetClr:      BitField{0x0088, 0, 0, 0, 1},
				UTMIAValid:    BitField{0x00c0, 7, 7, 0, 1},
				UTMIBValid:    BitField{0x00c0, 6, 6, 0, 1},
				UTMIIDDig:     BitField{0x00c0, 5, 5, 0, 1},
				UTMILineState: BitField{0x00c0, 10, 9, 0, 1},
			},
		},
		ChargeDetect: &ChargeDetectRegs{
			OpMode:    BitField{0x0008, 2, 2, 1, 0},
			CPDet:     BitField{0x00c0, 0, 0, 0, 1},
			DCPDet:    BitField{0x00c0, 0, 0, 0, 1},
			DPDet:     BitField{0x00c0, 1, 1, 1, 0},
			IDMSinkEn: BitField{0x0008, 5, 5, 1, 0},
			IDPSinkEn: BitField{0x0008, 5, 5, 0, 1},
			IDPSrcEn:  BitField{0x0008, 14, 14, 0, 1},
			RDMPdwnEn: BitField{0x0008, 14, 14, 0, 1},
			VDMSrcEn:  BitField{0x0008, 7, 6, 0, 3},
			VDPSrcEn:  BitField{0x0008, 7, 6, 0, 3},
		},
		Tuning: tuneRK3588,
	},
	{
		Reg:       0x4000,
		NumPorts:  1,
		ClkOutCtl: BitField{0x0000, 0, 0, 1, 0},
		Ports: [NumPorts]PortRegs{
			PortOTG: {
				PhySuspend:    BitField{0x000c, 11, 11, 0, 0},
				LSDetEn:       BitField{0x0080, 0, 0, 0, 1},
				LSDetSt:       BitField{0x0084, 0, 0, 0, 1},
				LSDetClr:      BitField{0x0088, 0, 0, 0, 1},
				UTMILineState: BitField{0x00c0, 10, 9, 0, 1},
			},
		},
		Tuning: tuneRK3588,
	},
	{
		Reg:       0x8000,
		NumPorts:  1,
		ClkOutCtl: BitField{0x0000, 0, 0, 1, 0},
		Ports: [NumPorts]PortRegs{
			PortHost: {
				PhySuspend:    BitField{0x0008, 2, 2, 0, 1},
				LSDetEn:       BitField{0x0080, 0, 0, 0, 1},
				LSDetSt:       BitField{0x0084, 0, 0, 0, 1},
				LSDetClr:      BitField{0x0088, 0, 0, 0, 1},
				UTMILineState: BitField{0x00c0, 10, 9, 0, 1},
			},
		},
		Tuning: tuneRK3588,
	},
	{
		Reg:       0xc000,
		NumPorts:  1,
		ClkOutCtl: BitField{0x0000, 0, 0, 1, 0},
		Ports: [NumPorts]PortRegs{
			PortHost: {
				PhySuspend:    BitField{0x0008, 2, 2, 0, 1},
				LSDetEn:       BitField{0x0080, 0, 0, 0, 1},
				LSDetSt:       BitField{0x0084, 0, 0, 0, 1},
				LSDetClr:      BitField{0x0088, 0, 0, 0, 1},
				UTMILineState: BitField{0x00c0, 10, 9, 0, 1},
			},
		},
		Tuning: tuneRK3588,
	},
}
