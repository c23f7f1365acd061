package usb2phy

import (
	"errors"

	"usb2phy-go/errcode"
)

// ChargerType is the outcome of a detection run.
type ChargerType uint8

const (
	ChargerUnknown ChargerType = iota
	ChargerSDP                 // standard downstream port
	ChargerDCP                 // dedicated charging port
	ChargerCDP                 // charging downstream port
	ChargerFloating            // data lines not connected
)

var chargerNames = [...]string{
	ChargerUnknown:  "unknown",
	ChargerSDP:      "sdp",
	ChargerDCP:      "dcp",
	ChargerCDP:      "cdp",
	ChargerFloating: "floating",
}

// String returns the power-supply style identifier.
func (t ChargerType) String() string {
	switch t {
	case ChargerSDP:
		return "USB_SDP_CHARGER"
	case ChargerDCP:
		return "USB_DCP_CHARGER"
	case ChargerCDP:
		return "USB_CDP_CHARGER"
	case ChargerFloating:
		return "USB_FLOATING_CHARGER"
	default:
		return "INVALID_CHARGER"
	}
}

// Name returns the short lower-case name used in JSON.
func (t ChargerType) Name() string {
	if int(t) < len(chargerNames) {
		return chargerNames[t]
	}
	return chargerNames[ChargerUnknown]
}

// DataCapable reports whether the port also carries USB data.
func (t ChargerType) DataCapable() bool { return t == ChargerSDP || t == ChargerCDP }

func (t ChargerType) MarshalText() ([]byte, error) { return []byte(t.Name()), nil }

func (t *ChargerType) UnmarshalText(b []byte) error {
	for i, n := range chargerNames {
		if n == string(b) {
			*t = ChargerType(i)
			return nil
		}
	}
	return &errcode.E{C: errcode.InvalidParams, Op: "charger type", Msg: string(b)}
}

// DetectCharger classifies whatever is attached to the OTG port. It blocks
// for up to about 800 ms. Classification outcomes are values; errors are
// returned only for bus failures and missing tables.
//
// Once the OTG port has been suspended for detection, the run always ends
// with opmode enabled and the port resumed, I/O errors included.
func (d *Device) DetectCharger() (ChargerType, error) {
	present, err := d.vbusPresent()
	if err != nil {
		return ChargerUnknown, err
	}
	if !present {
		d.chg.Info("no charger found")
		return ChargerUnknown, nil
	}
	if hook := d.variant.ChargerOverride; hook != nil {
		if t, ok := hook(d); ok {
			d.chg.Info("charger detected", "type", t.String(), "override", true)
			return t, nil
		}
	}
	cd := d.variant.ChargeDetect
	if cd == nil {
		return ChargerUnknown, &errcode.E{C: errcode.NoChargeDetect, Op: "detect charger"}
	}
	otg, err := d.variant.Port(PortOTG)
	if err != nil {
		return ChargerUnknown, err
	}

	t, err := d.classify(otg, cd)
	if err != nil {
		d.chg.Warn("charger detection aborted", "err", err)
		return ChargerUnknown, errors.Join(err, d.abort(otg, cd))
	}
	if err := d.restore(otg, cd); err != nil {
		return t, err
	}
	d.chg.Info("charger detected", "type", t.String())
	return t, nil
}

// DetectDataPort runs DetectCharger and reports whether the attached port
// also enumerates as a USB host.
func (d *Device) DetectDataPort() (bool, error) {
	t, err := d.DetectCharger()
	return t.DataCapable(), err
}

func (d *Device) vbusPresent() (bool, error) {
	if d.vbus != nil {
		ok, err := d.vbus.Get()
		if err != nil {
			return false, errcode.Wrap(errcode.IOError, "vbus gpio", err)
		}
		d.chg.Debug("vbus gpio", "valid", ok)
		return ok, nil
	}
	bvalid := d.variant.Ports[PortOTG].UTMIBValid
	if !bvalid.Present() {
		d.chg.Warn("no vbus gpio and no utmi_bvalid field")
		return false, nil
	}
	return d.get(bvalid)
}

// classify runs the DCD, primary and secondary stages. On error the caller
// must run abort.
func (d *Device) classify(otg *PortRegs, cd *ChargeDetectRegs) (ChargerType, error) {
	// Suspend the port and stop the transceiver driving the lines.
	if err := d.set(otg.PhySuspend, true); err != nil {
		return ChargerUnknown, err
	}
	if err := d.set(cd.OpMode, false); err != nil {
		return ChargerUnknown, err
	}
	d.dcdRetries = dcdMaxRetries
	d.primaryRetries = primaryMaxRetries

	d.chg.Debug("dcd start")
	if err := d.enableDCD(cd, true); err != nil {
		return ChargerUnknown, err
	}
	for d.dcdRetries > 0 {
		d.dcdRetries--
		d.clk.Sleep(dcdPollTime)
		contact, err := d.get(cd.DPDet)
		if err != nil {
			return ChargerUnknown, err
		}
		if contact || d.dcdRetries == 0 {
			if err := d.enableDCD(cd, false); err != nil {
				return ChargerUnknown, err
			}
			if err := d.enablePrimary(cd, true); err != nil {
				return ChargerUnknown, err
			}
			break
		}
	}

	d.clk.Sleep(primaryDetTime)
	vout, err := d.get(cd.CPDet)
	if err != nil {
		return ChargerUnknown, err
	}
	if err := d.enablePrimary(cd, false); err != nil {
		return ChargerUnknown, err
	}
	d.chg.Debug("primary detect", "vout", vout, "dcd_left", d.dcdRetries)

	if !vout {
		if d.dcdRetries == 0 {
			return ChargerFloating, nil
		}
		if vout, err = d.retryPrimary(cd); err != nil {
			return ChargerUnknown, err
		}
		if !vout {
			return ChargerSDP, nil
		}
	}

	if err := d.enableSecondary(cd, true); err != nil {
		return ChargerUnknown, err
	}
	d.clk.Sleep(secondaryDetTime)
	vout, err = d.get(cd.DCPDet)
	if err != nil {
		return ChargerUnknown, err
	}
	if err := d.enableSecondary(cd, false); err != nil {
		return ChargerUnknown, err
	}
	d.chg.Debug("secondary detect", "vout", vout)
	if vout {
		return ChargerDCP, nil
	}
	return ChargerCDP, nil
}

// retryPrimary repeats the primary stage until cp_det asserts or the budget
// runs out. The bundle is off when it returns without error.
func (d *Device) retryPrimary(cd *ChargeDetectRegs) (bool, error) {
	for d.primaryRetries > 0 {
		d.primaryRetries--
		if err := d.enablePrimary(cd, true); err != nil {
			return false, err
		}
		d.clk.Sleep(primaryDetTime)
		vout, err := d.get(cd.CPDet)
		if err != nil {
			return false, err
		}
		if err := d.enablePrimary(cd, false); err != nil {
			return false, err
		}
		if vout {
			return true, nil
		}
	}
	return false, nil
}

// Pull-down on DM, current source on DP.
func (d *Device) enableDCD(cd *ChargeDetectRegs, en bool) error {
	return d.setAll(en, cd.RDMPdwnEn, cd.IDPSrcEn)
}

// Voltage source on DP, sink on DM.
func (d *Device) enablePrimary(cd *ChargeDetectRegs, en bool) error {
	return d.setAll(en, cd.VDPSrcEn, cd.IDMSinkEn)
}

// Voltage source on DM, sink on DP.
func (d *Device) enableSecondary(cd *ChargeDetectRegs, en bool) error {
	return d.setAll(en, cd.VDMSrcEn, cd.IDPSinkEn)
}

func (d *Device) setAll(en bool, fs ...BitField) error {
	for _, f := range fs {
		if err := d.set(f, en); err != nil {
			return err
		}
	}
	return nil
}

func (d *Device) restore(otg *PortRegs, cd *ChargeDetectRegs) error {
	return errors.Join(d.set(cd.OpMode, true), d.set(otg.PhySuspend, false))
}

// abort switches every detection source off and restores normal mode,
// attempting each write regardless of earlier failures.
func (d *Device) abort(otg *PortRegs, cd *ChargeDetectRegs) error {
	var errs []error
	for _, f := range []BitField{
		cd.RDMPdwnEn, cd.IDPSrcEn,
		cd.VDPSrcEn, cd.IDMSinkEn,
		cd.VDMSrcEn, cd.IDPSinkEn,
	} {
		errs = append(errs, d.set(f, false))
	}
	errs = append(errs, d.restore(otg, cd))
	return errors.Join(errs...)
}
