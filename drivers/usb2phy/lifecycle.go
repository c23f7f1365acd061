package usb2phy

import "usb2phy-go/errcode"

// InitPort takes port p out of suspend and waits for the UTMI clock.
func (d *Device) InitPort(p Port) error {
	r, err := d.variant.Port(p)
	if err != nil {
		return err
	}
	if err := d.set(r.PhySuspend, false); err != nil {
		return err
	}
	d.clk.Sleep(utmiClkSettle)
	return nil
}

// ExitPort puts port p into suspend.
func (d *Device) ExitPort(p Port) error {
	r, err := d.variant.Port(p)
	if err != nil {
		return err
	}
	return d.set(r.PhySuspend, true)
}

// ResetOTG keeps the PHY output clock running and pulses OTG suspend, as the
// gadget controller expects before it starts.
func (d *Device) ResetOTG() error {
	r, err := d.variant.Port(PortOTG)
	if err != nil {
		return err
	}
	if clk := d.variant.ClkOutCtl; clk.Disable != 0 {
		if err := d.set(clk, true); err != nil {
			return err
		}
	}
	if err := d.set(r.PhySuspend, true); err != nil {
		return err
	}
	d.clk.Sleep(suspendPulse)
	if err := d.set(r.PhySuspend, false); err != nil {
		return err
	}
	d.clk.Sleep(utmiClkSettle)
	return nil
}

// PowerOn enables the VBUS supply of port p, if one is bound.
func (d *Device) PowerOn(p Port) error { return d.power(p, true) }

// PowerOff disables the VBUS supply of port p, if one is bound.
func (d *Device) PowerOff(p Port) error { return d.power(p, false) }

func (d *Device) power(p Port, on bool) error {
	if _, err := d.variant.Port(p); err != nil {
		return err
	}
	s := d.supplies[p]
	if s == nil {
		return nil
	}
	if err := s.SetEnabled(on); err != nil {
		d.log.Error("failed to set vbus supply", "port", p.String(), "on", on, "err", err)
		return errcode.Wrap(errcode.IOError, "vbus supply", err)
	}
	return nil
}

// ResetPHY pulses the reset line, if one is bound.
func (d *Device) ResetPHY() error {
	if d.reset == nil {
		return nil
	}
	if err := d.reset.Assert(); err != nil {
		return errcode.Wrap(errcode.IOError, "reset assert", err)
	}
	d.clk.Sleep(resetPulse)
	if err := d.reset.Deassert(); err != nil {
		return errcode.Wrap(errcode.IOError, "reset deassert", err)
	}
	d.clk.Sleep(resetRecovery)
	return nil
}

// StatusBits is a snapshot of the port's UTMI status signals.
type StatusBits uint8

const (
	StatusAValid StatusBits = 1 << iota
	StatusBValid
	StatusIDDig
	StatusHostDisconnect
)

func (s StatusBits) Has(b StatusBits) bool { return s&b != 0 }

// PortStatus is the result of PortStatus. Available marks which bits the
// variant wires; LineState is valid only when HasLineState is set.
type PortStatus struct {
	Bits         StatusBits
	Available    StatusBits
	LineState    uint32
	HasLineState bool
}

// PortStatus reads every present status field of port p.
func (d *Device) PortStatus(p Port) (PortStatus, error) {
	r, err := d.variant.Port(p)
	if err != nil {
		return PortStatus{}, err
	}
	var st PortStatus
	for _, s := range []struct {
		f   BitField
		bit StatusBits
	}{
		{r.UTMIAValid, StatusAValid},
		{r.UTMIBValid, StatusBValid},
		{r.UTMIIDDig, StatusIDDig},
		{r.UTMIHostDisconnect, StatusHostDisconnect},
	} {
		if !s.f.Present() {
			continue
		}
		st.Available |= s.bit
		on, err := d.get(s.f)
		if err != nil {
			return st, err
		}
		if on {
			st.Bits |= s.bit
		}
	}
	if r.UTMILineState.Present() {
		ls, err := d.ReadField(r.UTMILineState)
		if err != nil {
			return st, err
		}
		st.LineState, st.HasLineState = ls, true
	}
	return st, nil
}
