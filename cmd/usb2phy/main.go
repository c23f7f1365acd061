// Command usb2phy runs charger detection and port operations on the USB2
// PHYs of a board. Without -hw it works against the simulated board.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"usb2phy-go/drivers/usb2phy"
	"usb2phy-go/errcode"
	"usb2phy-go/services/phy"
	"usb2phy-go/services/phy/config"
	"usb2phy-go/x/logx"
	"usb2phy-go/x/timex"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

// simClock paces PHY delays when running on the simulation.
var simClock timex.Sleeper = timex.Real{}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	board, file, dtb string
	op, phy, port    string
	hw               bool
	devmem           string
	verbose, json    bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("usb2phy", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.board, "config", config.DefaultBoard, "embedded board: "+strings.Join(config.Boards(), ", "))
	fs.StringVar(&o.file, "config-file", "", "board description JSON, overrides -config")
	fs.StringVar(&o.dtb, "dtb", "", "derive the board from a device tree blob")
	fs.StringVar(&o.op, "op", "detect", "detect | list | probe | init | exit | reset | power-on | power-off | status | phy-reset")
	fs.StringVar(&o.phy, "phy", "", "PHY id; detect runs on every PHY when empty")
	fs.StringVar(&o.port, "port", "otg", "otg | host")
	fs.BoolVar(&o.hw, "hw", false, "use /dev/mem and board GPIOs instead of the simulation")
	fs.StringVar(&o.devmem, "devmem", "", "physical memory device for -hw")
	fs.BoolVar(&o.verbose, "v", false, "debug logging")
	fs.BoolVar(&o.json, "json", false, "print JSON")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return o, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, err)
		}
		return exitUsage
	}
	if o.verbose {
		logx.SetLevel(slog.LevelDebug)
	}
	log := logx.For(logx.ComponentCLI)
	out := printer{w: stdout, json: o.json}

	if o.op == "probe" {
		if o.dtb == "" {
			fmt.Fprintln(stderr, "-op probe needs -dtb")
			return exitUsage
		}
		phys, err := phy.Probe(o.dtb)
		if err != nil {
			return fail(stderr, err)
		}
		for _, p := range phys {
			out.emit(p, fmt.Sprintf("%s %s reg=0x%x enabled=%v", p.Path, p.Compatible, p.Reg, p.Enabled))
		}
		return exitOK
	}

	cfg, err := loadBoard(o)
	if err != nil {
		return fail(stderr, err)
	}

	var f phy.Factory
	clk := simClock
	if o.hw {
		if f, err = phy.Hardware(o.devmem, o.dtb); err != nil {
			return fail(stderr, err)
		}
		clk = timex.Real{}
	} else {
		f = phy.Simulated()
	}
	svc, err := phy.New(cfg, f, phy.WithClock(clk))
	if err != nil {
		return fail(stderr, err)
	}
	defer svc.Close()
	log.Debug("board bound", "board", cfg.Board, "phys", len(svc.IDs()), "hw", o.hw)

	switch o.op {
	case "list":
		for _, i := range svc.Info() {
			out.emit(i, fmt.Sprintf("%s %s reg=%s ports=%s charger_detect=%v",
				i.ID, i.Compatible, i.Reg, strings.Join(i.Ports, ","), i.Charger))
		}
		return exitOK
	case "detect":
		return detect(ctx, svc, o.phy, out, stderr)
	}

	op, err := phy.ParseOp(o.op)
	if err != nil {
		return usage(stderr, err)
	}
	port, err := usb2phy.ParsePort(o.port)
	if err != nil {
		return usage(stderr, err)
	}
	id := o.phy
	if id == "" {
		id = svc.IDs()[0]
	}
	v, err := svc.Port(id, port, op)
	text := fmt.Sprintf("%s %s %s: ok", v.PHY, v.Port, v.Op)
	if op == phy.OpStatus {
		text = fmt.Sprintf("%s %s: avalid=%s bvalid=%s iddig=%s disconnect=%s linestate=%s",
			v.PHY, v.Port, flagStr(v.AValid), flagStr(v.BValid), flagStr(v.IDDig), flagStr(v.HostDisconnect), lineStr(v.LineState))
	}
	if err != nil {
		if out.json {
			out.emit(v, "")
		}
		return fail(stderr, err)
	}
	out.emit(v, text)
	return exitOK
}

func loadBoard(o options) (config.BoardConfig, error) {
	switch {
	case o.file != "":
		return config.LoadFile(o.file)
	case o.dtb != "":
		return phy.ProbeBoard(o.dtb)
	default:
		return config.Load(o.board)
	}
}

func detect(ctx context.Context, svc *phy.Service, id string, out printer, stderr io.Writer) int {
	if id != "" {
		v, err := svc.Detect(id)
		out.emit(v, fmt.Sprintf("%s: %s (%s)", v.PHY, v.Kind, v.Type))
		if err != nil {
			return fail(stderr, err)
		}
		return exitOK
	}
	vs, err := svc.DetectAll(ctx)
	for _, v := range vs {
		out.emit(v, fmt.Sprintf("%s: %s (%s)", v.PHY, v.Kind, v.Type))
	}
	if err != nil {
		return fail(stderr, err)
	}
	return exitOK
}

type printer struct {
	w    io.Writer
	json bool
}

func (p printer) emit(v any, text string) {
	if !p.json {
		fmt.Fprintln(p.w, text)
		return
	}
	enc := json.NewEncoder(p.w)
	if err := enc.Encode(v); err != nil {
		fmt.Fprintln(p.w, text)
	}
}

func fail(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "usb2phy: %v (%s)\n", err, errcode.Of(err))
	return exitFail
}

func usage(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "usb2phy: %v\n", err)
	return exitUsage
}

func flagStr(b *bool) string {
	if b == nil {
		return "-"
	}
	if *b {
		return "1"
	}
	return "0"
}

func lineStr(v *uint32) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%02b", *v)
}
