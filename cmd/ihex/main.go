// Command ihex converts between Intel HEX files and raw binary images, and
// can flash a converted image to a device over a serial port.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"go.bug.st/serial"

	"github.com/HKrzyszczak/go-ihex/flasher"
	"github.com/HKrzyszczak/go-ihex/ihex"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "hex2bin":
		err = runHex2Bin(os.Args[2:])
	case "bin2hex":
		err = runBin2Hex(os.Args[2:])
	case "flash":
		err = runFlash(os.Args[2:])
	case "ports":
		err = listPorts()
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  hex2bin <in.hex> <out.bin>              convert Intel HEX to binary")
	fmt.Fprintln(os.Stderr, "  bin2hex [options] <in.bin> <out.hex>    convert binary to Intel HEX")
	fmt.Fprintln(os.Stderr, "  flash [options] <in.hex>                flash a HEX file over serial")
	fmt.Fprintln(os.Stderr, "  ports                                   list available serial ports")
}

func runHex2Bin(args []string) error {
	fs := flag.NewFlagSet("hex2bin", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: ihex hex2bin <in.hex> <out.bin>")
	}
	fs.Parse(args)
	if fs.NArg() != 2 {
		fs.Usage()
		os.Exit(1)
	}

	in, err := os.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	defer in.Close()

	img, err := ihex.ParseReader(in)
	if err != nil {
		return fmt.Errorf("parse %s: %w", fs.Arg(0), err)
	}

	if err := os.WriteFile(fs.Arg(1), img.Data, 0644); err != nil {
		return err
	}

	fmt.Printf("0x%08X-0x%08X (%d bytes) -> %s\n",
		img.MinAddress, img.MaxAddress, img.Size(), fs.Arg(1))
	return nil
}

func runBin2Hex(args []string) error {
	fs := flag.NewFlagSet("bin2hex", flag.ExitOnError)
	base := fs.String("base", "0", "base address: hex value (0x-prefixed or bare) or preset name")
	width := fs.Int("width", 16, "data bytes per record")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: ihex bin2hex [options] <in.bin> <out.hex>")
		fmt.Fprintln(os.Stderr, "Options:")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "Presets: %s\n", presetNames())
	}
	fs.Parse(args)
	if fs.NArg() != 2 {
		fs.Usage()
		os.Exit(1)
	}

	baseAddr, err := ihex.ParseBaseAddress(*base)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}

	out, err := os.Create(fs.Arg(1))
	if err != nil {
		return err
	}
	defer out.Close()

	if err := ihex.GenerateTo(out, data, baseAddr, *width); err != nil {
		return fmt.Errorf("generate %s: %w", fs.Arg(1), err)
	}

	fmt.Printf("%d bytes at 0x%08X -> %s\n", len(data), baseAddr, fs.Arg(1))
	return nil
}

func runFlash(args []string) error {
	fs := flag.NewFlagSet("flash", flag.ExitOnError)
	portName := fs.String("port", "", "serial port (required)")
	baud := fs.Int("baud", 115200, "baud rate")
	chunk := fs.Int("chunk", flasher.DefaultChunkSize, "bytes written per frame")
	noVerify := fs.Bool("no-verify", false, "skip read-back verification")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: ihex flash [options] <in.hex>")
		fmt.Fprintln(os.Stderr, "Options:")
		fs.PrintDefaults()
	}
	fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(1)
	}

	if *portName == "" {
		fs.Usage()
		fmt.Fprintln(os.Stderr)
		listPorts()
		os.Exit(1)
	}

	in, err := os.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	defer in.Close()

	img, err := ihex.ParseReader(in)
	if err != nil {
		return fmt.Errorf("parse %s: %w", fs.Arg(0), err)
	}

	mode := &serial.Mode{
		BaudRate: *baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(*portName, mode)
	if err != nil {
		return fmt.Errorf("open %s: %w", *portName, err)
	}
	defer port.Close()

	fl := flasher.New(port,
		flasher.WithChunkSize(*chunk),
		flasher.WithVerify(!*noVerify),
		flasher.WithProgressCallback(func(p flasher.Progress) {
			fmt.Printf("\r[%s] %5.1f%% (%d/%d)", p.Phase, p.Percentage, p.CurrentChunk, p.TotalChunks)
		}),
	)

	fmt.Printf("Flashing %d bytes at 0x%08X to %s\n", img.Size(), img.MinAddress, *portName)
	if err := fl.Flash(context.Background(), img); err != nil {
		fmt.Println()
		return err
	}
	fmt.Println("\nDone")
	return nil
}

func listPorts() error {
	ports, err := serial.GetPortsList()
	if err != nil {
		return fmt.Errorf("list serial ports: %w", err)
	}
	if len(ports) == 0 {
		fmt.Println("No serial ports found")
		return nil
	}

	fmt.Println("Available serial ports:")
	for _, p := range ports {
		fmt.Printf("  %s\n", p)
	}
	return nil
}

func presetNames() string {
	names := make([]string, 0, len(ihex.BaseAddressPresets))
	for name := range ihex.BaseAddressPresets {
		names = append(names, name)
	}
	sort.Strings(names)

	out := ""
	for i, name := range names {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s (0x%08X)", name, ihex.BaseAddressPresets[name])
	}
	return out
}
