package gordon

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/host/v3"
	"periph.io/x/host/v3/ftdi"
)

// Bridge is the "direct microcontroller SPI bridge" transport named in
// SPEC_FULL.md §1: an FT2232H's MPSSE engine, reached through periph.io,
// wired to an FPGA board's configuration-flash SPI bus the way an
// iCEBreaker/iCEstick does it.
type Bridge struct {
	ft    *ftdi.FT232H
	cs    gpio.PinIO // ADBUS4 Chip Select
	reset gpio.PinIO // ADBUS7 Reset
	cdone gpio.PinIO // ADBUS6 Done

	clock physic.Frequency
	conn  spi.Conn
}

var hostInitialized atomic.Bool

const (
	ftdiVendorID  = 0x0403 // FTDI
	ftdiProductID = 0x6010 // FT2232H
)

// OpenBridge finds an FT2232H device and opens an MPSSE/SPI connection to
// it at the teacher board's clock and mode: 30MHz, Mode0 ([FTDI-AN_135
// 3.2.1]: divisors cover [92Hz, 30MHz]; FTDI's MPSSE engine only supports
// mode 0 and mode 2 — [FTDI-AN_114 1.2] — and the flash parts this package
// knows about all support mode 0 — [N25Q32|Table 7]).
func OpenBridge(ctx context.Context) (*Bridge, error) {
	if hostInitialized.CompareAndSwap(false, true) {
		if _, err := host.Init(); err != nil {
			return nil, fmt.Errorf("host initialization failed: %w", err)
		}
	}

	b := &Bridge{
		clock: 30 * physic.MegaHertz,
	}
	if err := b.findFT2232H(); err != nil {
		return nil, err
	}

	// [EB82|Appendix A. Sheet 2 of 5 (USB to SPI/RS232)] / [icebreaker-sch.pdf]
	// ADBUS0 | iCE_SCK
	// ADBUS1 | iCE_MOSI / FLASH_MOSI
	// ADBUS2 | iCE_MISO / FLASH_MISO
	// ADBUS4 | iCE_SS_B
	// ADBUS6 | iCE_CDONE
	// ADBUS7 | iCE_CRESET / iCE_RESET
	b.cs = b.ft.D4
	b.reset = b.ft.D7
	b.cdone = b.ft.D6

	if err := b.connectSPI(); err != nil {
		return nil, err
	}
	return b, nil
}

// ResetFPGA asserts (low) or deasserts (high) the FPGA reset line. Holding
// it low prevents the FPGA from driving the shared SPI bus while the host
// programs the flash directly.
func (b *Bridge) ResetFPGA(l gpio.Level) error {
	return b.reset.Out(l)
}

// Done reports the FPGA's CDONE line: high once it has successfully loaded
// its bitstream from flash.
func (b *Bridge) Done() (gpio.Level, error) {
	if err := b.cdone.In(gpio.PullNoChange, gpio.NoEdge); err != nil {
		return gpio.Low, err
	}
	return b.cdone.Read(), nil
}

// PowerUp issues the flash's Release Power Down opcode (0xAB) and waits out
// tRES1. This, like ResetFPGA, is board/transport-level power sequencing
// named in SPEC_FULL.md §1 as the transport's responsibility, not the
// core's: it happens before the core ever touches the chip.
func (b *Bridge) PowerUp(ctx context.Context) error {
	if _, err := b.Transport().SendMessage(ctx, []byte{0xAB}, 0); err != nil {
		return err
	}
	time.Sleep(3 * time.Microsecond)
	return nil
}

// PowerDown issues the flash's Power Down opcode (0xB9) and waits out tDP.
func (b *Bridge) PowerDown(ctx context.Context) error {
	if _, err := b.Transport().SendMessage(ctx, []byte{0xB9}, 0); err != nil {
		return err
	}
	time.Sleep(3 * time.Microsecond)
	return nil
}

// FTDI returns the underlying FT2232H handle, for callers that want board
// info (EEPROM contents, VID/PID, ...) beyond what Transport exposes.
func (b *Bridge) FTDI() *ftdi.FT232H {
	return b.ft
}

// Transport adapts the bridge's SPI connection and chip-select line into
// this package's Transport contract.
func (b *Bridge) Transport() Transport {
	return &spiTransport{conn: b.conn, cs: b.cs}
}

func (b *Bridge) findFT2232H() error {
	info := ftdi.Info{}
	for _, dev := range ftdi.All() {
		dev.Info(&info)
		if info.VenID != ftdiVendorID || info.DevID != ftdiProductID {
			continue
		}
		if ft, ok := dev.(*ftdi.FT232H); ok {
			b.ft = ft
			return nil
		}
	}
	return errors.New("gordon: FT2232H device not found")
}

func (b *Bridge) connectSPI() (err error) {
	if b.ft == nil {
		return errors.New("gordon: FT2232H device not found")
	}
	port, err := b.ft.SPI()
	if err != nil {
		return fmt.Errorf("failed to get SPI port: %w", err)
	}
	b.conn, err = port.Connect(b.clock, spi.Mode0, 8)
	return err
}

// spiTransport implements Transport over a periph.io SPI connection and an
// explicit chip-select GPIO, matching sendMessage's atomicity requirement:
// the whole cmd/recv exchange happens between one CS-low and one CS-high.
type spiTransport struct {
	conn spi.Conn
	cs   gpio.PinIO
}

func (s *spiTransport) SendMessage(ctx context.Context, cmd []byte, recvLen int) (resp []byte, err error) {
	buf := make([]byte, len(cmd)+recvLen)
	copy(buf, cmd)

	if err = s.cs.Out(gpio.Low); err != nil {
		return nil, err
	}
	defer func() {
		if csErr := s.cs.Out(gpio.High); csErr != nil && err == nil {
			err = csErr
		}
	}()

	if err = s.conn.Tx(buf, buf); err != nil {
		return nil, err
	}
	if recvLen == 0 {
		return nil, nil
	}
	return buf[len(cmd):], nil
}
