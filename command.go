package gordon

import (
	"context"
	"time"
)

const (
	cmdWriteEnable  = 0x06
	cmdPageProgram  = 0x02
	cmdPageProgram2 = 0x82 // DataFlash "program through buffer 1 with built-in erase"
	cmdBlockErase   = 0xD8

	bitWIP   = 0x01 // status register 0x05, bit 0
	bitReady = 0x80 // status register 0xD7, bit 7
)

// pollInterval is the spacing between WIP/READY polls. No minimum interval
// is mandated by the flash protocol; this one is generous enough to avoid
// hammering the transport while still resolving sub-millisecond operations
// promptly.
const pollInterval = 500 * time.Microsecond

func flashAddress(d *ChipDescriptor, byteAddr uint32) uint32 {
	pageNum := byteAddr / d.PageSize
	pageOffset := byteAddr % d.PageSize
	return pageNum<<d.BitShift | pageOffset
}

func addr24(a uint32) [3]byte {
	return [3]byte{byte(a >> 16), byte(a >> 8), byte(a)}
}

// eraseBlock erases the erase block containing blockAddr, which callers
// guarantee is block-aligned (and therefore page-aligned, with zero
// intra-page offset).
func eraseBlock(ctx context.Context, t Transport, d *ChipDescriptor, blockAddr uint32) error {
	switch d.Family {
	case FamilyDataFlash:
		// DataFlash page-program opcode 0x82 erases implicitly; there is
		// no separate block-erase step.
		return nil
	default:
		a := addr24(flashAddress(d, blockAddr))
		if _, err := t.SendMessage(ctx, []byte{cmdWriteEnable}, 0); err != nil {
			return err
		}
		if _, err := t.SendMessage(ctx, []byte{cmdBlockErase, a[0], a[1], a[2]}, 0); err != nil {
			return err
		}
		return pollUntil(ctx, t, cmdReadStatus, bitWIP, false)
	}
}

// programPage programs up to pageSize bytes of data at a page-aligned
// address, padding the remainder of the page with 0xFF.
func programPage(ctx context.Context, t Transport, d *ChipDescriptor, pageAddr uint32, data []byte) error {
	a := addr24(flashAddress(d, pageAddr))

	buf := make([]byte, 4+d.PageSize)
	var opcode byte
	switch d.Family {
	case FamilyDataFlash:
		opcode = cmdPageProgram2
	default:
		opcode = cmdPageProgram
	}
	buf[0] = opcode
	buf[1], buf[2], buf[3] = a[0], a[1], a[2]
	n := copy(buf[4:], data)
	for i := 4 + n; i < len(buf); i++ {
		buf[i] = 0xFF
	}

	switch d.Family {
	case FamilyDataFlash:
		if _, err := t.SendMessage(ctx, buf, 0); err != nil {
			return err
		}
		return pollUntil(ctx, t, cmdReadStatusAtmel, bitReady, true)
	default:
		if _, err := t.SendMessage(ctx, []byte{cmdWriteEnable}, 0); err != nil {
			return err
		}
		if _, err := t.SendMessage(ctx, buf, 0); err != nil {
			return err
		}
		return pollUntil(ctx, t, cmdReadStatus, bitWIP, false)
	}
}

// readData reads length bytes starting at addr, which need not be page- or
// block-aligned: NOR flash streams sequentially across page and block
// boundaries during a read.
func readData(ctx context.Context, t Transport, d *ChipDescriptor, addr, length uint32) ([]byte, error) {
	a := addr24(flashAddress(d, addr))
	return t.SendMessage(ctx, []byte{0x03, a[0], a[1], a[2]}, int(length))
}

// pollUntil repeatedly reads the given single-byte status register until
// the tested bit matches wantSet, sleeping pollInterval between reads. The
// chip guarantees it will eventually clear WIP / set READY; there is no
// local timeout, matching the spec's "no local retry" error model — a wedged
// chip blocks until ctx is cancelled, at which point ctx's error is
// returned.
func pollUntil(ctx context.Context, t Transport, statusCmd byte, bit byte, wantSet bool) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		resp, err := t.SendMessage(ctx, []byte{statusCmd}, 1)
		if err != nil {
			return err
		}
		set := resp[0]&bit != 0
		if set == wantSet {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pollInterval):
		}
	}
}
