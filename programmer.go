package gordon

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Programmer is the core of the flash engine: it combines the region walker
// with the command layer so that every erase block a write touches is
// erased before any of its pages are programmed. A Programmer is scoped to
// a single read/write session against one transport and one already-
// identified descriptor.
type Programmer struct {
	t Transport
	d *ChipDescriptor

	// Progress is written to for each page programmed, one '.' per page,
	// wrapping every 64 dots. Defaults to os.Stdout; set to io.Discard to
	// silence it.
	Progress io.Writer
}

// NewProgrammer returns a Programmer bound to transport t and descriptor d.
func NewProgrammer(t Transport, d *ChipDescriptor) *Programmer {
	return &Programmer{t: t, d: d, Progress: os.Stdout}
}

// Read reads length bytes starting at addr into a new slice. Reads bypass
// the region walker entirely: NOR flash permits arbitrary-length sequential
// reads across page and block boundaries.
func (p *Programmer) Read(ctx context.Context, addr, length uint32) ([]byte, error) {
	capacity := p.d.Capacity()
	if addr+length > capacity || addr+length < addr {
		return nil, &OutOfRangeError{Addr: addr, Len: length, Capacity: capacity}
	}
	return readData(ctx, p.t, p.d, addr, length)
}

// Write writes data to addr. For every erase block the range [addr,
// addr+len(data)) covers, Write erases the block, then programs it
// pageSize bytes at a time; the final, partial page of the final, partial
// block is padded with 0xFF by the command layer rather than preserving any
// pre-existing content beyond data — there is no read-modify-write here.
func (p *Programmer) Write(ctx context.Context, addr uint32, data []byte) error {
	seq, err := walk(p.d, addr, uint32(len(data)))
	if err != nil {
		return err
	}

	cursor := data
	dotCount := 0
	progress := p.Progress
	if progress == nil {
		progress = io.Discard
	}

	for blockAddr, bytesUsed := range seq {
		if err := eraseBlock(ctx, p.t, p.d, blockAddr); err != nil {
			return err
		}

		pageAddr := blockAddr
		remaining := bytesUsed
		pageData := cursor
		for remaining > 0 {
			n := p.d.PageSize
			if remaining < n {
				n = remaining
			}
			if err := programPage(ctx, p.t, p.d, pageAddr, pageData[:n]); err != nil {
				return err
			}
			dotCount = (dotCount + 1) & 0x3F
			if dotCount == 0 {
				fmt.Fprint(progress, ".\n")
			} else {
				fmt.Fprint(progress, ".")
			}
			pageAddr += n
			pageData = pageData[n:]
			remaining -= n
		}
		cursor = cursor[bytesUsed:]
	}
	return nil
}

// Erase erases every block covering [addr, addr+length) without
// programming anything, leaving the range in the chip's erased (0xFF)
// state. It is the standalone counterpart to Write's erase-then-program
// loop, used by callers that want to blank a region (or, with addr=0 and
// length=descriptor.Capacity(), the whole device) ahead of time.
func (p *Programmer) Erase(ctx context.Context, addr, length uint32) error {
	seq, err := walk(p.d, addr, length)
	if err != nil {
		return err
	}
	for blockAddr, bytesUsed := range seq {
		if err := eraseBlock(ctx, p.t, p.d, blockAddr); err != nil {
			return err
		}
		if p.d.Family == FamilyDataFlash {
			// DataFlash has no separate block erase; programming each
			// touched page with all-0xFF through 0x82 erases it instead.
			for off := uint32(0); off < bytesUsed; off += p.d.PageSize {
				if err := programPage(ctx, p.t, p.d, blockAddr+off, nil); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
