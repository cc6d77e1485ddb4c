package gordon

import (
	"context"
)

// fakeChip is a fake Transport that models a single SPI NOR/DataFlash part
// in memory, in the spirit of the retrieved i2cm package's PVT24 fake EEPROM
// transactor: it tracks real chip state (erased-to-0xFF, program-only-clears-
// bits) well enough to exercise the command layer and programmer without any
// real hardware.
type fakeChip struct {
	desc         *ChipDescriptor
	mem          []byte
	log          []fakeTx
	statusBits   byte // bit 0 = WIP (standard) / power-two config (Atmel)
	readyBits    byte // bit 7 = READY (Atmel)
	writeEnabled bool
}

type fakeTx struct {
	cmd     []byte
	recvLen int
}

func newFakeChip(desc *ChipDescriptor) *fakeChip {
	mem := make([]byte, desc.Capacity())
	for i := range mem {
		mem[i] = 0xFF
	}
	return &fakeChip{desc: desc, mem: mem, readyBits: bitReady}
}

func (f *fakeChip) SendMessage(ctx context.Context, cmd []byte, recvLen int) ([]byte, error) {
	f.log = append(f.log, fakeTx{cmd: append([]byte(nil), cmd...), recvLen: recvLen})

	switch cmd[0] {
	case cmdReadID:
		resp := make([]byte, recvLen)
		if f.desc.VendorID <= 0xFF {
			resp[0] = byte(f.desc.VendorID)
			resp[1] = byte(f.desc.DeviceID >> 8)
			resp[2] = byte(f.desc.DeviceID)
		} else {
			resp[0] = 0x7F
			resp[1] = byte(f.desc.VendorID)
			resp[2] = byte(f.desc.DeviceID >> 8)
			resp[3] = byte(f.desc.DeviceID)
		}
		return resp, nil
	case cmdReadStatus:
		return []byte{f.statusBits}, nil
	case cmdReadStatusAtmel:
		return []byte{f.readyBits | f.statusBits}, nil
	case cmdWriteEnable:
		f.writeEnabled = true
		return nil, nil
	case cmdBlockErase:
		addr := uint32(cmd[1])<<16 | uint32(cmd[2])<<8 | uint32(cmd[3])
		blockAddr, size := f.blockForFlashAddr(addr)
		for i := uint32(0); i < size; i++ {
			f.mem[blockAddr+i] = 0xFF
		}
		f.writeEnabled = false
		return nil, nil
	case cmdPageProgram, cmdPageProgram2:
		addr := uint32(cmd[1])<<16 | uint32(cmd[2])<<8 | uint32(cmd[3])
		byteAddr := f.byteAddrFromFlashAddr(addr)
		data := cmd[4:]
		for i, b := range data {
			f.mem[byteAddr+uint32(i)] &= b // program can only clear bits
		}
		f.writeEnabled = false
		return nil, nil
	case 0x03:
		addr := uint32(cmd[1])<<16 | uint32(cmd[2])<<8 | uint32(cmd[3])
		byteAddr := f.byteAddrFromFlashAddr(addr)
		out := make([]byte, recvLen)
		copy(out, f.mem[byteAddr:])
		return out, nil
	case 0xAB, 0xB9:
		return nil, nil
	}
	return make([]byte, recvLen), nil
}

// byteAddrFromFlashAddr inverts flashAddress: flashAddr = (byteAddr/pageSize)<<bitShift | byteAddr%pageSize.
func (f *fakeChip) byteAddrFromFlashAddr(flashAddr uint32) uint32 {
	pageNum := flashAddr >> f.desc.BitShift
	offset := flashAddr & (1<<f.desc.BitShift - 1)
	return pageNum*f.desc.PageSize + offset
}

func (f *fakeChip) blockForFlashAddr(flashAddr uint32) (blockAddr, size uint32) {
	byteAddr := f.byteAddrFromFlashAddr(flashAddr)
	var cumulative uint32
	for _, r := range f.desc.regions() {
		for i := uint32(0); i < r.Count; i++ {
			if byteAddr >= cumulative && byteAddr < cumulative+r.Size {
				return cumulative, r.Size
			}
			cumulative += r.Size
		}
	}
	return byteAddr, 0
}

func descByName(name string) *ChipDescriptor {
	for i := range flashChips {
		if flashChips[i].DeviceName == name {
			return &flashChips[i]
		}
	}
	panic("no such descriptor: " + name)
}
