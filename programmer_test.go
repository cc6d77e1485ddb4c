package gordon

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestProgrammer_RoundTrip checks the Round-trip-on-erased-device property:
// for any erase-block-aligned address and any payload, Write followed by
// Read at the same range returns exactly what was written.
func TestProgrammer_RoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		d := descByName("M25P40")
		chip := newFakeChip(d)
		p := NewProgrammer(chip, d)
		p.Progress = io.Discard

		blockSize := d.regions()[0].Size
		numBlocks := d.Capacity() / blockSize
		addr := rapid.Uint32Range(0, numBlocks-1).Draw(rt, "block") * blockSize

		dataLen := rapid.IntRange(1, int(blockSize)).Draw(rt, "len")
		data := rapid.SliceOfN(rapid.Byte(), dataLen, dataLen).Draw(rt, "data")

		require.NoError(t, p.Write(context.Background(), addr, data))

		got, err := p.Read(context.Background(), addr, uint32(len(data)))
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})
}

func TestProgrammer_Write_ErasesBeforeProgramming(t *testing.T) {
	d := descByName("M25P40")
	chip := newFakeChip(d)
	for i := range chip.mem {
		chip.mem[i] = 0x00
	}
	p := NewProgrammer(chip, d)
	p.Progress = io.Discard

	data := bytes.Repeat([]byte{0x42}, int(d.regions()[0].Size))
	require.NoError(t, p.Write(context.Background(), 0, data))
	assert.Equal(t, data, chip.mem[:len(data)])
}

func TestProgrammer_Write_SpansMultipleBlocks(t *testing.T) {
	d := descByName("A25L05PT")
	chip := newFakeChip(d)
	p := NewProgrammer(chip, d)
	p.Progress = io.Discard

	data := make([]byte, 32*1024+16*1024)
	for i := range data {
		data[i] = byte(i)
	}
	require.NoError(t, p.Write(context.Background(), 0, data))

	got, err := p.Read(context.Background(), 0, uint32(len(data)))
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestProgrammer_Write_PartialBlock_TailIsFF(t *testing.T) {
	d := descByName("M25P40")
	chip := newFakeChip(d)
	p := NewProgrammer(chip, d)
	p.Progress = io.Discard

	blockSize := d.regions()[0].Size
	data := []byte{1, 2, 3}
	require.NoError(t, p.Write(context.Background(), 0, data))

	got, err := p.Read(context.Background(), 0, blockSize)
	require.NoError(t, err)
	assert.Equal(t, data, got[:len(data)])
	for _, b := range got[len(data):] {
		assert.Equal(t, byte(0xFF), b)
	}
}

func TestProgrammer_Write_Misaligned(t *testing.T) {
	d := descByName("M25P40")
	chip := newFakeChip(d)
	p := NewProgrammer(chip, d)
	p.Progress = io.Discard

	err := p.Write(context.Background(), 1024, []byte{1, 2, 3})
	var mis *MisalignedError
	require.ErrorAs(t, err, &mis)
}

func TestProgrammer_Read_OutOfRange(t *testing.T) {
	d := descByName("M25P40")
	chip := newFakeChip(d)
	p := NewProgrammer(chip, d)

	_, err := p.Read(context.Background(), d.Capacity()-1, 2)
	var oor *OutOfRangeError
	require.ErrorAs(t, err, &oor)
}

func TestProgrammer_Erase_LeavesBlockAllFF(t *testing.T) {
	d := descByName("M25P40")
	chip := newFakeChip(d)
	for i := range chip.mem {
		chip.mem[i] = 0x11
	}
	p := NewProgrammer(chip, d)
	p.Progress = io.Discard

	blockSize := d.regions()[0].Size
	require.NoError(t, p.Erase(context.Background(), 0, blockSize))
	for _, b := range chip.mem[:blockSize] {
		assert.Equal(t, byte(0xFF), b)
	}
}
