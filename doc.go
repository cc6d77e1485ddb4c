// Package gordon programs, erases, and reads the SPI-attached configuration
// flash chip of an FPGA board.
//
// The package does not speak SPI itself. It consumes a [Transport], a single
// abstract "send command bytes, optionally receive response bytes, atomically
// between chip-select low and high" operation, and builds chip identification,
// per-family command synthesis, and erase/program orchestration on top of it.
//
// # References:
//
// FTDI (https://ftdichip.com/document/application-notes/)
//   - [FTDI-AN_108]: Command Processor for MPSSE and MCU Host Bus Emulation Modes
//   - [FTDI-AN_114]: Interfacing FT2232H Hi-Speed Devices To SPI Bus
//   - [FTDI-AN_135]: FTDI MPSSE Basics
//   - [FTDI-DS_FT2232H]: FT2232H Hi-Speed Dual USB UART/FIFO IC Data Sheet
//
// FPGA
//   - [Lattice-EB82]: iCEstick User Manual
//   - [iCEBreaker]: iCEBreaker FPGA
//
// SPI Flash
//   - [N25Q32]: N25Q032A Micron Serial NOR Flash Memory datasheet
//   - [W25Q128]: W25Q128JV-DTR Winbond Serial Flash Memory
//   - [flashrom]: http://www.flashrom.org — the FlashChip descriptor layout
//     this package's ChipDescriptor is modelled on.
package gordon
