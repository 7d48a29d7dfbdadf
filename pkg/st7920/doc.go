// Package st7920 drives an ST7920 128x64 graphic LCD controller in serial
// (SPI) mode.
//
// In serial mode every transfer starts with a synchronization byte that
// selects instruction or data, followed by each payload byte split into two
// bytes carrying the high and the low nibble in their upper four bits. The
// chip select line is active high.
//
// The graphic RAM of a 128x64 panel is laid out as 256x32: rows 32 to 63 are
// addressed as rows 0 to 31 starting at horizontal word 8.
package st7920
