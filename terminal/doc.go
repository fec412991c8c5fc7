// Package terminal is the concrete terminal I/O driver: raw mode and
// alternate screen control, direct ANSI output with batched writes, and a
// raw input parser turning the byte stream into key, mouse and resize
// events.
//
// Features:
//   - True color (24-bit) and 256-color palette output
//   - Batched writes through a buffered writer with explicit flush
//   - Raw stdin parsing with CSI/SS3 escape tables and SGR mouse reports
//   - SIGWINCH resize detection
//   - Emergency terminal restoration for panic recovery
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI
// sequences. Target environments: Linux, macOS, BSDs with xterm-compatible
// terminals. Events carry driver-level key codes and modifier bitsets;
// normalization into the toolkit vocabulary happens in the backend
// adapters, not here.
package terminal
