// Package credential maps a fixed-size byte store onto a bounded list of
// wireless network credentials.
//
// # Layout
//
// The store occupies LayoutSize (1025) bytes at the start of the byte store:
//
//	offset 0              count of valid slots, 0..16
//	offset 1 + i*64       slot i name, 32 bytes, null-padded
//	offset 1 + i*64 + 32  slot i secret, 32 bytes, null-padded
//
// Fields carry no length prefix. A decoded field ends at its first NUL
// byte, so each value holds at most 31 bytes.
//
// # Semantics
//
//   - Append writes slot count, increments the count and commits. There is
//     no update in place and no deduplication: a network entered twice
//     occupies two slots.
//   - WipeAll zeroes the count and every slot byte, then commits. There is
//     no per-slot deletion.
//   - A persisted count above MaxSlots is corruption. Open resets it to
//     zero, persists the reset and reports it through Recovery; it is never
//     fatal.
package credential
