// Package bytestore models the device's fixed-size persistent byte array.
//
// On the target hardware this is an EEPROM (or flash emulating one): a
// small addressable region with byte reads, byte writes into a RAM cache,
// and an explicit commit that flushes the cache to durable storage. The
// Store interface captures exactly that contract so higher layers can
// reason about durability: a write is only durable after Commit returns.
//
// Two implementations are provided:
//
//   - MemoryStore keeps a working buffer and a separate durable image.
//     Reload discards uncommitted writes, which simulates a power cycle.
//   - FileStore persists the image to a single file. A missing file is
//     created as an erased image (all 0xFF), like fresh flash.
package bytestore
