// Package shotfmt reads and writes sampled shots in the two record formats
// produced and consumed by the stim tool.
//
//   - b8: each shot is packed into ⌈n/8⌉ bytes, bit k of the shot in bit k%8
//     (least significant first) of byte k/8. Padding bits are zero on write
//     and ignored on read. Shots are concatenated with no separator, so the
//     reader must be told the shot width.
//   - 01: one line per shot of '0'/'1' characters. Blank lines are skipped.
//
// A shot is a []bool; a batch is a [][]bool with one row per shot.
package shotfmt
