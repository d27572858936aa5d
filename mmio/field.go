// Package mmio provides typed access to memory-mapped peripheral registers.
//
// A register block is a Go struct of accessors (RO, WO, RW, SR, SRS) and
// padding laid out exactly as the datasheet lays out the peripheral, placed
// at its bus address with At. Fields are declared once per register type as
// package-level values:
//
//	type Mode struct{}
//
//	var Prescaler = mmio.Uint[Mode, uint16](0, 16)
//	var Restart = mmio.Bit[Mode](18)
//
//	blk.Mode.SetFields(func(w mmio.Word[Mode]) mmio.Word[Mode] {
//		return Prescaler.With(w, 0x20)
//	})
//
// The register type parameter R ties a field to the register it was declared
// for, so a field cannot be applied to the wrong register.
//
// Nothing in this package synchronises. Read-modify-write and the paired
// set/reset writes are multiple bus operations and are only correct because
// the firmware runs a single cooperative thread with interrupts unused.
package mmio

import (
	"golang.org/x/exp/constraints"

	"duecode-go/errcode"
)

// fill returns an n-bit all-ones mask. n=32 is special-cased: the whole word.
func fill(n uint8) uint32 {
	if n >= 32 {
		return 0xFFFF_FFFF
	}
	return uint32(1)<<n - 1
}

// Field is a contiguous run of bits inside register R carrying a T.
type Field[R, T any] struct {
	offset uint8
	width  uint8
	enc    func(T) uint32
	dec    func(uint32) T
}

func newField[R, T any](offset, width uint8, enc func(T) uint32, dec func(uint32) T) Field[R, T] {
	if width == 0 || width > 32 || offset > 31 || uint16(offset)+uint16(width) > 32 {
		errcode.Fatal(errcode.InvalidField, "mmio.field", "offset+width exceeds word")
	}
	return Field[R, T]{offset: offset, width: width, enc: enc, dec: dec}
}

// Bit declares a single-bit field; 1 reads as true.
func Bit[R any](offset uint8) Field[R, bool] {
	return newField[R](offset, 1,
		func(v bool) uint32 {
			if v {
				return 1
			}
			return 0
		},
		func(b uint32) bool { return b == 1 },
	)
}

// Uint declares an unsigned field of the given width. Values wider than the
// field are silently truncated by the mask on encode.
func Uint[R any, T constraints.Unsigned](offset, width uint8) Field[R, T] {
	return newField[R](offset, width,
		func(v T) uint32 { return uint32(v) },
		func(b uint32) T { return T(b) },
	)
}

// Whole is the 32-bit identity field.
func Whole[R any]() Field[R, uint32] {
	return Uint[R, uint32](0, 32)
}

// Enum declares a closed enumeration. Decoding a pattern that matches no
// variant is fatal: it means our view of the hardware encoding is wrong.
func Enum[R any, T constraints.Unsigned](offset, width uint8, variants ...T) Field[R, T] {
	known := func(v T) bool {
		for _, x := range variants {
			if x == v {
				return true
			}
		}
		return false
	}
	return newField[R](offset, width,
		func(v T) uint32 {
			if !known(v) {
				errcode.Fatal(errcode.UnknownEncoding, "mmio.encode", "value is not a declared variant")
			}
			return uint32(v)
		},
		func(b uint32) T {
			v := T(b)
			if uint32(v) != b || !known(v) {
				errcode.Fatal(errcode.UnknownEncoding, "mmio.decode", "bit pattern has no variant")
			}
			return v
		},
	)
}

func (f Field[R, T]) Offset() uint8 { return f.offset }
func (f Field[R, T]) Width() uint8  { return f.width }

// Mask is width contiguous ones starting at offset.
func (f Field[R, T]) Mask() uint32 { return fill(f.width) << f.offset }

// Encode returns (v & fill(width)) << offset.
func (f Field[R, T]) Encode(v T) uint32 {
	return (f.enc(v) & fill(f.width)) << f.offset
}

// Decode returns the field's value from a whole register word.
func (f Field[R, T]) Decode(word uint32) T {
	return f.dec((word >> f.offset) & fill(f.width))
}

// Get decodes the field from a word snapshot.
func (f Field[R, T]) Get(w Word[R]) T { return f.Decode(w.bits) }

// With replaces the field inside w and records it in the word's mask.
func (f Field[R, T]) With(w Word[R], v T) Word[R] {
	m := f.Mask()
	return Word[R]{
		bits: w.bits&^m | f.Encode(v),
		mask: w.mask | m,
	}
}
