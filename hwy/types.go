// Package hwy detects the SIMD target of the running CPU and exposes the
// lane and alignment parameters the block-transform packages are laid out
// for.
//
// Nothing in this module requires SIMD for correctness. The detected target
// only decides how grid buffers are aligned and whether a window can be
// widened into lane groups; every operation has a scalar path.
//
//	lanes := hwy.MaxLanes[float32]() // 8 on AVX2
//	align := hwy.Alignment()         // 32 on amd64
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}
