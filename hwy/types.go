// Package hwy provides the portable lane abstraction the lanekit kernels are
// written against.
//
// A kernel asks for a vector shape (a Tag), loads LANES-wide chunks of its
// input into Vec values, works on them lane-parallel and folds the remainder
// with ordinary scalar code. LANES is resolved once at process start from the
// CPU's vector width (see CurrentLanes) and never changes afterwards.
//
// Basic usage:
//
//	import "github.com/lanekit/lanekit/hwy"
//
//	d := hwy.ScalableTag()
//	a := hwy.Load(d, data1)
//	b := hwy.Load(d, data2)
//	hwy.Store(hwy.Add(a, b), out)
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

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// MaxTagLanes is the widest vector shape a Tag can describe.
const MaxTagLanes = 64

// Vec is a portable vector value of NumLanes elements.
//
// The backing store is a fixed array so that vectors live on the stack and
// are copied by value, like a register. Vec instances should not be created
// directly; use Load, Set or Zero.
type Vec[T Lanes] struct {
	data [MaxTagLanes]T
	n    int
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// Store writes the vector's lanes to dst, up to len(dst).
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	copy(dst, v.data[:min(v.n, len(dst))])
}

// Mask represents the result of a lane-wise comparison. Bit i is set if lane
// i is active.
//
// Mask instances should not be created directly; use comparison operations
// like Equal.
type Mask[T Lanes] struct {
	bits uint64
	n    int
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return m.n
}

// Bits returns the lane bitset; bit i corresponds to lane i.
func (m Mask[T]) Bits() uint64 {
	return m.bits
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	return m.bits == laneBits(m.n)
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	return m.bits != 0
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= m.n {
		return false
	}
	return m.bits&(1<<uint(i)) != 0
}

// laneBits returns a bitset with the low n bits set.
func laneBits(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(n) - 1
}
