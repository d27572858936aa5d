package mmio

// Word is a snapshot of register R: the raw bits plus the mask of every
// field written into it with Field.With.
type Word[R any] struct {
	bits uint32
	mask uint32
}

// WordOf wraps raw bits. The mask starts empty.
func WordOf[R any](bits uint32) Word[R] { return Word[R]{bits: bits} }

func (w Word[R]) Bits() uint32 { return w.bits }
func (w Word[R]) Mask() uint32 { return w.mask }

// Loader is any register that can be read.
type Loader[R any] interface {
	Load() Word[R]
}

// FieldSetter is any register that can have fields written. What happens to
// the bits outside the written fields depends on the access shape.
type FieldSetter[R any] interface {
	SetFields(fn func(Word[R]) Word[R])
}

// ReadField reads r and decodes f.
func ReadField[R, T any](r Loader[R], f Field[R, T]) T {
	return f.Get(r.Load())
}

// WriteField writes v into f through r's SetFields.
func WriteField[R, T any](r FieldSetter[R], f Field[R, T], v T) {
	r.SetFields(func(w Word[R]) Word[R] { return f.With(w, v) })
}

// ---------------- Read-only ----------------

// RO is a read-only register.
type RO[R any] struct {
	c Cell
}

func (r *RO[R]) Read() uint32  { return r.c.Load() }
func (r *RO[R]) Load() Word[R] { return Word[R]{bits: r.c.Load()} }

// ---------------- Write-only ----------------

// WO is a write-only register.
type WO[R any] struct {
	c Cell
}

func (r *WO[R]) Write(bits uint32) { r.c.Store(bits) }

// SetFields writes fn applied to an all-zero word; unwritten fields go out
// as zero.
func (r *WO[R]) SetFields(fn func(Word[R]) Word[R]) {
	r.c.Store(fn(Word[R]{}).bits)
}

// ---------------- Read-write ----------------

// RW is a read-write register.
type RW[R any] struct {
	c Cell
}

func (r *RW[R]) Read() uint32      { return r.c.Load() }
func (r *RW[R]) Load() Word[R]     { return Word[R]{bits: r.c.Load()} }
func (r *RW[R]) Write(bits uint32) { r.c.Store(bits) }

// WriteWithZero writes fn applied to an all-zero word.
func (r *RW[R]) WriteWithZero(fn func(Word[R]) Word[R]) {
	r.c.Store(fn(Word[R]{}).bits)
}

// SetFields reads the register, applies fn and writes the whole word back.
// This is two bus operations and is not atomic. It is safe only because no
// interrupt handler or second thread touches the register in between.
func (r *RW[R]) SetFields(fn func(Word[R]) Word[R]) {
	r.c.Store(fn(r.Load()).bits)
}

// ---------------- Set/reset ----------------

// SR is a set/reset pair without a status word: writing a 1 to Set turns a
// bit on, writing a 1 to Reset turns it off, zeros are ignored.
type SR[R any] struct {
	Set   WO[R]
	Reset WO[R]
}

func (r *SR[R]) SetBits(bits uint32)   { r.Set.Write(bits) }
func (r *SR[R]) ResetBits(bits uint32) { r.Reset.Write(bits) }

// SetFields issues the set write then the reset write for every masked bit.
func (r *SR[R]) SetFields(fn func(Word[R]) Word[R]) {
	w := fn(Word[R]{})
	r.Set.Write(w.bits & w.mask)
	r.Reset.Write(w.mask &^ w.bits)
}

// SRS is a set/reset pair with a status word: set at +0, reset at +4,
// status at +8.
type SRS[R any] struct {
	Set    WO[R]
	Reset  WO[R]
	Status RO[R]
}

func (r *SRS[R]) Read() uint32  { return r.Status.Read() }
func (r *SRS[R]) Load() Word[R] { return r.Status.Load() }

func (r *SRS[R]) SetBits(bits uint32) {
	r.Set.Write(bits)
	r.settle(bits, 0)
}

func (r *SRS[R]) ResetBits(bits uint32) {
	r.Reset.Write(bits)
	r.settle(0, bits)
}

// Write makes the status word equal bits: every 1 is set, every 0 reset.
func (r *SRS[R]) Write(bits uint32) {
	r.Set.Write(bits)
	r.Reset.Write(^bits)
	r.settle(bits, ^bits)
}

// SetFields issues two writes on every call, whatever the current status:
// bits going to 1 on the set address, bits going to 0 inside the written
// fields on the reset address. The pair is not atomic.
func (r *SRS[R]) SetFields(fn func(Word[R]) Word[R]) {
	w := fn(Word[R]{})
	set, reset := w.bits&w.mask, w.mask&^w.bits
	r.Set.Write(set)
	r.Reset.Write(reset)
	r.settle(set, reset)
}
