package credential

// Layout constants.
const (
	// MaxSlots is the maximum number of stored credentials.
	MaxSlots = 16

	// FieldSize is the size in bytes of a name or secret field.
	FieldSize = 32

	// MaxFieldLen is the longest value a field can hold; the last byte is
	// always a NUL terminator.
	MaxFieldLen = FieldSize - 1

	// SlotSize is the size of one slot (name + secret).
	SlotSize = 2 * FieldSize

	// CountOffset is the offset of the count byte.
	CountOffset = 0

	// SlotBase is the offset of slot 0.
	SlotBase = 1

	// LayoutSize is the minimum byte store size.
	LayoutSize = SlotBase + MaxSlots*SlotSize
)

// Range is a half-open byte range [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// SlotOffset returns the byte ranges of the name and secret fields of slot
// index. It performs no bounds checking against the current count.
func SlotOffset(index int) (name, secret Range) {
	base := SlotBase + index*SlotSize
	name = Range{Start: base, End: base + FieldSize}
	secret = Range{Start: base + FieldSize, End: base + SlotSize}
	return name, secret
}

// SlotRegion returns the byte range covering every slot.
func SlotRegion() Range {
	return Range{Start: SlotBase, End: LayoutSize}
}
