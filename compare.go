package recordgen

// CompareBool orders booleans with false before true. It is used by
// generated Compare methods for bool fields.
func CompareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	default:
		return 1
	}
}
