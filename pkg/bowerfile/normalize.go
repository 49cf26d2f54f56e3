package bowerfile

// Normalize coerces known fields into their canonical shapes, mutating and
// returning the same manifest. A scalar main becomes a single-element
// list. Normalize is idempotent.
func Normalize(m Manifest) Manifest {
	if s, ok := m["main"].(string); ok {
		m["main"] = []any{s}
	}
	return m
}
