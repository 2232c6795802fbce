package domain

// ParsedScalar is the normalized form of a heterogeneous value-with-unit
// field such as "98%" or "200 kg/month". It is transient within a single
// score computation and never persisted.
type ParsedScalar struct {
	// Value is the numeric portion of the field. Unparseable inputs
	// degrade to 0.0 rather than failing the surrounding match pass.
	Value float64

	// Unit is the lowercased, whitespace-trimmed unit label. When the raw
	// input carries no unit of its own, this is the caller's default unit.
	Unit string
}
