// Package dataset provides the read-only reference datasets (EPP ROID
// registry, IANA RDAP extension/status registries, IP special-purpose
// registries) that profile checks consult. Once loaded, a Service is
// immutable and safe for concurrent use by every validation run, mirroring
// spec.md §5's "schema tree is read-only after construction" guarantee
// extended to datasets.
package dataset

// Dataset is a single reference list exposed as a membership predicate, the
// same shape as the original validator's DatasetValidator.isInvalid(value).
type Dataset interface {
	// IsInvalid reports whether value is NOT a recognized member of this
	// dataset (true = invalid). The inverted name matches the question most
	// call sites ask: "is this value invalid against the registry". The IP
	// special-purpose checks ask the opposite and flag a value when this
	// returns false, i.e. when it is a registry member.
	IsInvalid(value string) bool
}

// Service resolves a named Dataset. Names are stable, camelCase strings
// ("eppRoid", "rdapExtensions", "rdapStatus", "ipv4SpecialRegistry",
// "ipv6SpecialRegistry") chosen by the profile checks that consume them.
type Service interface {
	Get(name string) (Dataset, bool)
}

// setDataset is a Dataset backed by an in-memory set of valid values.
type setDataset struct {
	valid map[string]struct{}
}

func newSetDataset(values []string) *setDataset {
	m := make(map[string]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return &setDataset{valid: m}
}

func (d *setDataset) IsInvalid(value string) bool {
	_, ok := d.valid[value]
	return !ok
}

// memoryService is a Service backed by a fixed map built at load time.
type memoryService struct {
	datasets map[string]Dataset
}

func (s *memoryService) Get(name string) (Dataset, bool) {
	d, ok := s.datasets[name]
	return d, ok
}
