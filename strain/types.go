package strain

// Options configures strain generation.
//
// Fields:
//   - Seed — seed for the uniform sampler. A zero seed selects an
//     entropy-based seed, making the draw nondeterministic (the
//     historical behavior); any nonzero seed reproduces exactly.
type Options struct {
	Seed uint64
}

// DefaultOptions returns the documented defaults: entropy seeding.
func DefaultOptions() Options {
	return Options{Seed: 0}
}
