package kernels

// Option configures a kernel at construction time.
type Option func(*config)

type config struct {
	featureNdims int
	validateArgs bool
	name         string
}

// WithFeatureNdims sets how many trailing input dimensions form one feature
// vector. Default is 1 (plain vectors); 2 treats matrix-valued inputs as
// features, and so on. Must be positive.
func WithFeatureNdims(n int) Option {
	return func(c *config) { c.featureNdims = n }
}

// WithValidateArgs enables runtime positivity checks on kernel parameters at
// the cost of extra computation at construction. Without it, invalid
// parameters silently propagate as NaN or infinite kernel values.
func WithValidateArgs() Option {
	return func(c *config) { c.validateArgs = true }
}

// WithName sets the kernel's diagnostic label. No behavioral effect.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}
