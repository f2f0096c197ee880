package ignore

import "github.com/bethropolis/dir-struct/internal/utils"

// Option configures a Filter at load time.
type Option func(*Filter)

// WithLogger sets the logger used for load diagnostics and pattern errors.
func WithLogger(logger utils.Logger) Option {
	return func(f *Filter) {
		if logger != nil {
			f.logger = logger
		}
	}
}
