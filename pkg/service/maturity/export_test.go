package maturity

// WithReadFn replaces the file read function, letting tests count
// reads and inject failures
func WithReadFn(fn func(path string) ([]byte, error)) Option {
	return func(l *Loader) {
		l.readFn = fn
	}
}
