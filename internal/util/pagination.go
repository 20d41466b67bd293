package util

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Calculate converts 1-based page/size into an offset/limit pair,
// clamping out-of-range values to the defaults.
func Calculate(page, size int) (from, limit int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > MaxPageSize {
		size = DefaultPageSize
	}
	from = (page - 1) * size
	return from, size
}
