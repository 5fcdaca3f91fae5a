package invocation

var (
	SidePath   = sidePath
	WithFilter = withFilter
)
