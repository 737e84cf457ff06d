package elastic

// Test-only exports for internal functions.
var (
	Escape      = escape
	Listify     = listify
	Pathify     = pathify
	EncodeParam = encodeParam
	Ignores404  = ignores404
	Require     = Args.require
)
