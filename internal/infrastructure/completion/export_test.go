package completion

// Exported for the grammar drift tests in completion_test.
const (
	BashRootOpts = bashRootOpts
	BashRunOpts  = bashRunOpts
)
