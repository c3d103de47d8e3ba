package trellis

// leafStorage is NoChildren plus the size a leaf view carries from Layout to
// Commit.
type leafStorage struct {
	NoChildren
	size Size
}
