package errors

// Position is a resolved location in the source text. Line and Column are
// 1-based; Line already includes any base line offset the scanner was
// constructed with.
type Position struct {
	Line   int
	Column int
}
