package repository

// IDSequence issues entity identifiers. Implementations must hand out
// monotonically increasing numbers per prefix so an ID is never reused, even
// after the entity that carried it is deleted.
type IDSequence interface {
	Next(prefix string) string
}
