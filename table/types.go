package table

// Common function signature types used to configure a Table. These mirror
// the shapes a caller supplies when describing columns, filters and sorting

type (
	// ValueSelector retrieves the raw value of a field from a record
	ValueSelector[T any] func(T) any

	// Renderer formats a raw field value for display
	Renderer func(any) string

	// RecordRenderer formats a whole record for display. Used by custom
	// headers and row titles that are not tied to a single field
	RecordRenderer[T any] func(T) string

	// Predicate tests if a record meets a condition. Returning false will
	// drop the record from the derived view
	Predicate[T any] func(T) bool

	// Comparator imposes a total order on records. It returns a negative
	// number when a sorts before b, a positive number when it sorts after,
	// and zero when they are equivalent
	Comparator[T any] func(a, b T) int

	// ValueExtractor computes the comparison value of a primary filter
	// option from the option's raw field value
	ValueExtractor func(any) string

	// RecordConsumer performs a side effect on a record
	RecordConsumer[T any] func(T)
)
