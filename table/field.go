package table

type (
	// Field describes a record field, including its name and a
	// ValueSelector for retrieving the field's value from a record
	Field[T any] interface {
		Name() FieldName
		Select(T) any
	}

	field[T any] struct {
		name  FieldName
		value ValueSelector[T]
	}
)

// MakeField instantiates a new Field instance
func MakeField[T any](n FieldName, v ValueSelector[T]) Field[T] {
	return &field[T]{
		name:  n,
		value: v,
	}
}

func (f *field[_]) Name() FieldName {
	return f.name
}

func (f *field[T]) Select(r T) any {
	return f.value(r)
}
