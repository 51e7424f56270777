package adder

// Number is the set of types Add accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Add returns a + b.
func Add[T Number](a, b T) T {
	return a + b
}
