package colors

// Color is a paint color.
//
//enumgen:generate
type Color int

const (
	//enumgen:description "red" "rouge"
	Red Color = iota
	//enumgen:description "green"
	Green
	Blue
)

// Size is not marked for generation.
type Size uint8

const (
	Small Size = iota + 1
	Large
)
