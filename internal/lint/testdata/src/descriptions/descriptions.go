package descriptions

//enumgen:generate
type Mode int

const (
	//enumgen:description "on"
	On Mode = iota
	//enumgen:description "on" // want `ENUM002: Mode: description "on" of Off is already used by On`
	Off
	//enumgen:description "" // want `ENUM004: description must not be empty`
	Auto
	//enumgen:description auto // want `ENUM003: malformed directive`
	Manual
	//enumgen:description "on"
	Enabled = On
)

//enumgen:generate // want `ENUM003: malformed directive: generate does not apply to type Label`
type Label string
