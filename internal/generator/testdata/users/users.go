package users

// Gender is a string type and never an enum.
//
//enumgen:generate
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Status of a user account.
//
//enumgen:generate
type Status int32

const (
	//enumgen:description "inactive" "disabled"
	StatusInactive Status = 0
	//enumgen:description "active"
	StatusActive Status = 1
	//enumgen:description "pending"
	StatusPending Status = 2

	// Deprecated: use StatusInactive.
	//enumgen:description "banned"
	StatusBanned Status = 0
)

type User struct {
	Id       int
	Username string
	Age      int
	Gender   Gender
	Status   Status
	// Level keeps plain int32 constants.
	Level int32
}

const (
	LevelGuest int32 = 0
	LevelAdmin int32 = 1
)
