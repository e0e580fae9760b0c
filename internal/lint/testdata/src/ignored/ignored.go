package ignored

import "fmt"

type Color int

const Red Color = 0

func (c Color) String() string { return "red" }

func use(c Color) {
	_ = c.String()
	fmt.Println(c)
}
