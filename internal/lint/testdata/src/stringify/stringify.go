package stringify

import (
	"fmt"
	"log"
	"os"
)

type Color int

const (
	Red Color = iota
	Green
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "green"
}

// Plain has no String method.
type Plain int

const One Plain = 1

type Name string

func (n Name) String() string { return string(n) }

type Point struct{ X int }

func (p Point) String() string { return "point" }

func selectors(c Color, n Name, pt Point) {
	_ = c.String() // want `ENUM001: String called on Color`
	f := Red.String // want `ENUM001: String called on Color`
	_ = f
	_ = Color.String // want `ENUM001: String called on Color`
	pc := &c
	_ = pc.String() // want `ENUM001: String called on Color`
	_ = n.String()
	_ = pt.String()
}

func formatting(c Color, p Plain, n Name, pt Point, l *log.Logger) {
	fmt.Println(c)                           // want `ENUM001: Color formatted with %v by fmt.Println`
	fmt.Printf("%d %v\n", c, c)              // want `ENUM001: Color formatted with %v by fmt.Printf`
	_ = fmt.Sprintf("%s", Green)             // want `ENUM001: Color formatted with %s by fmt.Sprintf`
	_ = fmt.Sprintf("%[2]q %[1]d", c, c)     // want `ENUM001: Color formatted with %q by fmt.Sprintf`
	fmt.Fprintf(os.Stdout, "%*x", 3, c)      // want `ENUM001: Color formatted with %x by fmt.Fprintf`
	_ = fmt.Errorf("bad %v", c)              // want `ENUM001: Color formatted with %v by fmt.Errorf`
	log.Printf("%X", c)                      // want `ENUM001: Color formatted with %X by log.Printf`
	l.Printf("%-8v|", c)                     // want `ENUM001: Color formatted with %v by \(\*log.Logger\).Printf`
	_ = fmt.Sprint("color ", c, " and ", pt) // want `ENUM001: Color formatted with %v by fmt.Sprint`

	_ = fmt.Sprintf("%d", c)
	_ = fmt.Sprintf("%%v %d", c)
	_ = fmt.Sprint(p)
	_ = fmt.Sprintf("%v", n)
	fmt.Println(int(c))

	format := "%v"
	_ = fmt.Sprintf(format, c)
	args := []any{c}
	fmt.Println(args...)
}
