package lint

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// operand is a formatting verb bound to an operand index.
type operand struct {
	arg  int
	verb rune
}

// operands lists the verbs of a printf format with the operand each one
// consumes. Operands consumed by * width or precision get verb '*'.
func operands(format string) []operand {
	var out []operand
	arg := 0
	for i := 0; i < len(format); {
		if format[i] != '%' {
			i++
			continue
		}
		i++
		if i < len(format) && format[i] == '%' {
			i++
			continue
		}
		for i < len(format) && strings.IndexByte("+-# 0", format[i]) >= 0 {
			i++
		}
		i, arg = argIndex(format, i, arg)
		if i < len(format) && format[i] == '*' {
			out = append(out, operand{arg: arg, verb: '*'})
			arg++
			i++
		} else {
			for i < len(format) && format[i] >= '0' && format[i] <= '9' {
				i++
			}
		}
		if i < len(format) && format[i] == '.' {
			i++
			i, arg = argIndex(format, i, arg)
			if i < len(format) && format[i] == '*' {
				out = append(out, operand{arg: arg, verb: '*'})
				arg++
				i++
			} else {
				for i < len(format) && format[i] >= '0' && format[i] <= '9' {
					i++
				}
			}
		}
		i, arg = argIndex(format, i, arg)
		if i >= len(format) {
			break
		}
		verb, size := utf8.DecodeRuneInString(format[i:])
		i += size
		out = append(out, operand{arg: arg, verb: verb})
		arg++
	}
	return out
}

// argIndex parses an explicit [n] operand index at format[i].
func argIndex(format string, i, arg int) (int, int) {
	if i >= len(format) || format[i] != '[' {
		return i, arg
	}
	end := strings.IndexByte(format[i:], ']')
	if end < 0 {
		return i, arg
	}
	n, err := strconv.Atoi(format[i+1 : i+end])
	if err != nil || n < 1 {
		return i + end + 1, arg
	}
	return i + end + 1, n - 1
}

// stringifies reports whether verb formats an operand through its String
// method.
func stringifies(verb rune) bool {
	switch verb {
	case 'v', 's', 'q', 'x', 'X':
		return true
	}
	return false
}
