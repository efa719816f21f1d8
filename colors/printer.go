package colors

import (
	"fmt"
	"io"
)

// COLOR is an ANSI escape sequence prefix.
type COLOR string

const (
	RESET  COLOR = "\033[0m"
	RED    COLOR = "\033[31m"
	GREEN  COLOR = "\033[32m"
	ORANGE COLOR = "\033[33m"
	BLUE   COLOR = "\033[34m"
	PURPLE COLOR = "\033[35m"
	CYAN   COLOR = "\033[36m"
	GREY   COLOR = "\033[90m"
)

// Print methods (default to stdout)
func (c COLOR) Printf(format string, args ...any) {
	fmt.Printf(string(c)+format+string(RESET), args...)
}

func (c COLOR) Println(args ...any) {
	fmt.Print(string(c))
	fmt.Println(args...)
	fmt.Print(string(RESET))
}

func (c COLOR) Print(args ...any) {
	fmt.Print(string(c))
	fmt.Print(args...)
	fmt.Print(string(RESET))
}

// Fprint methods (write to specific writer)
func (c COLOR) Fprintf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, string(c)+format+string(RESET), args...)
}

func (c COLOR) Fprintln(w io.Writer, args ...any) {
	fmt.Fprint(w, string(c))
	fmt.Fprintln(w, args...)
	fmt.Fprint(w, string(RESET))
}

func (c COLOR) Sprintf(format string, args ...any) string {
	return string(c) + fmt.Sprintf(format, args...) + string(RESET)
}

// StripANSI removes ANSI color codes from a string
func StripANSI(s string) string {
	result := ""
	inEscape := false
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			inEscape = true
			i++
			continue
		}
		if inEscape {
			if (s[i] >= 'A' && s[i] <= 'Z') || (s[i] >= 'a' && s[i] <= 'z') {
				inEscape = false
			}
			continue
		}
		result += string(s[i])
	}
	return result
}
