package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

const (
	reportWidth = 40
	rule        = "_______________________________________________"
)

var errorColor = color.New(color.FgRed, color.Bold)

// errorMark is the error prefix, red when the terminal supports it
func errorMark() string {
	return errorColor.Sprint("<<ERROR>>")
}

// center pads s with spaces to width, extra padding going to the right
// when the split is uneven
func center(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	total := width - n
	left := total / 2
	if total%2 == 1 && width%2 == 1 {
		left++
	}
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", total-left)
}

func printRuntimeError(w io.Writer, err error) {
	fmt.Fprintf(w, "<< Run-time error description: %v >>.\n\n", err)
}
