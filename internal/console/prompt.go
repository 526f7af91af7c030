// Package console implements the interactive menu of the statistician.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"statistician/internal/errors"
)

// Prompter reads lines and validated menu selections from the console
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter reading from in and writing prompts to out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ReadLine prints prompt and returns the next input line without its
// line terminator. It returns io.EOF once input is exhausted.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Select prompts until an integer in [1, max] is entered and returns it.
//
// Non-numeric input is reported and re-prompted. An out-of-range number
// starts an inner retry that reports the offending value and the valid
// range; non-numeric input during that retry reports the parse failure
// and falls back to the outer prompt. Only a read failure ends the call
// without a valid selection.
func (p *Prompter) Select(label string, max int) (int, error) {
	for {
		n, err := p.readInt(label)
		if err != nil {
			if errors.GetCode(err) != errors.CodeInvalidInput {
				return 0, err
			}
			fmt.Fprintf(p.out, "\n%s Non-numeric character has been entered.\n", errorMark())
			continue
		}

		for !inRange(n, max) {
			fmt.Fprintf(p.out, "\n%s: Number [%d] is not a valid option. \n"+
				"- Please type-in a valid menu selection, numbers (1 to %d)! \n\n", errorMark(), n, max)
			n, err = p.readInt(label)
			if err != nil {
				if errors.GetCode(err) != errors.CodeInvalidInput {
					return 0, err
				}
				printRuntimeError(p.out, err)
				break
			}
		}
		if err == nil && inRange(n, max) {
			return n, nil
		}
	}
}

func (p *Prompter) readInt(label string) (int, error) {
	line, err := p.ReadLine(fmt.Sprintf("Input your %s selection number: >> ", label))
	if err != nil {
		return 0, err
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(line))
	if convErr != nil {
		return 0, errors.InvalidInput(fmt.Sprintf("invalid literal for integer: %q", line))
	}
	fmt.Fprintln(p.out)
	return n, nil
}

func inRange(n, max int) bool {
	return n >= 1 && n <= max
}
