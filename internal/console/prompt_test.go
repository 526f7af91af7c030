package console

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"statistician/internal/testkit"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestSelectAcceptsEveryValidOption(t *testing.T) {
	for k := 1; k <= 4; k++ {
		t.Run(fmt.Sprint(k), func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(testkit.Input(fmt.Sprint(k)), &out)

			got, err := p.Select("MAIN MENU", 4)
			require.NoError(t, err)
			assert.Equal(t, k, got)
			assert.NotContains(t, out.String(), "<<ERROR>>")
			assert.Contains(t, out.String(), "Input your MAIN MENU selection number: >> ")
		})
	}
}

func TestSelectNonNumericThenValid(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(testkit.Input("abc", "2"), &out)

	got, err := p.Select("MAIN MENU", 4)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
	assert.Equal(t, 1, strings.Count(out.String(), "Non-numeric character has been entered."))
	assert.Equal(t, 2, strings.Count(out.String(), "Input your MAIN MENU selection number"))
}

func TestSelectOutOfRange(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(testkit.Input("0", "3"), &out)

	got, err := p.Select("MAIN MENU", 4)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
	assert.Contains(t, out.String(), "<<ERROR>>: Number [0] is not a valid option.")
	assert.Contains(t, out.String(), "numbers (1 to 4)!")
}

func TestSelectRepeatedOutOfRangeStaysInInnerRetry(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(testkit.Input("7", "-1", "1"), &out)

	got, err := p.Select("METRIC", 3)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
	assert.Contains(t, out.String(), "Number [7]")
	assert.Contains(t, out.String(), "Number [-1]")
	assert.NotContains(t, out.String(), "Non-numeric")
}

func TestSelectNonNumericDuringInnerRetryFallsBackToOuterPrompt(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(testkit.Input("9", "x", "5", "2"), &out)

	got, err := p.Select("MAIN MENU", 4)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	text := out.String()
	assert.Contains(t, text, "Number [9]")
	assert.Contains(t, text, `<< Run-time error description: invalid literal for integer: "x" >>.`)
	assert.Contains(t, text, "Number [5]")
	assert.NotContains(t, text, "Non-numeric character")
}

func TestSelectTrimsWhitespace(t *testing.T) {
	p := NewPrompter(testkit.Input(" 3 "), io.Discard)

	got, err := p.Select("PLOT", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestSelectEndOfInput(t *testing.T) {
	tests := []struct {
		name  string
		input *strings.Reader
	}{
		{"no input", testkit.Input()},
		{"after non-numeric", testkit.Input("abc")},
		{"during inner retry", testkit.Input("8")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPrompter(tt.input, io.Discard)
			_, err := p.Select("MAIN MENU", 4)
			assert.ErrorIs(t, err, io.EOF)
		})
	}
}

func TestReadLineWithoutTrailingNewline(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("data.csv"), &out)

	line, err := p.ReadLine("Input the filename: ")
	require.NoError(t, err)
	assert.Equal(t, "data.csv", line)
	assert.Equal(t, "Input the filename: ", out.String())

	_, err = p.ReadLine("again: ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadLineStripsCarriageReturn(t *testing.T) {
	p := NewPrompter(strings.NewReader("data.csv\r\n"), io.Discard)

	line, err := p.ReadLine("")
	require.NoError(t, err)
	assert.Equal(t, "data.csv", line)
}

func TestCenter(t *testing.T) {
	assert.Equal(t, strings.Repeat(" ", 15)+"Mean: 3.00"+strings.Repeat(" ", 15), center("Mean: 3.00", 40))
	assert.Equal(t, "  ab ", center("ab", 5))
	assert.Equal(t, "abc", center("abc", 2))
}
