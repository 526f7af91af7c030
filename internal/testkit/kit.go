package testkit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"statistician/domain/dataset"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Fixture CSV contents shared across package tests
const (
	// ThreeByFive has three numeric columns and five rows; column "a"
	// holds 1..5.
	ThreeByFive = "a,b,c\n1,10,2.5\n2,20,3.5\n3,30,4.5\n4,40,5.5\n5,50,6.5\n"

	// HeaderOnly names columns but has no data rows
	HeaderOnly = "a,b,c\n"

	// Mixed has one numeric and one text column
	Mixed = "height,city\n1.5,Skopje\n1.7,Ohrid\n1.9,Bitola\n"

	// TextOnly has no numeric column
	TextOnly = "city,country\nSkopje,MK\nOhrid,MK\n"

	// Ragged has a row with too many fields
	Ragged = "a,b\n1,2\n3,4,5\n"
)

// WriteCSV writes content to name inside a per-test temporary directory
// and returns its path
func WriteCSV(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// Input joins lines into console input, one line per entry
func Input(lines ...string) *strings.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

// MockRenderer records Render calls
type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(ds *dataset.Dataset, choice dataset.ChartChoice) (string, error) {
	args := m.Called(ds, choice)
	return args.String(0), args.Error(1)
}

// MockViewer records Show calls
type MockViewer struct {
	mock.Mock
}

func (m *MockViewer) Show(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

// MockReader records Read calls
type MockReader struct {
	mock.Mock
}

func (m *MockReader) Read(path string) (*dataset.Dataset, error) {
	args := m.Called(path)
	ds, _ := args.Get(0).(*dataset.Dataset)
	return ds, args.Error(1)
}
