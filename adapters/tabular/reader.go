package tabular

import (
	"encoding/csv"
	"os"
	"strings"
	"time"

	"statistician/domain/dataset"
	"statistician/internal"
	"statistician/internal/errors"

	"github.com/go-gota/gota/dataframe"
)

// DataReader loads delimited text files into datasets
type DataReader struct {
	delimiter rune
	logger    *internal.Logger
}

// NewDataReader creates a reader splitting fields on delimiter
func NewDataReader(delimiter rune, logger *internal.Logger) *DataReader {
	if delimiter == 0 {
		delimiter = ','
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &DataReader{delimiter: delimiter, logger: logger}
}

// Read loads the file at path. The first record names the columns.
// A file without data rows fails with dataset.ErrEmptyDataset; a file
// that cannot be opened or parsed fails with a FILE_UNREADABLE error.
func (r *DataReader) Read(path string) (*dataset.Dataset, error) {
	r.logger.Debug("[DataReader] reading %s", path)

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.FileUnreadable(path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = r.delimiter
	reader.TrimLeadingSpace = true
	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.FileUnreadable(path, err)
	}
	r.logger.Debug("[DataReader] %s read in %.2fms (%d records)",
		path, float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	if len(rows) < 2 {
		return nil, errors.Wrapf(dataset.ErrEmptyDataset, "file %s", path)
	}

	headers := rows[0]
	for i, header := range headers {
		headers[i] = strings.TrimSpace(header)
	}

	frame := dataframe.LoadRecords(rows,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
	)
	if frame.Err != nil {
		return nil, errors.FileUnreadable(path, frame.Err)
	}

	ds, err := dataset.New(path, frame)
	if err != nil {
		return nil, errors.Wrapf(err, "file %s", path)
	}

	r.logger.Info("[DataReader] %s loaded (%d columns, %d rows)", path, ds.ColumnCount(), ds.RowCount())
	return ds, nil
}
