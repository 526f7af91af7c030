package ports

import "statistician/domain/dataset"

// DatasetReader loads a dataset from a file
type DatasetReader interface {
	Read(path string) (*dataset.Dataset, error)
}

// ChartRenderer draws every numeric column of a dataset as the chosen
// chart and returns the path of the rendered image
type ChartRenderer interface {
	Render(ds *dataset.Dataset, choice dataset.ChartChoice) (string, error)
}

// ChartViewer presents a rendered chart to the user
type ChartViewer interface {
	Show(path string) error
}
