package knapsack

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"bitbucket.org/optimizer/backend/core/logger"
	"bitbucket.org/optimizer/backend/core/server"
)

// ErrorMalformedDataset the dataset text does not follow the expected layout
var ErrorMalformedDataset = errors.New("malformed knapsack dataset")

// MaxItems is the largest item count a dataset header may declare
const MaxItems = 1 << 20

// Parse reads an instance written as a header line "n capacity" followed by
// n lines "value weight". Blank lines are ignored.
func Parse(name string, r io.Reader, optimum float64) (*Knapsack, error) {
	var (
		s        = bufio.NewScanner(r)
		line     int
		n        = -1
		capacity float64
		weights  []float64
		values   []float64
	)

	for s.Scan() {
		line++
		fields := strings.Fields(s.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, malformed(name, line, "expected two fields")
		}
		a, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, malformed(name, line, err.Error())
		}
		b, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, malformed(name, line, err.Error())
		}

		switch {
		case n == -1:
			if a < 1 || a != math.Trunc(a) {
				return nil, malformed(name, line, "the item count must be a positive integer")
			}
			if a > MaxItems {
				return nil, malformed(name, line, fmt.Sprintf("more than %d items", MaxItems))
			}
			n, capacity = int(a), b
			weights = make([]float64, 0, min(n, 1024))
			values = make([]float64, 0, min(n, 1024))
		case len(weights) == n:
			return nil, malformed(name, line, "more items than declared")
		default:
			values = append(values, a)
			weights = append(weights, b)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if n == -1 {
		return nil, malformed(name, line, "missing header")
	}
	if len(weights) != n {
		return nil, malformed(name, line, fmt.Sprintf("declared %d items, found %d", n, len(weights)))
	}

	return New(name, capacity, weights, values, optimum)
}

// LoadFile parses the dataset stored at path, named after the file
func LoadFile(path string, optimum float64) (*Knapsack, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(filepath.Base(path), f, optimum)
}

// Fetch downloads and parses the dataset served at url
func Fetch(c server.Client, url string, optimum float64) (*Knapsack, error) {
	resp, err := c.Get(url)
	if err != nil {
		return nil, &logger.Error{
			Level:   "Error",
			Message: "Unable to download knapsack dataset.",
			Err:     err,
			Context: url,
		}
	}
	defer resp.Body.Close()

	return Parse(url, resp.Body, optimum)
}

func malformed(name string, line int, reason string) error {
	return &logger.Error{
		Level:   "Error",
		Message: fmt.Sprintf("%s line %d: %s", name, line, reason),
		Err:     ErrorMalformedDataset,
	}
}
