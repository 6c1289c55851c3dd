// Package input loads candidate domain lists.
package input

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Loader reads candidate domains, one per line. Comment lines are
// skipped here; blank-line handling belongs to the batch core, which
// discards them without emitting records.
type Loader struct{}

// NewLoader creates loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load loads lines from filePath, or from stdin when filePath is "-".
func (l *Loader) Load(filePath string) ([]string, error) {
	if filePath == "-" {
		return l.read(os.Stdin)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return l.read(file)
}

func (l *Loader) read(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
