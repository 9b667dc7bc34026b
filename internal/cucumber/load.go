package cucumber

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// LoadRunDocument reads and parses the cucumber JSON report at path.
func LoadRunDocument(path string) (RunDocument, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingInputError{Path: path}
		}
		return nil, fmt.Errorf("stat run document: %w", err)
	}
	if info.IsDir() {
		return nil, &MalformedInputError{Path: path, Err: errors.New("path is a directory")}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read run document: %w", err)
	}
	doc, err := ParseRunDocument(data)
	if err != nil {
		return nil, &MalformedInputError{Path: path, Err: err}
	}
	return doc, nil
}
