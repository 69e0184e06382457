package ioutils

import "os"

// WriteText writes UTF-8 text to a file, creating it with mode 0644 or
// truncating it if it already exists.
func WriteText(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

// WriteBytes writes raw bytes to a file with the same create-or-truncate
// semantics as WriteText.
func WriteBytes(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// ReadText reads a file back as a UTF-8 string.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// EnsureDir creates a directory and all parent directories if they don't
// exist. Directories are created with mode 0755; an existing directory is
// not an error.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
