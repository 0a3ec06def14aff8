package processor

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/woozymasta/geodoc/internal/document"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ReadFile reads the documents stored in a JSON or YAML file.
// The format is picked by extension, anything but .yaml and .yml is read as extended JSON.
func ReadFile(path string) ([]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	docs, err := Parse(data, IsYAML(path))
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return docs, nil
}

// ReadAll reads documents from r, as YAML when asYAML is set.
func ReadAll(r io.Reader, asYAML bool) ([]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data, asYAML)
}

// Parse decodes data into a list of source documents.
func Parse(data []byte, asYAML bool) ([]any, error) {
	var (
		v   any
		err error
	)
	if asYAML {
		v, err = document.FromYAML(data)
	} else {
		v, err = document.FromJSONValue(data)
	}
	if err != nil {
		return nil, err
	}
	return Documents(v), nil
}

// FromNode returns the documents held by an inline YAML node.
func FromNode(n *yaml.Node) ([]any, error) {
	v, err := document.FromNode(n)
	if err != nil {
		return nil, err
	}
	return Documents(v), nil
}

// Documents splits a parsed value into source documents. A list whose items are all
// documents or lists holds one source per item, anything else is a single source.
func Documents(v any) []any {
	if v == nil {
		return nil
	}

	list, ok := document.List(v)
	if !ok || len(list) == 0 {
		return []any{v}
	}

	for _, item := range list {
		if _, isList := document.List(item); !isList && !document.IsDocument(item) {
			return []any{v}
		}
	}
	return list
}

// IsYAML reports whether path has a YAML extension.
func IsYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
