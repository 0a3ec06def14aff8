package document

import (
	"bytes"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
)

// FromJSON parses relaxed or canonical extended JSON into an ordered document.
func FromJSON(data []byte) (bson.D, error) {
	var doc bson.D
	if err := bson.UnmarshalExtJSON(data, false, &doc); err != nil {
		return nil, errors.Wrap(err, "parse extended json")
	}
	return doc, nil
}

// FromJSONValue parses extended JSON holding either one document or a list of them.
func FromJSONValue(data []byte) (any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return FromJSON(trimmed)
	}

	// a top-level array is not a valid extended JSON document
	wrapped := make([]byte, 0, len(trimmed)+8)
	wrapped = append(wrapped, `{"v":`...)
	wrapped = append(wrapped, trimmed...)
	wrapped = append(wrapped, '}')

	doc, err := FromJSON(wrapped)
	if err != nil {
		return nil, err
	}
	v, _ := Get(doc, "v")
	return v, nil
}

// ToJSON renders doc as relaxed extended JSON. An empty indent yields a single line.
func ToJSON(doc any, indent string) ([]byte, error) {
	if indent == "" {
		return bson.MarshalExtJSON(doc, false, false)
	}
	return bson.MarshalExtJSONIndent(doc, false, false, "", indent)
}

// ToBSON renders doc as binary BSON.
func ToBSON(doc any) ([]byte, error) {
	return bson.Marshal(doc)
}
