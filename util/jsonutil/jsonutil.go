// Package jsonutil manipulates opaque extension payloads without decoding
// them into schemas. The object models carry vendor extensions as raw JSON;
// these helpers let callers look up, remove, copy and compare single
// elements while leaving the rest of the payload byte-for-byte intact.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"io"
	"slices"

	"github.com/buger/jsonparser"
	jsonpatch "github.com/evanphx/json-patch/v5"
)

// FindElement returns the raw value of the named top-level element of an
// extension object. Elements nested deeper than the top level never match.
// A payload that is not a JSON object has no elements and reports not found.
func FindElement(extension []byte, elementName string) (bool, []byte, error) {
	found, value, _, _, err := scanElement(extension, elementName)
	return found, value, err
}

// DropElement removes the named top-level element, splicing one separator
// comma out with it so the remaining payload keeps its original formatting.
// The input slice is never modified. Unknown elements leave the payload as
// is.
func DropElement(extension []byte, elementName string) ([]byte, error) {
	found, _, start, end, err := scanElement(extension, elementName)
	if err != nil || !found {
		return extension, err
	}

	dropped := make([]byte, 0, len(extension)-int(end-start))
	dropped = append(dropped, extension[:start]...)
	return append(dropped, extension[end:]...), nil
}

// scanElement walks the top-level keys of the extension object, decoding
// each value as an opaque unit so nested keys never match. On a match it
// reports the raw value and the byte range a drop must splice out. The range
// swallows exactly one separator comma: the trailing one when another
// element follows, otherwise the leading one.
func scanElement(extension []byte, elementName string) (found bool, value json.RawMessage, start, end int64, err error) {
	size := int64(len(extension))
	dec := json.NewDecoder(bytes.NewReader(extension))

	token, err := dec.Token()
	if err == io.EOF {
		return false, nil, -1, -1, nil
	}
	if err != nil {
		return false, nil, -1, -1, err
	}
	if token != json.Delim('{') {
		return false, nil, -1, -1, nil
	}

	start = dec.InputOffset()
	for dec.More() {
		token, err = dec.Token()
		if err != nil {
			return false, nil, -1, -1, err
		}

		if token == elementName {
			if err = dec.Decode(&value); err != nil {
				return false, nil, -1, -1, err
			}
			end = dec.InputOffset()
			if dec.More() {
				for start < end && extension[start] != '"' {
					start++
				}
				for end < size && extension[end] != ',' {
					end++
				}
				if end < size {
					end++
				}
			}
			return true, value, start, end, nil
		}

		var skipped json.RawMessage
		if err = dec.Decode(&skipped); err != nil {
			return false, nil, -1, -1, err
		}
		start = dec.InputOffset()
	}
	return false, nil, -1, -1, nil
}

// HasObject reports whether the extension carries a JSON object at the given
// path. Scalars, arrays, missing keys and malformed payloads all report
// false.
func HasObject(extension []byte, path ...string) bool {
	_, dataType, _, err := jsonparser.Get(extension, path...)
	return err == nil && dataType == jsonparser.Object
}

// Clone returns a copy sharing no memory with ext, safe to hold past
// mutations of the source document. A nil input stays nil.
func Clone(ext json.RawMessage) json.RawMessage {
	return slices.Clone(ext)
}

// Equal reports whether two payloads encode the same JSON value, ignoring
// formatting and object key order. Absent payloads equal only each other;
// malformed payloads equal nothing.
func Equal(a, b json.RawMessage) bool {
	if len(a) == 0 || len(b) == 0 {
		return len(a) == 0 && len(b) == 0
	}
	// jsonpatch.Equal assumes valid JSON and can panic on truncated input.
	if !json.Valid(a) || !json.Valid(b) {
		return false
	}
	return jsonpatch.Equal(a, b)
}

// Merge applies an RFC 7386 merge patch to an extension payload. An absent
// patch leaves a copy of the extension; an absent extension merges as an
// empty object. The result never aliases either input.
func Merge(extension, patch json.RawMessage) (json.RawMessage, error) {
	if len(patch) == 0 {
		return Clone(extension), nil
	}
	if len(extension) == 0 {
		extension = json.RawMessage(`{}`)
	}
	return jsonpatch.MergePatch(extension, patch)
}
