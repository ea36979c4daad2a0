// Package conversations loads the Conversation Store document from disk.
package conversations

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Key is the top-level field holding the ordered conversation records.
const Key = "conversations"

var (
	ErrNotFound  = errors.New("conversations file not found")
	ErrMalformed = errors.New("invalid JSON in conversations file")
	// ErrNotObject is valid JSON whose top level is not an object. It also
	// matches ErrMalformed.
	ErrNotObject = fmt.Errorf("%w: top level is not an object", ErrMalformed)
)

// Store is the Conversation Store document. Values are kept as raw JSON so
// records pass through without being inspected.
type Store map[string]json.RawMessage

// Empty returns the store served when the file is missing or corrupt.
func Empty() Store {
	return Store{Key: json.RawMessage("[]")}
}

// Conversations returns the raw conversations array.
func (s Store) Conversations() json.RawMessage {
	return s[Key]
}

// Read reads and parses the document at path. Errors wrap ErrNotFound or
// ErrMalformed (ErrNotObject included) for the recoverable cases; any other
// error is returned as is.
func Read(path string) (Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var s Store
	if err := json.Unmarshal(data, &s); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: found %s", ErrNotObject, typeErr.Value)
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if s == nil {
		return nil, fmt.Errorf("%w: found null", ErrNotObject)
	}
	if _, ok := s[Key]; !ok {
		s[Key] = json.RawMessage("[]")
	}
	return s, nil
}
