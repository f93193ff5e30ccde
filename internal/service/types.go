package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

// ErrMissingCreatedAt is returned by Task.Validate for records without a
// creation time.
var ErrMissingCreatedAt = errors.New("task has no createdAt")

// Task represents a single task as returned by the service. It is
// read-only on this side.
type Task struct {
	Text        string     `json:"text"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Tags        []Tag      `json:"tags,omitempty"`
}

// Validate reports whether the record carries the fields needed to show it.
func (t Task) Validate() error {
	if t.CreatedAt.IsZero() {
		return ErrMissingCreatedAt
	}
	return nil
}

// TagKind tells which shape a tag had on the wire.
type TagKind int

const (
	// TagUnknown is a tag that was neither a string nor an object with a name.
	TagUnknown TagKind = iota

	// TagText is a tag sent as a plain string.
	TagText

	// TagNamed is a tag sent as an object with a name field.
	TagNamed
)

// Tag is a task tag. On the wire a tag is either a string or an object
// with a name; both are normalized here so consumers never inspect JSON.
type Tag struct {
	Kind TagKind
	Name string
}

// TextTag returns a tag that was sent as a plain string.
func TextTag(name string) Tag {
	return Tag{Kind: TagText, Name: name}
}

// NamedTag returns a tag that was sent as {"name": ...}.
func NamedTag(name string) Tag {
	return Tag{Kind: TagNamed, Name: name}
}

// DisplayName returns the name to show for the tag, or "unknown".
func (t Tag) DisplayName() string {
	if t.Kind == TagUnknown {
		return "unknown"
	}
	return t.Name
}

// UnmarshalJSON implements json.Unmarshaler. It never fails: shapes it
// does not recognize become TagUnknown.
func (t *Tag) UnmarshalJSON(b []byte) error {
	if string(bytes.TrimSpace(b)) == "null" {
		*t = Tag{Kind: TagUnknown}
		return nil
	}
	var text string
	if err := json.Unmarshal(b, &text); err == nil {
		*t = TextTag(text)
		return nil
	}
	var named struct {
		Name *string `json:"name"`
	}
	if err := json.Unmarshal(b, &named); err == nil && named.Name != nil && *named.Name != "" {
		*t = NamedTag(*named.Name)
		return nil
	}
	*t = Tag{Kind: TagUnknown}
	return nil
}

// MarshalJSON implements json.Marshaler, producing the shape the tag had.
func (t Tag) MarshalJSON() ([]byte, error) {
	switch t.Kind {
	case TagText:
		return json.Marshal(t.Name)
	case TagNamed:
		return json.Marshal(struct {
			Name string `json:"name"`
		}{t.Name})
	default:
		return []byte("{}"), nil
	}
}
