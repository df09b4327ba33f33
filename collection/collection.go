/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package collection

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// Shape enumerates the two container forms a dataset file can take.
type Shape int

const (
	// ShapeList marks datasets stored as a JSON array of records.
	ShapeList Shape = iota
	// ShapeMap marks datasets stored as a JSON object keyed by identifier.
	ShapeMap
)

func (s Shape) String() string {
	switch s {
	case ShapeList:
		return "list"
	case ShapeMap:
		return "map"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Collection is a set of records read from one or more per-region files.
// Implementations carry record bytes through untouched.
type Collection interface {
	json.Marshaler

	// Shape reports the container form.
	Shape() Shape
	// Len reports the number of records held.
	Len() int
	// Merge folds the records of other into the receiver. The two
	// collections must have the same shape.
	Merge(other Collection) error
}

// Decode parses the contents of one dataset file into a Collection of the
// given shape. Invalid JSON, a top-level value of the wrong form, and a
// top-level null are all errors; the caller decides whether that is fatal.
func Decode(data []byte, shape Shape) (Collection, error) {
	switch shape {
	case ShapeList:
		var records []json.RawMessage
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("decoding list: %w", err)
		}
		if records == nil {
			return nil, errors.New("decoding list: top-level value is null")
		}
		return &List{records: records}, nil
	case ShapeMap:
		var entries map[string]json.RawMessage
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("decoding map: %w", err)
		}
		if entries == nil {
			return nil, errors.New("decoding map: top-level value is null")
		}
		return &Map{entries: entries}, nil
	default:
		return nil, fmt.Errorf("decoding: unknown shape %v", shape)
	}
}

// List is an ordered record sequence decoded from a JSON array.
type List struct {
	records []json.RawMessage
}

// NewList builds a List holding the given records.
func NewList(records ...json.RawMessage) *List {
	return &List{records: records}
}

// Shape reports ShapeList.
func (l *List) Shape() Shape { return ShapeList }

// Len reports the number of records held.
func (l *List) Len() int { return len(l.records) }

// Records returns the held records in order. The slice is shared, not copied.
func (l *List) Records() []json.RawMessage { return l.records }

// Append adds records to the end of the list.
func (l *List) Append(records ...json.RawMessage) {
	l.records = append(l.records, records...)
}

// Merge appends the records of other, which must also be a List, preserving
// their order.
func (l *List) Merge(other Collection) error {
	ol, ok := other.(*List)
	if !ok {
		return fmt.Errorf("cannot merge %s collection into list", other.Shape())
	}
	l.records = append(l.records, ol.records...)
	return nil
}

// MarshalJSON encodes the list as a JSON array. An empty list encodes as [].
func (l *List) MarshalJSON() ([]byte, error) {
	if len(l.records) == 0 {
		return []byte("[]"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, r := range l.records {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(r)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// Map is a keyed record container decoded from a JSON object.
type Map struct {
	entries map[string]json.RawMessage
}

// NewMap builds an empty Map.
func NewMap() *Map {
	return &Map{entries: make(map[string]json.RawMessage)}
}

// Shape reports ShapeMap.
func (m *Map) Shape() Shape { return ShapeMap }

// Len reports the number of entries held.
func (m *Map) Len() int { return len(m.entries) }

// Get returns the record stored under key.
func (m *Map) Get(key string) (json.RawMessage, bool) {
	r, ok := m.entries[key]
	return r, ok
}

// Set stores a record under key, replacing any existing record.
func (m *Map) Set(key string, record json.RawMessage) {
	m.entries[key] = record
}

// Keys returns all keys in natural order, so "2_9" sorts before "2_10".
func (m *Map) Keys() []string {
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return Less(keys[i], keys[j]) })
	return keys
}

// Merge folds the entries of other, which must also be a Map, into the
// receiver. On a key collision the incoming record wins.
func (m *Map) Merge(other Collection) error {
	om, ok := other.(*Map)
	if !ok {
		return fmt.Errorf("cannot merge %s collection into map", other.Shape())
	}
	for k, r := range om.entries {
		m.entries[k] = r
	}
	return nil
}

// MarshalJSON encodes the map as a JSON object with keys in natural order.
// An empty map encodes as {}.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(m.entries[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
