package header

import (
	"iter"
	"strings"
)

// Headers is a case-preserving header mapping. Keys are stored exactly as
// given, a repeated key overwrites the previous value and keeps the position
// of its first appearance, so iteration order is deterministic.
type Headers struct {
	keys   []string
	values map[string]string
}

func New() *Headers {
	return &Headers{
		values: make(map[string]string, 8),
	}
}

func (h *Headers) Set(key string, value string) {
	if _, ok := h.values[key]; !ok {
		h.keys = append(h.keys, key)
	}
	h.values[key] = value
}

func (h *Headers) Value(key string) string {
	return h.values[key]
}

func (h *Headers) Lookup(key string) (string, bool) {
	val, ok := h.values[key]
	return val, ok
}

// LookupFold returns the first header whose name matches key ignoring case.
func (h *Headers) LookupFold(key string) (string, bool) {
	if val, ok := h.values[key]; ok {
		return val, true
	}
	for _, k := range h.keys {
		if strings.EqualFold(k, key) {
			return h.values[k], true
		}
	}
	return "", false
}

func (h *Headers) Remove(key string) {
	if _, ok := h.values[key]; !ok {
		return
	}
	delete(h.values, key)
	for i, k := range h.keys {
		if k == key {
			h.keys = append(h.keys[:i], h.keys[i+1:]...)
			break
		}
	}
}

func (h *Headers) Len() int {
	return len(h.keys)
}

// All iterates headers in insertion order.
func (h *Headers) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range h.keys {
			if !yield(k, h.values[k]) {
				return
			}
		}
	}
}

// Map returns a copy of the headers as a plain map.
func (h *Headers) Map() map[string]string {
	m := make(map[string]string, len(h.values))
	for k, v := range h.values {
		m[k] = v
	}
	return m
}

// Size is the number of bytes AppendTo will write.
func (h *Headers) Size() int {
	size := 0
	for k, v := range h.All() {
		size += len(k) + 2 + len(v) + 2
	}
	return size
}

// AppendTo appends every header as a "Key: Value\r\n" line.
func (h *Headers) AppendTo(buf []byte) []byte {
	for key, val := range h.All() {
		buf = append(buf, key...)
		buf = append(buf, ':', ' ')
		buf = append(buf, val...)
		buf = append(buf, '\r', '\n')
	}
	return buf
}
