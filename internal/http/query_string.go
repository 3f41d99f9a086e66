package http

import "strings"

// Value is a query parameter value: either Single or Multiple.
type Value interface {
	// Values returns every value in insertion order.
	Values() []string
}

// Single is a value for a key that appeared once.
type Single string

// Values implements Value.
func (s Single) Values() []string { return []string{string(s)} }

// Multiple holds the values of a repeated key in the order they appeared.
type Multiple []string

// Values implements Value.
func (m Multiple) Values() []string { return []string(m) }

// QueryString is the parsed form of a raw "k=v&k=v" query.
// Keys and values are substrings of the raw input.
type QueryString struct {
	data map[string]Value
}

// ParseQueryString never fails. A segment without '=' becomes a key with an
// empty value; only the first '=' of a segment separates key from value.
func ParseQueryString(raw string) *QueryString {
	data := make(map[string]Value)
	for _, segment := range strings.Split(raw, "&") {
		key, val, _ := strings.Cut(segment, "=")

		switch existing := data[key].(type) {
		case nil:
			data[key] = Single(val)
		case Single:
			data[key] = Multiple{string(existing), val}
		case Multiple:
			data[key] = append(existing, val)
		}
	}
	return &QueryString{data: data}
}

// Get returns the value stored for key.
func (q *QueryString) Get(key string) (Value, bool) {
	if q == nil {
		return nil, false
	}
	v, ok := q.data[key]
	return v, ok
}

// Len reports the number of distinct keys.
func (q *QueryString) Len() int {
	if q == nil {
		return 0
	}
	return len(q.data)
}

// Keys returns the distinct keys in no particular order.
func (q *QueryString) Keys() []string {
	if q == nil {
		return nil
	}
	keys := make([]string, 0, len(q.data))
	for k := range q.data {
		keys = append(keys, k)
	}
	return keys
}
