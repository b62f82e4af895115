package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// CountByName is a name-to-count mapping that remembers first-seen order.
// Go maps do not preserve insertion order, but detection output must: the
// first tool mentioned in a commit stream should stay first in the report.
type CountByName struct {
	names  []string
	counts map[string]int
}

// NewCountByName returns an empty counter.
func NewCountByName() *CountByName {
	return &CountByName{counts: make(map[string]int)}
}

// Add increments the count for name, registering it on first sight.
func (c *CountByName) Add(name string) {
	if _, ok := c.counts[name]; !ok {
		c.names = append(c.names, name)
	}
	c.counts[name]++
}

// Count returns the count for name, zero if absent.
func (c *CountByName) Count(name string) int {
	return c.counts[name]
}

// Names returns the names in first-seen order.
func (c *CountByName) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// SortedNames returns the names sorted lexicographically.
func (c *CountByName) SortedNames() []string {
	out := c.Names()
	sort.Strings(out)
	return out
}

// Total sums all counts.
func (c *CountByName) Total() int {
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// Len returns the number of distinct names.
func (c *CountByName) Len() int {
	return len(c.names)
}

// MarshalJSON emits a JSON object with keys in first-seen order.
func (c *CountByName) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range c.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(c.counts[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, preserving its key order.
func (c *CountByName) UnmarshalJSON(data []byte) error {
	c.names = nil
	c.counts = make(map[string]int)

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected string key, got %v", keyTok)
		}
		var count int
		if err := dec.Decode(&count); err != nil {
			return err
		}
		c.names = append(c.names, key)
		c.counts[key] = count
	}
	_, err = dec.Token() // closing brace
	return err
}
