package optimization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"bare object", `{"a":1}`, `{"a":1}`, true},
		{"conversational wrapping", "Sure! Here it is:\n{\"a\":1}\nHope it helps {:", `{"a":1}`, true},
		{"markdown fence", "```json\n{\"a\": {\"b\": [1,2]}}\n```", `{"a": {"b": [1,2]}}`, true},
		{"brace inside string", `{"s":"has } and { inside"} tail}`, `{"s":"has } and { inside"}`, true},
		{"escaped quote", `{"s":"say \"}\" ok"}`, `{"s":"say \"}\" ok"}`, true},
		{"escaped backslash before quote", `{"s":"dir\\"} rest`, `{"s":"dir\\"}`, true},
		{"first of two objects", `{"a":1} {"b":2}`, `{"a":1}`, true},
		{"no object", "I cannot help with that.", "", false},
		{"unbalanced", `{"a": {"b": 1}`, "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSONObject(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
