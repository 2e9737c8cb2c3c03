package intmath

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInteger(t *testing.T) {
	tests := []struct {
		name   string
		in     interface{}
		want   int
		wantOK bool
	}{
		{"int", 7, 7, true},
		{"int8", int8(-8), -8, true},
		{"int16", int16(300), 300, true},
		{"int32", int32(-70000), -70000, true},
		{"int64", int64(9998), 9998, true},
		{"uint", uint(4), 4, true},
		{"uint8", uint8(255), 255, true},
		{"uint16", uint16(65535), 65535, true},
		{"uint32", uint32(10), 10, true},
		{"uint64", uint64(12), 12, true},
		{"uint64 overflow", uint64(math.MaxUint64), 0, false},
		{"json integer", json.Number("-42"), -42, true},
		{"json fraction", json.Number("3.14"), 0, false},
		{"json exponent", json.Number("1e3"), 0, false},
		{"float", 3.14, 0, false},
		{"integral float", 2.0, 0, false},
		{"float32", float32(1), 0, false},
		{"string", "5", 0, false},
		{"bool", true, 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToInteger(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInteger(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"6", 6, true},
		{"-8", -8, true},
		{" 12 ", 12, true},
		{"+3", 3, true},
		{"3.14", 0, false},
		{"1e2", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"99999999999999999999", math.MaxInt, true},
		{"-99999999999999999999", math.MinInt, true},
	}

	for _, tt := range tests {
		got, ok := ParseInteger(tt.in)
		assert.Equal(t, tt.wantOK, ok, "ParseInteger(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseInteger(%q)", tt.in)
	}
}

func TestParseValues(t *testing.T) {
	got := ParseValues([]string{"2", "3.14", "-7", "x"})
	assert.Equal(t, []interface{}{2, "3.14", -7, "x"}, got)
}
