package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringList_Value(t *testing.T) {
	v, err := StringList(nil).Value()
	assert.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = StringList{"Fiction", "Poetry"}.Value()
	assert.NoError(t, err)
	assert.Equal(t, `["Fiction","Poetry"]`, v)
}

func TestStringList_Scan(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		want    StringList
		wantErr bool
	}{
		{name: "nil", src: nil, want: nil},
		{name: "string", src: `["Fiction"]`, want: StringList{"Fiction"}},
		{name: "bytes", src: []byte(`["a","b"]`), want: StringList{"a", "b"}},
		{name: "empty array", src: "[]", want: nil},
		{name: "malformed", src: "not json", wantErr: true},
		{name: "unsupported type", src: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := StringList{"stale"}
			err := l.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, l)
		})
	}
}

func TestBookFilter_IsEmpty(t *testing.T) {
	assert.True(t, BookFilter{}.IsEmpty())
	assert.False(t, BookFilter{City: "Pune"}.IsEmpty())
	assert.False(t, BookFilter{OwnerUsername: "a@x.com"}.IsEmpty())
}
