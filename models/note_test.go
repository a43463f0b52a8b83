package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisibilityStatus_Valid(t *testing.T) {
	assert.True(t, VisibilityPrivate.Valid())
	assert.True(t, VisibilityShared.Valid())
	assert.True(t, VisibilityPublic.Valid())

	assert.False(t, VisibilityStatus("").Valid())
	assert.False(t, VisibilityStatus("friends-only").Valid())
	assert.False(t, VisibilityStatus("Private").Valid(), "statuses are case sensitive")
}

func TestNote_TagList(t *testing.T) {
	tests := []struct {
		name string
		tags string
		want []string
	}{
		{name: "empty", tags: "", want: nil},
		{name: "whitespace only", tags: "   ", want: nil},
		{name: "single", tags: "work", want: []string{"work"}},
		{name: "several", tags: "work,ideas,home", want: []string{"work", "ideas", "home"}},
		{name: "padded entries", tags: " work , ideas ", want: []string{"work", "ideas"}},
		{name: "empty entries dropped", tags: "work,,ideas,", want: []string{"work", "ideas"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Note{Tags: tt.tags}.TagList())
		})
	}
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, "", NormalizeTags(""))
	assert.Equal(t, "", NormalizeTags(" , , "))
	assert.Equal(t, "work,ideas", NormalizeTags(" work , ideas "))
	assert.Equal(t, "work,ideas", NormalizeTags("work,,ideas,"))
}
