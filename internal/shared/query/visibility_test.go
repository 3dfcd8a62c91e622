package query

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanView(t *testing.T) {
	author := uuid.New()
	stranger := uuid.New()

	tests := []struct {
		name      string
		viewer    *uuid.UUID
		isPrivate bool
		want      bool
	}{
		{"public visible to anonymous", nil, false, true},
		{"public visible to stranger", &stranger, false, true},
		{"public visible to author", &author, false, true},
		{"private hidden from anonymous", nil, true, false},
		{"private hidden from stranger", &stranger, true, false},
		{"private visible to author", &author, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanView(tt.viewer, author, tt.isPrivate))
		})
	}
}
