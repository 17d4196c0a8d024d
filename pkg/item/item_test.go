package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateRequest
		want    NewItem
		wantErr error
	}{
		{
			name: "name only",
			req:  CreateRequest{Name: strPtr("Book")},
			want: NewItem{Name: "Book"},
		},
		{
			name: "name and description",
			req:  CreateRequest{Name: strPtr("Pen"), Description: strPtr("blue")},
			want: NewItem{Name: "Pen", Description: "blue"},
		},
		{
			name:    "missing name",
			req:     CreateRequest{Description: strPtr("blue")},
			wantErr: ErrNameRequired,
		},
		{
			name:    "empty name",
			req:     CreateRequest{Name: strPtr("")},
			wantErr: ErrNameEmpty,
		},
		{
			name: "whitespace name is kept",
			req:  CreateRequest{Name: strPtr("   ")},
			want: NewItem{Name: "   "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
