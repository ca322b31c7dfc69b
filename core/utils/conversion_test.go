package utils

import (
	"testing"

	"tooltips/core/integration"

	"github.com/stretchr/testify/assert"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		name    string
		parts   [4]string
		want    integration.Location
		wantErr string
	}{
		{"Valid", [4]string{"world", "1", "64", "-3"}, integration.Location{World: "world", X: 1, Y: 64, Z: -3}, ""},
		{"Trimmed", [4]string{" world ", " 2", "3 ", "4"}, integration.Location{World: "world", X: 2, Y: 3, Z: 4}, ""},
		{"MissingWorld", [4]string{"", "1", "2", "3"}, integration.Location{}, "missing world"},
		{"BadX", [4]string{"world", "a", "2", "3"}, integration.Location{}, "invalid x coordinate"},
		{"EmptyZ", [4]string{"world", "1", "2", ""}, integration.Location{}, "invalid z coordinate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLocation(tt.parts[0], tt.parts[1], tt.parts[2], tt.parts[3])
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
