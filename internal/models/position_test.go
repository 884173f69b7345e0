package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePosition(t *testing.T) {
	tests := []struct {
		input   string
		want    Position
		wantErr bool
	}{
		{"GK", PositionGK, false},
		{"def", PositionDEF, false},
		{" mid ", PositionMID, false},
		{"FWD", PositionFWD, false},
		{"striker", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePosition(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRequirements(t *testing.T) {
	reqs, err := ParseRequirements("GK:1,DEF:4,MID:4,FWD:2")
	require.NoError(t, err)
	assert.Equal(t, DefaultRequirements(), reqs)
	assert.Equal(t, 11, reqs.Total())

	_, err = ParseRequirements("GK:1,XX:4")
	assert.Error(t, err)

	_, err = ParseRequirements("GK:one")
	assert.Error(t, err)

	_, err = ParseRequirements("")
	assert.Error(t, err)
}

func TestRequirementsStringIsCanonical(t *testing.T) {
	reqs := PositionRequirements{
		PositionFWD: 3,
		PositionGK:  1,
		PositionMID: 3,
		PositionDEF: 4,
	}
	assert.Equal(t, "GK:1,DEF:4,MID:3,FWD:3", reqs.String())
}

func TestParseWindow(t *testing.T) {
	tests := []struct {
		input   string
		want    Window
		wantErr bool
	}{
		{"7", Window(7), false},
		{"30d", Window(30), false},
		{"90", Window(90), false},
		{"all", WindowAll, false},
		{"ALL", WindowAll, false},
		{"0", WindowAll, false},
		{"", WindowAll, false},
		{"21", 0, true},
		{"week", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWindow(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
