package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateProfile(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		input   ProfileInput
		wantErr string
	}{
		{
			name: "builder with skills",
			role: "builder",
			input: ProfileInput{
				Name:   "Jane",
				Bio:    "I build things",
				Skills: []string{"go", "react"},
			},
		},
		{
			name: "marketer with channels",
			role: "marketer",
			input: ProfileInput{
				Name:     "Sam",
				Bio:      "I tell stories",
				Channels: []string{"tiktok"},
			},
		},
		{
			name:    "missing name",
			role:    "builder",
			input:   ProfileInput{Bio: "bio", Skills: []string{"go"}},
			wantErr: "name is required",
		},
		{
			name:    "missing bio",
			role:    "marketer",
			input:   ProfileInput{Name: "Sam", Channels: []string{"x"}},
			wantErr: "bio is required",
		},
		{
			name:    "builder without skills",
			role:    "builder",
			input:   ProfileInput{Name: "Jane", Bio: "bio"},
			wantErr: "at least one skill is required",
		},
		{
			name:    "marketer without channels",
			role:    "marketer",
			input:   ProfileInput{Name: "Sam", Bio: "bio"},
			wantErr: "at least one marketing channel is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProfile(tt.role, tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}
