package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKeyFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "profile image",
			url:  "http://localhost:9000/growmyapp-media/profile-images/1709300000_jane.png",
			want: "profile-images/1709300000_jane.png",
		},
		{
			name: "project logo",
			url:  "http://media.example.com/growmyapp-media/project-logos/1709300001_logo.svg",
			want: "project-logos/1709300001_logo.svg",
		},
		{
			name: "foreign url",
			url:  "https://example.com/elsewhere/image.png",
			want: "",
		},
		{
			name: "empty",
			url:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ObjectKeyFromURL(tt.url))
		})
	}
}
