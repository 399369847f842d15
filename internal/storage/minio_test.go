package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientOwns(t *testing.T) {
	c, err := New("files.college.edu:9000", "key", "secret", "ticket-images", false)
	require.NoError(t, err)

	cases := []struct {
		url  string
		want bool
	}{
		{"http://files.college.edu:9000/ticket-images/abc.png", true},
		{"https://FILES.college.edu:9000/ticket-images/2024/abc.png", true},
		{"http://ticket-images.files.college.edu:9000/abc.png", true},
		{"http://files.college.edu:9000/ticket-images/", false},
		{"http://files.college.edu:9000/other-bucket/abc.png", false},
		{"http://evil.example.com/ticket-images/abc.png", false},
		{"ftp://files.college.edu:9000/ticket-images/abc.png", false},
		{"not a url", false},
	}
	for _, tc := range cases {
		t.Run(tc.url, func(t *testing.T) {
			assert.Equal(t, tc.want, c.Owns(tc.url))
		})
	}
}
