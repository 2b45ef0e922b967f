package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"10s", 10 * time.Second},
		{" 1m ", time.Minute},
		{"30", 30 * time.Second},
		{"0", 0},
		{"2d", 48 * time.Hour},
		{"1h30m", 90 * time.Minute},
	}
	for _, c := range cases {
		got, err := ParseDuration(c.in)
		assert.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}

	for _, bad := range []string{"", "soon", "xd", "10parsecs"} {
		_, err := ParseDuration(bad)
		assert.Error(t, err, bad)
	}
}
