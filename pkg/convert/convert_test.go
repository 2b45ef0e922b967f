package convert

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstValues(t *testing.T) {
	q, err := url.ParseQuery("title=A&title=B&content=x&empty=")
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"title": "A", "content": "x", "empty": ""}, FirstValues(q))
	assert.Empty(t, FirstValues(nil))
}

type Inner struct {
	Name string
}

type outer struct {
	ID string
	Inner
}

type flat struct {
	ID   string
	Name string
}

func TestStructAssign(t *testing.T) {
	var dst flat
	require.NoError(t, StructAssign(&outer{ID: "1", Inner: Inner{Name: "n"}}, &dst))
	assert.Equal(t, flat{ID: "1", Name: "n"}, dst)
}
