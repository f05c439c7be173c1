package github

import (
	"testing"

	"github.com/jmgilman/ghwatch/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_Records(t *testing.T) {
	t.Parallel()

	t.Run("array of objects", func(t *testing.T) {
		t.Parallel()

		resp := &Response{StatusCode: 200, Body: []byte(`[{"login":"octocat"},{"full_name":"octocat/hello-world","owner":{"login":"octocat"}}]`)}

		records, err := resp.Records()

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "octocat", records[0].Login())
		assert.Equal(t, "octocat/hello-world", records[1].FullName())
		assert.Equal(t, "octocat", records[1].Owner())
		assert.Equal(t, "", records[0].Owner())
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		for _, resp := range []*Response{nil, {StatusCode: 204}, {Body: []byte("  \n")}, {StatusCode: 200, Body: []byte("null")}} {
			records, err := resp.Records()
			require.NoError(t, err)
			assert.NotNil(t, records)
			assert.Empty(t, records)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		resp := &Response{StatusCode: 200, Body: []byte(`{"message":"not a list"}`)}

		_, err := resp.Records()

		require.Error(t, err)
		assert.Equal(t, errors.CodeInternal, errors.GetCode(err))
	})
}

func TestResponse_Decode(t *testing.T) {
	t.Parallel()

	resp := &Response{StatusCode: 200, Body: []byte(`{"subscribed":true,"reason":null}`)}

	var sub struct {
		Subscribed bool `json:"subscribed"`
	}
	require.NoError(t, resp.Decode(&sub))
	assert.True(t, sub.Subscribed)
	assert.False(t, resp.Empty())
}

func TestRecord_String(t *testing.T) {
	t.Parallel()

	r := Record{"login": "octocat", "id": float64(1)}

	assert.Equal(t, "octocat", r.String("login"))
	assert.Equal(t, "", r.String("id"))
	assert.Equal(t, "", r.String("missing"))
}
