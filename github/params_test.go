package github

import (
	"net/url"
	"testing"
	"time"

	"github.com/jmgilman/ghwatch/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  string
		want string
	}{
		{key: "per_page", want: "per_page"},
		{key: "perPage", want: "per_page"},
		{key: "PerPage", want: "per_page"},
		{key: "Per-Page", want: "per_page"},
		{key: " per_page ", want: "per_page"},
		{key: "PER_PAGE", want: "per_page"},
		{key: "per.page", want: "per_page"},
		{key: "per page", want: "per_page"},
		{key: "HTTPStatus", want: "http_status"},
		{key: "since2024Date", want: "since2024_date"},
		{key: "__page__", want: "page"},
		{key: "a--b", want: "a_b"},
		{key: "", want: ""},
		{key: " - ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NormalizeKey(tt.key))
		})
	}
}

func TestNormalizeParams(t *testing.T) {
	t.Parallel()

	t.Run("nil stays nil", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, NormalizeParams(nil))
	})

	t.Run("canonical keys", func(t *testing.T) {
		t.Parallel()

		got := NormalizeParams(Params{"perPage": 10, "Page": 2})
		assert.Equal(t, Params{"per_page": 10, "page": 2}, got)
	})

	t.Run("collision picks lexically greatest original key", func(t *testing.T) {
		t.Parallel()

		params := Params{
			"per_page": 1,
			"perPage":  2,
			"Per-Page": 3,
		}
		// "per_page" sorts last of the three.
		for range 10 {
			assert.Equal(t, Params{"per_page": 1}, NormalizeParams(params))
		}
	})

	t.Run("empty keys dropped", func(t *testing.T) {
		t.Parallel()

		got := NormalizeParams(Params{"": "x", "  ": "y", "page": 1})
		assert.Equal(t, Params{"page": 1}, got)
	})

	t.Run("input untouched", func(t *testing.T) {
		t.Parallel()

		params := Params{"perPage": 10}
		_ = params.Normalize()
		assert.Equal(t, Params{"perPage": 10}, params)
	})
}

func TestParams_Values(t *testing.T) {
	t.Parallel()

	since := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	params := Params{
		"perPage": 30,
		"all":     true,
		"since":   since,
		"labels":  []string{"bug", "docs"},
		"skip":    nil,
		"sort":    "created",
	}

	got := params.Values()

	assert.Equal(t, url.Values{
		"per_page": {"30"},
		"all":      {"true"},
		"since":    {"2024-01-02T03:04:05Z"},
		"labels":   {"bug", "docs"},
		"sort":     {"created"},
	}, got)
}

type labelSet struct{ names []string }

func (l *labelSet) String() string { return l.names[0] }

func TestParams_ValuesNilPointers(t *testing.T) {
	t.Parallel()

	var (
		since  *url.URL
		labels *labelSet
		when   *time.Time
	)

	tests := []struct {
		name  string
		value any
	}{
		{name: "nil url", value: since},
		{name: "nil custom stringer", value: labels},
		{name: "nil time", value: when},
		{name: "nil slice element", value: []*url.URL{nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got url.Values
			require.NotPanics(t, func() {
				got = Params{"since": tt.value, "sort": "created"}.Values()
			})
			assert.Equal(t, url.Values{"sort": {"created"}}, got)
		})
	}

	assert.Equal(t, url.Values{"labels": {"bug"}}, Params{"labels": &labelSet{names: []string{"bug"}}}.Values())
}

func TestParams_ValuesNil(t *testing.T) {
	t.Parallel()

	var params Params
	assert.Empty(t, params.Values())
}

func TestParams_WithList(t *testing.T) {
	t.Parallel()

	t.Run("encodes pagination", func(t *testing.T) {
		t.Parallel()

		got, err := Params{"sort": "created"}.WithList(ListOptions{Page: 2, PerPage: 50})

		require.NoError(t, err)
		assert.Equal(t, Params{"sort": "created", "page": "2", "per_page": "50"}, got)
	})

	t.Run("zero values omitted", func(t *testing.T) {
		t.Parallel()

		got, err := Params(nil).WithList(ListOptions{})

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("list options override", func(t *testing.T) {
		t.Parallel()

		got, err := Params{"page": 1}.WithList(ListOptions{Page: 3})

		require.NoError(t, err)
		assert.Equal(t, "3", got.Values().Get("page"))
	})
}

func TestParseParam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantKey   string
		wantValue string
		wantErr   bool
	}{
		{name: "simple", input: "sort=created", wantKey: "sort", wantValue: "created"},
		{name: "value with equals", input: "q=a=b", wantKey: "q", wantValue: "a=b"},
		{name: "empty value", input: "since=", wantKey: "since", wantValue: ""},
		{name: "trimmed key", input: " sort =asc", wantKey: "sort", wantValue: "asc"},
		{name: "missing equals", input: "sort", wantErr: true},
		{name: "missing key", input: "=x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			key, value, err := ParseParam(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}
