package urlnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "strips www prefix",
			in:   "https://www.github.com/foo",
			want: "https://github.com/foo",
		},
		{
			name: "strips trailing slash",
			in:   "https://github.com/foo/",
			want: "https://github.com/foo",
		},
		{
			name: "empty path becomes root",
			in:   "https://github.com",
			want: "https://github.com/",
		},
		{
			name: "root path preserved",
			in:   "https://github.com/",
			want: "https://github.com/",
		},
		{
			name: "strips tracking parameters",
			in:   "http://github.com/foo?utm_source=x",
			want: "http://github.com/foo",
		},
		{
			name: "keeps and sorts real parameters",
			in:   "https://example.com/search?q=go&page=2&utm_campaign=spring",
			want: "https://example.com/search?page=2&q=go",
		},
		{
			name: "first value wins for repeated keys",
			in:   "https://example.com/x?a=1&a=2",
			want: "https://example.com/x?a=1",
		},
		{
			name: "lowercases host and path",
			in:   "HTTPS://WWW.GitHub.COM/Foo/Bar",
			want: "https://github.com/foo/bar",
		},
		{
			name: "keeps port",
			in:   "http://localhost:8080/app/",
			want: "http://localhost:8080/app",
		},
		{
			name: "browser internal scheme",
			in:   "chrome://settings/",
			want: "chrome://settings/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_EquivalentForms(t *testing.T) {
	// The three forms from one bookmark saved at different times must
	// collapse to a single key.
	forms := []string{
		"https://www.github.com/foo",
		"https://github.com/foo/",
		"http://github.com/foo?utm_source=x",
	}

	assert.Equal(t, "https://github.com/foo", Normalize(forms[0]))
	assert.Equal(t, Normalize(forms[0]), Normalize(forms[1]))
	// The http form differs only by scheme.
	assert.Equal(t, "http://github.com/foo", Normalize(forms[2]))
}

func TestNormalize_Idempotent(t *testing.T) {
	urls := []string{
		"https://www.github.com/foo/",
		"https://example.com/search?b=2&a=1&gclid=abc",
		"not a url at all",
		"",
	}
	for _, u := range urls {
		once := Normalize(u)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", u)
	}
}

func TestNormalize_MalformedNeverPanics(t *testing.T) {
	inputs := []string{
		"http://[::1",
		"://missing-scheme",
		"%%%",
		"   ",
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() {
			key := Normalize(in)
			// A degenerate key is still deterministic.
			assert.Equal(t, key, Normalize(in))
		})
	}
}
