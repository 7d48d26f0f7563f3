package releasemanager

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testManifest = `releases:
  - tag_name: "1.9"
    url: http://localhost/repo/owner/repo/1.9
  - tag_name: "1.10"
    url: http://localhost/repo/owner/repo/1.10
  - tag_name: "2.0-SNAPSHOT"
    url: http://localhost/repo/owner/repo/2.0-SNAPSHOT
    prerelease: true
`

func newHTTPTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestHTTPListReleasesGitHubFormat(t *testing.T) {
	server := newHTTPTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/owner/repo/releases", r.URL.Path)
		fmt.Fprint(w, githubReleasesPage1+"\n")
	})
	source, err := NewHTTPSource(HTTPConfig{
		URLTemplate: server.URL + "/repos/{maintainer}/{repository}/releases",
	})
	require.NoError(t, err)

	releases, err := source.ListReleases(context.Background(), NewRepositorySlug("owner", "repo"))
	require.NoError(t, err)
	require.Len(t, releases, 2)
	assert.Equal(t, "1.5", releases[0].GetTagName())
	assert.Equal(t, "2.0-SNAPSHOT", releases[1].GetTagName())
	assert.True(t, releases[1].GetPrerelease())
}

func TestHTTPListReleasesManifest(t *testing.T) {
	server := newHTTPTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repo/owner/repo/manifest.yaml", r.URL.Path)
		fmt.Fprint(w, testManifest)
	})
	source, err := NewHTTPSource(HTTPConfig{
		URLTemplate: server.URL + "/repo/{maintainer}/{repository}/manifest.yaml",
		Decoder:     ManifestDecoder{},
	})
	require.NoError(t, err)

	updater, err := NewUpdater(Config{
		Maintainer:     "owner",
		Repository:     "repo",
		CurrentVersion: "1.9",
		Source:         source,
	})
	require.NoError(t, err)

	release, found := updater.NewerVersion(context.Background())
	require.True(t, found)
	assert.Equal(t, "2.0-SNAPSHOT", release.Version())
	assert.Equal(t, "http://localhost/repo/owner/repo/2.0-SNAPSHOT", release.URL)
}

func TestHTTPListReleasesStatusError(t *testing.T) {
	server := newHTTPTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	})
	source, err := NewHTTPSource(HTTPConfig{URLTemplate: server.URL + "/{maintainer}/{repository}"})
	require.NoError(t, err)

	_, err = source.ListReleases(context.Background(), NewRepositorySlug("owner", "repo"))
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestHTTPListReleasesConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	serverURL := server.URL
	server.Close()

	source, err := NewHTTPSource(HTTPConfig{URLTemplate: serverURL + "/{maintainer}/{repository}"})
	require.NoError(t, err)

	_, err = source.ListReleases(context.Background(), NewRepositorySlug("owner", "repo"))
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestHTTPListReleasesMalformedEntry(t *testing.T) {
	server := newHTTPTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"tag_name": "1.0", "html_url": "", "prerelease": false}, {"tag_name": "2.0"}]`)
	})
	source, err := NewHTTPSource(HTTPConfig{URLTemplate: server.URL + "/{maintainer}/{repository}"})
	require.NoError(t, err)

	releases, err := source.ListReleases(context.Background(), NewRepositorySlug("owner", "repo"))
	assert.ErrorIs(t, err, ErrDecode)
	assert.Nil(t, releases)
}

func TestHTTPListReleasesContextCancelled(t *testing.T) {
	source, err := NewHTTPSource(HTTPConfig{URLTemplate: "http://localhost/{maintainer}/{repository}"})
	require.NoError(t, err)

	ctx, cancelFn := context.WithCancel(context.Background())
	cancelFn()

	_, err = source.ListReleases(ctx, ParseSlug("owner/repo"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHTTPListReleasesInvalidURL(t *testing.T) {
	source, err := NewHTTPSource(HTTPConfig{URLTemplate: "http://[::1/{maintainer}/{repository}"})
	require.NoError(t, err)

	_, err = source.ListReleases(context.Background(), NewRepositorySlug("owner", "repo"))
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestHTTPFetcherInvalidTokenDomain(t *testing.T) {
	server := newHTTPTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "[]")
	})
	fetcher := NewHTTPFetcher(HTTPFetcherConfig{APIToken: "secret", TokenDomain: "http://[::1"})

	_, err := fetcher.Fetch(context.Background(), server.URL+"/releases")
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestHTTPListReleasesInvalidSlug(t *testing.T) {
	source, err := NewHTTPSource(HTTPConfig{})
	require.NoError(t, err)

	_, err = source.ListReleases(context.Background(), ParseSlug("/repo"))
	assert.ErrorIs(t, err, ErrIncorrectParameterOwner)
}

func TestHTTPFetcherSendsTokenToDomainOnly(t *testing.T) {
	var authorization string
	server := newHTTPTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		assert.Equal(t, "releasemanager", r.Header.Get("User-Agent"))
		fmt.Fprint(w, "[]")
	})
	headers := http.Header{}
	headers.Set("User-Agent", "releasemanager")

	fetcher := NewHTTPFetcher(HTTPFetcherConfig{APIToken: "secret", TokenDomain: server.URL, Headers: headers})
	body, err := fetcher.Fetch(context.Background(), server.URL+"/releases")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
	assert.Equal(t, "Bearer secret", authorization)

	fetcher = NewHTTPFetcher(HTTPFetcherConfig{APIToken: "secret", TokenDomain: "https://api.github.com", Headers: headers})
	_, err = fetcher.Fetch(context.Background(), server.URL+"/releases")
	require.NoError(t, err)
	assert.Empty(t, authorization)
}

func TestSendsTokenTo(t *testing.T) {
	fixtures := []struct {
		domain, target string
		valid          bool
	}{
		{"http://github.com", "http://github.com", true},
		{"https://api.github.com/repos", "https://api.github.com/repos/owner/repo/releases", true},
		{"http://github.com/owner/repo", "http://download.github.com/file", true},
		{"http://api.github.com", "http://github.com", false},
		{"http://github.com", "http://evilgithub.com/file", false},
		{"", "http://github.com/file", false},
	}

	for _, fixture := range fixtures {
		t.Run(fixture.target, func(t *testing.T) {
			ok, err := sendsTokenTo(fixture.domain, fixture.target)
			assert.NoError(t, err)
			assert.Equal(t, fixture.valid, ok)
		})
	}
}
