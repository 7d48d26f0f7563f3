package releasemanager

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// Fetcher loads the raw list of releases from a URL
type Fetcher interface {
	Fetch(ctx context.Context, target string) ([]byte, error)
}

// HTTPFetcherConfig is an object to pass to NewHTTPFetcher
type HTTPFetcherConfig struct {
	// APIToken is sent as a bearer token to the TokenDomain only.
	// If it's empty, the $GITHUB_TOKEN environment variable is used.
	APIToken string
	// TokenDomain is the URL whose domain can receive the token (default to https://api.github.com)
	TokenDomain string
	// Client is the HTTP client (default to a client with a timeout)
	Client *http.Client
	// Additional headers
	Headers http.Header
}

// HTTPFetcher gets the releases with a plain GET request
type HTTPFetcher struct {
	client      *http.Client
	headers     http.Header
	token       string
	tokenDomain string
}

// NewHTTPFetcher creates a new HTTPFetcher from a config object
func NewHTTPFetcher(config HTTPFetcherConfig) *HTTPFetcher {
	token := config.APIToken
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}
	tokenDomain := config.TokenDomain
	if tokenDomain == "" {
		tokenDomain = "https://api.github.com"
	}
	client := config.Client
	if client == nil {
		client = defaultHTTPClient()
	}
	return &HTTPFetcher{
		client:      client,
		headers:     config.Headers,
		token:       token,
		tokenDomain: tokenDomain,
	}
}

// Fetch returns the body of a successful GET request on target.
// Any failure to get a 200 response is an ErrNetwork.
func (f *HTTPFetcher) Fetch(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	for key, values := range f.headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	if f.token != "" {
		// verify request is from same domain not to leak token
		ok, err := sendsTokenTo(f.tokenDomain, target)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
		}
		if ok {
			req.Header.Set("Authorization", "Bearer "+f.token)
		}
	}

	res, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP request failed with status code %d", ErrNetwork, res.StatusCode)
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	return body, nil
}

// sendsTokenTo returns true if target is on the token domain or one of its subdomains
func sendsTokenTo(domain, target string) (bool, error) {
	domainURL, err := url.Parse(domain)
	if err != nil {
		return false, err
	}
	targetURL, err := url.Parse(target)
	if err != nil {
		return false, err
	}
	host := domainURL.Hostname()
	if host == "" {
		return false, nil
	}
	other := targetURL.Hostname()
	return other == host || strings.HasSuffix(other, "."+host), nil
}

// Verify interface
var _ Fetcher = &HTTPFetcher{}
