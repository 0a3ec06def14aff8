package processor

import (
	"crypto/tls"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// NewHTTPClient returns the client used to download remote job inputs.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			TLSNextProto:        make(map[string]func(string, *tls.Conn) http.RoundTripper),
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
		},
		Timeout: 15 * time.Second,
	}
}

// IsRemote reports whether source is an http(s) URL.
func IsRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Fetch downloads documents from url. YAML is assumed when the URL path or the
// response content type says so.
func Fetch(client *http.Client, url string) ([]any, error) {
	log.Debug().Str("url", url).Msg("Downloading source documents")

	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	// Explicitly ignore close error as it's a read-only operation
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("download %s failed: status %d", url, resp.StatusCode)
	}

	asYAML := IsYAML(strings.SplitN(url, "?", 2)[0]) || strings.Contains(resp.Header.Get("Content-Type"), "yaml")

	docs, err := ReadAll(resp.Body, asYAML)
	if err != nil {
		return nil, errors.WithMessage(err, url)
	}
	return docs, nil
}
