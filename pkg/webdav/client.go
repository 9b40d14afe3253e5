// Package webdav implements the HTTP transport against a Nextcloud
// style WebDAV endpoint. Percent-encoding of remote paths happens only
// at this boundary, canonical paths everywhere else stay decoded.
package webdav

import (
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"davsh/pkg/slog"
)

const propfindBody = `<?xml version="1.0" encoding="UTF-8"?>
<d:propfind xmlns:d="DAV:">
  <d:prop>
    <d:resourcetype/>
    <d:getcontentlength/>
    <d:getlastmodified/>
  </d:prop>
</d:propfind>`

// Client issues WebDAV requests against a single user file root
type Client struct {
	baseURL  string
	username string
	creds    string
	httpCli  *http.Client
	log      *slog.Logger
}

// Config holds the Client construction parameters
type Config struct {
	// BaseURL is the fully qualified user file root, e.g.
	// https://cloud.example.org/remote.php/dav/files/alice
	BaseURL  string
	Username string
	// Creds is the opaque encoded credential used for Basic auth
	Creds    string
	Insecure bool
	Timeout  time.Duration
	Logger   *slog.Logger
}

func NewClient(config *Config) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if config.Insecure {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.NewLogger("")
		_ = logger.SetLevel("off")
	}

	return &Client{
		baseURL:  strings.TrimSuffix(config.BaseURL, "/"),
		username: config.Username,
		creds:    config.Creds,
		httpCli: &http.Client{
			Transport: transport,
			Timeout:   config.Timeout,
		},
		log: logger,
	}
}

// Username returns the authenticated user
func (c *Client) Username() string {
	return c.username
}

// encodePath percent-encodes a canonical remote path keeping separators
func encodePath(p string) string {
	u := url.URL{Path: p}
	return u.EscapedPath()
}

func (c *Client) urlFor(p string) string {
	return c.baseURL + encodePath(p)
}

func (c *Client) do(method, p string, body io.Reader, headers map[string]string) (*http.Response, error) {
	req, rErr := http.NewRequest(method, c.urlFor(p), body)
	if rErr != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", method, rErr)
	}
	req.Header.Set("Authorization", "Basic "+c.creds)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, dErr := c.httpCli.Do(req)
	if dErr != nil {
		return nil, fmt.Errorf("network error: %w", dErr)
	}
	c.log.Debugf("%s %s -> %s", method, encodePath(p), resp.Status)
	return resp, nil
}

func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// Propfind issues a depth-one listing request for the given canonical
// path. A trailing separator on the path signals "list contents" to the
// server. A 404 maps to ErrNotFound.
func (c *Client) Propfind(p string) ([]Record, error) {
	resp, err := c.do("PROPFIND", p, strings.NewReader(propfindBody), map[string]string{
		"Depth":        "1",
		"Content-Type": "application/xml",
	})
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusMultiStatus && resp.StatusCode != http.StatusOK:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	return ParseMultistatus(resp.Body)
}

// Get opens a download stream for a remote file. The caller owns the
// returned ReadCloser. Size is -1 when the server sends no length.
func (c *Client) Get(p string) (io.ReadCloser, int64, error) {
	resp, err := c.do("GET", p, nil, nil)
	if err != nil {
		return nil, 0, err
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		discard(resp)
		return nil, 0, ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		discard(resp)
		return nil, 0, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	return resp.Body, resp.ContentLength, nil
}

// Put uploads a file body to the given canonical path
func (c *Client) Put(p string, body io.Reader, size int64) (int, error) {
	req, rErr := http.NewRequest("PUT", c.urlFor(p), body)
	if rErr != nil {
		return 0, fmt.Errorf("failed to build PUT request: %w", rErr)
	}
	req.Header.Set("Authorization", "Basic "+c.creds)
	if size >= 0 {
		req.ContentLength = size
	}

	resp, dErr := c.httpCli.Do(req)
	if dErr != nil {
		return 0, fmt.Errorf("network error: %w", dErr)
	}
	defer discard(resp)
	c.log.Debugf("PUT %s -> %s", encodePath(p), resp.Status)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}
	return resp.StatusCode, nil
}

// Mkcol creates a collection. A 405 (collection already present) is
// returned as a status with a nil error so callers can treat it as an
// informational outcome rather than a hard failure.
func (c *Client) Mkcol(p string) (int, error) {
	resp, err := c.do("MKCOL", p, nil, nil)
	if err != nil {
		return 0, err
	}
	defer discard(resp)

	if resp.StatusCode == http.StatusMethodNotAllowed {
		return resp.StatusCode, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}
	return resp.StatusCode, nil
}

// Delete removes a remote file or collection
func (c *Client) Delete(p string) (int, error) {
	resp, err := c.do("DELETE", p, nil, nil)
	if err != nil {
		return 0, err
	}
	defer discard(resp)

	if resp.StatusCode == http.StatusNotFound {
		return resp.StatusCode, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}
	return resp.StatusCode, nil
}

// Copy duplicates src onto dst server-side. Collection copies are
// recursive on the server (Depth: infinity), no client-side walk
// happens here.
func (c *Client) Copy(src, dst string, overwrite bool) (int, error) {
	return c.copyMove("COPY", src, dst, overwrite)
}

// Move relocates src onto dst server-side
func (c *Client) Move(src, dst string, overwrite bool) (int, error) {
	return c.copyMove("MOVE", src, dst, overwrite)
}

func (c *Client) copyMove(method, src, dst string, overwrite bool) (int, error) {
	ow := "F"
	if overwrite {
		ow = "T"
	}
	resp, err := c.do(method, src, nil, map[string]string{
		"Destination": c.urlFor(dst),
		"Overwrite":   ow,
		"Depth":       "infinity",
	})
	if err != nil {
		return 0, err
	}
	defer discard(resp)

	if resp.StatusCode == http.StatusNotFound {
		return resp.StatusCode, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}
	return resp.StatusCode, nil
}
