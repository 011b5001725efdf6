package api

import (
	"io"
	"net/url"

	fhttp "github.com/bogdanfinn/fhttp"
	"github.com/bogdanfinn/tls-client/bandwidth"
)

// mockChunk is one scripted read result: a slice of bytes followed by an
// optional error once the chunk's data is exhausted.
type mockChunk struct {
	data []byte
	err  error
}

// MockResponseBody is a ReadCloser that serves scripted chunks, one chunk
// per Read call, so tests control exactly how a stream is split.
type MockResponseBody struct {
	chunks []mockChunk
	pos    int
}

// NewMockResponseBody creates a body that returns data in a single read
// followed by EOF.
func NewMockResponseBody(data []byte) *MockResponseBody {
	return &MockResponseBody{chunks: []mockChunk{{data: data}}}
}

// NewChunkedResponseBody creates a body that returns one chunk per read,
// then EOF.
func NewChunkedResponseBody(chunks ...[]byte) *MockResponseBody {
	body := &MockResponseBody{}
	for _, c := range chunks {
		body.chunks = append(body.chunks, mockChunk{data: c})
	}
	return body
}

// NewFailingResponseBody creates a body that returns the given chunks and
// then fails with err instead of EOF.
func NewFailingResponseBody(err error, chunks ...[]byte) *MockResponseBody {
	body := NewChunkedResponseBody(chunks...)
	if n := len(body.chunks); n > 0 {
		body.chunks[n-1].err = err
	} else {
		body.chunks = []mockChunk{{err: err}}
	}
	return body
}

// Read implements the io.Reader interface
func (m *MockResponseBody) Read(p []byte) (n int, err error) {
	if m.pos >= len(m.chunks) {
		return 0, io.EOF
	}
	chunk := m.chunks[m.pos]
	m.pos++
	n = copy(p, chunk.data)
	if chunk.err != nil {
		return n, chunk.err
	}
	return n, nil
}

// Close implements the io.Closer interface
func (m *MockResponseBody) Close() error {
	return nil
}

// mockResult is one scripted outcome of a request.
type mockResult struct {
	Response *fhttp.Response
	Err      error
}

// MockHttpClient is a mock implementation of tls_client.HttpClient for
// testing. Results are consumed in order, one per request; the last result
// repeats once the script is exhausted.
type MockHttpClient struct {
	Results  []mockResult
	Requests []*fhttp.Request
}

// GetCookies implements the tls_client.HttpClient interface
func (m *MockHttpClient) GetCookies(u *url.URL) []*fhttp.Cookie {
	return nil
}

// SetCookies implements the tls_client.HttpClient interface
func (m *MockHttpClient) SetCookies(u *url.URL, cookies []*fhttp.Cookie) {}

// SetCookieJar implements the tls_client.HttpClient interface
func (m *MockHttpClient) SetCookieJar(jar fhttp.CookieJar) {}

// GetCookieJar implements the tls_client.HttpClient interface
func (m *MockHttpClient) GetCookieJar() fhttp.CookieJar {
	return nil
}

// SetProxy implements the tls_client.HttpClient interface
func (m *MockHttpClient) SetProxy(proxyUrl string) error {
	return nil
}

// GetProxy implements the tls_client.HttpClient interface
func (m *MockHttpClient) GetProxy() string {
	return ""
}

// SetFollowRedirect implements the tls_client.HttpClient interface
func (m *MockHttpClient) SetFollowRedirect(followRedirect bool) {}

// GetFollowRedirect implements the tls_client.HttpClient interface
func (m *MockHttpClient) GetFollowRedirect() bool {
	return false
}

// CloseIdleConnections implements the tls_client.HttpClient interface
func (m *MockHttpClient) CloseIdleConnections() {}

// Do implements the tls_client.HttpClient interface
func (m *MockHttpClient) Do(req *fhttp.Request) (*fhttp.Response, error) {
	m.Requests = append(m.Requests, req)
	if len(m.Results) == 0 {
		return nil, io.ErrUnexpectedEOF
	}
	idx := len(m.Requests) - 1
	if idx >= len(m.Results) {
		idx = len(m.Results) - 1
	}
	return m.Results[idx].Response, m.Results[idx].Err
}

// Get implements the tls_client.HttpClient interface
func (m *MockHttpClient) Get(url string) (*fhttp.Response, error) {
	return nil, nil
}

// Head implements the tls_client.HttpClient interface
func (m *MockHttpClient) Head(url string) (*fhttp.Response, error) {
	return nil, nil
}

// Post implements the tls_client.HttpClient interface
func (m *MockHttpClient) Post(url, contentType string, body io.Reader) (*fhttp.Response, error) {
	return nil, nil
}

// GetBandwidthTracker implements the tls_client.HttpClient interface
func (m *MockHttpClient) GetBandwidthTracker() bandwidth.BandwidthTracker {
	return nil
}

// CallCount reports how many requests the mock has served.
func (m *MockHttpClient) CallCount() int {
	return len(m.Requests)
}

// AddResponse appends a scripted response with the given body.
func (m *MockHttpClient) AddResponse(statusCode int, body io.ReadCloser) {
	m.Results = append(m.Results, mockResult{
		Response: &fhttp.Response{
			StatusCode: statusCode,
			Body:       body,
			Header:     make(fhttp.Header),
		},
	})
}

// AddError appends a scripted transport failure.
func (m *MockHttpClient) AddError(err error) {
	m.Results = append(m.Results, mockResult{Err: err})
}

// NewMockHttpClient creates a new MockHttpClient with a single successful
// response.
func NewMockHttpClient(body []byte, statusCode int) *MockHttpClient {
	m := &MockHttpClient{}
	m.AddResponse(statusCode, NewMockResponseBody(body))
	return m
}

// NewMockHttpClientWithError creates a new MockHttpClient whose every
// request fails with err.
func NewMockHttpClientWithError(err error) *MockHttpClient {
	m := &MockHttpClient{}
	m.AddError(err)
	return m
}
