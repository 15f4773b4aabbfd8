package httpx

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func httpClientRT(rt http.RoundTripper) *http.Client {
	return &http.Client{Transport: rt, Timeout: 2 * time.Second}
}

func response(r *http.Request, code int, body string) *http.Response {
	return &http.Response{StatusCode: code, Body: io.NopCloser(strings.NewReader(body)), Header: make(http.Header), Request: r}
}

func fastClient(rt http.RoundTripper) *Client {
	return &Client{
		HTTP:            httpClientRT(rt),
		InitialInterval: 5 * time.Millisecond,
		MaxInterval:     10 * time.Millisecond,
		MaxElapsedTime:  200 * time.Millisecond,
	}
}

type okResp struct {
	OK bool `json:"ok"`
}

func TestDoJSON_Retry500Then200(t *testing.T) {
	var calls atomic.Int32
	c := fastClient(rtFunc(func(r *http.Request) (*http.Response, error) {
		if calls.Add(1) == 1 {
			return response(r, 500, "err"), nil
		}
		return response(r, 200, `{"ok": true}`), nil
	}))
	var out okResp
	req, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)
	require.NoError(t, c.DoJSON(context.Background(), req, &out))
	require.True(t, out.OK)
	require.GreaterOrEqual(t, calls.Load(), int32(2))
}

type tempTimeoutErr struct{}

func (tempTimeoutErr) Error() string   { return "timeout" }
func (tempTimeoutErr) Timeout() bool   { return true }
func (tempTimeoutErr) Temporary() bool { return true }

func TestDoJSON_RetryNetTimeoutThen200(t *testing.T) {
	var calls atomic.Int32
	c := fastClient(rtFunc(func(r *http.Request) (*http.Response, error) {
		if calls.Add(1) == 1 {
			var ne net.Error = tempTimeoutErr{}
			return nil, ne
		}
		return response(r, 200, `{"ok": true}`), nil
	}))
	var out okResp
	req, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)
	require.NoError(t, c.DoJSON(context.Background(), req, &out))
	require.True(t, out.OK)
}

func TestDoJSON_NoRetryOn400(t *testing.T) {
	var calls atomic.Int32
	c := fastClient(rtFunc(func(r *http.Request) (*http.Response, error) {
		calls.Add(1)
		return response(r, 400, "bad"), nil
	}))
	var out any
	req, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)
	err := c.DoJSON(context.Background(), req, &out)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, 400, se.Code)
	require.Equal(t, int32(1), calls.Load())
}

func TestDoJSON_PersistentServerErrorGivesUp(t *testing.T) {
	c := fastClient(rtFunc(func(r *http.Request) (*http.Response, error) {
		return response(r, 503, "unavailable"), nil
	}))
	var out any
	req, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)
	err := c.DoJSON(context.Background(), req, &out)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, 503, se.Code)
}

func TestDoJSON_DecodeError_NoRetry(t *testing.T) {
	var calls atomic.Int32
	c := fastClient(rtFunc(func(r *http.Request) (*http.Response, error) {
		calls.Add(1)
		return &http.Response{StatusCode: 200, Body: io.NopCloser(bytes.NewBufferString("{x")), Header: make(http.Header), Request: r}, nil
	}))
	var out map[string]any
	req, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)
	err := c.DoJSON(context.Background(), req, &out)
	require.True(t, errors.Is(err, ErrDecode), "got %v", err)
	require.Equal(t, int32(1), calls.Load())
}

func TestDoJSON_SetsUserAgent(t *testing.T) {
	c := fastClient(rtFunc(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "stockmonitor/1.0", r.Header.Get("User-Agent"))
		return response(r, 200, `{"ok": true}`), nil
	}))
	c.UserAgent = "stockmonitor/1.0"
	var out okResp
	req, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)
	require.NoError(t, c.DoJSON(context.Background(), req, &out))
}

func TestNew_SetsTimeout(t *testing.T) {
	c := New(4 * time.Second)
	require.Equal(t, 4*time.Second, c.HTTP.Timeout)
	require.NotNil(t, c.HTTP.Transport)
}
