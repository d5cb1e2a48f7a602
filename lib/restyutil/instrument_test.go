package restyutil

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestFormatHeaders(t *testing.T) {
	require.Equal(t, "", formatHeaders(http.Header{}))
	require.Equal(t,
		"Accept: text/html\nSet-Cookie: a=1\nSet-Cookie: b=2",
		formatHeaders(http.Header{
			"Set-Cookie": {"a=1", "b=2"},
			"Accept":     {"text/html"},
		}),
	)
}

func TestFormatRequestBody(t *testing.T) {
	require.Equal(t, "<NO BODY>", formatRequestBody(nil))

	req, err := http.NewRequest(http.MethodPost, "http://localhost", strings.NewReader("page=2"))
	require.NoError(t, err)
	require.Equal(t, "page=2", formatRequestBody(req))
}

func TestFormatHttpMessageRestyGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("down for maintenance"))
	}))
	defer server.Close()

	res, err := resty.New().R().
		SetHeader("user-agent", "congress-scraper-test").
		Get(server.URL + "/legislation")
	require.NoError(t, err)
	require.NotNil(t, res.Request.RawRequest)
	require.NotNil(t, res.Request.RawRequest.GetBody)

	var message string
	require.NotPanics(t, func() {
		message = FormatHttpMessage(res)
	})
	require.Contains(t, message, "GET "+server.URL+"/legislation")
	require.Contains(t, message, "User-Agent: congress-scraper-test")
	require.Contains(t, message, "<NO BODY>")
	require.Contains(t, message, "503 ")
	require.Contains(t, message, "down for maintenance")
}

func TestInstrumentClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("content-type", "text/html")
		w.Write([]byte("<span class=\"results-number\">1-1 of 1</span>"))
	}))
	defer server.Close()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	output, err := NewFilesystemOutput(filepath.Join(t.TempDir(), "dump"))
	require.NoError(t, err)

	client := resty.New()
	InstrumentClient(client, provider.Tracer("test"), output)

	_, err = client.R().SetQueryParam("page", "1").Get(server.URL + "/legislation")
	require.NoError(t, err)
	_, err = client.R().Get(server.URL + "/missing")
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	for _, span := range spans {
		require.Equal(t, "http GET", span.Name())
	}
	require.Equal(t, codes.Error, spans[1].Status().Code)

	first, err := os.ReadFile(filepath.Join(output.Directory(), "1.http"))
	require.NoError(t, err)
	require.Contains(t, string(first), "---- REQUEST ----")
	require.Contains(t, string(first), "GET "+server.URL+"/legislation?page=1")
	require.Contains(t, string(first), "1-1 of 1")

	second, err := os.ReadFile(filepath.Join(output.Directory(), "2.http"))
	require.NoError(t, err)
	require.Contains(t, string(second), "404")
}

func TestInstrumentClientConnectionError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	client := resty.New()
	InstrumentClient(client, provider.Tracer("test"), nil)

	_, err := client.R().Get(url)
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	require.Equal(t, codes.Error, spans[0].Status().Code)
}

func TestFilesystemOutputKeepsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("keep"), 0600))

	output, err := NewFilesystemOutput(dir)
	require.NoError(t, err)
	output.Write("7", "contents")

	kept, err := os.ReadFile(filepath.Join(dir, "notes.txt"))
	require.NoError(t, err)
	require.Equal(t, "keep", string(kept))

	written, err := os.ReadFile(filepath.Join(dir, "7.http"))
	require.NoError(t, err)
	require.Equal(t, "contents", string(written))
}
