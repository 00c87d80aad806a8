package testutils

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
)

// RequestOptions накапливает необязательные параметры тестового запроса.
// Заполняется функциональными опциями WithHeader, WithGzip, WithCookies.
type RequestOptions struct {
	headers map[string]string
	gziped  bool
	cookies []*http.Cookie
}

type RequestArgs struct {
	Router http.Handler
	Method string
	URL    string
	Body   io.Reader
}

// MakeRequest прогоняет запрос через роутер без поднятия сервера
// и возвращает собранный httptest ответ.
func MakeRequest(args RequestArgs, opts ...func(*RequestOptions)) (*http.Response, error) {
	options := RequestOptions{
		headers: make(map[string]string),
		gziped:  false,
		cookies: nil,
	}
	for _, opt := range opts {
		opt(&options)
	}

	body := args.Body
	if options.gziped && args.Body != nil {
		compressed, err := gzipBody(args.Body)
		if err != nil {
			return nil, err
		}
		body = compressed
	}

	request := httptest.NewRequest(args.Method, args.URL, body)
	for k, v := range options.headers {
		request.Header.Set(k, v)
	}

	if options.gziped {
		request.Header.Set("Content-Encoding", "gzip")
		request.Header.Set("Accept-Encoding", "gzip")
	}

	for _, cookie := range options.cookies {
		request.AddCookie(cookie)
	}

	recorder := httptest.NewRecorder()
	args.Router.ServeHTTP(recorder, request)

	return recorder.Result(), nil
}

func gzipBody(src io.Reader) (io.Reader, error) {
	var buf bytes.Buffer

	gzipW, err := gzip.NewWriterLevel(&buf, gzip.BestSpeed)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip writer: %w", err)
	}

	if _, err = io.Copy(gzipW, src); err != nil {
		return nil, fmt.Errorf("failed to compress request body: %w", err)
	}

	if err = gzipW.Close(); err != nil {
		return nil, fmt.Errorf("failed to close gzip writer: %w", err)
	}

	return &buf, nil
}

func WithHeader(name, value string) func(*RequestOptions) {
	return func(o *RequestOptions) {
		o.headers[name] = value
	}
}

func WithGzip(b bool) func(*RequestOptions) {
	return func(o *RequestOptions) {
		o.gziped = b
	}
}

func WithCookies(c []*http.Cookie) func(*RequestOptions) {
	return func(o *RequestOptions) {
		o.cookies = c
	}
}
