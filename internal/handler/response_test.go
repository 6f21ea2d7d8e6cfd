package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"coderev/internal/handler"
	"coderev/internal/service"

	"github.com/stretchr/testify/require"
)

func TestWriteServiceError_Mapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		expected string
	}{
		{name: "invalid", err: service.ErrInvalid, status: http.StatusBadRequest, expected: "invalid request"},
		{name: "not_found", err: service.ErrNotFound, status: http.StatusNotFound, expected: "repository not found"},
		{name: "fetch_failed", err: service.ErrFetchFailed, status: http.StatusBadGateway, expected: "repository fetch failed"},
		{name: "analyze_failed", err: service.ErrAnalyzeFailed, status: http.StatusBadGateway, expected: "code analysis failed"},
		{name: "wrapped", err: errors.Join(errors.New("ctx"), service.ErrNotFound), status: http.StatusNotFound, expected: "repository not found"},
		{name: "default", err: errors.New("boom"), status: http.StatusInternalServerError, expected: "internal error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEcho()
			req := newJSONRequest(http.MethodGet, "/", nil)
			c, rec := newTestContext(e, req)

			err := handler.WriteServiceError(c, tc.err)
			require.NoError(t, err)

			var resp map[string]string
			assertJSONResponse(t, rec, tc.status, &resp)
			require.Equal(t, tc.expected, resp["error"])
		})
	}
}

func TestWriteError(t *testing.T) {
	e := newTestEcho()
	req := newJSONRequest(http.MethodGet, "/", nil)
	c, rec := newTestContext(e, req)

	err := handler.WriteError(c, http.StatusBadRequest, "bad request")
	require.NoError(t, err)

	var resp map[string]string
	assertJSONResponse(t, rec, http.StatusBadRequest, &resp)
	require.Equal(t, "bad request", resp["error"])
}
