package authapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginPostsCredentials(t *testing.T) {
	var got LoginRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, DefaultLoginPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	err := New(srv.URL+"/").Login(context.Background(), "a@b.co", "x")
	require.NoError(t, err)
	assert.Equal(t, LoginRequest{Email: "a@b.co", Password: "x"}, got)
}

func TestLoginFailureMessages(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"message field", http.StatusUnauthorized, `{"message":"Invalid credentials"}`, "Invalid credentials"},
		{"error field", http.StatusBadRequest, `{"error":"email required"}`, "email required"},
		{"plain text", http.StatusForbidden, "account locked\n", "account locked"},
		{"empty body", http.StatusInternalServerError, "", "API Error (status 500)"},
		{"json without message", http.StatusBadGateway, `{"code":7}`, "API Error (status 502)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := New(srv.URL).Login(context.Background(), "a@b.co", "x")
			var apiErr *Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestLoginCustomPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/callback/credentials" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, WithLoginPath("/auth/callback/credentials"), WithHTTPClient(srv.Client()))
	assert.NoError(t, c.Login(context.Background(), "a@b.co", "x"))
}

func TestLoginTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := New(url).Login(context.Background(), "a@b.co", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Request failed: ")
}

func TestLoginHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := New(srv.URL).Login(ctx, "a@b.co", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "context canceled")
}
