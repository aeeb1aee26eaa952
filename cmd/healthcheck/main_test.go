package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthURL(t *testing.T) {
	tests := []struct {
		name string
		addr string
		want string
	}{
		{"empty defaults to loopback", "", "http://127.0.0.1:8080/api/v1/health"},
		{"bind-all maps to loopback", "0.0.0.0:9090", "http://127.0.0.1:9090/api/v1/health"},
		{"missing host maps to loopback", ":8081", "http://127.0.0.1:8081/api/v1/health"},
		{"explicit host kept", "127.0.0.1:8082", "http://127.0.0.1:8082/api/v1/health"},
		{"unparseable defaults entirely", "not-an-addr", "http://127.0.0.1:8080/api/v1/health"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, healthURL(tt.addr))
		})
	}
}

func TestProbeHealth(t *testing.T) {
	t.Run("healthy server", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		assert.NoError(t, probeHealth(srv.URL+"/api/v1/health"))
	})

	t.Run("unhealthy status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		err := probeHealth(srv.URL + "/api/v1/health")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "503")
	})

	t.Run("unreachable server", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		url := srv.URL
		srv.Close()

		assert.Error(t, probeHealth(url + "/api/v1/health"))
	})
}
