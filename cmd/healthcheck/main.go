// Command healthcheck probes the running server's health endpoint and exits
// non-zero when it is unreachable or unhealthy. Intended as a container
// HEALTHCHECK; failures print the probed URL for the container log.
package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"
)

const probeTimeout = 2 * time.Second

func main() {
	url := healthURL(os.Getenv("GOMUN_LISTEN_ADDR"))
	if err := probeHealth(url); err != nil {
		fmt.Fprintf(os.Stderr, "healthcheck %s: %v\n", url, err)
		os.Exit(1)
	}
}

func probeHealth(url string) error {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: probeTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %s", resp.Status)
	}

	return nil
}

// healthURL maps the server's listen address to a loopback probe URL. The
// server may bind 0.0.0.0 inside a container, but the probe runs in the
// same container, so loopback always reaches it.
func healthURL(listenAddr string) string {
	host, port, err := net.SplitHostPort(listenAddr)
	if err != nil {
		host, port = "127.0.0.1", "8080"
	}
	if host == "" || host == "0.0.0.0" {
		host = "127.0.0.1"
	}

	return fmt.Sprintf("http://%s/api/v1/health", net.JoinHostPort(host, port))
}
