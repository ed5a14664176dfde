// Command healthcheck probes the running server's health endpoint and
// exits nonzero unless it answers 200. Intended as a container
// HEALTHCHECK command next to the server binary.
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
	if err := probe(os.Getenv("FOLIOPANEL_LISTEN_ADDR")); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func probe(listenAddr string) error {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	url := "http://" + loopbackAddr(listenAddr) + "/api/health"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health endpoint answered %s", resp.Status)
	}

	return nil
}

// loopbackAddr rewrites the server's listen address into one the probe
// can dial from inside the same container: a bind-all or empty host
// becomes loopback, and an unparsable value falls back to the default
// listen address.
func loopbackAddr(listenAddr string) string {
	host, port, err := net.SplitHostPort(listenAddr)
	if err != nil {
		return "127.0.0.1:3001"
	}

	if host == "" || host == "0.0.0.0" {
		host = "127.0.0.1"
	}

	return net.JoinHostPort(host, port)
}
