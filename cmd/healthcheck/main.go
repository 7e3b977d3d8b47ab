// Command healthcheck probes the local server's liveness endpoint and exits
// non-zero on failure, for container HEALTHCHECK use.
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/garyellow/badgerchat-fulfillment/internal/config"
)

func main() {
	port := os.Getenv(config.EnvPort)
	if port == "" {
		port = "53705"
	}

	client := &http.Client{Timeout: 3 * time.Second}
	resp, err := client.Get(fmt.Sprintf("http://localhost:%s/livez", port))
	if err != nil {
		os.Exit(1)
	}
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		os.Exit(1)
	}
}
