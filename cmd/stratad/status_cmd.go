// SPDX-License-Identifier: MIT
package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/strataio/strata/internal/layer"
	"github.com/strataio/strata/internal/snapshot"
)

func runStatusCLI(args []string) int {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	baseURL := fs.String("url", "http://localhost:8088", "daemon base URL")
	timeout := fs.Duration("timeout", 5*time.Second, "request timeout")
	snapshotPath := fs.String("snapshot", "", "status snapshot file used as fallback when the daemon is unreachable")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing status flags: %v\n", err)
		return 1
	}

	client := http.Client{Timeout: *timeout}
	resp, err := client.Get(*baseURL + "/api/v1/status/text")
	if err == nil {
		defer resp.Body.Close()
		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			fmt.Fprintf(os.Stderr, "Status failed (read): %v\n", readErr)
			return 1
		}
		if resp.StatusCode != http.StatusOK {
			fmt.Fprintf(os.Stderr, "Status failed (status): %d %s\n", resp.StatusCode, resp.Status)
			return 1
		}
		fmt.Print(string(body))
		return 0
	}

	if *snapshotPath == "" {
		fmt.Fprintf(os.Stderr, "Status failed (network): %v\n", err)
		return 1
	}

	// Daemon unreachable: fall back to the last persisted snapshot.
	snap, snapErr := snapshot.Read(*snapshotPath)
	if snapErr != nil {
		fmt.Fprintf(os.Stderr, "Status failed (network): %v\nSnapshot fallback failed: %v\n", err, snapErr)
		return 1
	}

	fmt.Printf("daemon unreachable; snapshot from %s\n", snap.Timestamp.Format(time.RFC3339))
	fmt.Print(formatSnapshot(snap))
	return 0
}

func formatSnapshot(snap layer.StatusSnapshot) string {
	out := fmt.Sprintf("%s-%s\n", snap.Framework, snap.Version)
	for _, l := range snap.Layers {
		out += fmt.Sprintf("%s: ready=%t\n", layer.Name(l.Name).Slug(), l.Ready)
	}
	return out
}
