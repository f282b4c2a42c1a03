// SPDX-License-Identifier: MIT

// releasegate is the patch-release detector run by the push CI workflow. It
// compares the VERSION file against the latest reachable git tag and tells
// the workflow, through GITHUB_OUTPUT, whether a patch release should be
// tagged.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var semverRe = regexp.MustCompile(`^v(\d+)\.(\d+)\.(\d+)$`)

func main() {
	root := flag.String("root", ".", "repository root")
	flag.Parse()

	code, err := run(*root, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "releasegate: %v\n", err)
	}
	os.Exit(code)
}

func run(root string, out *os.File) (int, error) {
	raw, err := os.ReadFile(filepath.Join(root, "VERSION")) // #nosec G304
	if err != nil {
		return 1, fmt.Errorf("read VERSION: %w", err)
	}
	version := strings.TrimSpace(string(raw))

	if !semverRe.MatchString(version) {
		return 1, fmt.Errorf("VERSION %q is not a vMAJOR.MINOR.PATCH version", version)
	}

	latest, err := latestTag(root)
	if err != nil {
		return 1, fmt.Errorf("latest tag: %w", err)
	}

	release, reason := decide(latest, version)
	fmt.Fprintf(out, "version=%s latest_tag=%s release=%t (%s)\n", version, latest, release, reason)

	if outputPath := os.Getenv("GITHUB_OUTPUT"); outputPath != "" {
		f, err := os.OpenFile(outputPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600) // #nosec G304
		if err != nil {
			return 1, fmt.Errorf("open GITHUB_OUTPUT: %w", err)
		}
		defer func() { _ = f.Close() }()
		fmt.Fprintf(f, "release=%t\ntag=%s\n", release, version)
	}

	return 0, nil
}

// latestTag returns the most recent reachable vX.Y.Z tag, or "none" in a
// repository without tags.
func latestTag(root string) (string, error) {
	cmd := exec.Command("git", "describe", "--tags", "--abbrev=0", "--match", "v[0-9]*")
	cmd.Dir = root

	raw, err := cmd.Output()
	if err != nil {
		// No tags yet: every valid VERSION is releasable.
		return "none", nil
	}
	return strings.TrimSpace(string(raw)), nil
}

// decide reports whether version is a patch bump over latest. Major or
// minor bumps are left to humans; equal or older versions release nothing.
func decide(latest, version string) (bool, string) {
	if latest == "none" {
		return true, "no existing tags"
	}

	lm := semverRe.FindStringSubmatch(latest)
	vm := semverRe.FindStringSubmatch(version)
	if lm == nil {
		return false, fmt.Sprintf("latest tag %q is not semver", latest)
	}
	if vm == nil {
		return false, fmt.Sprintf("version %q is not semver", version)
	}

	lMaj, lMin, lPat := atoi(lm[1]), atoi(lm[2]), atoi(lm[3])
	vMaj, vMin, vPat := atoi(vm[1]), atoi(vm[2]), atoi(vm[3])

	switch {
	case vMaj != lMaj || vMin != lMin:
		return false, "not a patch bump; tag manually"
	case vPat == lPat+1:
		return true, "patch bump detected"
	case vPat > lPat+1:
		return false, "patch version skips ahead"
	default:
		return false, "version not newer than latest tag"
	}
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
