// SPDX-License-Identifier: MIT

// repocheck is the repository health gate run by the scheduled CI workflow.
// It verifies the release and module metadata that the other tooling relies
// on: a semver VERSION file, a matching module path, parseable workflow
// definitions and the presence of the operator docs.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

const modulePath = "github.com/strataio/strata"

var semverRe = regexp.MustCompile(`^v\d+\.\d+\.\d+$`)

func main() {
	root := flag.String("root", ".", "repository root to check")
	flag.Parse()

	repo := os.Getenv("GITHUB_REPOSITORY")
	if repo != "" {
		fmt.Printf("checking repository %s\n", repo)
	}

	var findings []string

	findings = append(findings, checkVersionFile(*root)...)
	findings = append(findings, checkModulePath(*root)...)
	findings = append(findings, checkWorkflows(*root)...)
	findings = append(findings, checkDocs(*root)...)

	if len(findings) > 0 {
		fmt.Fprintln(os.Stderr, "repository health check failed:")
		for _, f := range findings {
			fmt.Fprintf(os.Stderr, "  - %s\n", f)
		}
		os.Exit(1)
	}

	fmt.Println("repository health check passed")
}

func checkVersionFile(root string) []string {
	raw, err := os.ReadFile(filepath.Join(root, "VERSION")) // #nosec G304
	if err != nil {
		return []string{fmt.Sprintf("VERSION file: %v", err)}
	}

	v := strings.TrimSpace(string(raw))
	if !semverRe.MatchString(v) {
		return []string{fmt.Sprintf("VERSION file: %q is not a vMAJOR.MINOR.PATCH version", v)}
	}
	return nil
}

func checkModulePath(root string) []string {
	raw, err := os.ReadFile(filepath.Join(root, "go.mod")) // #nosec G304
	if err != nil {
		return []string{fmt.Sprintf("go.mod: %v", err)}
	}

	firstLine, _, _ := strings.Cut(string(raw), "\n")
	want := "module " + modulePath
	if strings.TrimSpace(firstLine) != want {
		return []string{fmt.Sprintf("go.mod: expected %q, got %q", want, strings.TrimSpace(firstLine))}
	}
	return nil
}

func checkWorkflows(root string) []string {
	dir := filepath.Join(root, ".github", "workflows")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return []string{fmt.Sprintf("workflows: %v", err)}
	}

	var findings []string
	seen := 0
	for _, e := range entries {
		if e.IsDir() || (!strings.HasSuffix(e.Name(), ".yml") && !strings.HasSuffix(e.Name(), ".yaml")) {
			continue
		}
		seen++
		path := filepath.Join(dir, e.Name())
		raw, err := os.ReadFile(path) // #nosec G304
		if err != nil {
			findings = append(findings, fmt.Sprintf("workflow %s: %v", e.Name(), err))
			continue
		}
		var doc map[string]any
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			findings = append(findings, fmt.Sprintf("workflow %s: invalid YAML: %v", e.Name(), err))
		}
	}

	if seen == 0 {
		findings = append(findings, "workflows: no workflow definitions found")
	}
	return findings
}

func checkDocs(root string) []string {
	var findings []string
	for _, doc := range []string{"README.md"} {
		if _, err := os.Stat(filepath.Join(root, doc)); err != nil {
			findings = append(findings, fmt.Sprintf("docs: %s missing", doc))
		}
	}
	return findings
}
