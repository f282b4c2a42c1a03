// SPDX-License-Identifier: MIT
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scaffold(t *testing.T, version, module string) string {
	t.Helper()
	root := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(root, "VERSION"), []byte(version+"\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module "+module+"\n\ngo 1.24\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("# strata\n"), 0600))

	wf := filepath.Join(root, ".github", "workflows")
	require.NoError(t, os.MkdirAll(wf, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(wf, "ci.yml"), []byte("name: ci\non: push\n"), 0600))

	return root
}

func TestChecks_CleanRepo(t *testing.T) {
	root := scaffold(t, "v0.3.1", modulePath)

	assert.Empty(t, checkVersionFile(root))
	assert.Empty(t, checkModulePath(root))
	assert.Empty(t, checkWorkflows(root))
	assert.Empty(t, checkDocs(root))
}

func TestCheckVersionFile(t *testing.T) {
	root := scaffold(t, "0.3.1", modulePath)
	assert.NotEmpty(t, checkVersionFile(root))

	root = scaffold(t, "v0.3", modulePath)
	assert.NotEmpty(t, checkVersionFile(root))
}

func TestCheckModulePath(t *testing.T) {
	root := scaffold(t, "v0.3.1", "github.com/other/module")
	findings := checkModulePath(root)
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0], modulePath)
}

func TestCheckWorkflows_InvalidYAML(t *testing.T) {
	root := scaffold(t, "v0.3.1", modulePath)
	bad := filepath.Join(root, ".github", "workflows", "broken.yml")
	require.NoError(t, os.WriteFile(bad, []byte("name: [unclosed\n"), 0600))

	findings := checkWorkflows(root)
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0], "broken.yml")
}

func TestCheckWorkflows_NoneFound(t *testing.T) {
	root := scaffold(t, "v0.3.1", modulePath)
	require.NoError(t, os.Remove(filepath.Join(root, ".github", "workflows", "ci.yml")))

	assert.NotEmpty(t, checkWorkflows(root))
}
