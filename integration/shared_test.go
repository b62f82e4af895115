//go:build basic || database

package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	// sharedBinaryPath holds the path to a shared devlens binary built once for all tests.
	sharedBinaryPath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getDevlensBinary returns the path to the devlens binary, building it once if needed.
func getDevlensBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "devlens-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		binaryPath := filepath.Join(tempDir, "devlens")
		buildCmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/devlens")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build devlens: %v", err))
		}

		sharedBinaryPath = binaryPath
	})

	return sharedBinaryPath
}

// writeFixtureProfile writes a small profile JSON and returns its absolute path.
func writeFixtureProfile(t *testing.T) string {
	t.Helper()
	profile := `{
  "username": "octocat",
  "followers": 120,
  "following": 30,
  "organizations": ["github"],
  "repos": [
    {"name": "hello-world", "language": "Go", "stars": 42, "forks": 7, "is_fork": false, "updated_at": "2025-06-01T10:00:00Z"},
    {"name": "spoon-knife", "language": "Python", "stars": 5, "forks": 1, "is_fork": false, "updated_at": "2025-05-01T10:00:00Z"}
  ],
  "languages": [
    {"name": "Go", "percentage": 70},
    {"name": "Python", "percentage": 30}
  ],
  "contribution_stats": {"recent_commits": 400, "recent_prs": 35, "recent_issues": 12, "recent_reviews": 20}
}`
	path := filepath.Join(t.TempDir(), "profile.json")
	if err := os.WriteFile(path, []byte(profile), 0o644); err != nil {
		t.Fatalf("failed to write fixture profile: %v", err)
	}
	return path
}

// runDevlensCommand runs the devlens binary from the project root with args.
func runDevlensCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	binaryPath := getDevlensBinary()
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = "../" // Run from project root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
	}
	return string(output), err
}
