package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var binaryPath string

// sieFixture is a Latin-1, CRLF export with profit, tax and both optional posts.
const sieFixture = "../sie/testdata/bokio.se"

func TestMain(m *testing.M) {
	// Build the binary once for all tests.
	tmpDir, err := os.MkdirTemp("", "sietosru-test-*")
	if err != nil {
		panic(err)
	}

	binaryPath = filepath.Join(tmpDir, "sietosru")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/sietosru")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		os.RemoveAll(tmpDir)
		panic("failed to build binary: " + err.Error())
	}

	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}

func runSietosru(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func fixturePath(t *testing.T) string {
	t.Helper()
	p, err := filepath.Abs(sieFixture)
	if err != nil {
		t.Fatal(err)
	}
	return p
}
