package terminal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSizeOfRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "not-a-tty"))
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	defer f.Close()

	size, ok := SizeOf(f)
	if ok {
		t.Errorf("SizeOf() on a regular file reported ok with size %+v", size)
	}
	if size != (Size{}) {
		t.Errorf("SizeOf() should return the zero size on failure, got %+v", size)
	}
}

func TestIsTerminalRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "not-a-tty"))
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	defer f.Close()

	if IsTerminal(f) {
		t.Error("IsTerminal() = true for a regular file")
	}
}

func TestConsoleSizeDoesNotPanic(t *testing.T) {
	// Whether stderr is a terminal depends on how the tests run; only
	// the ok=false contract is checkable in both environments.
	size, ok := ConsoleSize()
	if !ok && size != (Size{}) {
		t.Errorf("ConsoleSize() reported not-ok with non-zero size %+v", size)
	}
}
