package exec

import (
	"strings"
	"testing"
)

func TestWrapperBasicExecution(t *testing.T) {
	echo := NewWrapper(New(), "echo")

	result, err := echo.Run("hello", "world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Stdout, "hello world") {
		t.Errorf("expected stdout to contain 'hello world', got: %s", result.Stdout)
	}

	if echo.Name() != "echo" {
		t.Errorf("expected name 'echo', got: %s", echo.Name())
	}
}

func TestWrapperChaining(t *testing.T) {
	dir := t.TempDir()
	sh := NewWrapper(New(), "sh")

	result, err := sh.
		WithEnv(map[string]string{"VAR1": "value1"}).
		WithEnv(map[string]string{"VAR2": "value2"}).
		WithDir(dir).
		Run("-c", "echo $VAR1 $VAR2 && pwd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Stdout, "value1 value2") {
		t.Errorf("expected both env vars to be set, got: %s", result.Stdout)
	}

	if !strings.Contains(result.Stdout, dir) {
		t.Errorf("expected working directory %q, got: %s", dir, result.Stdout)
	}
}

func TestWrapperClone(t *testing.T) {
	sh := NewWrapper(New(), "sh")
	clone := sh.Clone()

	result, err := clone.Run("-c", "echo cloned")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Stdout, "cloned") {
		t.Errorf("expected clone to keep command name, got: %s", result.Stdout)
	}
}
