package exec

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestBasicExecution(t *testing.T) {
	cmd := New()
	result, err := cmd.Run("echo", "hello world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Stdout, "hello world") {
		t.Errorf("expected stdout to contain 'hello world', got: %s", result.Stdout)
	}

	if result.ExitCode != 0 {
		t.Errorf("expected exit code 0, got: %d", result.ExitCode)
	}
}

func TestCommandFailure(t *testing.T) {
	cmd := New()
	result, err := cmd.Run("sh", "-c", "echo oops >&2; exit 3")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var execErr *ExecError
	if !errors.As(err, &execErr) {
		t.Fatalf("expected ExecError, got: %T", err)
	}

	if execErr.ExitStatus() != 3 {
		t.Errorf("expected exit status 3, got: %d", execErr.ExitStatus())
	}

	if !strings.Contains(execErr.Stderr, "oops") {
		t.Errorf("expected captured stderr, got: %q", execErr.Stderr)
	}

	if result == nil {
		t.Fatal("expected result even with error")
	}
}

func TestMissingExecutable(t *testing.T) {
	cmd := New()
	_, err := cmd.Run("gitc-definitely-not-a-real-binary")

	var execErr *ExecError
	if !errors.As(err, &execErr) {
		t.Fatalf("expected ExecError, got: %T", err)
	}

	if !execErr.NotFound() {
		t.Errorf("expected NotFound() to be true for %v", err)
	}
}

func TestWithDir(t *testing.T) {
	dir := t.TempDir()
	cmd := New()
	result, err := cmd.WithDir(dir).Run("pwd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Stdout, dir) {
		t.Errorf("expected stdout to contain %q, got: %s", dir, result.Stdout)
	}
}

func TestLocalSettingsReset(t *testing.T) {
	dir := t.TempDir()
	cmd := New()

	if _, err := cmd.WithDir(dir).Run("true"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cmd.config.effectiveDir() != "" {
		t.Errorf("expected local dir to be reset, got: %q", cmd.config.effectiveDir())
	}
}

func TestWithEnv(t *testing.T) {
	cmd := New()
	result, err := cmd.WithEnv(map[string]string{
		"TEST_VAR": "test_value",
	}).Run("sh", "-c", "echo $TEST_VAR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Stdout, "test_value") {
		t.Errorf("expected stdout to contain 'test_value', got: %s", result.Stdout)
	}
}

func TestGlobalOptionsPersist(t *testing.T) {
	cmd := New(WithEnv(map[string]string{"GLOBAL_VAR": "global"}))

	for i := 0; i < 2; i++ {
		result, err := cmd.Run("sh", "-c", "echo $GLOBAL_VAR")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(result.Stdout, "global") {
			t.Errorf("run %d: expected global env var to be set, got: %s", i, result.Stdout)
		}
	}
}

func TestLocalOverridesGlobal(t *testing.T) {
	cmd := New(WithEnv(map[string]string{"TEST_VAR": "global"}))

	result, err := cmd.WithEnv(map[string]string{"TEST_VAR": "local"}).Run("sh", "-c", "echo $TEST_VAR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Stdout, "local") {
		t.Errorf("expected local value to override global, got: %s", result.Stdout)
	}
}

func TestInheritEnv(t *testing.T) {
	t.Setenv("TEST_INHERIT_VAR", "inherited")

	cmd := New()
	result, err := cmd.WithInheritEnv().WithEnv(map[string]string{"OTHER": "x"}).
		Run("sh", "-c", "echo $TEST_INHERIT_VAR $OTHER")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Stdout, "inherited x") {
		t.Errorf("expected inherited and local variables, got: %s", result.Stdout)
	}
}

func TestWithContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	cmd := New()
	_, err := cmd.WithContext(ctx).Run("sleep", "1")
	if err == nil {
		t.Fatal("expected context cancellation error, got nil")
	}
}

func TestWithPassthrough(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cmd := New()
	result, err := cmd.WithStdout(&stdout).WithStderr(&stderr).WithPassthrough().Run("echo", "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Stdout, "test") {
		t.Errorf("expected captured stdout to contain 'test', got: %s", result.Stdout)
	}

	if !strings.Contains(stdout.String(), "test") {
		t.Errorf("expected passthrough stdout to contain 'test', got: %s", stdout.String())
	}
}

func TestWithAttach(t *testing.T) {
	var stdout bytes.Buffer
	cmd := New(WithStdin(strings.NewReader("from stdin\n")))
	result, err := cmd.WithStdout(&stdout).WithAttach().Run("cat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stdout.String() != "from stdin\n" {
		t.Errorf("expected attached stdout to receive input, got: %q", stdout.String())
	}

	if result.Stdout != "" {
		t.Errorf("expected nothing captured in attach mode, got: %q", result.Stdout)
	}
}

func TestCombinedOutput(t *testing.T) {
	cmd := New()
	result, err := cmd.Run("sh", "-c", "echo stdout && echo stderr >&2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Combined, "stdout") || !strings.Contains(result.Combined, "stderr") {
		t.Errorf("expected combined output to contain both streams, got: %s", result.Combined)
	}

	if strings.Contains(result.Stdout, "stderr") {
		t.Errorf("expected stdout to exclude stderr, got: %s", result.Stdout)
	}
}

func TestClone(t *testing.T) {
	exec1 := New(WithEnv(map[string]string{"GLOBAL_VAR": "global"}))
	exec2 := exec1.Clone()

	result, err := exec2.WithEnv(map[string]string{"LOCAL_VAR": "local"}).Run("sh", "-c", "echo $GLOBAL_VAR $LOCAL_VAR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Stdout, "global local") {
		t.Errorf("expected cloned executor to carry both settings, got: %s", result.Stdout)
	}

	result, err = exec1.Run("sh", "-c", "echo $GLOBAL_VAR $LOCAL_VAR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(result.Stdout, "local") {
		t.Errorf("expected original executor to not have local config from clone, got: %s", result.Stdout)
	}
}

func TestEmptyCommand(t *testing.T) {
	cmd := New()
	_, err := cmd.Run()
	if err == nil {
		t.Fatal("expected error for empty command, got nil")
	}
}
