//go:build unix

package test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"testing"
	"time"
)

var ptimeBin string

// repoRoot returns the absolute path to the repository root.
func repoRoot() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		panic("runtime.Caller failed")
	}
	return filepath.Dir(filepath.Dir(file))
}

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "ptime-e2e")
	if err != nil {
		panic(err)
	}
	ptimeBin = filepath.Join(dir, "ptime")

	build := exec.Command("go", "build", "-o", ptimeBin, "./cmd/ptime")
	build.Dir = repoRoot()
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		panic("failed to build ptime: " + err.Error())
	}

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type executionResult struct {
	stdout   string
	stderr   string
	exitCode int
}

func startPtime(t *testing.T, stdout, stderr *bytes.Buffer, args ...string) *exec.Cmd {
	t.Helper()
	cmd := exec.Command(ptimeBin, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Stdin = nil
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Start(); err != nil {
		t.Fatalf("failed to start ptime: %v", err)
	}
	return cmd
}

func waitPtime(t *testing.T, cmd *exec.Cmd) int {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case err := <-done:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		if err != nil {
			t.Fatalf("ptime failed: %v", err)
		}
		return 0
	case <-time.After(8 * time.Second):
		_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
		t.Fatalf("ptime timed out")
	}
	return -1
}

func executePtime(t *testing.T, args ...string) *executionResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := startPtime(t, &stdout, &stderr, args...)
	code := waitPtime(t, cmd)
	return &executionResult{stdout: stdout.String(), stderr: stderr.String(), exitCode: code}
}

func reportOf(t *testing.T, stderr string) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	var report map[string]any
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &report); err != nil {
		t.Fatalf("last stderr line is not a json report: %v\n%s", err, stderr)
	}
	return report
}

func TestE2E_ChildStdoutIsUntouched(t *testing.T) {
	res := executePtime(t, "-o", "json", "--", "sh", "-c", "echo hello; echo oops >&2")
	if res.exitCode != 0 {
		t.Fatalf("exit code = %d, stderr: %s", res.exitCode, res.stderr)
	}
	if res.stdout != "hello\n" {
		t.Fatalf("stdout = %q, want only the child's output", res.stdout)
	}
	if !strings.Contains(res.stderr, "oops\n") {
		t.Fatalf("child stderr missing: %s", res.stderr)
	}
	if report := reportOf(t, res.stderr); report["exit_code"] != float64(0) {
		t.Fatalf("exit_code = %v", report["exit_code"])
	}
}

func TestE2E_ExitCodePassthrough(t *testing.T) {
	res := executePtime(t, "sh", "-c", "exit 42")
	if res.exitCode != 42 {
		t.Fatalf("exit code = %d, want 42", res.exitCode)
	}
	if !strings.Contains(res.stderr, "exit_code:        42\n") {
		t.Fatalf("report missing exit code:\n%s", res.stderr)
	}
}

func TestE2E_ReportsSignal(t *testing.T) {
	res := executePtime(t, "-o", "json", "sh", "-c", "kill -KILL $$")
	if res.exitCode != int(syscall.SIGKILL) {
		t.Fatalf("exit code = %d, want %d", res.exitCode, syscall.SIGKILL)
	}
	report := reportOf(t, res.stderr)
	if report["term_signal"] != float64(syscall.SIGKILL) || report["exit_code"] != nil {
		t.Fatalf("unexpected termination fields: %v", report)
	}
}

func TestE2E_SurvivesInterrupt(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cmd := startPtime(t, &stdout, &stderr, "-o", "json", "sleep", "2")

	time.Sleep(300 * time.Millisecond)
	// The whole group gets the interrupt, as from a terminal.
	if err := syscall.Kill(-cmd.Process.Pid, syscall.SIGINT); err != nil {
		t.Fatalf("failed to interrupt: %v", err)
	}

	code := waitPtime(t, cmd)
	if code != int(syscall.SIGINT) {
		t.Fatalf("exit code = %d, want %d. stderr: %s", code, syscall.SIGINT, stderr.String())
	}
	if report := reportOf(t, stderr.String()); report["term_signal"] != float64(syscall.SIGINT) {
		t.Fatalf("term_signal = %v", report["term_signal"])
	}
}

func TestE2E_CommandNotFound(t *testing.T) {
	res := executePtime(t, "ptime-e2e-no-such-command")
	if res.exitCode != 127 {
		t.Fatalf("exit code = %d, want 127", res.exitCode)
	}
	if !strings.Contains(res.stderr, "ptime-e2e-no-such-command") {
		t.Fatalf("stderr should name the command: %s", res.stderr)
	}
}

func TestE2E_CannotExecute(t *testing.T) {
	junk := filepath.Join(t.TempDir(), "junk")
	if err := os.WriteFile(junk, []byte("\x00\x01junk"), 0o755); err != nil {
		t.Fatalf("write junk: %v", err)
	}
	res := executePtime(t, "-o", "json", junk)
	if res.exitCode != 126 {
		t.Fatalf("exit code = %d, want 126. stderr: %s", res.exitCode, res.stderr)
	}
	if !strings.Contains(res.stderr, "exec format error") {
		t.Fatalf("stderr should carry the exec error: %s", res.stderr)
	}
}

func TestE2E_MeasuresWallTime(t *testing.T) {
	res := executePtime(t, "-o", "json", "-t", "nano", "sleep", "0.3")
	if res.exitCode != 0 {
		t.Fatalf("exit code = %d, stderr: %s", res.exitCode, res.stderr)
	}
	elapsed, _ := reportOf(t, res.stderr)["time_real"].(float64)
	if time.Duration(elapsed) < 300*time.Millisecond {
		t.Fatalf("time_real = %v, want at least 300ms", time.Duration(elapsed))
	}
}
