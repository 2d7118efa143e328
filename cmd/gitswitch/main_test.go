package main_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all tests
	tmpDir, err := os.MkdirTemp("", "gitswitch-test")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create temp dir: %v\n", err)
		os.Exit(1)
	}

	binaryPath = filepath.Join(tmpDir, "gitswitch")

	buildCmd := exec.Command("go", "build", "-o", binaryPath, ".")
	if output, err := buildCmd.CombinedOutput(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to build binary: %v\n%s\n", err, output)
		_ = os.RemoveAll(tmpDir)
		os.Exit(1)
	}

	code := m.Run()
	_ = os.RemoveAll(tmpDir)
	os.Exit(code)
}

// homeEnv returns an environment rooted at home, without variables that would
// leak the developer's own configuration into the test.
func homeEnv(home string) []string {
	baseEnv := os.Environ()
	env := make([]string, 0, len(baseEnv)+3)
	for _, e := range baseEnv {
		switch {
		case strings.HasPrefix(e, "GITSWITCH_CONFIG="),
			strings.HasPrefix(e, "HOME="),
			strings.HasPrefix(e, "XDG_CONFIG_HOME="),
			strings.HasPrefix(e, "XDG_DATA_HOME="):
			continue
		}
		env = append(env, e)
	}
	return append(env,
		"HOME="+home,
		"XDG_CONFIG_HOME="+filepath.Join(home, ".config"),
		"XDG_DATA_HOME="+filepath.Join(home, ".local", "share"),
	)
}

func runCmd(home string, args ...string) (string, string, int) {
	cmd := exec.Command(binaryPath, args...)
	cmd.Env = homeEnv(home)
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	code := 0
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	} else if err != nil {
		code = -1
	}
	return stdout.String(), stderr.String(), code
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestSwitchIdentities(t *testing.T) {
	home := t.TempDir()
	workKey := filepath.Join(home, ".ssh", "id_work")
	personalKey := filepath.Join(home, ".ssh", "id_personal")
	writeFile(t, workKey, "work key\n")
	writeFile(t, personalKey, "personal key\n")

	writeFile(t, filepath.Join(home, ".gitconfig"), "[core]\n\teditor = vim\n[user]\n\tname = old\n\temail = old@example.com\n")
	writeFile(t, filepath.Join(home, ".ssh", "config"), "Host github.com\n\tUser git\n")

	if _, stderr, code := runCmd(home, "add", "work", "work@example.com", workKey); code != 0 {
		t.Fatalf("add work failed (%d): %s", code, stderr)
	}
	if _, stderr, code := runCmd(home, "add", "personal", "me@example.com", personalKey); code != 0 {
		t.Fatalf("add personal failed (%d): %s", code, stderr)
	}

	stdout, stderr, code := runCmd(home, "use", "work")
	if code != 0 {
		t.Fatalf("use failed (%d): %s", code, stderr)
	}
	if !strings.Contains(stdout, "switched to work <work@example.com>") {
		t.Errorf("unexpected output: %q", stdout)
	}

	gitconfig, _ := os.ReadFile(filepath.Join(home, ".gitconfig"))
	wantGit := "[core]\n\teditor = vim\n[user]\n\tname = work\n\temail = work@example.com\n"
	if string(gitconfig) != wantGit {
		t.Errorf("gitconfig = %q, want %q", gitconfig, wantGit)
	}

	sshConfig, _ := os.ReadFile(filepath.Join(home, ".ssh", "config"))
	wantSSH := "Host github.com\n\tUser git\n\nHost *\n\tIdentityFile \"" + workKey + "\"\n"
	if string(sshConfig) != wantSSH {
		t.Errorf("ssh config = %q, want %q", sshConfig, wantSSH)
	}

	if _, stderr, code := runCmd(home, "use", "personal"); code != 0 {
		t.Fatalf("use personal failed (%d): %s", code, stderr)
	}
	sshConfig, _ = os.ReadFile(filepath.Join(home, ".ssh", "config"))
	if strings.Count(string(sshConfig), "IdentityFile") != 1 || !strings.Contains(string(sshConfig), personalKey) {
		t.Errorf("ssh config not switched: %q", sshConfig)
	}

	stdout, _, code = runCmd(home, "list", "--json")
	if code != 0 {
		t.Fatalf("list failed with exit code %d", code)
	}
	var listed struct {
		Data []struct {
			Username string `json:"username"`
			Current  bool   `json:"current"`
		} `json:"data"`
	}
	if err := json.Unmarshal([]byte(stdout), &listed); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout)
	}
	if len(listed.Data) != 2 || listed.Data[0].Username != "work" || !listed.Data[1].Current {
		t.Errorf("unexpected list: %+v", listed.Data)
	}
}

func TestExitCodes(t *testing.T) {
	home := t.TempDir()
	key := filepath.Join(home, "key")
	writeFile(t, key, "key\n")

	if _, stderr, code := runCmd(home, "use", "nobody"); code != 3 || !strings.Contains(stderr, "unknown identity: nobody") {
		t.Errorf("use unknown: code=%d stderr=%q", code, stderr)
	}

	if _, stderr, code := runCmd(home, "add", "alice", "alice@example.com", key); code != 0 {
		t.Fatalf("add failed (%d): %s", code, stderr)
	}
	writeFile(t, key, "replaced\n")

	_, stderr, code := runCmd(home, "use", "alice")
	if code != 5 || !strings.Contains(stderr, "ssh key has changed: alice") {
		t.Errorf("use changed key: code=%d stderr=%q", code, stderr)
	}
	if _, err := os.Stat(filepath.Join(home, ".gitconfig")); !os.IsNotExist(err) {
		t.Error("git config must not be created when the key changed")
	}

	if _, _, code := runCmd(home, "validate"); code != 5 {
		t.Errorf("validate: code=%d, want 5", code)
	}

	if _, _, code := runCmd(home, "current"); code != 3 {
		t.Errorf("current without identity: code=%d, want 3", code)
	}

	if _, _, code := runCmd(home, "add", "alice"); code != 1 {
		t.Errorf("add with missing args: code=%d, want 1", code)
	}
}

func TestGlobalOptions_ConfigPath(t *testing.T) {
	home := t.TempDir()
	key := filepath.Join(home, "key")
	writeFile(t, key, "key\n")

	gitPath := filepath.Join(home, "custom", "gitconfig")
	configPath := filepath.Join(home, "gitswitch.yaml")
	writeFile(t, configPath, "git_config: "+gitPath+"\n")

	if _, stderr, code := runCmd(home, "-c", configPath, "add", "alice", "alice@example.com", key); code != 0 {
		t.Fatalf("add failed (%d): %s", code, stderr)
	}
	if _, stderr, code := runCmd(home, "-c", configPath, "use", "alice"); code != 0 {
		t.Fatalf("use failed (%d): %s", code, stderr)
	}

	if _, err := os.Stat(gitPath); err != nil {
		t.Errorf("expected git config at %s: %v", gitPath, err)
	}
	if _, err := os.Stat(filepath.Join(home, ".gitconfig")); !os.IsNotExist(err) {
		t.Error("default git config must not be written when overridden")
	}

	stdout, _, code := runCmd(home, "-c", configPath, "status")
	if code != 0 {
		t.Fatalf("status failed with exit code %d", code)
	}
	if !strings.Contains(stdout, "git user.name: alice") || !strings.Contains(stdout, "git config: "+gitPath) {
		t.Errorf("unexpected status: %q", stdout)
	}
}

func TestVersion(t *testing.T) {
	stdout, _, code := runCmd(t.TempDir(), "version", "--json")
	if code != 0 {
		t.Fatalf("version failed with exit code %d", code)
	}
	var info map[string]string
	if err := json.Unmarshal([]byte(stdout), &info); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if info["version"] == "" || info["goBuildVersion"] == "" {
		t.Errorf("unexpected version info: %v", info)
	}
}
