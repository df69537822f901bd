package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// execute runs the root command with args and returns what it wrote to its
// output. The cache lives in a temporary directory.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	captureStatus(t)
	return run(t, args...)
}

// run executes args against the current environment.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := New(io.Discard, LogInfo).RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootCommand(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	want := []string{"browse", "cache", "completion", "diff", "layout", "pack", "serve"}
	for _, name := range want {
		if !slices.Contains(names, name) {
			t.Errorf("RootCommand() missing subcommand %q (have %v)", name, names)
		}
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("--version error = %v", err)
	}
	if !strings.HasPrefix(out, "tempo version ") {
		t.Errorf("--version output = %q", out)
	}
}

func TestDiffCommand(t *testing.T) {
	old := writeFile(t, "old.json", `{"sections":[{"id":"a","title":"A"},{"id":"b","title":"B"}]}`)
	next := writeFile(t, "new.json", `{"sections":[{"id":"b","title":"B"},{"id":"c","title":"C"}]}`)

	out, err := execute(t, "diff", old, next)
	if err != nil {
		t.Fatalf("diff error = %v", err)
	}
	if want := "insert(1)\ndelete(0)\n"; out != want {
		t.Errorf("diff output = %q, want %q", out, want)
	}

	out, err = execute(t, "diff", "--format", "dot", old, next)
	if err != nil {
		t.Fatalf("diff --format dot error = %v", err)
	}
	if !strings.HasPrefix(out, "digraph G {") {
		t.Errorf("diff --format dot output = %q", out)
	}
}

func TestDiffCommandOutputFile(t *testing.T) {
	old := writeFile(t, "old.json", `{"sections":[{"id":"a"}]}`)
	next := writeFile(t, "new.json", `{"sections":[]}`)
	output := filepath.Join(t.TempDir(), "script.json")

	if _, err := execute(t, "diff", "-f", "json", "-o", output, old, next); err != nil {
		t.Fatalf("diff -o error = %v", err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), `"op": "delete"`) {
		t.Errorf("diff -o wrote %s", data)
	}
}

func TestDiffCommandErrors(t *testing.T) {
	good := writeFile(t, "good.json", `{"sections":[]}`)
	bad := writeFile(t, "bad.json", `{"sections":[{"id":""}]}`)

	tests := []struct {
		name string
		args []string
	}{
		{"missing file", []string{"diff", good, filepath.Join(t.TempDir(), "missing.json")}},
		{"invalid snapshot", []string{"diff", good, bad}},
		{"invalid format", []string{"diff", "-f", "gif", good, good}},
		{"one argument", []string{"diff", good}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Error("diff error = nil, want error")
			}
		})
	}
}

func TestPackCommand(t *testing.T) {
	out, err := execute(t, "pack", "--no-cache", "--columns", "12", "--width", "124", "6x5", "small", "wide")
	if err != nil {
		t.Fatalf("pack error = %v", err)
	}

	var grid []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "  ") && strings.Trim(line, " ABC.") == "" && strings.TrimSpace(line) != "" {
			grid = append(grid, strings.TrimSpace(line))
		}
	}
	want := []string{
		"AAAAAABBBBBB", "AAAAAABBBBBB", "AAAAAABBBBBB", "AAAAAABBBBBB", "AAAAAABBBBBB",
		"CCCCCCCCCCCC", "CCCCCCCCCCCC", "CCCCCCCCCCCC", "CCCCCCCCCCCC", "CCCCCCCCCCCC",
	}
	if diff := cmp.Diff(want, grid); diff != "" {
		t.Errorf("pack map mismatch (-want +got):\n%s", diff)
	}
}

func TestPackCommandJSON(t *testing.T) {
	out, err := execute(t, "pack", "--json", "--columns", "4", "--width", "40", "2x2", "2x2")
	if err != nil {
		t.Fatalf("pack --json error = %v", err)
	}
	if !strings.Contains(out, `"columns": 4`) || !strings.Contains(out, `"rows": 2`) {
		t.Errorf("pack --json output = %s", out)
	}
}

func TestPackCommandInvalid(t *testing.T) {
	if _, err := execute(t, "pack", "--columns", "4", "6x5"); err == nil {
		t.Error("pack with a tile wider than the grid should fail")
	}
	if _, err := execute(t, "pack"); err == nil {
		t.Error("pack without tiles should fail")
	}
	if _, err := execute(t, "pack", "--no-cache", "6x5junk"); err == nil {
		t.Error("pack with trailing input after WxH should fail")
	}
}

func TestLayoutCommand(t *testing.T) {
	snap := writeFile(t, "snap.json", `{"sections":[
		{"id":"intro","header":{"id":"intro-header"}},
		{"id":"list","items":[{"id":"x","hints":{"height":50}},{"id":"y"}]}
	]}`)

	out, err := execute(t, "layout", "--json", "--width", "320", snap)
	if err != nil {
		t.Fatalf("layout error = %v", err)
	}
	for _, want := range []string{`"content_size"`, `"kind": "header"`, `"height": 50`} {
		if !strings.Contains(out, want) {
			t.Errorf("layout --json output missing %s:\n%s", want, out)
		}
	}

	out, err = execute(t, "layout", "--no-cache", snap)
	if err != nil {
		t.Fatalf("layout error = %v", err)
	}
	if !strings.Contains(out, "Kind") || !strings.Contains(out, "header") {
		t.Errorf("layout table = %s", out)
	}
}

func TestLayoutCommandConfig(t *testing.T) {
	snap := writeFile(t, "snap.json", `{"sections":[{"id":"a"}]}`)
	bad := writeFile(t, "layout.toml", "item_style = \"sparkly\"\n")

	if _, err := execute(t, "layout", "--config", bad, snap); err == nil {
		t.Error("layout with an invalid config should fail")
	}
}

func TestCachePathCommand(t *testing.T) {
	out, err := execute(t, "cache", "path")
	if err != nil {
		t.Fatalf("cache path error = %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), appName) {
		t.Errorf("cache path = %q", out)
	}
}

func TestCacheClearCommand(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	status := captureStatus(t)

	if _, err := run(t, "cache", "clear"); err != nil {
		t.Fatalf("cache clear on a missing cache error = %v", err)
	}
	if !strings.Contains(status.String(), "Cache is empty") {
		t.Errorf("status = %q, want empty cache", status.String())
	}

	if _, err := run(t, "pack", "wide", "small"); err != nil {
		t.Fatalf("pack error = %v", err)
	}
	status.Reset()
	if _, err := run(t, "cache", "clear"); err != nil {
		t.Fatalf("cache clear error = %v", err)
	}
	if !strings.Contains(status.String(), "Cleared 1 cached entries") {
		t.Errorf("status = %q, want one cleared entry", status.String())
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion error = %v", err)
	}
	if !strings.Contains(out, "tempo") {
		t.Error("bash completion should mention the command name")
	}
	if _, err := execute(t, "completion", "tcsh"); err == nil {
		t.Error("completion tcsh should fail")
	}
}

func TestCacheFlagsExclusive(t *testing.T) {
	if _, err := execute(t, "pack", "--no-cache", "--redis", "redis://localhost:6379", "wide"); err == nil {
		t.Error("--no-cache and --redis together should fail")
	}
}
