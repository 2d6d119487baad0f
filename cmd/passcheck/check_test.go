package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/passcheck/internal/analyzer"
	"github.com/nao1215/passcheck/internal/config"
	"github.com/nao1215/passcheck/internal/model"
)

func TestNewCheckCmd(t *testing.T) {
	t.Parallel()

	cmd := NewCheckCmd()
	for _, name := range []string{"json", "markdown", "output", "wordlist", "config", "db-dir", "no-db"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("expected %s flag", name)
		}
	}
}

func TestRunCheckCmd(t *testing.T) {
	t.Parallel()

	t.Run("argument with text output", func(t *testing.T) {
		t.Parallel()

		args := append([]string{"check", "password"}, isolated(t)...)
		stdout, _, err := execute(t, "", args...)
		if err != nil {
			t.Fatalf("execute() error = %v", err)
		}
		for _, want := range []string{"PASSWORD STRENGTH REPORT", "Score: 15/100", analyzer.WarnCommonPassword} {
			if !strings.Contains(stdout, want) {
				t.Errorf("output missing %q\n%s", want, stdout)
			}
		}
	})

	t.Run("stdin with json output", func(t *testing.T) {
		t.Parallel()

		args := append([]string{"check", "--json"}, isolated(t)...)
		stdout, _, err := execute(t, "Tr0ub4dor&3\n", args...)
		if err != nil {
			t.Fatalf("execute() error = %v", err)
		}

		var result model.AnalysisResult
		if err := json.Unmarshal([]byte(stdout), &result); err != nil {
			t.Fatalf("failed to decode output: %v\n%s", err, stdout)
		}
		if result.Score != 80 || result.Strength != model.StrengthStrong {
			t.Errorf("result = %+v, want score 80 Strong", result)
		}
		if strings.Contains(stdout, "Tr0ub4dor&3") {
			t.Error("output contains the password")
		}
	})

	t.Run("markdown report file", func(t *testing.T) {
		t.Parallel()

		reportPath := filepath.Join(t.TempDir(), "reports", "check.md")
		args := append([]string{"check", "--markdown", "-o", reportPath, "Zebra#Lamp7Quartz"}, isolated(t)...)
		_, stderr, err := execute(t, "", args...)
		if err != nil {
			t.Fatalf("execute() error = %v", err)
		}
		if !strings.Contains(stderr, "Report written to") {
			t.Errorf("expected confirmation on stderr, got %q", stderr)
		}

		data, err := os.ReadFile(reportPath)
		if err != nil {
			t.Fatalf("failed to read report: %v", err)
		}
		if !strings.Contains(string(data), "# Password Strength Report") {
			t.Errorf("unexpected report content\n%s", data)
		}
		if strings.Contains(string(data), "Zebra#Lamp7Quartz") {
			t.Error("report contains the password")
		}
	})

	t.Run("custom wordlist", func(t *testing.T) {
		t.Parallel()

		listPath := filepath.Join(t.TempDir(), "list.txt")
		if err := os.WriteFile(listPath, []byte("Zebra#Lamp7Quartz\n"), 0600); err != nil {
			t.Fatalf("failed to write word list: %v", err)
		}

		args := append([]string{"check", "--wordlist", listPath, "Zebra#Lamp7Quartz"}, isolated(t)...)
		stdout, _, err := execute(t, "", args...)
		if err != nil {
			t.Fatalf("execute() error = %v", err)
		}
		if !strings.Contains(stdout, analyzer.WarnCommonPassword) {
			t.Errorf("expected common password warning\n%s", stdout)
		}
	})

	t.Run("conflicting formats", func(t *testing.T) {
		t.Parallel()

		args := append([]string{"check", "--json", "--markdown", "x"}, isolated(t)...)
		_, _, err := execute(t, "", args...)
		if !errors.Is(err, config.ErrConflictingReportFormats) {
			t.Errorf("error = %v, want ErrConflictingReportFormats", err)
		}
	})

	t.Run("missing explicit config file", func(t *testing.T) {
		t.Parallel()

		missing := filepath.Join(t.TempDir(), "missing.yaml")
		_, _, err := execute(t, "", "check", "--no-db", "--config", missing, "x")
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("config file selects format", func(t *testing.T) {
		t.Parallel()

		cfgPath := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(cfgPath, []byte("format: json\n"), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		stdout, _, err := execute(t, "", "check", "--no-db", "--config", cfgPath, "password")
		if err != nil {
			t.Fatalf("execute() error = %v", err)
		}
		if !strings.HasPrefix(strings.TrimSpace(stdout), "{") {
			t.Errorf("expected JSON output\n%s", stdout)
		}
	})

	t.Run("verbose logging never shows the password", func(t *testing.T) {
		t.Parallel()

		missing := filepath.Join(t.TempDir(), "missing.txt")
		args := append([]string{"-v", "check", "--wordlist", missing, "Zebra#Lamp7Quartz"}, isolated(t)...)
		_, stderr, err := execute(t, "", args...)
		if err != nil {
			t.Fatalf("execute() error = %v", err)
		}
		if !strings.Contains(stderr, "using built-in list") {
			t.Errorf("expected fallback warning on stderr\n%s", stderr)
		}
		if strings.Contains(stderr, "Zebra#Lamp7Quartz") {
			t.Error("log output contains the password")
		}
	})
}

func TestJSONLogs(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.txt")
	args := append([]string{"--log-json", "check", "--wordlist", missing, "x"}, isolated(t)...)
	_, stderr, err := execute(t, "", args...)
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}

	line := strings.TrimSpace(strings.Split(stderr, "\n")[0])
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, stderr)
	}
	if entry["level"] != "WARN" {
		t.Errorf("level = %v, want WARN", entry["level"])
	}
}
