package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-chi-calculator/internal/config"
	"go-chi-calculator/internal/history"
)

func testConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.History.Backend = backend
	cfg.History.Path = filepath.Join(t.TempDir(), "history")
	return cfg
}

func TestNewAppLoadsAndSavesHistory(t *testing.T) {
	for _, backend := range []string{history.BackendFile, history.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			ctx := context.Background()
			cfg := testConfig(t, backend)
			cfg.History.SaveOnExit = true

			a, err := newApp(ctx, cfg)
			if err != nil {
				t.Fatalf("newApp: %v", err)
			}
			if _, err := a.svc.Evaluate(ctx, "add", []float64{2, 3}); err != nil {
				t.Fatalf("evaluate: %v", err)
			}
			if err := a.close(ctx); err != nil {
				t.Fatalf("close: %v", err)
			}

			cfg.History.LoadOnStart = true
			b, err := newApp(ctx, cfg)
			if err != nil {
				t.Fatalf("newApp: %v", err)
			}
			defer b.close(ctx)

			entries := b.store.Entries()
			if len(entries) != 1 || !strings.HasSuffix(entries[0], "Addition: 2 + 3 = 5") {
				t.Fatalf("unexpected entries after reload: %v", entries)
			}
		})
	}
}

func TestNewAppRejectsUnknownBackend(t *testing.T) {
	if _, err := newApp(context.Background(), testConfig(t, "redis")); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() { rootCmd.SetOut(nil); rootCmd.SetArgs(nil) })

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := out.String(); got != "calc version "+version+"\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestConsoleCommandUsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	historyPath := filepath.Join(dir, "saved.txt")
	cfgPath := filepath.Join(dir, "calc.toml")
	content := "[history]\npath = \"" + filepath.ToSlash(historyPath) + "\"\nsave_on_exit = true\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader("1\n3\n4\n5\n14\n4\n"))
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"console", "--config", cfgPath, "--log-level", "error"})
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		cfgFile, logLevel = "", ""
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "Result: 20") {
		t.Fatalf("expected multiplication result in output:\n%s", out.String())
	}

	saved, err := os.ReadFile(historyPath)
	if err != nil {
		t.Fatalf("expected history saved on exit: %v", err)
	}
	if !strings.Contains(string(saved), "Multiplication: 4 * 5 = 20") {
		t.Fatalf("unexpected saved history %q", saved)
	}
}
