package cmd

import (
	"strings"
	"testing"
)

func TestRootRequiresBundlePath(t *testing.T) {
	rootCmd.SetArgs([]string{"-k", "vm-00"})
	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("expected an error without a bundle path")
	}
	if !strings.Contains(err.Error(), "support bundle path") {
		t.Errorf("error = %q, want a bundle path complaint", err)
	}
}

func TestRootRequiresKeyword(t *testing.T) {
	rootCmd.SetArgs([]string{"-p", t.TempDir(), "-k", ""})
	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("expected an error without a keyword")
	}
	if !strings.Contains(err.Error(), "keyword") {
		t.Errorf("error = %q, want a keyword complaint", err)
	}
}
