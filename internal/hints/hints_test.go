package hints

import (
	"strings"
	"testing"
)

func TestForPandocNotFound(t *testing.T) {
	got := ForPandocNotFound()
	if !strings.HasPrefix(got, "\n  hint: ") {
		t.Errorf("hint %q missing standard prefix", got)
	}
	if !strings.Contains(got, "pandoc.org") {
		t.Errorf("hint %q missing install URL", got)
	}
}

func TestForBrowserConnect(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()

	t.Run("container without sandbox override", func(t *testing.T) {
		IsInContainer = func() bool { return true }
		t.Setenv("ROD_NO_SANDBOX", "")
		t.Setenv("ROD_BROWSER_BIN", "")

		got := ForBrowserConnect()
		if !strings.Contains(got, "ROD_NO_SANDBOX=1") {
			t.Errorf("hint %q missing sandbox suggestion", got)
		}
		if !strings.Contains(got, "ROD_BROWSER_BIN") {
			t.Errorf("hint %q missing browser bin suggestion", got)
		}
	})

	t.Run("everything configured", func(t *testing.T) {
		IsInContainer = func() bool { return false }
		t.Setenv("CI", "")
		t.Setenv("GITHUB_ACTIONS", "")
		t.Setenv("GITLAB_CI", "")
		t.Setenv("ROD_BROWSER_BIN", "/usr/bin/chromium")

		if got := ForBrowserConnect(); got != "" {
			t.Errorf("hint = %q, want empty when nothing to suggest", got)
		}
	})
}

func TestForConfigNotFound(t *testing.T) {
	paths := []string{".md2docx.yaml", "/home/u/.config/go-md2docx/config.yaml"}
	got := ForConfigNotFound(paths)

	if !strings.Contains(got, "--config") {
		t.Errorf("hint %q missing --config suggestion", got)
	}
	if !strings.Contains(got, "/home/u/.config/go-md2docx/config.yaml") {
		t.Errorf("hint %q missing user config path", got)
	}
}

func TestForTimeout(t *testing.T) {
	if !strings.Contains(ForTimeout(), "--timeout") {
		t.Error("timeout hint missing flag name")
	}
}
