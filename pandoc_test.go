package md2docx

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

// fakeRunner records invocations and returns scripted results.
type fakeRunner struct {
	name   string
	args   []string
	stderr string
	err    error
}

func (r *fakeRunner) Run(_ context.Context, name string, args ...string) (string, string, error) {
	r.name = name
	r.args = args
	return "", r.stderr, r.err
}

func TestPandocConverterArgs(t *testing.T) {
	runner := &fakeRunner{}
	conv := &pandocConverter{runner: runner}

	err := conv.Convert(context.Background(), "# Title", DefaultFormatFlags(), "/tmp/out.docx")
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	if runner.name != "pandoc" {
		t.Errorf("command = %q, want pandoc", runner.name)
	}

	joined := strings.Join(runner.args, " ")
	for _, want := range []string{
		"-f markdown+tex_math_dollars+tex_math_single_backslash",
		"-t docx",
		"--standalone",
		"-o /tmp/out.docx",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("args %q missing %q", joined, want)
		}
	}
}

func TestPandocConverterStderrSurfaced(t *testing.T) {
	runner := &fakeRunner{stderr: "YAML parse exception at line 3", err: errors.New("exit status 64")}
	conv := &pandocConverter{runner: runner}

	err := conv.Convert(context.Background(), "x", FormatFlags{}, "/tmp/out.docx")
	if !errors.Is(err, ErrConversionFailed) {
		t.Fatalf("error = %v, want ErrConversionFailed", err)
	}
	if !strings.Contains(err.Error(), "YAML parse exception at line 3") {
		t.Errorf("error %q does not surface pandoc stderr", err)
	}
}

func TestPandocConverterNotFound(t *testing.T) {
	runner := &fakeRunner{err: &exec.Error{Name: "pandoc", Err: exec.ErrNotFound}}
	conv := &pandocConverter{runner: runner}

	err := conv.Convert(context.Background(), "x", FormatFlags{}, "/tmp/out.docx")
	if !errors.Is(err, ErrPandocNotFound) {
		t.Fatalf("error = %v, want ErrPandocNotFound", err)
	}
	if !strings.Contains(err.Error(), "hint:") {
		t.Errorf("error %q missing install hint", err)
	}
}

func TestReaderFormat(t *testing.T) {
	tests := []struct {
		name     string
		flags    FormatFlags
		expected string
	}{
		{
			name:     "both enabled",
			flags:    FormatFlags{DollarMath: true, BackslashMath: true},
			expected: "markdown+tex_math_dollars+tex_math_single_backslash",
		},
		{
			name:     "both disabled",
			flags:    FormatFlags{},
			expected: "markdown-tex_math_dollars-tex_math_single_backslash",
		},
		{
			name:     "dollar only",
			flags:    FormatFlags{DollarMath: true},
			expected: "markdown+tex_math_dollars-tex_math_single_backslash",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := readerFormat(tt.flags); got != tt.expected {
				t.Errorf("readerFormat() = %q, want %q", got, tt.expected)
			}
		})
	}
}
