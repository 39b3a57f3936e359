package main

import (
	"testing"
	"time"
)

func TestParseFlags(t *testing.T) {
	flags, positional, err := parseFlags([]string{
		"md2docx", "notes.md",
		"-o", "out.docx",
		"-f", "pdf",
		"--timeout", "90s",
		"--no-style",
		"-q",
	})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}

	if len(positional) != 1 || positional[0] != "notes.md" {
		t.Errorf("positional = %v, want [notes.md]", positional)
	}
	if flags.out != "out.docx" {
		t.Errorf("out = %q", flags.out)
	}
	if flags.format != "pdf" {
		t.Errorf("format = %q", flags.format)
	}
	if flags.timeout != 90*time.Second {
		t.Errorf("timeout = %v", flags.timeout)
	}
	if !flags.noStyle {
		t.Error("noStyle not set")
	}
	if !flags.quiet {
		t.Error("quiet not set")
	}
	if flags.verbose {
		t.Error("verbose set unexpectedly")
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	flags, positional, err := parseFlags([]string{"md2docx", "in.md"})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}

	if len(positional) != 1 {
		t.Fatalf("positional = %v", positional)
	}
	if flags.format != "docx" {
		t.Errorf("format = %q, want docx", flags.format)
	}
	if !flags.dollarMath || !flags.backslashMath {
		t.Error("math flags not on by default")
	}
	if flags.timeout != 0 {
		t.Errorf("timeout = %v, want 0", flags.timeout)
	}
}

func TestParseFlagsChanged(t *testing.T) {
	flags, _, err := parseFlags([]string{"md2docx", "in.md", "--dollar-math=false"})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}

	if !flags.changed("dollar-math") {
		t.Error("changed(dollar-math) = false for explicitly passed flag")
	}
	if flags.changed("backslash-math") {
		t.Error("changed(backslash-math) = true for untouched flag")
	}
	if flags.dollarMath {
		t.Error("dollarMath = true after --dollar-math=false")
	}
}

func TestParseFlagsUnknownFlag(t *testing.T) {
	if _, _, err := parseFlags([]string{"md2docx", "--bogus"}); err == nil {
		t.Error("parseFlags() accepted an unknown flag")
	}
}
