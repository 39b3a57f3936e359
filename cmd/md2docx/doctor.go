package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/go-rod/rod/lib/launcher"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Pandoc   pandocInfo `json:"pandoc"`
	Chrome   chromeInfo `json:"chrome"`
	Env      envInfo    `json:"environment"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// pandocInfo holds pandoc detection results.
type pandocInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
}

// chromeInfo holds Chrome/Chromium detection results (PDF output only).
type chromeInfo struct {
	Found bool   `json:"found"`
	Path  string `json:"path,omitempty"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS         string `json:"os"`
	Arch       string `json:"arch"`
	NoSandbox  string `json:"rod_no_sandbox"`
	BrowserBin string `json:"rod_browser_bin"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	result := runDoctor()

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitFailure
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor() *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			NoSandbox:  os.Getenv("ROD_NO_SANDBOX"),
			BrowserBin: os.Getenv("ROD_BROWSER_BIN"),
		},
	}

	checkPandoc(result)
	checkChrome(result)
	checkSystem(result)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}
	return result
}

// checkPandoc detects the pandoc executable and its version. pandoc is
// required for the default docx format, so absence is an error.
func checkPandoc(result *doctorResult) {
	path, err := exec.LookPath("pandoc")
	if err != nil {
		result.Errors = append(result.Errors,
			"pandoc not found on PATH; install it from https://pandoc.org/installing.html")
		return
	}

	result.Pandoc.Found = true
	result.Pandoc.Path = path

	out, err := exec.Command(path, "--version").Output() // #nosec G204 -- path from LookPath
	if err == nil {
		if line, _, ok := strings.Cut(string(out), "\n"); ok {
			result.Pandoc.Version = strings.TrimSpace(line)
		}
	}
}

// checkChrome detects a usable browser for PDF output. Absence is only a
// warning: rod downloads a managed Chromium on first use.
func checkChrome(result *doctorResult) {
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		if _, err := os.Stat(bin); err == nil {
			result.Chrome.Found = true
			result.Chrome.Path = bin
			return
		}
		result.Warnings = append(result.Warnings,
			"ROD_BROWSER_BIN is set but the file does not exist")
	}

	if path, has := launcher.LookPath(); has {
		result.Chrome.Found = true
		result.Chrome.Path = path
		return
	}
	result.Warnings = append(result.Warnings,
		"no Chrome/Chromium found; PDF output will download a managed browser on first run")
}

// checkSystem verifies the temp directory is writable.
func checkSystem(result *doctorResult) {
	f, err := os.CreateTemp("", "md2docx-doctor-*")
	if err != nil {
		result.Errors = append(result.Errors, "temp directory is not writable: "+err.Error())
		return
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	result.System.TempWritable = true
}

// printDoctorResult writes a human-readable report.
func printDoctorResult(w io.Writer, result *doctorResult) {
	fmt.Fprintf(w, "md2docx doctor (%s/%s)\n\n", result.Env.OS, result.Env.Arch)

	if result.Pandoc.Found {
		fmt.Fprintf(w, "  pandoc: %s (%s)\n", result.Pandoc.Version, result.Pandoc.Path)
	} else {
		fmt.Fprintln(w, "  pandoc: NOT FOUND")
	}

	if result.Chrome.Found {
		fmt.Fprintf(w, "  chrome: %s\n", result.Chrome.Path)
	} else {
		fmt.Fprintln(w, "  chrome: not found (managed download on first PDF run)")
	}

	fmt.Fprintf(w, "  temp writable: %t\n", result.System.TempWritable)

	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "\nwarning: %s\n", warning)
	}
	for _, e := range result.Errors {
		fmt.Fprintf(w, "\nerror: %s\n", e)
	}

	fmt.Fprintf(w, "\nstatus: %s\n", result.Status)
}
