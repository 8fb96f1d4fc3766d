// Package fakeexec turns a test binary into a stand-in for the graphics test
// executable. A package's TestMain calls RunIfRequested first; tests then call
// Setup and pass the returned path wherever an executable is expected.
package fakeexec

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	envEnabled  = "FAKE_TESTKIT"
	envTests    = "FAKE_TESTKIT_TESTS"
	envSkipped  = "FAKE_TESTKIT_SKIPPED"
	envFailList = "FAKE_TESTKIT_FAIL_LIST"
	envFailRun  = "FAKE_TESTKIT_FAIL_RUN"
	envNoImage  = "FAKE_TESTKIT_NO_IMAGE"
	envLog      = "FAKE_TESTKIT_LOG"
)

// Options configures the fake executable
type Options struct {
	Tests    []string // Qualified names reported in list mode
	Skipped  []string // Subset of Tests reported as skipped
	FailList bool     // Exit non-zero in list mode
	FailRun  string   // Exit non-zero when running this test
	NoImage  string   // Exit zero without writing an image for this test
}

// Setup configures the fake through the environment and returns the path to invoke.
// The returned log path records one line per invocation: the working directory and arguments.
func Setup(t testing.TB, opts Options) (executable, log string) {
	t.Helper()

	executable, err := os.Executable()
	if err != nil {
		t.Fatalf("failed to locate test binary: %v", err)
	}
	log = filepath.Join(t.TempDir(), "invocations.log")

	t.Setenv(envEnabled, "1")
	t.Setenv(envTests, strings.Join(opts.Tests, ","))
	t.Setenv(envSkipped, strings.Join(opts.Skipped, ","))
	t.Setenv(envFailRun, opts.FailRun)
	t.Setenv(envNoImage, opts.NoImage)
	t.Setenv(envLog, log)
	if opts.FailList {
		t.Setenv(envFailList, "1")
	} else {
		t.Setenv(envFailList, "")
	}
	return executable, log
}

// Invocations reads the log written by the fake
func Invocations(t testing.TB, log string) []string {
	t.Helper()
	data, err := os.ReadFile(log)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("failed to read invocation log: %v", err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

// RunIfRequested behaves as the fake executable and exits when the environment asks for it
func RunIfRequested() {
	if os.Getenv(envEnabled) != "1" {
		return
	}
	os.Exit(run(os.Args[1:]))
}

type listing struct {
	XMLName   xml.Name      `xml:"doctest"`
	TestCases []listingCase `xml:"TestCase"`
}

type listingCase struct {
	Name     string `xml:"name,attr"`
	Filename string `xml:"filename,attr"`
	Line     int    `xml:"line,attr"`
	Skipped  string `xml:"skipped,attr"`
}

func run(args []string) int {
	logInvocation(args)

	var list bool
	var out, test string
	for _, arg := range args {
		switch {
		case arg == "-ltc":
			list = true
		case strings.HasPrefix(arg, "-out="):
			out = strings.TrimPrefix(arg, "-out=")
		case strings.HasPrefix(arg, "-tc="):
			test = strings.TrimPrefix(arg, "-tc=")
		}
	}

	switch {
	case list:
		if os.Getenv(envFailList) == "1" {
			fmt.Fprintln(os.Stderr, "list failed")
			return 3
		}
		return writeListing(out)
	case test != "":
		return runTest(test)
	default:
		fmt.Fprintln(os.Stderr, "no mode selected")
		return 2
	}
}

func writeListing(out string) int {
	skipped := make(map[string]bool)
	for _, name := range splitList(os.Getenv(envSkipped)) {
		skipped[name] = true
	}

	doc := listing{}
	for i, name := range splitList(os.Getenv(envTests)) {
		doc.TestCases = append(doc.TestCases, listingCase{
			Name:     name,
			Filename: "TestKit/main.cpp",
			Line:     i + 1,
			Skipped:  fmt.Sprintf("%t", skipped[name]),
		})
	}

	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := os.WriteFile(out, append([]byte(xml.Header), data...), 0644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runTest(name string) int {
	fmt.Printf("[ RUN      ] %s\n", name)
	if name == os.Getenv(envFailRun) {
		fmt.Fprintln(os.Stderr, "render failed")
		return 1
	}
	if name == os.Getenv(envNoImage) {
		return 0
	}

	parts := strings.Split(name, "::")
	if len(parts) < 2 {
		return 2
	}
	if err := os.WriteFile(parts[1]+".png", []byte("\x89PNG\r\n\x1a\n"), 0644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func logInvocation(args []string) {
	path := os.Getenv(envLog)
	if path == "" {
		return
	}
	wd, _ := os.Getwd()
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintf(f, "%s %s\n", wd, strings.Join(args, " "))
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
