// Copyright 2026 The argh Authors.

package argh

import (
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	var (
		n int
		s string
	)
	a := New()
	AddOption(a, &n, 7, "--n", "num")
	AddRequiredOption(a, &s, "hi", "--str", "words")
	a.AddFlag(nil, "--f", "flag")

	want := strings.Join([]string{
		"--n   7    num   NOT REQUIRED",
		`--str "hi" words REQUIRED`,
		"--f        flag  NOT REQUIRED",
	}, "\n") + "\n"

	if got := a.Usage(); got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestUsageEmpty(t *testing.T) {
	if got := New().Usage(); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestUsageDefaultRendering(t *testing.T) {
	var (
		b     bool
		f     float64
		words []string
	)
	a := New()
	AddOption(a, &b, false, "--b", "")
	AddOption(a, &f, 3.14, "--f", "")
	AddMultiOption(a, &words, "one,two", "--w", "")

	got := a.Usage()
	for _, want := range []string{"false", "3.14", `"one,two"`} {
		if !strings.Contains(got, want) {
			t.Errorf("usage %q does not contain %q", got, want)
		}
	}
}
