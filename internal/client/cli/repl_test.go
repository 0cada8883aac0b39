package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls []string
	fail  map[string]error
}

func (f *fakeExec) status() string { return "" }
func (f *fakeExec) help() string   { return "Available commands: login" }
func (f *fakeExec) exec(_ context.Context, name string, args []string) error {
	if name == "nope" {
		return errUnknownCommand
	}
	f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	return f.fail[name]
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSpace(fmt.Sprintln(a...)))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesAndSurvivesErrors(t *testing.T) {
	out := captureOutput(t)

	input := strings.Join([]string{
		"help",
		"login alice@farm.io",
		"",
		"crops",
		"nope",
		"approve B1",
		"exit",
		"logout",
	}, "\n")

	exec := &fakeExec{fail: map[string]error{"crops": errors.New("boom")}}
	runREPL(context.Background(), exec, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{"login alice@farm.io", "crops", "approve B1"}, exec.calls)
	assert.Contains(t, *out, "Available commands: login")
	assert.Contains(t, *out, "Error: boom")
	assert.Contains(t, *out, "Unknown command: nope")
	assert.Contains(t, *out, "Bye!")
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	captureOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, bufio.NewReader(strings.NewReader("whoami\nlogout")))

	assert.Equal(t, []string{"whoami", "logout"}, exec.calls)
}
