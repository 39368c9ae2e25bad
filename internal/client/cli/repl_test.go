package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Create(ctx context.Context) error {
	f.calls = append(f.calls, "create")
	return nil
}
func (f *fakeExec) List(ctx context.Context) error { f.calls = append(f.calls, "list"); return nil }
func (f *fakeExec) Show(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "show")
	f.args = args
	return nil
}
func (f *fakeExec) Match(ctx context.Context) error {
	f.calls = append(f.calls, "match")
	return nil
}
func (f *fakeExec) Playoff(ctx context.Context) error {
	f.calls = append(f.calls, "playoff")
	return nil
}
func (f *fakeExec) Refresh(ctx context.Context) error {
	f.calls = append(f.calls, "refresh")
	return nil
}
func (f *fakeExec) Theme(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "theme")
	f.args = args
	return nil
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"create",
		"l",
		"show 2",
		"match",
		"playoff",
		"refresh",
		"foobar",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "create", "list", "show", "match", "playoff", "refresh", "logout"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_ShowPassesArgs(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(strings.NewReader("show abc123\nexit\n"))

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.args) != 1 || exec.args[0] != "abc123" {
		t.Fatalf("show args = %v, want [abc123]", exec.args)
	}
}

func TestRunREPL_EOFReturns(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	sc := bufio.NewScanner(strings.NewReader(""))

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_BlankLinesIgnored(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(strings.NewReader("\n   \nrefresh\nexit\n"))

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 1 || exec.calls[0] != "refresh" {
		t.Fatalf("calls = %v, want [refresh]", exec.calls)
	}
}
