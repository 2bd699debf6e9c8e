package remindctl_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"later-reminder/pkg/remindctl"
)

type fakeRunner struct {
	responses map[string]string
	failWith  error
	calls     [][]string
}

func (f *fakeRunner) Run(ctx context.Context, args []string) ([]byte, error) {
	f.calls = append(f.calls, args)
	if f.failWith != nil {
		return nil, f.failWith
	}
	key := strings.Join(args, " ")
	if out, ok := f.responses[key]; ok {
		return []byte(out), nil
	}
	return []byte(""), nil
}

func TestStatus(t *testing.T) {
	runner := &fakeRunner{responses: map[string]string{
		"status --json": `{"authorized": true}`,
	}}
	client := remindctl.NewClientWithRunner(runner)

	status, err := client.Status(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !status.Authorized {
		t.Errorf("expected authorized status")
	}
}

func TestRemindersBareArray(t *testing.T) {
	runner := &fakeRunner{responses: map[string]string{
		"all --json": `[{"id":"r1","title":"買い物","dueDate":"2025-06-10 14:00"}]`,
	}}
	client := remindctl.NewClientWithRunner(runner)

	reminders, err := client.Reminders(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reminders) != 1 || reminders[0].Title != "買い物" {
		t.Fatalf("unexpected reminders: %+v", reminders)
	}
}

func TestRemindersEnvelope(t *testing.T) {
	runner := &fakeRunner{responses: map[string]string{
		"list Inbox --json": `{"items":[{"id":"r1","title":"A"},{"id":"r2","title":"B"}]}`,
	}}
	client := remindctl.NewClientWithRunner(runner)

	reminders, err := client.Reminders(context.Background(), "Inbox")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reminders) != 2 {
		t.Fatalf("expected 2 reminders, got %d", len(reminders))
	}
	if got := runner.calls[0]; strings.Join(got, " ") != "list Inbox --json" {
		t.Errorf("unexpected args: %v", got)
	}
}

func TestRemindersEmptyOutput(t *testing.T) {
	client := remindctl.NewClientWithRunner(&fakeRunner{})

	reminders, err := client.Reminders(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error for empty stdout: %v", err)
	}
	if len(reminders) != 0 {
		t.Errorf("expected no reminders, got %+v", reminders)
	}
}

func TestAddArgs(t *testing.T) {
	runner := &fakeRunner{}
	client := remindctl.NewClientWithRunner(runner)

	err := client.Add(context.Background(), remindctl.AddRequest{
		Title: "レポートを書く",
		Due:   "2025-06-10 14:41",
		List:  "仕事",
		Notes: "auto",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "add --title レポートを書く --due 2025-06-10 14:41 --list 仕事 --notes auto"
	if got := strings.Join(runner.calls[0], " "); got != want {
		t.Errorf("args = %q, want %q", got, want)
	}
}

func TestAddPropagatesFailure(t *testing.T) {
	runErr := &remindctl.RunError{Args: []string{"add"}, Stderr: "permission denied", Err: errors.New("exit status 1")}
	client := remindctl.NewClientWithRunner(&fakeRunner{failWith: runErr})

	err := client.Add(context.Background(), remindctl.AddRequest{Title: "x", Due: "2025-06-10 14:00"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "permission denied") {
		t.Errorf("diagnostic output not surfaced: %v", err)
	}
}

func TestIsTransient(t *testing.T) {
	transient := &remindctl.RunError{
		Args:   []string{"all", "--json"},
		Stderr: "connection failed: Mach error 4099",
		Err:    errors.New("exit status 1"),
	}
	if !remindctl.IsTransient(transient) {
		t.Errorf("Mach 4099 signature should be transient")
	}

	fatal := &remindctl.RunError{Args: []string{"all"}, Stderr: "not authorized", Err: errors.New("exit status 1")}
	if remindctl.IsTransient(fatal) {
		t.Errorf("generic failure must not be transient")
	}
	if remindctl.IsTransient(nil) {
		t.Errorf("nil error must not be transient")
	}
}
