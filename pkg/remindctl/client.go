package remindctl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"later-reminder/pkg/retry"
)

const defaultCommandTimeout = 2 * time.Minute

// Runner executes a remindctl invocation and returns its stdout.
type Runner interface {
	Run(ctx context.Context, args []string) ([]byte, error)
}

// RunError wraps a failed invocation with its captured diagnostic
// output.
type RunError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *RunError) Error() string {
	msg := fmt.Sprintf("remindctl %s failed: %v", strings.Join(e.Args, " "), e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *RunError) Unwrap() error { return e.Err }

// IsTransient reports whether the error carries the known transient
// inter-process failure signature. Only such failures are retried.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "mach error 4099")
}

type execRunner struct {
	bin     string
	timeout time.Duration
}

func (r *execRunner) Run(ctx context.Context, args []string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &RunError{Args: args, Stderr: strings.TrimSpace(stderr.String()), Err: err}
	}
	return stdout.Bytes(), nil
}

// Client is the bridge to the remindctl CLI. All JSON-producing calls
// go through a bounded retry keyed on the transient error signature.
type Client struct {
	runner Runner
	policy retry.Policy
}

// NewClient creates a client that shells out to the given remindctl
// binary.
func NewClient(bin string) *Client {
	if bin == "" {
		bin = "remindctl"
	}
	return &Client{
		runner: &execRunner{bin: bin, timeout: defaultCommandTimeout},
		policy: retry.Default(IsTransient),
	}
}

// NewClientWithRunner creates a client over a custom runner. Used in
// tests.
func NewClientWithRunner(runner Runner) *Client {
	return &Client{
		runner: runner,
		policy: retry.Policy{MaxAttempts: 1},
	}
}

// Status reports the authorization state of the reminders backend.
func (c *Client) Status(ctx context.Context) (Status, error) {
	var status Status
	if err := c.runJSON(ctx, []string{"status", "--json"}, &status); err != nil {
		return Status{}, fmt.Errorf("failed to query remindctl status: %w", err)
	}
	return status, nil
}

// Lists returns all reminder lists.
func (c *Client) Lists(ctx context.Context) ([]List, error) {
	raw, err := c.run(ctx, []string{"list", "--json"})
	if err != nil {
		return nil, fmt.Errorf("failed to list reminder lists: %w", err)
	}
	var lists []List
	if err := decodeCollection(raw, &lists); err != nil {
		return nil, fmt.Errorf("failed to decode reminder lists: %w", err)
	}
	return lists, nil
}

// Reminders returns reminders in the named list, or every reminder
// when listName is empty.
func (c *Client) Reminders(ctx context.Context, listName string) ([]Reminder, error) {
	args := []string{"all", "--json"}
	if listName != "" {
		args = []string{"list", listName, "--json"}
	}

	raw, err := c.run(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	var reminders []Reminder
	if err := decodeCollection(raw, &reminders); err != nil {
		return nil, fmt.Errorf("failed to decode reminders: %w", err)
	}
	return reminders, nil
}

// Add creates a reminder.
func (c *Client) Add(ctx context.Context, req AddRequest) error {
	args := []string{"add", "--title", req.Title, "--due", req.Due}
	if req.List != "" {
		args = append(args, "--list", req.List)
	}
	if req.Notes != "" {
		args = append(args, "--notes", req.Notes)
	}

	if _, err := c.run(ctx, args); err != nil {
		return fmt.Errorf("failed to add reminder: %w", err)
	}
	return nil
}

func (c *Client) run(ctx context.Context, args []string) ([]byte, error) {
	var out []byte
	err := c.policy.Do(ctx, func(ctx context.Context) error {
		var runErr error
		out, runErr = c.runner.Run(ctx, args)
		return runErr
	})
	return out, err
}

func (c *Client) runJSON(ctx context.Context, args []string, v any) error {
	raw, err := c.run(ctx, args)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	return json.Unmarshal(raw, v)
}

// decodeCollection accepts either a bare JSON array or an object
// nesting the array under a known field name.
func decodeCollection(raw []byte, v any) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}
	if raw[0] == '[' {
		return json.Unmarshal(raw, v)
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return err
	}
	for _, key := range []string{"items", "results", "reminders", "lists", "tasks"} {
		if nested, ok := envelope[key]; ok {
			return json.Unmarshal(nested, v)
		}
	}
	return nil
}
