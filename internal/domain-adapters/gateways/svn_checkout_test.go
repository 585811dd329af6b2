package gateways

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type mockCommandRunner struct {
	result *ExecuteResult
	calls  []CommandConfig
}

func (m *mockCommandRunner) Execute(_ context.Context, config CommandConfig) *ExecuteResult {
	m.calls = append(m.calls, config)
	return m.result
}

func TestSVNCheckout_Checkout(t *testing.T) {
	runner := &mockCommandRunner{result: &ExecuteResult{Success: true}}
	s := NewSVNCheckout(runner)

	err := s.Checkout(context.Background(), "https://dist.apache.org/repos/dist/release/airflow/", "/tmp/release")
	if err != nil {
		t.Fatalf("Checkout() error = %v", err)
	}

	if len(runner.calls) != 1 {
		t.Fatalf("Execute() called %d times, want 1", len(runner.calls))
	}
	call := runner.calls[0]
	if call.Name != "svn" {
		t.Errorf("command = %q, want svn", call.Name)
	}
	wantArgs := []string{"checkout", "--non-interactive", "https://dist.apache.org/repos/dist/release/airflow/", "/tmp/release"}
	if diff := cmp.Diff(wantArgs, call.Args); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestSVNCheckout_Checkout_Failure(t *testing.T) {
	runner := &mockCommandRunner{result: &ExecuteResult{
		ExitCode: 1,
		Error:    errors.New("exit status 1"),
		Stderr:   "svn: E170013: Unable to connect to a repository\n",
	}}
	s := NewSVNCheckout(runner)

	err := s.Checkout(context.Background(), "https://example.org/svn", "/tmp/release")
	if err == nil {
		t.Fatal("Checkout() should fail when svn fails")
	}
	if !strings.Contains(err.Error(), "E170013") {
		t.Errorf("error %q should include svn stderr", err)
	}
}

func TestSVNCheckout_Checkout_EmptyURL(t *testing.T) {
	runner := &mockCommandRunner{}
	if err := NewSVNCheckout(runner).Checkout(context.Background(), "", "/tmp/release"); err == nil {
		t.Fatal("Checkout() with empty URL should fail")
	}
	if len(runner.calls) != 0 {
		t.Error("svn should not run with an empty URL")
	}
}
