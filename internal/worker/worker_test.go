package worker

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestDecodeJob(t *testing.T) {
	id := uuid.New()
	body := []byte(`{"id":"` + id.String() + `","resumeText":"python dev","jobDescription":"python role"}`)
	job, err := DecodeJob(body)
	if err != nil {
		t.Fatalf("DecodeJob: %v", err)
	}
	if job.ID != id {
		t.Errorf("ID = %s, want %s", job.ID, id)
	}
	if job.ResumeText != "python dev" || job.JobDescription != "python role" {
		t.Errorf("unexpected payload: %+v", job)
	}
}

func TestDecodeJobInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `{{{`},
		{"missing id", `{"resumeText":"a","jobDescription":"b"}`},
		{"nil id", `{"id":"00000000-0000-0000-0000-000000000000","resumeText":"a","jobDescription":"b"}`},
		{"bad uuid", `{"id":"not-a-uuid"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeJob([]byte(tt.body)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRetrySucceedsAfterFailures(t *testing.T) {
	calls := 0
	got, err := retry(3, func() (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("transient")
		}
		return 42, nil
	})
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if got != 42 || calls != 3 {
		t.Errorf("got %d after %d calls, want 42 after 3", got, calls)
	}
}

func TestRetryExhaustsAttempts(t *testing.T) {
	calls := 0
	_, err := retry(2, func() (struct{}, error) {
		calls++
		return struct{}{}, errors.New("down")
	})
	if err == nil {
		t.Fatal("expected error after exhausted attempts")
	}
	if calls != 2 {
		t.Errorf("fn called %d times, want 2", calls)
	}
	if err.Error() != "after 2 attempts: down" {
		t.Errorf("unexpected error: %v", err)
	}
}
