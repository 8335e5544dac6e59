package forms

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"google.golang.org/api/googleapi"
)

func TestDoGivesUpAfterConfiguredAttempts(t *testing.T) {
	client := Client{
		attempts: 3,
		delay:    1 * time.Millisecond,
	}

	calls := 0
	err := client.do(context.Background(), func() error {
		calls++

		return &googleapi.Error{Code: 503}
	})

	if err == nil {
		t.Fatalf("Expected error return after exhausting retries, got %v", err)
	}

	var gerr *googleapi.Error
	if !errors.As(err, &gerr) || gerr.Code != 503 {
		t.Errorf("Incorrect error returned after exhausting retries - expected 503, got:%v", err)
	}

	// initial call plus the configured retries
	if calls != 4 {
		t.Errorf("Incorrect invocation count - expected:%v, got:%v", 4, calls)
	}
}

func TestDoDoesNotRetryPermanentErrors(t *testing.T) {
	client := Client{
		attempts: 3,
		delay:    1 * time.Millisecond,
	}

	calls := 0
	err := client.do(context.Background(), func() error {
		calls++

		return &googleapi.Error{Code: 400}
	})

	if err == nil {
		t.Fatalf("Expected error return for permanent error, got %v", err)
	}

	if calls != 1 {
		t.Errorf("Incorrect invocation count - expected:%v, got:%v", 1, calls)
	}
}

func TestDoStopsRetryingOnSuccess(t *testing.T) {
	client := Client{
		attempts: 5,
		delay:    1 * time.Millisecond,
	}

	calls := 0
	err := client.do(context.Background(), func() error {
		calls++
		if calls < 3 {
			return &googleapi.Error{Code: 429}
		}

		return nil
	})

	if err != nil {
		t.Fatalf("Unexpected error returned from do (%v)", err)
	}

	if calls != 3 {
		t.Errorf("Incorrect invocation count - expected:%v, got:%v", 3, calls)
	}
}

func TestDoUnwrapsRetryableError(t *testing.T) {
	client := Client{
		attempts: 1,
		delay:    1 * time.Millisecond,
	}

	err := client.do(context.Background(), func() error {
		return fmt.Errorf("unable to add form items (%w)", &googleapi.Error{Code: 500})
	})

	var gerr *googleapi.Error
	if !errors.As(err, &gerr) || gerr.Code != 500 {
		t.Errorf("Expected wrapped 500 to surface after retries, got:%v", err)
	}
}
