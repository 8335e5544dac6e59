// Package forms drives the Google Forms API to build the survey form from an assembled plan.
// It owns all network I/O, authentication handoff, retries and item-ID bookkeeping - the
// extraction core never depends on it.
package forms

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
	gforms "google.golang.org/api/forms/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"surveyforms/survey"
)

// Scopes required to create and edit forms, and to read source spreadsheets.
const (
	FormsScope  = "https://www.googleapis.com/auth/forms.body"
	SheetsScope = "https://www.googleapis.com/auth/spreadsheets.readonly"
)

// Client wraps the Google Forms service with retry handling for transient API failures.
type Client struct {
	google   *gforms.Service
	attempts uint64
	delay    time.Duration
}

// NewClient creates a Forms API client using an authorised HTTP client. attempts and delay
// configure the fibonacci retry backoff applied to every API call.
func NewClient(ctx context.Context, client *http.Client, attempts int, delay time.Duration) (*Client, error) {
	google, err := gforms.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create new Forms client (%v)", err)
	}

	if attempts < 1 {
		attempts = 1
	}

	if delay <= 0 {
		delay = 1 * time.Second
	}

	return &Client{
		google:   google,
		attempts: uint64(attempts),
		delay:    delay,
	}, nil
}

// Create creates a new (empty) form and returns its ID.
func (c *Client) Create(ctx context.Context, title string) (string, error) {
	form := gforms.Form{
		Info: &gforms.Info{
			Title: title,
		},
	}

	formID := ""

	if err := c.do(ctx, func() error {
		created, err := c.google.Forms.Create(&form).Context(ctx).Do()
		if err != nil {
			return err
		}

		formID = created.FormId

		return nil
	}); err != nil {
		return "", fmt.Errorf("unable to create form (%v)", err)
	}

	return formID, nil
}

// SetDescription updates the form description.
func (c *Client) SetDescription(ctx context.Context, formID, description string) error {
	rq := gforms.BatchUpdateFormRequest{
		Requests: []*gforms.Request{
			{
				UpdateFormInfo: &gforms.UpdateFormInfoRequest{
					Info: &gforms.Info{
						Description: description,
					},
					UpdateMask: "description",
				},
			},
		},
	}

	if err := c.do(ctx, func() error {
		_, err := c.google.Forms.BatchUpdate(formID, &rq).Context(ctx).Do()

		return err
	}); err != nil {
		return fmt.Errorf("unable to update form description (%v)", err)
	}

	return nil
}

// AddItems issues a batchUpdate creating the given items and returns the created item IDs in
// request order.
func (c *Client) AddItems(ctx context.Context, formID string, requests []*gforms.Request) ([]string, error) {
	rq := gforms.BatchUpdateFormRequest{
		Requests: requests,
	}

	ids := []string{}

	if err := c.do(ctx, func() error {
		response, err := c.google.Forms.BatchUpdate(formID, &rq).Context(ctx).Do()
		if err != nil {
			return err
		}

		ids = ids[:0]
		for _, reply := range response.Replies {
			if reply.CreateItem != nil {
				ids = append(ids, reply.CreateItem.ItemId)
			}
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("unable to add form items (%v)", err)
	}

	return ids, nil
}

// Emit builds the complete form from a fully assembled plan: introduction, basic information
// section, one section per AC, and the common closing section. The plan is consumed exactly
// once and is complete before Emit is invoked.
func (c *Client) Emit(ctx context.Context, plan *survey.Plan, questions survey.QuestionSet) (*Metadata, error) {
	formID, err := c.Create(ctx, plan.Title)
	if err != nil {
		return nil, err
	}

	if plan.Description != "" {
		if err := c.SetDescription(ctx, formID, plan.Description); err != nil {
			return nil, err
		}
	}

	metadata := Metadata{
		FormID:    formID,
		Title:     plan.Title,
		EditURL:   fmt.Sprintf("https://docs.google.com/forms/d/%s/edit", formID),
		PublicURL: fmt.Sprintf("https://docs.google.com/forms/d/%s/viewform", formID),
		ACNumbers: plan.Keys,
		Sections: SectionIDs{
			AC: map[string][]string{},
		},
		Created: time.Now(),
	}

	index := int64(0)

	// ... introduction
	intro, next := IntroItem(plan.Introduction, index)
	index = next

	ids, err := c.AddItems(ctx, formID, intro)
	if err != nil {
		return nil, err
	}

	if len(ids) > 0 {
		metadata.Sections.Introduction = ids[0]
	}

	// ... basic information
	basic, next := BasicInfoItems(questions.BasicInfo, plan.Keys, index)
	index = next

	if metadata.Sections.BasicInfo, err = c.AddItems(ctx, formID, basic); err != nil {
		return nil, err
	}

	// ... AC sections
	for _, section := range plan.Sections {
		items, next := SectionItems(section, index)
		index = next

		if metadata.Sections.AC[section.Key], err = c.AddItems(ctx, formID, items); err != nil {
			return nil, err
		}
	}

	// ... closing section
	closing, _ := ClosingItems(plan.Closing, index)

	if metadata.Sections.Closing, err = c.AddItems(ctx, formID, closing); err != nil {
		return nil, err
	}

	return &metadata, nil
}

func (c *Client) do(ctx context.Context, fn func() error) error {
	b := retry.NewFibonacci(c.delay)

	return retry.Do(ctx, retry.WithMaxRetries(c.attempts, b), func(ctx context.Context) error {
		if err := fn(); err != nil {
			if retryable(err) {
				return retry.RetryableError(err)
			}

			return err
		}

		return nil
	})
}

// retryable reports whether an API error is transient - rate limiting or a server-side
// failure. Anything else fails immediately.
func retryable(err error) bool {
	var gerr *googleapi.Error

	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusTooManyRequests || gerr.Code >= 500
	}

	return false
}
