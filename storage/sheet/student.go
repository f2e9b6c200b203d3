// Package sheetdb talks to the spreadsheet-as-database endpoint: one GET
// returning either a bare array of records or an object with a `students`
// array, and one POST with a single `payload` form field carrying the full
// JSON-serialized set. No partial updates, no pagination.
package sheetdb

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/impulsa/seguimiento/core"
	"github.com/impulsa/seguimiento/core/student"
)

type studentStore struct {
	client  *http.Client
	baseURL string
}

var _ student.Store = (*studentStore)(nil) // interface compliance check

func NewStudentStore(conf *core.Config) *studentStore {
	return &studentStore{
		client:  &http.Client{Timeout: conf.Sheet.Timeout},
		baseURL: conf.Sheet.BaseURL,
	}
}

func (st *studentStore) FetchAll(ctx context.Context) ([]student.Student, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, st.baseURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building fetch request")
	}
	resp, err := st.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetching remote snapshot")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Errorf("fetching remote snapshot: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading remote snapshot")
	}
	return decodeSnapshot(body)
}

// decodeSnapshot accepts the two shapes the endpoint is known to return.
// Anything else is a malformed payload: the caller clears its local state
// rather than displaying a mix of old and undefined data.
func decodeSnapshot(body []byte) ([]student.Student, error) {
	var bare []student.Student
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, nil
	}

	var wrapped struct {
		Students []student.Student `json:"students"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Students != nil {
		return wrapped.Students, nil
	}
	return nil, student.ErrMalformedPayload
}

func (st *studentStore) SaveAll(ctx context.Context, students []student.Student) error {
	payload, err := json.Marshal(students)
	if err != nil {
		return errors.Wrap(err, "serializing payload")
	}

	form := url.Values{"payload": {string(payload)}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, st.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return errors.Wrap(err, "building save request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := st.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "persisting batch")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.Errorf("persisting batch: unexpected status %s", resp.Status)
	}
	return nil
}
