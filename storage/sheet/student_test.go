package sheetdb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/impulsa/seguimiento/core"
	"github.com/impulsa/seguimiento/core/student"
)

func newTestStore(url string) *studentStore {
	conf := &core.Config{}
	conf.Sheet.BaseURL = url
	conf.Sheet.Timeout = 5 * time.Second
	return NewStudentStore(conf)
}

func TestStudentStore_FetchAll(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    int
		wantErr error
	}{
		{name: "bare array", status: 200, body: `[{"id":1,"name":"Ana","courseProgress":[40,0]},{"id":2,"name":"Luis","courseProgress":[10,0]}]`, want: 2},
		{name: "wrapped object", status: 200, body: `{"students":[{"id":1,"name":"Ana","courseProgress":[40,0]}]}`, want: 1},
		{name: "empty array", status: 200, body: `[]`, want: 0},
		{name: "html error page", status: 200, body: `<html>quota exceeded</html>`, wantErr: student.ErrMalformedPayload},
		{name: "wrong object shape", status: 200, body: `{"error":"oops"}`, wantErr: student.ErrMalformedPayload},
		{name: "server error", status: 500, body: `boom`, wantErr: errors.New("unexpected status")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet {
					t.Errorf("method = %s, want GET", r.Method)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			got, err := newTestStore(srv.URL).FetchAll(context.Background())
			if tt.wantErr != nil {
				if err == nil {
					t.Fatal("FetchAll() expected an error")
				}
				if errors.Is(tt.wantErr, student.ErrMalformedPayload) && !errors.Is(err, student.ErrMalformedPayload) {
					t.Errorf("FetchAll() error = %v, want ErrMalformedPayload", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FetchAll() failed: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("len(FetchAll()) = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestStudentStore_SaveAll(t *testing.T) {
	var received []student.Student
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("Content-Type = %s, want form encoding", ct)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm() failed: %v", err)
		}
		if err := json.Unmarshal([]byte(r.PostFormValue("payload")), &received); err != nil {
			t.Fatalf("payload is not a JSON student array: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	students := []student.Student{
		{ID: 1, Name: "Ana López", CourseProgress: []int{55, 0}},
		{ID: 2, Name: "Luis Pérez", CourseProgress: []int{100, 35}},
	}
	if err := newTestStore(srv.URL).SaveAll(context.Background(), students); err != nil {
		t.Fatalf("SaveAll() failed: %v", err)
	}

	if len(received) != 2 || received[0].Name != "Ana López" || received[1].CourseProgress[1] != 35 {
		t.Errorf("server received %+v", received)
	}
}

func TestStudentStore_SaveAll_serverError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	err := newTestStore(srv.URL).SaveAll(context.Background(), []student.Student{{ID: 1}})
	if err == nil {
		t.Fatal("SaveAll() expected an error")
	}
}
