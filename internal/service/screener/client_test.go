package screener

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"StockHunter/internal/domain/models"
	"StockHunter/internal/domain/repository"
)

func TestScreenRelaysStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/screen" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		fmt.Fprint(w, `{"error":"bad filter"}`)
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.Screen(context.Background(), &models.ScreeningRequest{AppKey: "k", AppSecret: "s"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("unexpected status %d", resp.StatusCode)
	}
	if string(resp.Body) != `{"error":"bad filter"}` {
		t.Errorf("unexpected body %s", resp.Body)
	}
	if resp.OK() {
		t.Errorf("non-200 must not report OK")
	}
}

func TestScreenTimeoutClassified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	c := New(srv.URL, WithScreenTimeout(50*time.Millisecond))
	_, err := c.Screen(context.Background(), &models.ScreeningRequest{})
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	if !errors.Is(err, repository.ErrDownstreamTimeout) {
		t.Fatalf("expected ErrDownstreamTimeout, got %v", err)
	}
}

func TestHealthConnectionRefusedClassified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(url)
	_, err := c.Health(context.Background())
	if err == nil {
		t.Fatalf("expected connection error")
	}
	if !errors.Is(err, repository.ErrDownstreamUnreachable) {
		t.Fatalf("expected ErrDownstreamUnreachable, got %v", err)
	}
}

func TestClassifyTransportError(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want error
	}{
		{"deadline", context.DeadlineExceeded, repository.ErrDownstreamTimeout},
		{"dial op", &net.OpError{Op: "dial", Err: errors.New("refused")}, repository.ErrDownstreamUnreachable},
		{"dns", &net.DNSError{Name: "kotlin-screener"}, repository.ErrDownstreamUnreachable},
	}
	for _, tc := range cases {
		got := classifyTransportError(fmt.Errorf("request failed: %w", tc.in))
		if !errors.Is(got, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}

	plain := errors.New("boom")
	if got := classifyTransportError(plain); got != plain {
		t.Errorf("unclassified errors must pass through, got %v", got)
	}
}

func TestPerCallTimeoutsAreIndependent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			time.Sleep(200 * time.Millisecond)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL,
		WithScreenTimeout(time.Second),
		WithHealthTimeout(50*time.Millisecond),
	)

	if _, err := c.Screen(context.Background(), &models.ScreeningRequest{}); err != nil {
		t.Fatalf("screen should succeed within its budget: %v", err)
	}
	if _, err := c.Health(context.Background()); !errors.Is(err, repository.ErrDownstreamTimeout) {
		t.Fatalf("health probe should hit its short budget, got %v", err)
	}
}
