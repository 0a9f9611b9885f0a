package polylimit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestTransportAllowsRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	l := New()
	client := &http.Client{
		Transport: l.Transport(nil),
	}

	resp, err := client.Get(srv.URL + "/clob/book")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestTransportWaitsOnExhaustedBucket(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	// httptest binds to 127.0.0.1, so the /clob prefix drives classification.
	cfg := DisabledConfig().WithQuota(CategoryClobGeneral, NewQuota(1, time.Hour))
	l := New(WithConfig(cfg))

	client := &http.Client{
		Transport: l.Transport(nil),
	}

	resp, err := client.Get(srv.URL + "/clob/markets")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	// The bucket is empty; a second request waits past its deadline.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/clob/markets", nil)
	if err != nil {
		t.Fatal(err)
	}

	_, err = client.Do(req)
	if err == nil {
		t.Fatal("expected error on 2nd request")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want context.DeadlineExceeded in chain", err)
	}
}

func TestTransportLimitsOnlyMatchingAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := DisabledConfig().WithQuota(CategoryClobGeneral, NewQuota(1, time.Hour))
	l := New(WithConfig(cfg))

	client := &http.Client{
		Transport: l.Transport(nil),
	}

	resp, err := client.Get(srv.URL + "/clob/markets")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	// Gamma requests are unconstrained by the exhausted CLOB bucket.
	for i := 0; i < 5; i++ {
		resp, err := client.Get(srv.URL + "/gamma/events")
		if err != nil {
			t.Fatalf("gamma request %d: %v", i+1, err)
		}
		resp.Body.Close()
	}
}
