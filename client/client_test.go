package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// newTestServer fakes the passgen service with canned responses.
func newTestServer(t *testing.T) (*httptest.Server, *Client) {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("/password", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("len") == "999999" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte("length must be at most 1024\n"))
			return
		}
		if q.Get("share") == "true" {
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte("https://pw.example/s/abc123\n"))
			return
		}

		pw := "correct-horse"
		if q.Get("charset") == "hex" {
			pw = "DEADBEEF"
		}
		w.Write([]byte(pw + "\n"))
	})

	mux.HandleFunc("/int", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("min") == "10" && r.URL.Query().Get("max") == "9" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte("min must not exceed max\n"))
			return
		}
		w.Write([]byte("42\n"))
	})

	redeemed := false
	mux.HandleFunc("/s/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/s/")
		if id != "abc123" || redeemed {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte("not found, expired or already redeemed\n"))
			return
		}
		redeemed = true
		w.Write([]byte("the-secret\n"))
	})

	mux.HandleFunc("/ratelimited", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("rate limit exceeded\n"))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv, New(WithBaseURL(srv.URL))
}

func TestPassword(t *testing.T) {
	t.Parallel()

	_, c := newTestServer(t)

	pw, err := c.Password(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pw != "correct-horse" {
		t.Errorf("got %q, want %q", pw, "correct-horse")
	}
}

func TestPasswordWithOptions(t *testing.T) {
	t.Parallel()

	_, c := newTestServer(t)

	pw, err := c.PasswordWithOptions(context.Background(), PasswordOptions{Length: 8, Charset: "hex"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pw != "DEADBEEF" {
		t.Errorf("got %q, want %q", pw, "DEADBEEF")
	}
}

func TestPasswordNegativeLength(t *testing.T) {
	t.Parallel()

	_, c := newTestServer(t)

	_, err := c.PasswordWithOptions(context.Background(), PasswordOptions{Length: -1})
	if !IsBadRequest(err) {
		t.Fatalf("expected bad request error, got %v", err)
	}
}

func TestPasswordServerRejection(t *testing.T) {
	t.Parallel()

	_, c := newTestServer(t)

	_, err := c.PasswordWithOptions(context.Background(), PasswordOptions{Length: 999999})
	if !IsBadRequest(err) {
		t.Fatalf("expected bad request error, got %v", err)
	}
}

func TestPasswordShare(t *testing.T) {
	t.Parallel()

	_, c := newTestServer(t)

	url, err := c.PasswordWithOptions(context.Background(), PasswordOptions{Share: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://pw.example/s/abc123" {
		t.Errorf("got %q, want share URL", url)
	}
}

func TestInt(t *testing.T) {
	t.Parallel()

	_, c := newTestServer(t)

	n, err := c.Int(context.Background(), 0, 255)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 42 {
		t.Errorf("got %d, want 42", n)
	}
}

func TestIntBadRange(t *testing.T) {
	t.Parallel()

	_, c := newTestServer(t)

	if _, err := c.Int(context.Background(), 10, 9); !IsBadRequest(err) {
		t.Fatalf("expected bad request error, got %v", err)
	}
}

func TestRedeemOnce(t *testing.T) {
	t.Parallel()

	_, c := newTestServer(t)

	secret, err := c.Redeem(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if secret != "the-secret" {
		t.Errorf("got %q, want %q", secret, "the-secret")
	}

	// Second redemption must fail: the share is gone.
	if _, err := c.Redeem(context.Background(), "abc123"); !IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestRedeemAcceptsFullURL(t *testing.T) {
	t.Parallel()

	srv, c := newTestServer(t)

	secret, err := c.Redeem(context.Background(), srv.URL+"/s/abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if secret != "the-secret" {
		t.Errorf("got %q, want %q", secret, "the-secret")
	}
}

func TestRedeemEmptyIdentifier(t *testing.T) {
	t.Parallel()

	_, c := newTestServer(t)

	if _, err := c.Redeem(context.Background(), ""); !IsBadRequest(err) {
		t.Fatalf("expected bad request error, got %v", err)
	}
}

func TestRateLimitedMapping(t *testing.T) {
	t.Parallel()

	srv, c := newTestServer(t)

	_, err := c.getText(context.Background(), srv.URL+"/ratelimited", http.StatusOK)
	if !IsRateLimited(err) {
		t.Fatalf("expected rate limited error, got %v", err)
	}
}
