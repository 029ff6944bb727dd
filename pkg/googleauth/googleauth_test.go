package googleauth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ai-health-assistant/pkg/googleauth"
)

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  googleauth.Config
		ok   bool
	}{
		{"Missing ClientID", googleauth.Config{ClientSecret: "s", RedirectURL: "r"}, false},
		{"Missing ClientSecret", googleauth.Config{ClientID: "c", RedirectURL: "r"}, false},
		{"Missing RedirectURL", googleauth.Config{ClientID: "c", ClientSecret: "s"}, false},
		{"Complete", googleauth.Config{ClientID: "c", ClientSecret: "s", RedirectURL: "r"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}

func TestAuthCodeURL(t *testing.T) {
	client, err := googleauth.New(googleauth.Config{
		ClientID:     "client-123",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost:8080/api/v1/auth/callback",
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	url := client.AuthCodeURL("state-abc")
	if !strings.Contains(url, "state=state-abc") {
		t.Errorf("expected state in URL, got %s", url)
	}
	if !strings.Contains(url, "client_id=client-123") {
		t.Errorf("expected client_id in URL, got %s", url)
	}
}

func TestExchange(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.FormValue("code") != "good-code" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "invalid_grant"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token": "at-123", "token_type": "Bearer", "expires_in": 3600}`))
	})
	mux.HandleFunc("/oauth2/v2/userinfo", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "108123", "email": "jo@example.com", "name": "Jo", "picture": "http://example.com/p.png"}`))
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	newClient := func() *googleauth.Client {
		client, err := googleauth.New(googleauth.Config{
			ClientID:     "client-123",
			ClientSecret: "secret",
			RedirectURL:  "http://localhost:8080/api/v1/auth/callback",
		})
		if err != nil {
			t.Fatalf("failed to create client: %v", err)
		}
		return client.SetEndpoints(ts.URL+"/auth", ts.URL+"/token", ts.URL)
	}

	t.Run("Success Flow", func(t *testing.T) {
		info, err := newClient().Exchange(context.Background(), "good-code")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if info.ID != "108123" {
			t.Errorf("unexpected ID: %q", info.ID)
		}
		if info.Email != "jo@example.com" {
			t.Errorf("unexpected email: %q", info.Email)
		}
	})

	t.Run("Bad Code Flow", func(t *testing.T) {
		_, err := newClient().Exchange(context.Background(), "bad-code")
		if err == nil {
			t.Fatalf("expected error for rejected code")
		}
	})
}
