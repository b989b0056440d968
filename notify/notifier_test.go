package notify

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ticket-value-alert/utils"
)

func TestPushoverSendsForm(t *testing.T) {
	var gotToken, gotUser, gotTitle, gotMessage string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		gotToken = r.PostFormValue("token")
		gotUser = r.PostFormValue("user")
		gotTitle = r.PostFormValue("title")
		gotMessage = r.PostFormValue("message")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := NewPushover("user-key", "api-token")
	p.endpoint = srv.URL

	if err := p.Send("New listings", "Score 9.6 | Section 112/Row F"); err != nil {
		t.Fatalf("Send: %v", err)
	}

	if gotToken != "api-token" || gotUser != "user-key" {
		t.Errorf("credentials = (%q, %q); want (api-token, user-key)", gotToken, gotUser)
	}
	if gotTitle != "New listings" {
		t.Errorf("title = %q", gotTitle)
	}
	if gotMessage == "" {
		t.Error("message should not be empty")
	}
}

func TestPushoverNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	p := NewPushover("user-key", "api-token")
	p.endpoint = srv.URL

	if err := p.Send("title", "body"); err == nil {
		t.Error("expected error on 400 response")
	}
}

func TestLogNotifierNeverFails(t *testing.T) {
	n := NewLogNotifier(utils.NewLogger())
	if err := n.Send("title", "line one\nline two"); err != nil {
		t.Errorf("LogNotifier.Send: %v", err)
	}
}
