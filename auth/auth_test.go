package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nutriva/mailer"
)

func TestSendResetCodeDeliversCode(t *testing.T) {
	var got mailer.ReplyRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]string{"id": "send-1"})
	}))
	defer srv.Close()
	t.Setenv("EMAIL_FUNCTION_URL", srv.URL)

	if err := sendResetCode("sam@example.com", "Sam", "abc123"); err != nil {
		t.Fatalf("sendResetCode: %v", err)
	}
	if got.To != "sam@example.com" || got.UserName != "Sam" {
		t.Fatalf("payload fields wrong: %+v", got)
	}
	if !strings.Contains(got.ReplyMessage, "abc123") {
		t.Fatalf("reset code missing from message: %q", got.ReplyMessage)
	}
}

func TestSendResetCodeSurfacesFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	t.Setenv("EMAIL_FUNCTION_URL", srv.URL)

	if err := sendResetCode("sam@example.com", "Sam", "abc123"); err == nil {
		t.Fatal("expected error for failed delivery")
	}
}
