package mailer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendReplyPostsContract(t *testing.T) {
	var got ReplyRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]string{"id": "send-123"})
	}))
	defer srv.Close()

	client := NewWithURL(srv.URL)
	id, err := client.SendReply(ReplyRequest{
		To:              "customer@example.com",
		Subject:         "Re: shipping question",
		ReplyMessage:    "Your order ships Monday.",
		OriginalMessage: "When does my order ship?",
		UserName:        "Sam",
	})
	if err != nil {
		t.Fatalf("SendReply: %v", err)
	}
	if id != "send-123" {
		t.Fatalf("id = %q, want send-123", id)
	}
	if got.To != "customer@example.com" || got.UserName != "Sam" || got.ReplyMessage == "" || got.OriginalMessage == "" || got.Subject == "" {
		t.Fatalf("payload fields missing: %+v", got)
	}
}

func TestSendReplyPropagatesError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(map[string]string{"error": "provider rejected"})
	}))
	defer srv.Close()

	if _, err := NewWithURL(srv.URL).SendReply(ReplyRequest{To: "x@example.com"}); err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}

func TestSendReplyWithoutURL(t *testing.T) {
	if _, err := NewWithURL("").SendReply(ReplyRequest{}); err == nil {
		t.Fatal("expected configuration error")
	}
}
