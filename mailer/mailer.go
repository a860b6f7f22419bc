package mailer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// ReplyRequest is the payload the hosted email function accepts.
type ReplyRequest struct {
	To              string `json:"to"`
	Subject         string `json:"subject"`
	ReplyMessage    string `json:"replyMessage"`
	OriginalMessage string `json:"originalMessage"`
	UserName        string `json:"userName"`
}

type sendResult struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

// Client posts reply emails to the email-send function endpoint.
type Client struct {
	url  string
	http *http.Client
}

func New() *Client {
	return NewWithURL(os.Getenv("EMAIL_FUNCTION_URL"))
}

func NewWithURL(url string) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: 15 * time.Second},
	}
}

// SendReply invokes the email function and returns the provider-assigned
// send id. Non-2xx responses come back as errors; nothing is retried.
func (c *Client) SendReply(req ReplyRequest) (string, error) {
	if c.url == "" {
		return "", fmt.Errorf("mailer: EMAIL_FUNCTION_URL not configured")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Post(c.url, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var result sendResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		result = sendResult{}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if result.Error != "" {
			return "", fmt.Errorf("mailer: send failed: %s", result.Error)
		}
		return "", fmt.Errorf("mailer: send failed with status %d", resp.StatusCode)
	}
	return result.ID, nil
}
