package mailer

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestSendWithTimeout(t *testing.T) {
	testCases := []struct {
		name      string
		send      func() error
		timeout   time.Duration
		expectErr string
	}{
		{
			name:    "fast send succeeds",
			send:    func() error { return nil },
			timeout: time.Second,
		},
		{
			name:      "send error is returned",
			send:      func() error { return fmt.Errorf("connection refused") },
			timeout:   time.Second,
			expectErr: "connection refused",
		},
		{
			name: "stalled send is cut off",
			send: func() error {
				time.Sleep(500 * time.Millisecond)
				return nil
			},
			timeout:   20 * time.Millisecond,
			expectErr: "timed out",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			err := sendWithTimeout(tt.send, tt.timeout)
			if tt.expectErr == "" {
				if err != nil {
					t.Errorf("sendWithTimeout() error = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.expectErr) {
				t.Errorf("sendWithTimeout() error = %v, expected to contain %q", err, tt.expectErr)
			}
		})
	}
}
