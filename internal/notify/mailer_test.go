package notify

import (
	"context"
	"net"
	"strings"
	"testing"
	"time"
)

func TestMailer_RejectsMissingPassword(t *testing.T) {
	m := NewMailer("smtp.gmail.com", 465, "monitor@example.com", "monitor", "")
	err := m.Send(context.Background(), []string{"ops@example.com"}, "subj", "body")
	if err == nil || !strings.Contains(err.Error(), "password") {
		t.Fatalf("expected password error, got %v", err)
	}
}

func TestMailer_RejectsEmptyRecipients(t *testing.T) {
	m := NewMailer("smtp.gmail.com", 465, "monitor@example.com", "monitor", "hunter2")
	err := m.Send(context.Background(), nil, "subj", "body")
	if err == nil || !strings.Contains(err.Error(), "recipients") {
		t.Fatalf("expected recipients error, got %v", err)
	}
}

func TestMailer_RejectsBadFromAddress(t *testing.T) {
	m := NewMailer("smtp.gmail.com", 465, "not an address", "monitor", "hunter2")
	err := m.Send(context.Background(), []string{"ops@example.com"}, "subj", "body")
	if err == nil || !strings.Contains(err.Error(), "set from") {
		t.Fatalf("expected from-address error, got %v", err)
	}
}

func TestMailer_DialFailureSurfaces(t *testing.T) {
	// Grab a port that is guaranteed closed by listening and releasing it.
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := l.Addr().(*net.TCPAddr)
	_ = l.Close()

	m := NewMailer("127.0.0.1", addr.Port, "monitor@example.com", "monitor", "hunter2")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := m.Send(ctx, []string{"ops@example.com"}, "subj", "body"); err == nil {
		t.Fatal("expected dial error against a closed port")
	}
}
