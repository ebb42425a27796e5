package templates

import (
	"strings"
	"testing"
)

func TestNewRendererParsesEmbeddedTemplates(t *testing.T) {
	if _, err := NewRenderer(); err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
}

func TestRenderFriendRequest(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	html, text, err := r.Render("friend_request", FriendRequestData{
		SenderName:     "Alice",
		SenderEmail:    "alice@example.com",
		ReceiverName:   "Bob",
		FriendsPageURL: "http://localhost:3000/friends",
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for _, want := range []string{"Alice", "alice@example.com", "Bob", "http://localhost:3000/friends"} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML output missing %q", want)
		}
		if !strings.Contains(text, want) {
			t.Errorf("text output missing %q", want)
		}
	}
}

func TestRenderFriendAccepted(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	html, text, err := r.Render("friend_accepted", FriendAcceptedData{
		AccepterName: "Bob",
		SenderName:   "Alice",
		ProfileURL:   "http://localhost:3000/users/123",
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for _, want := range []string{"Bob", "Alice", "http://localhost:3000/users/123"} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML output missing %q", want)
		}
		if !strings.Contains(text, want) {
			t.Errorf("text output missing %q", want)
		}
	}
}

func TestRenderEscapesHTMLInSenderName(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	html, _, err := r.Render("friend_request", FriendRequestData{
		SenderName:     "<script>alert(1)</script>",
		SenderEmail:    "x@example.com",
		ReceiverName:   "Bob",
		FriendsPageURL: "http://localhost:3000/friends",
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if strings.Contains(html, "<script>") {
		t.Error("HTML output contains unescaped script tag")
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	if _, _, err := r.Render("does_not_exist", nil); err == nil {
		t.Error("Render() with unknown template expected error, got nil")
	}
}
