package tui

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
)

func TestToast_ShowDisplaysMessage(t *testing.T) {
	toast := NewToast()

	cmd := toast.Show("Validation Error", "Please fill in all required fields", ToastError)

	if !toast.IsVisible() {
		t.Error("expected toast to be visible after Show()")
	}

	if toast.Title() != "Validation Error" {
		t.Errorf("expected title 'Validation Error', got %q", toast.Title())
	}

	if toast.Message() != "Please fill in all required fields" {
		t.Errorf("unexpected message %q", toast.Message())
	}

	if toast.Level() != ToastError {
		t.Errorf("expected ToastError level, got %v", toast.Level())
	}

	// Verify command is returned (for dismissal)
	if cmd == nil {
		t.Error("expected Show() to return a command for dismissal")
	}
}

func TestToast_ViewReturnsEmptyWhenNotVisible(t *testing.T) {
	toast := NewToast()

	view := toast.View(80, 24)

	if view != "" {
		t.Errorf("expected empty view when not visible, got %q", view)
	}
}

func TestToast_ViewRendersTitleAndMessage(t *testing.T) {
	toast := NewToast()
	toast.Show("Form Submitted!", "Your account details were accepted", ToastSuccess)

	view := toast.View(80, 24)

	if view == "" {
		t.Error("expected non-empty view when visible")
	}

	if !strings.Contains(view, "Form Submitted!") {
		t.Errorf("expected view to contain title, got %q", view)
	}

	if !strings.Contains(view, "Your account details were accepted") {
		t.Errorf("expected view to contain message, got %q", view)
	}
}

func TestToast_DismissMsgHidesToast(t *testing.T) {
	toast := NewToast()
	toast.Show("Validation Error", "Passwords do not match", ToastError)

	// Send dismiss message
	cmd := toast.Update(ToastDismissMsg{})

	if toast.IsVisible() {
		t.Error("expected toast to be hidden after ToastDismissMsg")
	}

	if toast.Message() != "" {
		t.Error("expected message to be cleared after dismiss")
	}

	if cmd != nil {
		t.Error("expected no command after dismiss")
	}
}

func TestToast_ShowReplacesPreviousMessage(t *testing.T) {
	toast := NewToast()
	toast.Show("Validation Error", "first message", ToastError)
	toast.Show("Form Submitted!", "second message", ToastSuccess)

	if toast.Message() != "second message" {
		t.Errorf("expected 'second message', got %q", toast.Message())
	}

	if toast.Level() != ToastSuccess {
		t.Error("expected level to follow the latest Show call")
	}
}

func TestToast_ShowUpdatesDismissTime(t *testing.T) {
	toast := NewToast()

	toast.Show("Validation Error", "first", ToastError)
	firstDismissAt := toast.dismissAt

	time.Sleep(10 * time.Millisecond)

	toast.Show("Validation Error", "second", ToastError)
	secondDismissAt := toast.dismissAt

	if !secondDismissAt.After(firstDismissAt) {
		t.Error("expected second dismiss time to be after first")
	}
}

func TestToast_DismissCmdReturnsDismissMsg(t *testing.T) {
	toast := NewToast()
	toast.Show("Validation Error", "test", ToastError)

	// Backdate so the tick fires immediately instead of after 3s.
	toast.dismissAt = time.Now()
	cmd := toast.dismissCmd()
	if cmd == nil {
		t.Fatal("expected non-nil dismiss command")
	}

	msg := cmd()
	if _, ok := msg.(ToastDismissMsg); !ok {
		t.Errorf("expected ToastDismissMsg, got %T", msg)
	}
}

func TestToast_UpdateIgnoresOtherMessages(t *testing.T) {
	toast := NewToast()
	toast.Show("Validation Error", "test", ToastError)

	cmd := toast.Update(tea.KeyPressMsg{})

	if !toast.IsVisible() {
		t.Error("expected toast to remain visible after unrelated message")
	}

	if cmd != nil {
		t.Error("expected no command for unrelated message")
	}
}

func TestToast_ViewHandlesNarrowWidth(t *testing.T) {
	toast := NewToast()
	toast.Show("Validation Error", "very long message that might exceed a narrow terminal", ToastError)

	view := toast.View(10, 24)

	if view == "" {
		t.Error("expected view even with narrow width")
	}
}

func TestToast_DismissSequence(t *testing.T) {
	toast := NewToast()

	if cmd := toast.Show("Form Submitted!", "done", ToastSuccess); cmd == nil {
		t.Fatal("expected Show() to return dismiss command")
	}

	// Backdate so the tick fires immediately instead of after 3s.
	toast.dismissAt = time.Now()
	msg := toast.dismissCmd()()
	dismissMsg, ok := msg.(ToastDismissMsg)
	if !ok {
		t.Fatalf("expected ToastDismissMsg from command, got %T", msg)
	}

	toast.Update(dismissMsg)

	if toast.IsVisible() {
		t.Error("expected toast to be hidden after complete dismiss sequence")
	}

	view := toast.View(80, 24)
	if view != "" {
		t.Errorf("expected empty view after dismiss, got %q", view)
	}
}
