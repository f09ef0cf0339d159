package apperrors

import (
	"errors"
	"testing"
)

func TestPublicMessage_UsesSafeMessage(t *testing.T) {
	sentinel := errors.New("SECRET_VALUE")
	err := New(KindAuth, "safe auth error", sentinel)
	if got := PublicMessage(err); got != "safe auth error" {
		t.Fatalf("PublicMessage() = %q, want %q", got, "safe auth error")
	}
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped cause to be retained for internal matching")
	}
}

func TestKindOfAndRetryable(t *testing.T) {
	err := New(KindRateLimit, "", errors.New("boom"))
	kind, ok := KindOf(err)
	if !ok || kind != KindRateLimit {
		t.Fatalf("KindOf() = (%q, %v), want (%q, true)", kind, ok, KindRateLimit)
	}
	if !IsRetryable(err) {
		t.Fatalf("expected rate_limit error to be retryable")
	}
}

func TestUserCorrectableKinds(t *testing.T) {
	if !IsUserCorrectable(EmptyInput()) {
		t.Fatalf("expected empty input to be user-correctable")
	}
	if !IsUserCorrectable(AutoDetectSwap()) {
		t.Fatalf("expected auto-detect swap to be user-correctable")
	}
	if IsUserCorrectable(Persist(errors.New("disk full"))) {
		t.Fatalf("persist failure must not be user-correctable")
	}
	if IsRetryable(EmptyInput()) {
		t.Fatalf("empty input must not be retryable")
	}
}

func TestDefaultSafeMessages(t *testing.T) {
	err := Persist(errors.New("write /history.json: permission denied"))
	if got := PublicMessage(err); got != "Failed to save translation history." {
		t.Fatalf("PublicMessage() = %q", got)
	}
	if !Is(err, KindPersist) {
		t.Fatalf("expected persist kind")
	}
}

func TestPublicMessage_NonAppError(t *testing.T) {
	err := errors.New("plain")
	if got := PublicMessage(err); got != "plain" {
		t.Fatalf("PublicMessage() = %q, want %q", got, "plain")
	}
}
