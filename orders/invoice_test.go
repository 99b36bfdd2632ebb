package orders

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"testing"

	"mercato/globals"
)

func TestGenerateQRPayloadSignature(t *testing.T) {
	globals.JwtSecret = []byte("test-secret")

	payload := GenerateQRPayload("o123", "u456")
	parts := strings.Split(payload, "|")
	if len(parts) != 4 {
		t.Fatalf("payload %q has %d parts, want 4", payload, len(parts))
	}
	if parts[0] != "o123" || parts[1] != "u456" {
		t.Fatalf("payload %q does not carry order and user ids", payload)
	}

	data := strings.Join(parts[:3], "|")
	h := hmac.New(sha256.New, globals.JwtSecret)
	h.Write([]byte(data))
	want := base64.StdEncoding.EncodeToString(h.Sum(nil))
	if parts[3] != want {
		t.Fatalf("signature mismatch: got %q, want %q", parts[3], want)
	}
}
