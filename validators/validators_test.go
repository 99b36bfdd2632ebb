package validators

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPhoneRule(t *testing.T) {
	valid := []string{"1234567890", "919876543210", "123456789012345"}
	for _, phone := range valid {
		require.NoError(t, Validate(PhoneInput{Phone: phone}), "phone %s", phone)
	}

	invalid := []string{"", "123", "12345678901234567890", "12345abcde", "+1234567890"}
	for _, phone := range invalid {
		require.Error(t, Validate(PhoneInput{Phone: phone}), "phone %s", phone)
	}
}

func TestVerificationCodeRule(t *testing.T) {
	require.NoError(t, Validate(CodeLoginInput{Phone: "1234567890", VerificationCode: "123456"}))

	bad := []string{"12345", "1234567", "12345a", ""}
	for _, code := range bad {
		require.Error(t, Validate(CodeLoginInput{Phone: "1234567890", VerificationCode: code}), "code %q", code)
	}
}

func TestValidateReportsJSONFieldName(t *testing.T) {
	err := Validate(RegisterInput{
		Phone:            "1234567890",
		VerificationCode: "123456",
		FirstName:        "Ada",
		LastName:         "Lovelace",
		Password:         "short", // 5 chars, min is 6
	})
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), "password:"), "got %q", err.Error())
}

func TestOrderInputRequiresLines(t *testing.T) {
	base := OrderInput{
		User:        "u1",
		Cart:        "c1",
		Payment:     "pay1",
		Shipping:    "shp1",
		Status:      "pending",
		TotalAmount: 42,
	}
	require.Error(t, Validate(base), "empty products must fail")

	base.Products = []OrderItemInput{{Product: "p1", Quantity: 1}}
	require.NoError(t, Validate(base))

	base.Products = []OrderItemInput{{Product: "p1", Quantity: 0}}
	require.Error(t, Validate(base), "zero quantity must fail")

	base.Products = []OrderItemInput{{Product: "p1", Quantity: 1}}
	base.Status = "teleported"
	require.Error(t, Validate(base), "unknown status must fail")
}

func TestDiscountInputWindow(t *testing.T) {
	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	in := DiscountInput{
		Code:       "SUMMER20",
		Percentage: 20,
		ValidFrom:  from,
		ValidUntil: from.AddDate(0, 2, 0),
		UsageLimit: 10,
	}
	require.NoError(t, Validate(in))

	in.ValidUntil = from.AddDate(0, 0, -1)
	require.Error(t, Validate(in), "validUntil before validFrom must fail")

	in.ValidUntil = from.AddDate(0, 2, 0)
	in.UsageLimit = 0
	require.Error(t, Validate(in), "usageLimit below 1 must fail")

	in.UsageLimit = 10
	in.Percentage = 101
	require.Error(t, Validate(in), "percentage above 100 must fail")
}

func TestReviewRatingBounds(t *testing.T) {
	require.NoError(t, Validate(ReviewInput{Product: "p1", Rating: 1}))
	require.NoError(t, Validate(ReviewInput{Product: "p1", Rating: 5}))
	require.Error(t, Validate(ReviewInput{Product: "p1", Rating: 0}))
	require.Error(t, Validate(ReviewInput{Product: "p1", Rating: 6}))
}
