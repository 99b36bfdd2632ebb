package auth

import (
	"fmt"
	"log"
	"time"

	"mercato/rdx"
	"mercato/utils"
)

const codeTTL = 10 * time.Minute

func codeKey(phone string) string {
	return "verify:" + phone
}

// sendVerificationCode generates a fresh 6-digit code, stores it with a
// TTL and hands it to the SMS gateway. Regenerating overwrites any code
// still pending for the phone.
func sendVerificationCode(phone string) error {
	code := utils.GenerateVerificationCode()
	if err := rdx.SetWithExpiry(codeKey(phone), code, codeTTL); err != nil {
		return fmt.Errorf("store verification code: %w", err)
	}
	return deliverSMS(phone, code)
}

// matchVerificationCode compares the submitted code with the stored one.
// The code survives a failed attempt and expires with its TTL.
func matchVerificationCode(phone, code string) bool {
	stored, err := rdx.RdxGet(codeKey(phone))
	if err != nil {
		return false
	}
	return stored == code
}

func clearVerificationCode(phone string) {
	if _, err := rdx.RdxDel(codeKey(phone)); err != nil {
		log.Printf("clear verification code for %s: %v", phone, err)
	}
}

// deliverSMS stands in for the SMS gateway; codes land in the server log.
func deliverSMS(phone, code string) error {
	log.Printf("Verification code %s sent to %s", code, phone)
	return nil
}
