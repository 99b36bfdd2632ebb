package models

import "time"

// User is keyed by phone number; the account starts unverified and becomes
// usable only after the phone-verification flow completes.
type User struct {
	UserID          string    `json:"userid" bson:"userid"`
	Phone           string    `json:"phone" bson:"phone"`
	Email           string    `json:"email,omitempty" bson:"email,omitempty"`
	PasswordHash    string    `json:"-" bson:"password_hash,omitempty"`
	FirstName       string    `json:"firstName,omitempty" bson:"firstName,omitempty"`
	LastName        string    `json:"lastName,omitempty" bson:"lastName,omitempty"`
	ProfilePicture  string    `json:"profilePicture,omitempty" bson:"profilePicture,omitempty"`
	Gender          string    `json:"gender,omitempty" bson:"gender,omitempty"`
	IsPhoneVerified bool      `json:"isPhoneVerified" bson:"isPhoneVerified"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
}

type Admin struct {
	AdminID      string    `json:"adminid" bson:"adminid"`
	Phone        string    `json:"phone" bson:"phone"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	FirstName    string    `json:"firstName,omitempty" bson:"firstName,omitempty"`
	LastName     string    `json:"lastName,omitempty" bson:"lastName,omitempty"`
	Role         string    `json:"role" bson:"role"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}
