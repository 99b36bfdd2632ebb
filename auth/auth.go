// Package auth implements the phone-verification login flow: a phone
// number moves from no-account through pending-verification to verified,
// and only verified users can obtain session tokens.
package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"mercato/db"
	"mercato/models"
	"mercato/utils"
	"mercato/validators"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// HandlePhoneInput starts (or restarts) verification for a phone number.
// A verified account on the same number is rejected; an unverified stale
// record is discarded and the flow restarts.
func HandlePhoneInput(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input validators.PhoneInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := validators.Validate(input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var existing models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"phone": input.Phone}).Decode(&existing)
	switch {
	case err == nil && existing.IsPhoneVerified:
		utils.RespondWithError(w, http.StatusConflict, "Phone number already in use")
		return
	case err == nil:
		// stale unverified record: drop it and restart
		if _, err := db.UserCollection.DeleteOne(ctx, bson.M{"userid": existing.UserID}); err != nil {
			log.Printf("delete stale user %s: %v", existing.UserID, err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
	case err != mongo.ErrNoDocuments:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	user := models.User{
		UserID:    "u" + utils.GenerateRandomString(10),
		Phone:     input.Phone,
		CreatedAt: time.Now(),
	}
	if _, err := db.UserCollection.InsertOne(ctx, user); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	if err := sendVerificationCode(input.Phone); err != nil {
		log.Printf("send verification code: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to send verification code")
		return
	}

	utils.RespondWithMessage(w, http.StatusOK, "Verification code sent")
}

// CompleteRegistration finalizes the account: exact code match, profile
// fields set, password hashed, phone marked verified, session token issued.
func CompleteRegistration(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input validators.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := validators.Validate(input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"phone": input.Phone}).Decode(&user); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "No pending registration for this phone")
		return
	}
	if user.IsPhoneVerified {
		utils.RespondWithError(w, http.StatusConflict, "Phone number already verified")
		return
	}

	if !matchVerificationCode(input.Phone, input.VerificationCode) {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid verification code")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("hash password: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to process password")
		return
	}

	update := bson.M{"$set": bson.M{
		"firstName":       input.FirstName,
		"lastName":        input.LastName,
		"password_hash":   string(hashed),
		"isPhoneVerified": true,
	}}
	if _, err := db.UserCollection.UpdateOne(ctx, bson.M{"userid": user.UserID}, update); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to complete registration")
		return
	}
	clearVerificationCode(input.Phone)

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.IsPhoneVerified = true

	token, err := GenerateToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.RespondWithData(w, http.StatusCreated, utils.M{
		"userid": user.UserID,
		"token":  token,
	})
}

// LoginWithPassword issues a token for a verified user whose bcrypt hash
// matches. Wrong phone and wrong password are indistinguishable.
func LoginWithPassword(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input validators.PasswordLoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := validators.Validate(input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"phone": input.Phone}).Decode(&user)
	if err != nil || !user.IsPhoneVerified {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid phone or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid phone or password")
		return
	}

	token, err := GenerateToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.RespondWithData(w, http.StatusOK, utils.M{
		"userid": user.UserID,
		"token":  token,
	})
}

// LoginWithCode authenticates a verified user by verification code.
func LoginWithCode(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input validators.CodeLoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := validators.Validate(input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"phone": input.Phone}).Decode(&user)
	if err != nil || !user.IsPhoneVerified {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid phone or code")
		return
	}

	if !matchVerificationCode(input.Phone, input.VerificationCode) {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid phone or code")
		return
	}
	clearVerificationCode(input.Phone)

	token, err := GenerateToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.RespondWithData(w, http.StatusOK, utils.M{
		"userid": user.UserID,
		"token":  token,
	})
}

// ResendVerificationCode redelivers a code to a phone that has a pending
// registration.
func ResendVerificationCode(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	resendCode(w, r, false)
}

// RequestLoginCode delivers a login code; the account must be verified.
func RequestLoginCode(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	resendCode(w, r, true)
}

func resendCode(w http.ResponseWriter, r *http.Request, requireVerified bool) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input validators.PhoneInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := validators.Validate(input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"phone": input.Phone}).Decode(&user); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	if requireVerified != user.IsPhoneVerified {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	if err := sendVerificationCode(input.Phone); err != nil {
		log.Printf("resend verification code: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to send verification code")
		return
	}

	utils.RespondWithMessage(w, http.StatusOK, "Verification code sent")
}
