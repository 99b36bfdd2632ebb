// Package users exposes account profiles. Phone number and its verified
// flag are owned by the auth flow and never change here.
package users

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"mercato/db"
	"mercato/filemgr"
	"mercato/models"
	"mercato/mq"
	"mercato/utils"
	"mercato/validators"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

// GetUsers lists accounts for the admin panel.
func GetUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	skip, limit := utils.ParsePagination(r, 20, 100)
	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetSkip(skip).SetLimit(limit)
	list, err := utils.FindAndDecode[models.User](ctx, db.UserCollection, bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	utils.RespondWithData(w, http.StatusOK, list)
}

func GetUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := ps.ByName("userid")
	if userID != utils.GetUserIDFromRequest(r) && utils.GetRoleFromRequest(r) != "admin" {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&user); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	utils.RespondWithData(w, http.StatusOK, user)
}

// UpdateUser applies the allowed profile fields. Password changes are
// re-hashed; phone and verification state are untouchable.
func UpdateUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := ps.ByName("userid")
	if userID != utils.GetUserIDFromRequest(r) && utils.GetRoleFromRequest(r) != "admin" {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	var input validators.UserUpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := validators.Validate(input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	set := bson.M{}
	if input.Email != "" {
		set["email"] = input.Email
	}
	if input.FirstName != "" {
		set["firstName"] = input.FirstName
	}
	if input.LastName != "" {
		set["lastName"] = input.LastName
	}
	if input.ProfilePicture != "" {
		set["profilePicture"] = input.ProfilePicture
	}
	if input.Gender != "" {
		set["gender"] = input.Gender
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to hash password")
			return
		}
		set["password_hash"] = string(hash)
	}
	if len(set) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "No fields to update")
		return
	}

	res, err := db.UserCollection.UpdateOne(ctx, bson.M{"userid": userID}, bson.M{"$set": set})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update user")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "User updated")
}

func DeleteUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := ps.ByName("userid")
	if userID != utils.GetUserIDFromRequest(r) && utils.GetRoleFromRequest(r) != "admin" {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	res, err := db.UserCollection.DeleteOne(ctx, bson.M{"userid": userID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	// the account's cart and reviews go with it
	db.CartCollection.DeleteOne(ctx, bson.M{"user": userID})
	db.ReviewsCollection.DeleteMany(ctx, bson.M{"user": userID})

	mq.Emit(ctx, "user-deleted", "user", userID, nil)
	utils.RespondWithMessage(w, http.StatusOK, "User deleted")
}

// UploadProfilePicture stores the image under the user uploads dir and
// points the profile at it.
func UploadProfilePicture(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := ps.ByName("userid")
	if userID != utils.GetUserIDFromRequest(r) {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	path, err := filemgr.SaveFormFile(r.MultipartForm, "picture", filemgr.EntityUser, true)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := db.UserCollection.UpdateOne(ctx, bson.M{"userid": userID},
		bson.M{"$set": bson.M{"profilePicture": path}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update user")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	utils.RespondWithData(w, http.StatusOK, utils.M{"profilePicture": path})
}
