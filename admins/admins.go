// Package admins covers the back-office accounts. Admins log in with
// email and password and receive a token carrying the admin role.
package admins

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"mercato/auth"
	"mercato/db"
	"mercato/models"
	"mercato/utils"
	"mercato/validators"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// Login checks email and password without revealing which one failed.
func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input validators.AdminLoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := validators.Validate(input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var admin models.Admin
	err := db.AdminCollection.FindOne(ctx, bson.M{"email": input.Email}).Decode(&admin)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)) != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := auth.GenerateAdminToken(admin)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	utils.RespondWithData(w, http.StatusOK, utils.M{"token": token, "admin": admin})
}

// CreateAdmin adds a back-office account. Only an existing admin can
// reach this handler.
func CreateAdmin(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input validators.AdminCreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := validators.Validate(input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := db.AdminCollection.FindOne(ctx, bson.M{"$or": []bson.M{
		{"email": input.Email},
		{"phone": input.Phone},
	}}).Err()
	if err == nil {
		utils.RespondWithError(w, http.StatusConflict, "Admin already exists")
		return
	}
	if err != mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to check existing admin")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	admin := models.Admin{
		AdminID:      "a" + utils.GenerateRandomString(10),
		Phone:        input.Phone,
		Email:        input.Email,
		PasswordHash: string(hash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         "admin",
		CreatedAt:    time.Now(),
	}
	if _, err := db.AdminCollection.InsertOne(ctx, admin); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create admin")
		return
	}

	utils.RespondWithData(w, http.StatusCreated, admin)
}

func GetAdmins(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	list, err := utils.FindAndDecode[models.Admin](ctx, db.AdminCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch admins")
		return
	}
	utils.RespondWithData(w, http.StatusOK, list)
}

func GetAdmin(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var admin models.Admin
	if err := db.AdminCollection.FindOne(ctx, bson.M{"adminid": ps.ByName("adminid")}).Decode(&admin); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Admin not found")
		return
	}
	utils.RespondWithData(w, http.StatusOK, admin)
}

func UpdateAdmin(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input validators.AdminCreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := validators.Validate(input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	res, err := db.AdminCollection.UpdateOne(ctx, bson.M{"adminid": ps.ByName("adminid")},
		bson.M{"$set": bson.M{
			"phone": input.Phone, "email": input.Email, "password_hash": string(hash),
			"firstName": input.FirstName, "lastName": input.LastName,
		}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update admin")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Admin not found")
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Admin updated")
}

func DeleteAdmin(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	adminID := ps.ByName("adminid")
	if adminID == utils.GetUserIDFromRequest(r) {
		utils.RespondWithError(w, http.StatusConflict, "Cannot delete your own account")
		return
	}

	res, err := db.AdminCollection.DeleteOne(ctx, bson.M{"adminid": adminID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete admin")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Admin not found")
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Admin deleted")
}
