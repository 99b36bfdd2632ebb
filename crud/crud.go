// Package crud provides descriptor-driven handlers for the flat
// resources (payments, shipping addresses, sliders, inventory) whose
// endpoints are plain create/list/get/update/delete with no extra
// domain rules.
package crud

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"mercato/utils"
	"mercato/validators"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Resource wires one collection to the generic handlers. Coll is a
// getter because collections are bound in db.Init after route setup
// code is compiled.
type Resource[In any, Doc any] struct {
	Name     string
	Coll     func() *mongo.Collection
	KeyField string
	IDPrefix string
	Build    func(id string, in In) Doc
	Set      func(in In) bson.M
}

func (res Resource[In, Doc]) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input In
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := validators.Validate(input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	doc := res.Build(res.IDPrefix+utils.GenerateRandomString(12), input)
	if _, err := res.Coll().InsertOne(ctx, doc); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create "+res.Name)
		return
	}
	utils.RespondWithData(w, http.StatusCreated, doc)
}

func (res Resource[In, Doc]) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	list, err := utils.FindAndDecode[Doc](ctx, res.Coll(), bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch "+res.Name+"s")
		return
	}
	utils.RespondWithData(w, http.StatusOK, list)
}

func (res Resource[In, Doc]) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var doc Doc
	if err := res.Coll().FindOne(ctx, bson.M{res.KeyField: ps.ByName("id")}).Decode(&doc); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, res.Name+" not found")
		return
	}
	utils.RespondWithData(w, http.StatusOK, doc)
}

func (res Resource[In, Doc]) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input In
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := validators.Validate(input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := res.Coll().UpdateOne(ctx,
		bson.M{res.KeyField: ps.ByName("id")},
		bson.M{"$set": res.Set(input)})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update "+res.Name)
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, res.Name+" not found")
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, res.Name+" updated")
}

func (res Resource[In, Doc]) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := res.Coll().DeleteOne(ctx, bson.M{res.KeyField: ps.ByName("id")})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete "+res.Name)
		return
	}
	if result.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, res.Name+" not found")
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, res.Name+" deleted")
}
