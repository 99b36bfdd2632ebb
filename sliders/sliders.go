// Package sliders holds the upload endpoint for homepage banner
// images; the rest of the slider surface is plain crud.
package sliders

import (
	"context"
	"net/http"
	"time"

	"mercato/db"
	"mercato/filemgr"
	"mercato/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// UploadImage accepts a banner image and points the slider at the
// stored file.
func UploadImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	path, err := filemgr.SaveFormFile(r.MultipartForm, "image", filemgr.EntitySlider, true)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := db.SliderCollection.UpdateOne(ctx,
		bson.M{"sliderid": ps.ByName("id")},
		bson.M{"$set": bson.M{"image": path}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update slider")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Slider not found")
		return
	}

	utils.RespondWithData(w, http.StatusOK, utils.M{"image": path})
}
