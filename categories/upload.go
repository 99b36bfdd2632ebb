package categories

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

// UploadImage stores a category image and points the category at it.
func UploadImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	path, err := filemgr.SaveFormFile(r.MultipartForm, "image", filemgr.EntityCategory, true)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := db.CategoryCollection.UpdateOne(ctx,
		bson.M{"categoryid": ps.ByName("categoryid")},
		bson.M{"$set": bson.M{"image": path}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update category")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Category not found")
		return
	}

	utils.RespondWithData(w, http.StatusOK, utils.M{"image": path})
}
