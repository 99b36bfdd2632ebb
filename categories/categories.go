package categories

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"mercato/db"
	"mercato/models"
	"mercato/rdx"
	"mercato/utils"
	"mercato/validators"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const slugCachePrefix = "category:slug:"
const slugCacheTTL = 10 * time.Minute

func invalidateSlug(slug string) {
	if _, err := rdx.RdxDel(slugCachePrefix + slug); err != nil {
		log.Printf("cache invalidation failed for slug %s: %v", slug, err)
	}
}

// slugFilter matches any other category already holding the slug;
// excludeID keeps an update from colliding with itself.
func slugFilter(slug, excludeID string) bson.M {
	filter := bson.M{"slug": slug}
	if excludeID != "" {
		filter["categoryid"] = bson.M{"$ne": excludeID}
	}
	return filter
}

func slugTaken(ctx context.Context, slug, excludeID string) (bool, error) {
	err := db.CategoryCollection.FindOne(ctx, slugFilter(slug, excludeID)).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func CreateCategory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input validators.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := validators.Validate(input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	slug := input.Slug
	if slug == "" {
		slug = utils.Slugify(input.Name)
	}

	taken, err := slugTaken(ctx, slug, "")
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if taken {
		utils.RespondWithError(w, http.StatusConflict, "Category slug already exists")
		return
	}

	category := models.Category{
		CategoryID: "c" + utils.GenerateRandomString(12),
		Name:       input.Name,
		Slug:       slug,
		Image:      input.Image,
		ProductIDs: []string{},
	}
	if _, err := db.CategoryCollection.InsertOne(ctx, category); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	utils.RespondWithData(w, http.StatusCreated, category)
}

func GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	categories, err := utils.FindAndDecode[models.Category](ctx, db.CategoryCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}

	utils.RespondWithData(w, http.StatusOK, categories)
}

func GetCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var category models.Category
	if err := db.CategoryCollection.FindOne(ctx, bson.M{"categoryid": ps.ByName("categoryid")}).Decode(&category); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Category not found")
		return
	}

	utils.RespondWithData(w, http.StatusOK, category)
}

// GetCategoryBySlug is the hot storefront read; it is idempotent and
// served from Redis when warm.
func GetCategoryBySlug(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	slug := ps.ByName("slug")

	if cached, err := rdx.RdxGet(slugCachePrefix + slug); err == nil && cached != "" {
		var category models.Category
		if json.Unmarshal([]byte(cached), &category) == nil {
			utils.RespondWithData(w, http.StatusOK, category)
			return
		}
	}

	var category models.Category
	if err := db.CategoryCollection.FindOne(ctx, bson.M{"slug": slug}).Decode(&category); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Category not found")
		return
	}

	if data, err := json.Marshal(category); err == nil {
		if err := rdx.SetWithExpiry(slugCachePrefix+slug, string(data), slugCacheTTL); err != nil {
			log.Printf("cache category %s: %v", slug, err)
		}
	}

	utils.RespondWithData(w, http.StatusOK, category)
}

func UpdateCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	categoryID := ps.ByName("categoryid")

	var input validators.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := validators.Validate(input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var category models.Category
	if err := db.CategoryCollection.FindOne(ctx, bson.M{"categoryid": categoryID}).Decode(&category); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Category not found")
		return
	}

	oldSlug := category.Slug
	category.Name = input.Name
	if input.Slug != "" && input.Slug != oldSlug {
		taken, err := slugTaken(ctx, input.Slug, categoryID)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if taken {
			utils.RespondWithError(w, http.StatusConflict, "Category slug already exists")
			return
		}
		category.Slug = input.Slug
	}
	if input.Image != "" {
		category.Image = input.Image
	}

	if _, err := db.CategoryCollection.ReplaceOne(ctx, bson.M{"categoryid": categoryID}, category); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update category")
		return
	}
	invalidateSlug(oldSlug)
	if category.Slug != oldSlug {
		invalidateSlug(category.Slug)
	}

	utils.RespondWithData(w, http.StatusOK, category)
}

func DeleteCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	categoryID := ps.ByName("categoryid")

	var category models.Category
	if err := db.CategoryCollection.FindOne(ctx, bson.M{"categoryid": categoryID}).Decode(&category); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Category not found")
		return
	}
	if len(category.ProductIDs) > 0 {
		utils.RespondWithError(w, http.StatusConflict, "Category still has products")
		return
	}

	if _, err := db.CategoryCollection.DeleteOne(ctx, bson.M{"categoryid": categoryID}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete category")
		return
	}
	invalidateSlug(category.Slug)

	utils.RespondWithMessage(w, http.StatusOK, "Category deleted")
}
