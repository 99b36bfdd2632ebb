package products

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"mercato/db"
	"mercato/filemgr"
	"mercato/models"
	"mercato/mq"
	"mercato/rdx"
	"mercato/utils"
	"mercato/validators"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const cachePrefix = "product:"
const cacheTTL = 5 * time.Minute

func invalidateCache(productID string) {
	if _, err := rdx.RdxDel(cachePrefix + productID); err != nil {
		log.Printf("cache invalidation failed for product %s: %v", productID, err)
	}
}

// CreateProduct accepts multipart form data: scalar fields plus a
// required mainImage and an optional gallery.
func CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}

	basePrice, _ := strconv.ParseFloat(r.FormValue("basePrice"), 64)
	discountPct, _ := strconv.ParseFloat(r.FormValue("discountPercentage"), 64)
	onSale := r.FormValue("isOnSale") == "true"

	var variants []validators.VariantInput
	if raw := r.FormValue("variants"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &variants); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "variants: invalid JSON")
			return
		}
	}

	mainImage, err := filemgr.SaveFormFile(r.MultipartForm, "mainImage", filemgr.EntityProduct, true)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	gallery, err := filemgr.SaveFormFiles(r.MultipartForm, "images", filemgr.EntityProduct)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	input := validators.ProductInput{
		Name:               r.FormValue("name"),
		MainImage:          mainImage,
		Images:             gallery,
		KeyFeatures:        utils.SplitCSV(r.FormValue("keyFeatures")),
		Sizes:              utils.SplitCSV(r.FormValue("sizes")),
		Description:        r.FormValue("description"),
		IsOnSale:           onSale,
		DiscountPercentage: discountPct,
		BasePrice:          basePrice,
		Variants:           variants,
		Category:           r.FormValue("category"),
	}
	if err := validators.Validate(input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := db.CategoryCollection.FindOne(ctx, bson.M{"categoryid": input.Category}).Err(); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Category not found")
		return
	}

	product := models.Product{
		ProductID:          "p" + utils.GenerateRandomString(12),
		Name:               input.Name,
		MainImage:          input.MainImage,
		Images:             input.Images,
		KeyFeatures:        input.KeyFeatures,
		Sizes:              input.Sizes,
		Description:        input.Description,
		IsOnSale:           input.IsOnSale,
		DiscountPercentage: input.DiscountPercentage,
		BasePrice:          input.BasePrice,
		CategoryID:         input.Category,
		CreatedAt:          time.Now(),
	}
	for _, v := range input.Variants {
		product.Variants = append(product.Variants, models.Variant{Name: v.Name, AdditionalPrice: v.AdditionalPrice})
	}
	applySalePrice(&product)

	if _, err := db.ProductCollection.InsertOne(ctx, product); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create product")
		return
	}

	if _, err := db.CategoryCollection.UpdateOne(ctx,
		bson.M{"categoryid": product.CategoryID},
		bson.M{"$addToSet": bson.M{"products": product.ProductID}},
	); err != nil {
		log.Printf("attach product %s to category %s: %v", product.ProductID, product.CategoryID, err)
	}

	go mq.Emit(context.Background(), "product-created", "product", product.ProductID, nil)

	utils.RespondWithData(w, http.StatusCreated, product)
}

// GetProducts lists products, optionally scoped to ?category=.
func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	skip, limit := utils.ParsePagination(r, 20, 100)

	filter := bson.M{}
	if cat := r.URL.Query().Get("category"); cat != "" {
		filter["category"] = cat
	}
	opts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "createdAt", Value: -1}})

	products, err := utils.FindAndDecode[models.Product](ctx, db.ProductCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}

	utils.RespondWithData(w, http.StatusOK, products)
}

// GetProduct returns one product, served from the Redis cache when warm.
func GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	productID := ps.ByName("productid")

	if cached, err := rdx.RdxGet(cachePrefix + productID); err == nil && cached != "" {
		var product models.Product
		if json.Unmarshal([]byte(cached), &product) == nil {
			utils.RespondWithData(w, http.StatusOK, product)
			return
		}
	}

	var product models.Product
	if err := db.ProductCollection.FindOne(ctx, bson.M{"productid": productID}).Decode(&product); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	if data, err := json.Marshal(product); err == nil {
		if err := rdx.SetWithExpiry(cachePrefix+productID, string(data), cacheTTL); err != nil {
			log.Printf("cache product %s: %v", productID, err)
		}
	}

	utils.RespondWithData(w, http.StatusOK, product)
}

// UpdateProduct merges the allow-listed fields from a JSON body and
// recomputes the discounted price whenever any pricing input changed.
func UpdateProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	productID := ps.ByName("productid")

	var input validators.ProductUpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := validators.Validate(input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var product models.Product
	if err := db.ProductCollection.FindOne(ctx, bson.M{"productid": productID}).Decode(&product); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.MainImage != nil {
		product.MainImage = *input.MainImage
	}
	if input.Images != nil {
		product.Images = input.Images
	}
	if input.KeyFeatures != nil {
		product.KeyFeatures = input.KeyFeatures
	}
	if input.Sizes != nil {
		product.Sizes = input.Sizes
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.IsOnSale != nil {
		product.IsOnSale = *input.IsOnSale
	}
	if input.DiscountPercentage != nil {
		product.DiscountPercentage = *input.DiscountPercentage
	}
	if input.BasePrice != nil {
		product.BasePrice = *input.BasePrice
	}
	if input.Variants != nil {
		product.Variants = product.Variants[:0]
		for _, v := range input.Variants {
			product.Variants = append(product.Variants, models.Variant{Name: v.Name, AdditionalPrice: v.AdditionalPrice})
		}
	}
	if input.Category != nil && *input.Category != product.CategoryID {
		if err := db.CategoryCollection.FindOne(ctx, bson.M{"categoryid": *input.Category}).Err(); err != nil {
			utils.RespondWithError(w, http.StatusNotFound, "Category not found")
			return
		}
		db.CategoryCollection.UpdateOne(ctx, bson.M{"categoryid": product.CategoryID}, bson.M{"$pull": bson.M{"products": productID}})
		db.CategoryCollection.UpdateOne(ctx, bson.M{"categoryid": *input.Category}, bson.M{"$addToSet": bson.M{"products": productID}})
		product.CategoryID = *input.Category
	}
	applySalePrice(&product)

	if _, err := db.ProductCollection.ReplaceOne(ctx, bson.M{"productid": productID}, product); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update product")
		return
	}
	invalidateCache(productID)

	go mq.Emit(context.Background(), "product-updated", "product", productID, nil)

	utils.RespondWithData(w, http.StatusOK, product)
}

// DeleteProduct removes the product, detaches it from its category and
// drops its reviews.
func DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	productID := ps.ByName("productid")

	var product models.Product
	if err := db.ProductCollection.FindOne(ctx, bson.M{"productid": productID}).Decode(&product); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	if _, err := db.ProductCollection.DeleteOne(ctx, bson.M{"productid": productID}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	if _, err := db.CategoryCollection.UpdateOne(ctx,
		bson.M{"categoryid": product.CategoryID},
		bson.M{"$pull": bson.M{"products": productID}},
	); err != nil {
		log.Printf("detach product %s from category %s: %v", productID, product.CategoryID, err)
	}
	if _, err := db.ReviewsCollection.DeleteMany(ctx, bson.M{"product": productID}); err != nil {
		log.Printf("delete reviews of product %s: %v", productID, err)
	}
	invalidateCache(productID)

	go mq.Emit(context.Background(), "product-deleted", "product", productID, nil)

	utils.RespondWithMessage(w, http.StatusOK, "Product deleted")
}
