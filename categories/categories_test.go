package categories

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestSlugFilterForCreate(t *testing.T) {
	filter := slugFilter("home-appliances", "")
	if filter["slug"] != "home-appliances" {
		t.Fatalf("filter slug = %v", filter["slug"])
	}
	if _, found := filter["categoryid"]; found {
		t.Fatal("create check must consider every category")
	}
}

func TestSlugFilterForUpdateExcludesSelf(t *testing.T) {
	filter := slugFilter("home-appliances", "c123")
	ne, ok := filter["categoryid"].(bson.M)
	if !ok || ne["$ne"] != "c123" {
		t.Fatalf("update check must exclude the category being updated, got %v", filter["categoryid"])
	}
	if filter["slug"] != "home-appliances" {
		t.Fatalf("filter slug = %v", filter["slug"])
	}
}
