package cart

import (
	"testing"

	"mercato/models"

	"go.mongodb.org/mongo-driver/bson"
)

func TestMergeItemAddsNewLine(t *testing.T) {
	items := MergeItem(nil, "p1", 2)
	if len(items) != 1 || items[0].ProductID != "p1" || items[0].Quantity != 2 {
		t.Fatalf("got %+v, want one line p1 x2", items)
	}
}

func TestMergeItemAccumulatesQuantity(t *testing.T) {
	items := []models.CartItem{{ProductID: "p1", Quantity: 2}, {ProductID: "p2", Quantity: 1}}
	items = MergeItem(items, "p1", 3)
	if len(items) != 2 {
		t.Fatalf("line count changed: %+v", items)
	}
	if items[0].Quantity != 5 {
		t.Errorf("p1 quantity = %d, want 5", items[0].Quantity)
	}
	if items[1].Quantity != 1 {
		t.Errorf("p2 quantity = %d, want 1", items[1].Quantity)
	}
}

func TestRemoveItem(t *testing.T) {
	items := []models.CartItem{{ProductID: "p1", Quantity: 2}, {ProductID: "p2", Quantity: 1}}

	rest, found := RemoveItem(items, "p1")
	if !found {
		t.Fatal("p1 should be found")
	}
	if len(rest) != 1 || rest[0].ProductID != "p2" {
		t.Fatalf("got %+v, want only p2", rest)
	}

	_, found = RemoveItem(items, "missing")
	if found {
		t.Fatal("missing product reported as found")
	}
}

func TestCartWritePinsRevision(t *testing.T) {
	c := models.Cart{
		UserID:     "u1",
		Revision:   3,
		Items:      []models.CartItem{{ProductID: "p1", Quantity: 2}},
		TotalPrice: 20,
	}

	filter := writeFilter(c.UserID, c.Revision)
	if filter["user"] != "u1" {
		t.Fatalf("filter user = %v, want u1", filter["user"])
	}
	if filter["revision"] != int64(3) {
		t.Fatalf("filter revision = %v, want 3; a write without this guard can drop a concurrent mutation", filter["revision"])
	}

	update := writeUpdate(c)
	inc, ok := update["$inc"].(bson.M)
	if !ok || inc["revision"] != 1 {
		t.Fatalf("update must $inc revision by 1, got %v", update["$inc"])
	}
	set, ok := update["$set"].(bson.M)
	if !ok {
		t.Fatalf("update has no $set: %v", update)
	}
	if _, found := set["revision"]; found {
		t.Fatal("revision must only move through $inc, never $set")
	}
	for _, field := range []string{"items", "totalPrice", "updatedAt"} {
		if _, found := set[field]; !found {
			t.Errorf("$set is missing %q", field)
		}
	}
}

func TestComputeTotal(t *testing.T) {
	items := []models.CartItem{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p2", Quantity: 3},
	}
	prices := map[string]float64{"p1": 10, "p2": 5.5}

	got := ComputeTotal(items, prices)
	if got != 36.5 {
		t.Fatalf("ComputeTotal = %v, want 36.5", got)
	}
}

func TestComputeTotalSkipsUnknownProducts(t *testing.T) {
	items := []models.CartItem{{ProductID: "gone", Quantity: 4}}
	if got := ComputeTotal(items, map[string]float64{}); got != 0 {
		t.Fatalf("ComputeTotal = %v, want 0 for unknown product", got)
	}
}

func TestComputeTotalEmptyCart(t *testing.T) {
	if got := ComputeTotal(nil, nil); got != 0 {
		t.Fatalf("ComputeTotal = %v, want 0", got)
	}
}
