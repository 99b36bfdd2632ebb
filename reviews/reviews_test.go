package reviews

import (
	"errors"
	"net/http"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestInsertStatusDuplicateReview(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
	status, msg := insertStatus(dup)
	if status != http.StatusConflict {
		t.Fatalf("duplicate key maps to %d, want 409", status)
	}
	if msg != "You have already reviewed this product" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestInsertStatusOtherError(t *testing.T) {
	status, _ := insertStatus(errors.New("connection reset"))
	if status != http.StatusInternalServerError {
		t.Fatalf("non-duplicate error maps to %d, want 500", status)
	}
}
