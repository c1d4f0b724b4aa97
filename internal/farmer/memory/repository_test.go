package memory

import (
	"context"
	"errors"
	"testing"

	"krishisaathi/internal/farmer"
	"krishisaathi/internal/model"
)

func TestGetByID(t *testing.T) {
	repo := NewWith(model.Farmer{ID: "f1", Name: "Ramesh", State: "Maharashtra"})

	got, err := repo.GetByID(context.Background(), "f1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Ramesh" {
		t.Errorf("name = %q, want Ramesh", got.Name)
	}

	_, err = repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, farmer.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateLocation(t *testing.T) {
	repo := NewWith(model.Farmer{ID: "f1", State: "Punjab"})

	err := repo.UpdateLocation(context.Background(), "f1", farmer.ProfileUpdate{
		farmer.FieldDistrict: "Ludhiana",
		farmer.FieldVillage:  "Rampur",
	})
	if err != nil {
		t.Fatalf("UpdateLocation: %v", err)
	}

	got, _ := repo.GetByID(context.Background(), "f1")
	if got.State != "Punjab" || got.District != "Ludhiana" || got.Village != "Rampur" {
		t.Errorf("farmer = %+v, want untouched state plus new district and village", got)
	}

	err = repo.UpdateLocation(context.Background(), "missing", farmer.ProfileUpdate{farmer.FieldState: "Goa"})
	if !errors.Is(err, farmer.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestListOrderedByID(t *testing.T) {
	repo := NewWith(
		model.Farmer{ID: "f3"},
		model.Farmer{ID: "f1"},
		model.Farmer{ID: "f2"},
	)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, want := range []string{"f1", "f2", "f3"} {
		if got[i].ID != want {
			t.Errorf("got[%d].ID = %q, want %q", i, got[i].ID, want)
		}
	}
}
