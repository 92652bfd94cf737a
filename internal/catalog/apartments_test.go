package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gizmo3030/duneplan/internal/models"
)

func TestLoadApartmentRecipes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apartments.json")
	doc := `{
	  "arrakeen_small_apartment": [
	    {"material": "Silicone Block", "quantity": 25}
	  ]
	}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	recipes, err := LoadApartmentRecipes(path)
	if err != nil {
		t.Fatalf("LoadApartmentRecipes failed: %v", err)
	}
	lines := recipes[models.ArrakeenSmallApartment]
	if len(lines) != 1 || lines[0].Material != "Silicone Block" || lines[0].Quantity != 25 {
		t.Errorf("recipe = %+v", lines)
	}
}

func TestLoadApartmentRecipesRejectsNegative(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apartments.json")
	doc := `{"x": [{"material": "Steel", "quantity": -1}]}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadApartmentRecipes(path); err == nil {
		t.Fatal("negative quantity accepted")
	}
}

func TestApartmentRecipesOverride(t *testing.T) {
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "items_data.json")
	doc := `{
	  "arrakeen_small_apartment": [
	    {"material": "Plastanium Ingot", "quantity": 99}
	  ]
	}`
	if err := os.WriteFile(filepath.Join(dir, "apartments.json"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	recipes, err := ApartmentRecipes(catalogPath)
	if err != nil {
		t.Fatalf("ApartmentRecipes failed: %v", err)
	}
	lines := recipes[models.ArrakeenSmallApartment]
	if len(lines) != 1 || lines[0].Material != "Plastanium Ingot" {
		t.Errorf("override not applied: %+v", lines)
	}
}

func TestApartmentRecipesFallsBackToDefaults(t *testing.T) {
	catalogPath := filepath.Join(t.TempDir(), "items_data.json")

	recipes, err := ApartmentRecipes(catalogPath)
	if err != nil {
		t.Fatalf("ApartmentRecipes failed: %v", err)
	}
	want := models.DefaultApartmentRecipes()
	for _, id := range models.AllApartmentTypes() {
		if len(recipes[id]) != len(want[id]) {
			t.Errorf("recipe for %s = %+v, want defaults", id, recipes[id])
		}
	}
}

func TestApartmentRecipesBadOverrideIsAnError(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "apartments.json"), []byte(`not json`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ApartmentRecipes(filepath.Join(dir, "items_data.json")); err == nil {
		t.Fatal("malformed override accepted")
	}
}

func TestDefaultApartmentRecipesCoverAllTypes(t *testing.T) {
	recipes := models.DefaultApartmentRecipes()
	for _, id := range models.AllApartmentTypes() {
		if len(recipes[id]) == 0 {
			t.Errorf("no recipe for %s", id)
		}
	}
}
