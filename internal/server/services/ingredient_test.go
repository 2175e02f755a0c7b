package services

import (
	"context"
	"errors"
	"testing"

	"github.com/burgerlab/backend/internal/common"
	"github.com/burgerlab/backend/internal/server/models"
)

type fakeIngredientsRepo struct {
	created   *models.Ingredient
	createErr error

	getOut *models.Ingredient
	getErr error

	existsOut bool
	existsErr error

	listOut []*models.Ingredient
	listErr error

	updatedName string
	updatedIng  *models.Ingredient
	updateErr   error

	deletedName string
	deleteErr   error
}

func (f *fakeIngredientsRepo) Create(ctx context.Context, ing *models.Ingredient) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = ing
	return nil
}
func (f *fakeIngredientsRepo) GetByName(ctx context.Context, name string) (*models.Ingredient, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}
func (f *fakeIngredientsRepo) Exists(ctx context.Context, name string) (bool, error) {
	return f.existsOut, f.existsErr
}
func (f *fakeIngredientsRepo) List(ctx context.Context) ([]*models.Ingredient, error) {
	return f.listOut, f.listErr
}
func (f *fakeIngredientsRepo) Update(ctx context.Context, name string, ing *models.Ingredient) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedName = name
	f.updatedIng = ing
	return nil
}
func (f *fakeIngredientsRepo) Delete(ctx context.Context, name string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedName = name
	return nil
}

func TestIngredientCreate(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeIngredientsRepo{}
	s := NewIngredientService(db, &fakeRepoManager{i: repo})
	if err := s.Create(context.Background(), "salad", 0.5); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if repo.created == nil || repo.created.Name != "salad" || repo.created.Price != 0.5 {
		t.Fatalf("bad created ingredient: %+v", repo.created)
	}

	sDup := NewIngredientService(db, &fakeRepoManager{i: &fakeIngredientsRepo{existsOut: true}})
	if err := sDup.Create(context.Background(), "salad", 0.5); !errors.Is(err, common.ErrAlreadyExists) {
		t.Fatalf("want ErrAlreadyExists, got %v", err)
	}
}

func TestIngredientUpdate_Guards(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	// a too-short rename and a too-low price both keep the stored values
	repo := &fakeIngredientsRepo{getOut: &models.Ingredient{Name: "salad", Price: 0.5}}
	s := NewIngredientService(db, &fakeRepoManager{i: repo})
	if err := s.Update(context.Background(), "salad", "ab", 0.1); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if repo.updatedIng.Name != "salad" || repo.updatedIng.Price != 0.5 {
		t.Fatalf("guards must keep stored values: %+v", repo.updatedIng)
	}

	// passing values are applied
	repo2 := &fakeIngredientsRepo{getOut: &models.Ingredient{Name: "salad", Price: 0.5}}
	s2 := NewIngredientService(db, &fakeRepoManager{i: repo2})
	if err := s2.Update(context.Background(), "salad", "bacon", 1.1); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if repo2.updatedName != "salad" || repo2.updatedIng.Name != "bacon" || repo2.updatedIng.Price != 1.1 {
		t.Fatalf("update not applied: key=%q ing=%+v", repo2.updatedName, repo2.updatedIng)
	}
}

func TestIngredientUpdate_RenameConflict(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeIngredientsRepo{
		getOut:    &models.Ingredient{Name: "salad", Price: 0.5},
		existsOut: true,
	}
	s := NewIngredientService(db, &fakeRepoManager{i: repo})
	if err := s.Update(context.Background(), "salad", "bacon", 1.1); !errors.Is(err, common.ErrAlreadyExists) {
		t.Fatalf("want ErrAlreadyExists, got %v", err)
	}
	if repo.updatedIng != nil {
		t.Fatalf("conflicting rename must not write")
	}
}

func TestIngredientUpdate_NotFound(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewIngredientService(db, &fakeRepoManager{i: &fakeIngredientsRepo{getErr: common.ErrNotFound}})
	if err := s.Update(context.Background(), "ghost", "bacon", 1.1); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestIngredientListGetDelete(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeIngredientsRepo{
		listOut: []*models.Ingredient{{Name: "bacon", Price: 0.7}, {Name: "salad", Price: 0.5}},
		getOut:  &models.Ingredient{Name: "bacon", Price: 0.7},
	}
	s := NewIngredientService(db, &fakeRepoManager{i: repo})

	list, err := s.List(context.Background())
	if err != nil || len(list) != 2 {
		t.Fatalf("List: got (%v, %v)", list, err)
	}

	ing, err := s.GetByName(context.Background(), "bacon")
	if err != nil || ing.Price != 0.7 {
		t.Fatalf("GetByName: got (%v, %v)", ing, err)
	}

	if err := s.Delete(context.Background(), "bacon"); err != nil || repo.deletedName != "bacon" {
		t.Fatalf("Delete: err=%v repo=%+v", err, repo)
	}
}
