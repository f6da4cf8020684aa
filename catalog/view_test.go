package catalog

import (
	"errors"
	"testing"

	"github.com/mytheresa/product-categories/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	maxUser  = models.User{ID: 100, Name: "Max", Sex: models.SexMale}
	annaUser = models.User{ID: 101, Name: "Anna", Sex: models.SexFemale}
	dairy    = models.Category{ID: 10, Title: "Dairy", Icon: "🍦", OwnerID: 100}
	bakery   = models.Category{ID: 11, Title: "Bakery", Icon: "🍞", OwnerID: 101}
)

func TestBuildFullProducts(t *testing.T) {
	products := []models.Product{{ID: 1, Name: "Milk", CategoryID: 10}}

	rows, err := BuildFullProducts(products, []models.Category{dairy}, []models.User{maxUser})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, models.FullProduct{
		Product:  models.Product{ID: 1, Name: "Milk", CategoryID: 10},
		Category: dairy,
		Owner:    maxUser,
	}, rows[0])
}

func TestBuildFullProductsKeepsOrderAndReferences(t *testing.T) {
	products := []models.Product{
		{ID: 3, Name: "Bagel", CategoryID: 11},
		{ID: 1, Name: "Milk", CategoryID: 10},
		{ID: 2, Name: "Bread maker", CategoryID: 11},
	}

	rows, err := BuildFullProducts(products, []models.Category{dairy, bakery}, []models.User{maxUser, annaUser})
	require.NoError(t, err)
	require.Len(t, rows, len(products))

	for i, r := range rows {
		assert.Equal(t, products[i].ID, r.ID)
		assert.Equal(t, r.CategoryID, r.Category.ID)
		assert.Equal(t, r.Category.OwnerID, r.Owner.ID)
	}
	assert.Equal(t, "Anna", rows[0].Owner.Name)
	assert.Equal(t, "Max", rows[1].Owner.Name)
}

func TestBuildFullProductsEmpty(t *testing.T) {
	rows, err := BuildFullProducts(nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestBuildFullProductsLookupFailures(t *testing.T) {
	testCases := []struct {
		name       string
		products   []models.Product
		categories []models.Category
		users      []models.User
		want       LookupError
	}{
		{
			name:       "Missing category",
			products:   []models.Product{{ID: 7, Name: "Juice", CategoryID: 99}},
			categories: []models.Category{dairy},
			users:      []models.User{maxUser},
			want:       LookupError{Entity: "category", ID: 99, Referrer: "product", ReferrerID: 7},
		},
		{
			name:       "Missing owner",
			products:   []models.Product{{ID: 8, Name: "Bagel", CategoryID: 11}},
			categories: []models.Category{bakery},
			users:      []models.User{maxUser},
			want:       LookupError{Entity: "owner", ID: 101, Referrer: "category", ReferrerID: 11},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rows, err := BuildFullProducts(tc.products, tc.categories, tc.users)
			assert.Nil(t, rows)
			assert.ErrorIs(t, err, ErrLookup)

			var lookupErr *LookupError
			require.True(t, errors.As(err, &lookupErr))
			assert.Equal(t, tc.want, *lookupErr)
		})
	}
}

func TestLookupErrorMessage(t *testing.T) {
	err := &LookupError{Entity: "category", ID: 99, Referrer: "product", ReferrerID: 7}
	assert.Equal(t, "category 99 referenced by product 7 not found", err.Error())
}
