package product

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"terminal-terrace/catalog-service/internal/logger"
	productModel "terminal-terrace/catalog-service/internal/model/product"
	"terminal-terrace/catalog-service/internal/testutils"
	"terminal-terrace/catalog-service/internal/upstream"
)

func setupProductRouter(t *testing.T, catalog CatalogFetcher) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutils.SetupTestDB(t)
	service := NewProductService(NewProductRepository(db), catalog, logger.Discard())

	r := gin.New()
	RegisterRoutes(r, NewProductHandler(service))
	return r, db
}

func doGet(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestProductHandler_GetProduct(t *testing.T) {
	r, db := setupProductRouter(t, &mockCatalog{})
	p := testutils.CreateTestProduct(db)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantError  string
	}{
		{"found", "/products/" + strconv.Itoa(int(p.ID)), http.StatusOK, ""},
		{"absent", "/products/424242", http.StatusNotFound, "Product not found"},
		{"zero", "/products/0", http.StatusNotFound, "Product not found"},
		{"letters", "/products/abc", http.StatusBadRequest, "Invalid ID"},
		{"negative", "/products/-3", http.StatusBadRequest, "Invalid ID"},
		{"fraction", "/products/2.5", http.StatusBadRequest, "Invalid ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(r, tt.path)
			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantError != "" {
				var body map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.wantError, body["error"])
				return
			}

			var got productModel.Product
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, *p, got)
		})
	}
}

func TestProductHandler_ListAndSearch(t *testing.T) {
	r, db := setupProductRouter(t, &mockCatalog{})

	w := doGet(r, "/products")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	testutils.CreateTestProduct(db,
		testutils.WithTitle("Fjallraven Backpack"),
		testutils.WithDescription("Your perfect pack"),
		testutils.WithCategory("men's clothing"))
	testutils.CreateTestProduct(db,
		testutils.WithTitle("Silver Dragon Station Chain"),
		testutils.WithDescription("From our Legends Collection"),
		testutils.WithCategory("jewelery"))

	var all []productModel.Product
	w = doGet(r, "/products")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, 2)

	var found []productModel.Product
	w = doGet(r, "/products/search?q=JEWEL")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &found))
	require.Len(t, found, 1)
	assert.Equal(t, "Silver Dragon Station Chain", found[0].Title)

	w = doGet(r, "/products/search?q=")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &found))
	assert.Len(t, found, 2)

	w = doGet(r, "/products/search")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &found))
	assert.Len(t, found, 2)

	w = doGet(r, "/products/search?q=nothing-like-this")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestProductHandler_StorageFailure(t *testing.T) {
	r, db := setupProductRouter(t, &mockCatalog{})
	require.NoError(t, db.Migrator().DropTable(&productModel.Product{}))

	for _, path := range []string{"/products", "/products/search?q=a", "/products/1"} {
		t.Run(path, func(t *testing.T) {
			w := doGet(r, path)
			assert.Equal(t, http.StatusInternalServerError, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestProductHandler_GenerateProducts(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		catalog := &mockCatalog{items: []upstream.CatalogItem{
			catalogItem("Monitor", 599, 2.9, 250),
			catalogItem("SSD", 109, 4.8, 319),
		}}
		r, db := setupProductRouter(t, catalog)

		w := doGet(r, "/generate-products")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"message":"Products generated","inserted":2}`, w.Body.String())
		assert.EqualValues(t, 2, testutils.CountRows(db, &productModel.Product{}))
	})

	t.Run("upstream failure", func(t *testing.T) {
		r, db := setupProductRouter(t, &mockCatalog{err: errors.New("upstream timeout")})

		w := doGet(r, "/generate-products")
		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Contains(t, body["error"], "upstream timeout")
		assert.EqualValues(t, 0, testutils.CountRows(db, &productModel.Product{}))
	})
}
