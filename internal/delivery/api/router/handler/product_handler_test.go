package handler

import (
	"net/http"
	"testing"

	"ecobazaar/internal/domain/entity"
	domainerrors "ecobazaar/internal/domain/errors"
	mockUsecase "ecobazaar/internal/mocks/usecase"
	"ecobazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductHandler_ListProducts(t *testing.T) {
	productUC := mockUsecase.NewMockProductUsecase(t)
	h := NewProductHandler(ProductHandlerParams{ProductUC: productUC})
	categoryID := uuid.New()
	c, rec := newTestContext(http.MethodGet, "/api/v1/products?categoryId="+categoryID.String()+"&eco=true", "")

	productUC.EXPECT().ListProducts(mock.Anything, usecase.ProductFilter{CategoryID: &categoryID, EcoOnly: true, ActiveOnly: true}).
		Return([]usecase.ProductDetails{{ID: uuid.New(), Name: "Bamboo Toothbrush", Status: entity.StatusApproved}}, nil)

	require.NoError(t, h.ListProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got []usecase.ProductDetails
	decodeData(t, rec, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "Bamboo Toothbrush", got[0].Name)
}

func TestProductHandler_ListProducts_BadFilter(t *testing.T) {
	h := NewProductHandler(ProductHandlerParams{ProductUC: mockUsecase.NewMockProductUsecase(t)})
	c, rec := newTestContext(http.MethodGet, "/api/v1/products?sellerId=abc", "")

	require.NoError(t, h.ListProducts(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductHandler_GetProduct(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		productUC := mockUsecase.NewMockProductUsecase(t)
		h := NewProductHandler(ProductHandlerParams{ProductUC: productUC})
		productID := uuid.New()
		c, rec := newTestContext(http.MethodGet, "/api/v1/products/"+productID.String(), "", "id", productID.String())

		productUC.EXPECT().GetProduct(mock.Anything, productID).Return(&usecase.ProductDetails{
			ID:          productID,
			Name:        "Organic Cotton Tote",
			ScoreResult: usecase.ScoreResult{CarbonScore: dec("0.35"), EcoPoints: 3, CarbonReduction: dec("0.15")},
		}, nil)

		require.NoError(t, h.GetProduct(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"carbonScore":"0.35"`)
		assert.Contains(t, rec.Body.String(), `"ecoPoints":3`)
	})

	t.Run("unknown", func(t *testing.T) {
		productUC := mockUsecase.NewMockProductUsecase(t)
		h := NewProductHandler(ProductHandlerParams{ProductUC: productUC})
		productID := uuid.New()
		c, rec := newTestContext(http.MethodGet, "/api/v1/products/"+productID.String(), "", "id", productID.String())

		productUC.EXPECT().GetProduct(mock.Anything, productID).Return(nil, domainerrors.ErrProductNotFound)

		require.NoError(t, h.GetProduct(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		h := NewProductHandler(ProductHandlerParams{ProductUC: mockUsecase.NewMockProductUsecase(t)})
		c, rec := newTestContext(http.MethodGet, "/api/v1/products/42", "", "id", "42")

		require.NoError(t, h.GetProduct(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProductHandler_PreviewScore(t *testing.T) {
	decimalOf := func(want string) any {
		return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(dec(want)) })
	}

	t.Run("scores", func(t *testing.T) {
		productUC := mockUsecase.NewMockProductUsecase(t)
		h := NewProductHandler(ProductHandlerParams{ProductUC: productUC})
		c, rec := newTestContext(http.MethodPost, "/api/v1/carbon/score", `{"weightKg":"2","shippingDistanceKm":100,"isEcoFriendly":true}`)

		productUC.EXPECT().PreviewScore(mock.Anything, decimalOf("2"), decimalOf("100"), true).
			Return(&usecase.ScoreResult{CarbonScore: dec("14"), EcoPoints: 100, CarbonReduction: dec("6")}, nil)

		require.NoError(t, h.PreviewScore(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"carbonScore":"14"`)
	})

	t.Run("negative attribute", func(t *testing.T) {
		productUC := mockUsecase.NewMockProductUsecase(t)
		h := NewProductHandler(ProductHandlerParams{ProductUC: productUC})
		c, rec := newTestContext(http.MethodPost, "/api/v1/carbon/score", `{"weightKg":"-1","shippingDistanceKm":"10"}`)

		productUC.EXPECT().PreviewScore(mock.Anything, decimalOf("-1"), decimalOf("10"), false).
			Return(nil, domainerrors.ErrInvalidAttribute.WrapMessage("weightKg must not be negative"))

		require.NoError(t, h.PreviewScore(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		errInfo := decodeError(t, rec)
		assert.Equal(t, "INVALID_ATTRIBUTE", errInfo.Code)
		assert.Equal(t, "weightKg must not be negative", errInfo.Details)
	})

	t.Run("malformed body", func(t *testing.T) {
		h := NewProductHandler(ProductHandlerParams{ProductUC: mockUsecase.NewMockProductUsecase(t)})
		c, rec := newTestContext(http.MethodPost, "/api/v1/carbon/score", `{"weightKg":`)

		require.NoError(t, h.PreviewScore(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
