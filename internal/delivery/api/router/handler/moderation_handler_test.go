package handler

import (
	"net/http"
	"testing"

	domainerrors "ecobazaar/internal/domain/errors"
	mockUsecase "ecobazaar/internal/mocks/usecase"
	"ecobazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestModerationHandler_Actions(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name   string
		method string
		body   string
		expect func(m *mockUsecase.MockModerationUsecase)
		call   func(h *ModerationHandler, c echo.Context) error
	}{
		{
			name:   "approve seller",
			method: http.MethodPost,
			body:   `{"notes":"Welcome aboard"}`,
			expect: func(m *mockUsecase.MockModerationUsecase) {
				m.EXPECT().ApproveSeller(mock.Anything, id, "Welcome aboard").Return(nil)
			},
			call: (*ModerationHandler).ApproveSeller,
		},
		{
			name:   "reject seller without notes",
			method: http.MethodPost,
			expect: func(m *mockUsecase.MockModerationUsecase) {
				m.EXPECT().RejectSeller(mock.Anything, id, "").Return(nil)
			},
			call: (*ModerationHandler).RejectSeller,
		},
		{
			name:   "block seller",
			method: http.MethodPost,
			body:   `{"reason":"Counterfeit goods"}`,
			expect: func(m *mockUsecase.MockModerationUsecase) {
				m.EXPECT().BlockSeller(mock.Anything, id, "Counterfeit goods").Return(nil)
			},
			call: (*ModerationHandler).BlockSeller,
		},
		{
			name:   "deactivate user",
			method: http.MethodPut,
			body:   `{"isActive":false}`,
			expect: func(m *mockUsecase.MockModerationUsecase) {
				m.EXPECT().UpdateUserStatus(mock.Anything, id, false).Return(nil)
			},
			call: (*ModerationHandler).UpdateUserStatus,
		},
		{
			name:   "reject user",
			method: http.MethodPost,
			expect: func(m *mockUsecase.MockModerationUsecase) {
				m.EXPECT().RejectUser(mock.Anything, id).Return(nil)
			},
			call: (*ModerationHandler).RejectUser,
		},
		{
			name:   "approve admin",
			method: http.MethodPost,
			expect: func(m *mockUsecase.MockModerationUsecase) {
				m.EXPECT().ApproveAdmin(mock.Anything, id).Return(nil)
			},
			call: (*ModerationHandler).ApproveAdmin,
		},
		{
			name:   "approve product",
			method: http.MethodPost,
			body:   `{"notes":"Looks great"}`,
			expect: func(m *mockUsecase.MockModerationUsecase) {
				m.EXPECT().ApproveProduct(mock.Anything, id, "Looks great").Return(nil)
			},
			call: (*ModerationHandler).ApproveProduct,
		},
		{
			name:   "reject product",
			method: http.MethodPost,
			body:   `{"reason":"Missing shipping data"}`,
			expect: func(m *mockUsecase.MockModerationUsecase) {
				m.EXPECT().RejectProduct(mock.Anything, id, "Missing shipping data").Return(nil)
			},
			call: (*ModerationHandler).RejectProduct,
		},
		{
			name:   "activate product",
			method: http.MethodPut,
			body:   `{"isActive":true}`,
			expect: func(m *mockUsecase.MockModerationUsecase) {
				m.EXPECT().UpdateProductStatus(mock.Anything, id, true).Return(nil)
			},
			call: (*ModerationHandler).UpdateProductStatus,
		},
		{
			name:   "remove product",
			method: http.MethodDelete,
			body:   `{"reason":"Prohibited item"}`,
			expect: func(m *mockUsecase.MockModerationUsecase) {
				m.EXPECT().RemoveProduct(mock.Anything, id, "Prohibited item").Return(nil)
			},
			call: (*ModerationHandler).RemoveProduct,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moderationUC := mockUsecase.NewMockModerationUsecase(t)
			h := NewModerationHandler(ModerationHandlerParams{ModerationUC: moderationUC})
			c, rec := newTestContext(tt.method, "/api/v1/admin/x/"+id.String(), tt.body, "id", id.String())
			tt.expect(moderationUC)

			require.NoError(t, tt.call(h, c))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), "successfully")
		})
	}
}

func TestModerationHandler_RequestErrors(t *testing.T) {
	t.Run("status is required", func(t *testing.T) {
		h := NewModerationHandler(ModerationHandlerParams{ModerationUC: mockUsecase.NewMockModerationUsecase(t)})
		id := uuid.NewString()
		c, rec := newTestContext(http.MethodPut, "/api/v1/admin/users/"+id+"/status", `{}`, "id", id)

		require.NoError(t, h.UpdateUserStatus(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "isActive is required", decodeError(t, rec).Details)
	})

	t.Run("block needs a reason", func(t *testing.T) {
		h := NewModerationHandler(ModerationHandlerParams{ModerationUC: mockUsecase.NewMockModerationUsecase(t)})
		id := uuid.NewString()
		c, rec := newTestContext(http.MethodPost, "/api/v1/admin/sellers/"+id+"/block", `{}`, "id", id)

		require.NoError(t, h.BlockSeller(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		h := NewModerationHandler(ModerationHandlerParams{ModerationUC: mockUsecase.NewMockModerationUsecase(t)})
		c, rec := newTestContext(http.MethodPost, "/api/v1/admin/sellers/seller-1/approve", `{}`, "id", "seller-1")

		require.NoError(t, h.ApproveSeller(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid id", decodeError(t, rec).Details)
	})

	t.Run("unknown seller", func(t *testing.T) {
		moderationUC := mockUsecase.NewMockModerationUsecase(t)
		h := NewModerationHandler(ModerationHandlerParams{ModerationUC: moderationUC})
		id := uuid.New()
		c, rec := newTestContext(http.MethodPost, "/api/v1/admin/sellers/"+id.String()+"/approve", "", "id", id.String())

		moderationUC.EXPECT().ApproveSeller(mock.Anything, id, "").Return(domainerrors.ErrSellerNotFound)

		require.NoError(t, h.ApproveSeller(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestModerationHandler_UpdateProductEcoData(t *testing.T) {
	moderationUC := mockUsecase.NewMockModerationUsecase(t)
	h := NewModerationHandler(ModerationHandlerParams{ModerationUC: moderationUC})
	productID := uuid.New()
	c, rec := newTestContext(http.MethodPut, "/api/v1/admin/products/"+productID.String()+"/eco-data",
		`{"isEcoFriendly":true,"weightKg":"1.5","adminNotes":"Verified supplier"}`, "id", productID.String())

	moderationUC.EXPECT().UpdateProductEcoData(mock.Anything, productID, mock.MatchedBy(func(in usecase.EcoDataInput) bool {
		return in.IsEcoFriendly && in.WeightKg != nil && in.WeightKg.Equal(dec("1.5")) &&
			in.ShippingDistanceKm == nil && in.AdminNotes == "Verified supplier"
	})).Return(&usecase.ProductDetails{ID: productID, IsEcoFriendly: true}, nil)

	require.NoError(t, h.UpdateProductEcoData(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"isEcoFriendly":true`)
}
