package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averros/digiwallet/internal/pkg/models"
	"github.com/averros/digiwallet/services/fraud/mocks"
)

func newAdminContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRescan_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockFraudUC(ctrl)
	mockUC.EXPECT().
		Rescan(gomock.Any()).
		Return(&models.RescanSummary{ScannedSenders: 12, NewlyFlagged: 3}, nil)

	h := NewFraudHandler(mockUC)
	c, rec := newAdminContext(http.MethodPost, "/api/v1/admin/fraud/rescan")

	require.NoError(t, h.Rescan(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"newly_flagged":3`)
}

func TestRescan_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockFraudUC(ctrl)
	mockUC.EXPECT().Rescan(gomock.Any()).Return(nil, errors.New("read timeout"))

	h := NewFraudHandler(mockUC)
	c, rec := newAdminContext(http.MethodPost, "/api/v1/admin/fraud/rescan")

	require.NoError(t, h.Rescan(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestListFlagged_DefaultLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockFraudUC(ctrl)
	mockUC.EXPECT().
		ListFlagged(gomock.Any(), defaultFlaggedLimit).
		Return([]models.Transaction{{ID: uuid.New(), IsFlagged: true}}, nil)

	h := NewFraudHandler(mockUC)
	c, rec := newAdminContext(http.MethodGet, "/api/v1/admin/transactions/flagged")

	require.NoError(t, h.ListFlagged(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListFlagged_InvalidLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockFraudUC(ctrl)

	h := NewFraudHandler(mockUC)
	c, rec := newAdminContext(http.MethodGet, "/api/v1/admin/transactions/flagged?limit=-1")

	require.NoError(t, h.ListFlagged(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
