package httptransport

import (
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"healthregistry/internal/registry/models"
	"healthregistry/internal/transport/http/mocks"
	dErrors "healthregistry/pkg/domain-errors"
	"healthregistry/pkg/testutil"
)

func newClientRouter(t *testing.T) (*mocks.MockClientService, chi.Router) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockClientService(ctrl)
	router := chi.NewRouter()
	NewClientHandler(mockService, slog.Default()).Register(router, passthroughGuard)
	return mockService, router
}

func validClientBody() map[string]string {
	return map[string]string{
		"first_name":     "John",
		"last_name":      "Mwangi",
		"date_of_birth":  "1990-01-01",
		"gender":         "Male",
		"contact_number": "0712345678",
		"address":        "123 Nairobi",
	}
}

func TestHandleCreateClient(t *testing.T) {
	t.Run("creates client - 200", func(t *testing.T) {
		mockService, router := newClientRouter(t)
		created := &models.Client{ID: 1, FirstName: "John", LastName: "Mwangi", EnrolledPrograms: []int{}}
		mockService.EXPECT().CreateClient(gomock.Any(), models.CreateClientRequest{
			FirstName:     "John",
			LastName:      "Mwangi",
			DateOfBirth:   "1990-01-01",
			Gender:        "Male",
			ContactNumber: "0712345678",
			Address:       "123 Nairobi",
		}).Return(created, nil)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/clients/", validClientBody())
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatus(t, rr, http.StatusOK)
		got := testutil.UnmarshalResponse[models.Client](t, rr)
		assert.Equal(t, 1, got.ID)
		assert.Equal(t, "John", got.FirstName)
		assert.NotNil(t, got.EnrolledPrograms)
		assert.Empty(t, got.EnrolledPrograms)
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		mockService, router := newClientRouter(t)
		mockService.EXPECT().CreateClient(gomock.Any(), gomock.Any()).Times(0)

		req := testutil.NewRequestWithBody(t, http.MethodPost, "/clients/", "{bad-json")
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, string(dErrors.CodeBadRequest))
	})

	t.Run("missing field returns 400", func(t *testing.T) {
		mockService, router := newClientRouter(t)
		mockService.EXPECT().CreateClient(gomock.Any(), gomock.Any()).Times(0)

		body := validClientBody()
		delete(body, "contact_number")
		req := testutil.NewJSONRequest(t, http.MethodPost, "/clients/", body)
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, string(dErrors.CodeInvalidInput))
	})
}

func TestHandleGetClient(t *testing.T) {
	t.Run("returns client by id - 200", func(t *testing.T) {
		mockService, router := newClientRouter(t)
		mockService.EXPECT().GetClient(gomock.Any(), 7).
			Return(&models.Client{ID: 7, FirstName: "Jane", EnrolledPrograms: []int{1}}, nil)

		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/clients/7"))

		testutil.AssertStatus(t, rr, http.StatusOK)
		got := testutil.UnmarshalResponse[models.Client](t, rr)
		assert.Equal(t, 7, got.ID)
		assert.Equal(t, []int{1}, got.EnrolledPrograms)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		mockService, router := newClientRouter(t)
		mockService.EXPECT().GetClient(gomock.Any(), 99).
			Return(nil, dErrors.New(dErrors.CodeNotFound, "client not found"))

		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/clients/99"))

		testutil.AssertStatusAndError(t, rr, http.StatusNotFound, string(dErrors.CodeNotFound))
	})

	t.Run("non-integer id returns 400 without hitting the service", func(t *testing.T) {
		mockService, router := newClientRouter(t)
		mockService.EXPECT().GetClient(gomock.Any(), gomock.Any()).Times(0)

		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/clients/abc"))

		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, string(dErrors.CodeInvalidInput))
	})
}

func TestHandleSearchClients(t *testing.T) {
	t.Run("passes query through - 200", func(t *testing.T) {
		mockService, router := newClientRouter(t)
		mockService.EXPECT().SearchClients(gomock.Any(), "john").
			Return([]*models.Client{{ID: 1, FirstName: "John", EnrolledPrograms: []int{}}}, nil)

		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/clients/search/?query=john"))

		testutil.AssertStatus(t, rr, http.StatusOK)
		got := testutil.UnmarshalResponse[[]models.Client](t, rr)
		assert.Len(t, *got, 1)
	})

	t.Run("missing query param searches with empty query", func(t *testing.T) {
		mockService, router := newClientRouter(t)
		mockService.EXPECT().SearchClients(gomock.Any(), "").
			Return([]*models.Client{}, nil)

		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/clients/search/"))

		testutil.AssertStatus(t, rr, http.StatusOK)
	})
}

func TestHandleListClients(t *testing.T) {
	mockService, router := newClientRouter(t)
	mockService.EXPECT().ListClients(gomock.Any()).Return([]*models.Client{
		{ID: 1, FirstName: "John", EnrolledPrograms: []int{}},
		{ID: 2, FirstName: "Jane", EnrolledPrograms: []int{}},
	}, nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/clients/"))

	testutil.AssertStatus(t, rr, http.StatusOK)
	got := testutil.UnmarshalResponse[[]models.Client](t, rr)
	assert.Len(t, *got, 2)
}
