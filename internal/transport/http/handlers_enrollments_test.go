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

func newEnrollmentRouter(t *testing.T) (*mocks.MockEnrollmentService, chi.Router) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockEnrollmentService(ctrl)
	router := chi.NewRouter()
	NewEnrollmentHandler(mockService, slog.Default()).Register(router, passthroughGuard)
	return mockService, router
}

func TestHandleEnroll(t *testing.T) {
	t.Run("enrolls client - 200", func(t *testing.T) {
		mockService, router := newEnrollmentRouter(t)
		mockService.EXPECT().
			Enroll(gomock.Any(), models.EnrollmentRequest{ClientID: 1, ProgramID: 2}).
			Return(&models.EnrollmentResult{Message: "Client enrolled successfully"}, nil)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/enrollments/", map[string]int{
			"client_id":  1,
			"program_id": 2,
		})
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatus(t, rr, http.StatusOK)
		got := testutil.UnmarshalResponse[models.EnrollmentResult](t, rr)
		assert.Equal(t, "Client enrolled successfully", got.Message)
	})

	t.Run("unknown client returns 404", func(t *testing.T) {
		mockService, router := newEnrollmentRouter(t)
		mockService.EXPECT().
			Enroll(gomock.Any(), models.EnrollmentRequest{ClientID: 99, ProgramID: 1}).
			Return(nil, dErrors.New(dErrors.CodeNotFound, "client not found"))

		req := testutil.NewJSONRequest(t, http.MethodPost, "/enrollments/", map[string]int{
			"client_id":  99,
			"program_id": 1,
		})
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatusAndError(t, rr, http.StatusNotFound, string(dErrors.CodeNotFound))
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		mockService, router := newEnrollmentRouter(t)
		mockService.EXPECT().Enroll(gomock.Any(), gomock.Any()).Times(0)

		req := testutil.NewRequestWithBody(t, http.MethodPost, "/enrollments/", `{"client_id": "one"}`)
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, string(dErrors.CodeBadRequest))
	})
}
