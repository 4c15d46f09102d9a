package httptransport

import (
	"log/slog"
	"net/http"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	authmodels "healthregistry/internal/auth/models"
	"healthregistry/internal/transport/http/mocks"
	dErrors "healthregistry/pkg/domain-errors"
	"healthregistry/pkg/testutil"
)

func newAuthRouter(t *testing.T) (*mocks.MockAuthService, chi.Router) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockAuthService(ctrl)
	router := chi.NewRouter()
	NewAuthHandler(mockService, slog.Default()).Register(router)
	return mockService, router
}

func loginForm(username, password string) url.Values {
	form := url.Values{}
	if username != "" {
		form.Set("username", username)
	}
	if password != "" {
		form.Set("password", password)
	}
	return form
}

func TestHandleLogin(t *testing.T) {
	t.Run("valid credentials return a bearer token - 200", func(t *testing.T) {
		mockService, router := newAuthRouter(t)
		mockService.EXPECT().
			Login(gomock.Any(), "doctor", "password123").
			Return(&authmodels.TokenResult{AccessToken: "signed-token", TokenType: "bearer"}, nil)

		req := testutil.NewFormRequest(t, http.MethodPost, "/token", loginForm("doctor", "password123"))
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatus(t, rr, http.StatusOK)
		got := testutil.UnmarshalResponse[authmodels.TokenResult](t, rr)
		assert.Equal(t, "signed-token", got.AccessToken)
		assert.Equal(t, "bearer", got.TokenType)
	})

	t.Run("bad credentials return 400", func(t *testing.T) {
		mockService, router := newAuthRouter(t)
		mockService.EXPECT().
			Login(gomock.Any(), "doctor", "wrong").
			Return(nil, dErrors.New(dErrors.CodeBadRequest, "incorrect username or password"))

		req := testutil.NewFormRequest(t, http.MethodPost, "/token", loginForm("doctor", "wrong"))
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, string(dErrors.CodeBadRequest))
	})

	t.Run("missing username returns 400 without hitting the service", func(t *testing.T) {
		mockService, router := newAuthRouter(t)
		mockService.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		req := testutil.NewFormRequest(t, http.MethodPost, "/token", loginForm("", "password123"))
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, string(dErrors.CodeBadRequest))
	})

	t.Run("missing password returns 400 without hitting the service", func(t *testing.T) {
		mockService, router := newAuthRouter(t)
		mockService.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		req := testutil.NewFormRequest(t, http.MethodPost, "/token", loginForm("doctor", ""))
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, string(dErrors.CodeBadRequest))
	})
}
