package middleware_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"nomad/infras/otel/mocks"
	userMocks "nomad/internal/domains/user/mocks"
	"nomad/shared/constant"
	gDto "nomad/shared/dto"
	"nomad/transport/http/middleware"
)

func TestManager_IsManager(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(repo *userMocks.MockUser)
		wantStatus int
		wantNext   bool
		wantError  string
	}{
		{
			name:       "no manager_id passes through",
			body:       `{"department":"finance"}`,
			setupMock:  func(_ *userMocks.MockUser) {},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "empty body passes through",
			body:       ``,
			setupMock:  func(_ *userMocks.MockUser) {},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name: "known manager passes through",
			body: `{"manager_id":"7c9e6679-7425-40de-944b-e07fc1f90ae7"}`,
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, filter gDto.FilterGroup) (bool, error) {
						where, args := filter.GetWhereClause()
						assert.Equal(t, "(users.id = :id AND users.role_id = :role_id)", where)
						assert.Equal(t, "7c9e6679-7425-40de-944b-e07fc1f90ae7", args["id"])
						assert.Equal(t, constant.RoleIDManager, args["role_id"])

						return true, nil
					})
			},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name: "unknown manager stops the chain",
			body: `{"manager_id":"9b2d4c1e-3f5a-4e8b-9c7d-1a2b3c4d5e6f"}`,
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantStatus: http.StatusNotFound,
			wantError:  "Unknown line manager",
		},
		{
			name: "lookup failure",
			body: `{"manager_id":"7c9e6679-7425-40de-944b-e07fc1f90ae7"}`,
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "malformed id is an unknown manager",
			body:       `{"manager_id":"manager-1"}`,
			setupMock:  func(_ *userMocks.MockUser) {},
			wantStatus: http.StatusNotFound,
			wantError:  "Unknown line manager",
		},
		{
			name:       "malformed json",
			body:       `{"manager_id":`,
			setupMock:  func(_ *userMocks.MockUser) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := userMocks.NewMockUser(ctrl)
			tt.setupMock(repo)

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true

				// downstream handlers must still see the original body
				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				assert.Equal(t, tt.body, string(body))

				w.WriteHeader(http.StatusOK)
			})

			handler := middleware.NewManagerMiddleware(repo, mocks.NewOtel()).IsManager(next)

			req := httptest.NewRequest(http.MethodPatch, "/v1/profile/", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, called)

			if tt.wantError != "" {
				var res struct {
					Error string `json:"error"`
				}

				require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
				assert.Equal(t, tt.wantError, res.Error)
			}
		})
	}
}
