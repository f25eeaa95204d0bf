package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"nomad/infras/otel"
	userModel "nomad/internal/domains/user/model"
	userRepo "nomad/internal/domains/user/repository"
	"nomad/shared/constant"
	gDto "nomad/shared/dto"
	"nomad/shared/failure"
	"nomad/transport/http/response"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Manager guards endpoints whose body names a line manager.
type Manager interface {
	IsManager(http.Handler) http.Handler
}

type managerImpl struct {
	users userRepo.User
	otel  otel.Otel
}

func NewManagerMiddleware(users userRepo.User, otel otel.Otel) Manager {
	return &managerImpl{
		users: users,
		otel:  otel,
	}
}

type managerBody struct {
	ManagerID *string `json:"manager_id"`
}

// IsManager rejects the request with 404 when manager_id does not reference a user holding the
// manager role. Bodies without manager_id pass through untouched.
func (m *managerImpl) IsManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "manager.middleware")
		defer scope.End()

		body, err := io.ReadAll(request.Body)
		if err != nil {
			scope.TraceError(err)
			response.WithError(writer, failure.BadRequestFromString("failed to read request body"))

			return
		}

		request.Body.Close()
		request.Body = io.NopCloser(bytes.NewReader(body))

		var payload managerBody
		if len(bytes.TrimSpace(body)) > 0 {
			if err = json.Unmarshal(body, &payload); err != nil {
				scope.TraceError(err)
				response.WithError(writer, failure.BadRequestFromString("invalid request body"))

				return
			}
		}

		if payload.ManagerID == nil {
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttribute("manager_id", *payload.ManagerID)

		// a malformed id cannot name any user
		if uuid.Validate(*payload.ManagerID) != nil {
			response.WithError(writer, failure.NotFound(constant.ResponseUnknownLineManager))

			return
		}

		exist, err := m.users.Exist(ctx, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{
					Field:    userModel.FieldID,
					Operator: gDto.FilterOperatorEq,
					Value:    *payload.ManagerID,
					Table:    userModel.TableName,
				},
				gDto.Filter{
					Field:    userModel.FieldRoleID,
					Operator: gDto.FilterOperatorEq,
					Value:    constant.RoleIDManager,
					Table:    userModel.TableName,
				},
			},
		})
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to look up line manager")

			response.WithError(writer, err)

			return
		}

		if !exist {
			err = failure.NotFound(constant.ResponseUnknownLineManager)
			scope.TraceError(err)

			response.WithError(writer, err)

			return
		}

		next.ServeHTTP(writer, request)
	})
}
