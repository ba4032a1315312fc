package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/TableBookingService/internal/api/handlers"
	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/integrations/staffservice"
)

// UserIDHeader заголовок с ID пользователя, проставляемый gateway
const UserIDHeader = "X-User-ID"

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidUserID = "некорректный ID пользователя"
	msgNotStaff      = "пользователь не является активным сотрудником"
	msgStaffService  = "сервис персонала недоступен"
)

type contextKey string

const actorKey contextKey = "actor"

// ActorResolver интерфейс получения роли и филиала сотрудника
type ActorResolver interface {
	ResolveActor(ctx context.Context, userID int64) (domain.Actor, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth проверяет X-User-ID и кладёт исполнителя в контекст
func Auth(resolver ActorResolver, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(UserIDHeader)
			if raw == "" {
				handlers.RespondUnauthorized(w, msgMissingUserID)
				return
			}

			userID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || userID <= 0 {
				handlers.RespondUnauthorized(w, msgInvalidUserID)
				return
			}

			actor, err := resolver.ResolveActor(r.Context(), userID)
			if err != nil {
				switch {
				case errors.Is(err, staffservice.ErrStaffNotFound), errors.Is(err, staffservice.ErrStaffInactive):
					log.Warn("Auth - user_id=%d rejected: %v", userID, err)
					handlers.RespondForbidden(w, msgNotStaff)
				default:
					log.Error("Auth - failed to resolve user_id=%d: %v", userID, err)
					handlers.RespondError(w, http.StatusServiceUnavailable, msgStaffService)
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

// WithActor кладёт исполнителя в контекст
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// GetActor исполнитель из контекста
func GetActor(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(domain.Actor)
	return actor, ok
}

// GetUserID ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	actor, ok := GetActor(ctx)
	if !ok {
		return 0, false
	}
	return actor.UserID, true
}
