package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/akoncore/BookingSystem/internal/api/handlers"
	"github.com/akoncore/BookingSystem/internal/domain"
)

type actorCtxKey struct{}

// Заголовки, проставляемые API-шлюзом после аутентификации
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

// Auth извлекает аутентифицированного актора из заголовков шлюза и кладет
// его в контекст запроса. Запросы без корректных заголовков отклоняются.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.Header.Get(HeaderUserID), 10, 64)
		if err != nil || id <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "отсутствует или некорректен заголовок X-User-ID")
			return
		}

		role := domain.Role(r.Header.Get(HeaderUserRole))
		if !domain.ValidRole(role) {
			handlers.RespondError(w, http.StatusUnauthorized, "отсутствует или некорректен заголовок X-User-Role")
			return
		}

		actor := domain.Actor{ID: id, Role: role}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorCtxKey{}, actor)))
	})
}

// ActorFromContext возвращает актора, положенного Auth middleware
func ActorFromContext(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorCtxKey{}).(domain.Actor)
	return actor, ok
}
