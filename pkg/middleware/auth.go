package middleware

import (
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/pkg/auth"
	"github.com/shashiranjanraj/vastra/pkg/response"
)

// Identity resolves a Bearer token to an auth.Identity in the request
// context. Anonymous and bad-token requests pass through without an
// identity: the services decide per operation whether one is required, so
// public catalogue reads and authenticated mutations can share one route
// group (and the GraphQL endpoint can serve both).
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := identityFromRequest(r); ok {
			r = r.WithContext(auth.WithIdentity(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}

// Authenticate rejects requests that carry no valid identity. For routes
// that are meaningless anonymously, like the profile endpoint.
func Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := identityFromRequest(r)
		if !ok {
			response.Unauthorized(w)
			return
		}
		next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), id)))
	})
}

func identityFromRequest(r *http.Request) (auth.Identity, bool) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return auth.Identity{}, false
	}

	claims, err := auth.ValidateToken(token)
	if err != nil {
		return auth.Identity{}, false
	}

	uid, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return auth.Identity{}, false
	}

	return auth.Identity{ID: uid, IsInternal: claims.IsInternal}, true
}
