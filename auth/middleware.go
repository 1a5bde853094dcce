package auth

import (
	"net/http"
	"strings"

	"github.com/user/payroll-go/apperror"
)

// Guard creates the bearer-token middleware.
// It verifies the token from the Authorization header and adds the Identity to the context.
// The returned middleware conforms to the standard Go `func(next http.Handler) http.Handler` pattern.
func Guard(tokens *TokenService, mapper *apperror.Mapper) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				mapper.Write(w, r, apperror.NewMissingTokenError("a bearer token is required to access this resource"))
				return
			}

			claims, err := tokens.Verify(tokenString)
			if err != nil {
				mapper.Write(w, r, err)
				return
			}

			ctx := NewContextWithIdentity(r.Context(), Identity{UserID: claims.UserID, Email: claims.Email})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the credential from a "Bearer {token}" header value.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
