package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/parlorchat/go-parlor/internal/database"
	"github.com/parlorchat/go-parlor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJwtSessionRoundTrip(t *testing.T) {
	app := newTestApp(t, &database.MockParlorRepository{})

	token, err := app.createJwtForSession(types.User{Id: 42}, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userId, err := app.extractUserIdFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, userId)
}

func TestExtractUserIdFromToken_Expired(t *testing.T) {
	app := newTestApp(t, &database.MockParlorRepository{})

	token, err := app.createJwtForSession(types.User{Id: 42}, -time.Hour)
	require.NoError(t, err)

	_, err = app.extractUserIdFromToken(token)
	assert.Error(t, err)
}

func TestExtractUserIdFromToken_WrongKey(t *testing.T) {
	app := newTestApp(t, &database.MockParlorRepository{})

	other := newTestApp(t, &database.MockParlorRepository{})
	other.signingKey = []byte("a-different-key")

	token, err := other.createJwtForSession(types.User{Id: 42}, time.Hour)
	require.NoError(t, err)

	_, err = app.extractUserIdFromToken(token)
	assert.Error(t, err)
}

func TestAuthMiddleware(t *testing.T) {
	app := newTestApp(t, &database.MockParlorRepository{})

	token, err := app.createJwtForSession(types.User{Id: 42}, time.Hour)
	require.NoError(t, err)

	tcases := []struct {
		name         string
		cookie       *http.Cookie
		expectedCode int
	}{
		{
			name:         "valid token passes through",
			cookie:       createJwtCookie(token, time.Hour),
			expectedCode: http.StatusOK,
		},
		{
			name:         "missing cookie is unauthorized",
			cookie:       nil,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "garbage token is unauthorized",
			cookie:       createJwtCookie("not-a-token", time.Hour),
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			var gotUserId int
			handler := app.authMiddleware(func(w http.ResponseWriter, r *http.Request) {
				gotUserId, _ = UserId(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/account", nil)
			if tc.cookie != nil {
				req.AddCookie(tc.cookie)
			}
			handler(rr, req)

			assert.Equal(t, tc.expectedCode, rr.Code)
			if tc.expectedCode == http.StatusOK {
				assert.Equal(t, 42, gotUserId)
			}
		})
	}
}

func TestRoomPasswordHashing(t *testing.T) {
	passwdHash, err := hashRoomPassword("sekret")
	require.NoError(t, err)
	assert.NotEqual(t, "sekret", passwdHash)

	assert.True(t, verifyRoomPassword(passwdHash, "sekret"))
	assert.False(t, verifyRoomPassword(passwdHash, "wrong"))
}
