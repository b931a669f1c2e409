package controllers_test

import (
	"net/http"
	"testing"

	"github.com/nexkart/nexkart-api/initializers"
	"github.com/nexkart/nexkart-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signupBody(id, name, password, email string) map[string]string {
	return map[string]string{"id": id, "name": name, "password": password, "email": email}
}

func TestSignupCreatesUser(t *testing.T) {
	server := setupServer(t)

	rec := doJSON(t, server, http.MethodPost, "/signup", signupBody("u1", "A", "p", "a@b.com"))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var count int64
	initializers.DB.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestSignupRejectsDuplicates(t *testing.T) {
	server := setupServer(t)

	rec := doJSON(t, server, http.MethodPost, "/signup", signupBody("u1", "A", "p", "a@b.com"))
	require.Equal(t, http.StatusCreated, rec.Code)

	// Same id, different email.
	rec = doJSON(t, server, http.MethodPost, "/signup", signupBody("u1", "B", "q", "other@b.com"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Same email, different id.
	rec = doJSON(t, server, http.MethodPost, "/signup", signupBody("u2", "B", "q", "a@b.com"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Identical repeat of the original call.
	rec = doJSON(t, server, http.MethodPost, "/signup", signupBody("u1", "A", "p", "a@b.com"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var count int64
	initializers.DB.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestSignupValidatesInput(t *testing.T) {
	server := setupServer(t)

	rec := doJSON(t, server, http.MethodPost, "/signup", map[string]string{"id": "u1", "name": "A", "password": "p"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, server, http.MethodPost, "/signup", signupBody("u1", "A", "p", "not-an-email"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var count int64
	initializers.DB.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestLogin(t *testing.T) {
	server := setupServer(t)

	rec := doJSON(t, server, http.MethodPost, "/signup", signupBody("u1", "A", "Secret", "a@b.com"))
	require.Equal(t, http.StatusCreated, rec.Code)

	// By id.
	rec = doJSON(t, server, http.MethodPost, "/login", map[string]string{"id": "u1", "password": "Secret"})
	assert.Equal(t, http.StatusOK, rec.Code)

	// The same identifier field also matches the stored email.
	rec = doJSON(t, server, http.MethodPost, "/login", map[string]string{"id": "a@b.com", "password": "Secret"})
	assert.Equal(t, http.StatusOK, rec.Code)

	// Password comparison is case-sensitive and exact.
	rec = doJSON(t, server, http.MethodPost, "/login", map[string]string{"id": "u1", "password": "secret"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, server, http.MethodPost, "/login", map[string]string{"id": "nobody", "password": "Secret"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUsersRedactsPasswords(t *testing.T) {
	server := setupServer(t)

	rec := doJSON(t, server, http.MethodPost, "/signup", signupBody("u1", "A", "TopSecret", "a@b.com"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, server, http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	users := decodeList(t, rec)
	require.Len(t, users, 1)
	assert.Equal(t, "a@b.com", users[0]["email"])
	assert.NotContains(t, rec.Body.String(), "TopSecret")
	assert.NotContains(t, users[0], "password")
}
