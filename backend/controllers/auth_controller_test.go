package controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	app, _, _ := newTestEnv(t)

	req := jsonRequest(t, "POST", "/login", map[string]string{
		"username": "admin",
		"password": "password",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	decodeBody(t, resp, &result)
	assert.Equal(t, "Authentication successful", result["message"])
	assert.NotEmpty(t, result["token"])
}

func TestLoginIssuedTokenGrantsAdminAccess(t *testing.T) {
	app, db, _ := newTestEnv(t)
	comment := seedComment(t, db, 1, "pending")

	req := jsonRequest(t, "POST", "/login", map[string]string{
		"username": "admin",
		"password": "password",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	decodeBody(t, resp, &result)
	token, _ := result["token"].(string)
	require.NotEmpty(t, token)

	approve := jsonRequest(t, "PUT", "/approve/"+itoa(comment.ID), nil)
	approve.Header.Set("Authorization", "Bearer "+token)
	approveResp, err := app.Test(approve)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, approveResp.StatusCode)
}

func TestLoginWrongPassword(t *testing.T) {
	app, _, _ := newTestEnv(t)

	req := jsonRequest(t, "POST", "/login", map[string]string{
		"username": "admin",
		"password": "wrong",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLoginUnknownUser(t *testing.T) {
	app, _, _ := newTestEnv(t)

	req := jsonRequest(t, "POST", "/login", map[string]string{
		"username": "nobody",
		"password": "password",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
