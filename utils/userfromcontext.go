package utils

import (
	"net/http"

	"mercato/globals"
)

func GetUserIDFromRequest(r *http.Request) string {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok {
		return ""
	}
	return userID
}

func GetRoleFromRequest(r *http.Request) string {
	role, ok := r.Context().Value(globals.RoleKey).(string)
	if !ok {
		return ""
	}
	return role
}
