package middleware

import "context"

// userIDKey is the key used to store the authenticated user's GUID in the
// request context.
const userIDKey = contextKey("userID")

// charityUserKey marks the authenticated principal as charity staff.
const charityUserKey = contextKey("charityUser")

// GetUserIDFromCtx retrieves the authenticated user GUID from the context.
// It returns the GUID and a boolean indicating if it was found.
func GetUserIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// IsCharityUserFromCtx reports whether the authenticated principal is charity
// staff, per its token claims.
func IsCharityUserFromCtx(ctx context.Context) bool {
	charityUser, ok := ctx.Value(charityUserKey).(bool)
	return ok && charityUser
}
