package userctx

import "context"

// Context key type
type contextKey string

const usernameKey contextKey = "username"
const UserIDKey contextKey = "user_id"

// SetUsername adds the login name to request context
func SetUsername(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, usernameKey, name)
}

// GetUsername retrieves the login name from request context
func GetUsername(ctx context.Context) string {
	name, ok := ctx.Value(usernameKey).(string)
	if !ok {
		return "anonymous"
	}
	return name
}

// SetUserID adds user ID to request context
func SetUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, UserIDKey, id)
}

// GetUserID retrieves user ID from request context
func GetUserID(ctx context.Context) string {
	if userID := ctx.Value(UserIDKey); userID != nil {
		if id, ok := userID.(string); ok {
			return id
		}
	}
	return ""
}
