package constants

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 5

// TokenKeyBytes is the number of random bytes behind a token key (40 hex chars).
const TokenKeyBytes = 20

// AuthScheme is the Authorization header scheme for token authentication.
const AuthScheme = "Token"

// ContextKeyUserID is the gin context key holding the authenticated user's ID.
const ContextKeyUserID = "user_id"

// ContextKeyUser is the gin context key holding the authenticated user model.
const ContextKeyUser = "user"

// RecipeImageDir is the media-root-relative directory for recipe images.
const RecipeImageDir = "uploads/recipe"
