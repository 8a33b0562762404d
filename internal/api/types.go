package api

// GenerateRecipeRequest carries one user interaction's ingredient list. A
// missing field is treated as an empty list, not an error.
type GenerateRecipeRequest struct {
	Ingredients []string `json:"ingredients"`
}

// GenerateRecipeResponse is the generation result. Exactly one of Body and
// Error is populated.
type GenerateRecipeResponse struct {
	RecipeID string `json:"recipe_id,omitempty"`
	Body     string `json:"body,omitempty"`
	Error    string `json:"error,omitempty"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type ShareResponse struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expires_in"`
}
