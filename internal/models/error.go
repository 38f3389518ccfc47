package models

// APIError is the JSON body of every failed catalog request
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

const (
	ErrBadRequest       = "BAD_REQUEST"
	ErrUnauthorized     = "UNAUTHORIZED"
	ErrForbidden        = "FORBIDDEN"
	ErrConflict         = "CONFLICT"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"

	// One not-found code per catalog entity
	ErrCategoryNotFound   = "CATEGORY_NOT_FOUND"
	ErrIngredientNotFound = "INGREDIENT_NOT_FOUND"
	ErrCocktailNotFound   = "COCKTAIL_NOT_FOUND"
	ErrFoodNotFound       = "FOOD_NOT_FOUND"
	ErrWaterPipeNotFound  = "WATER_PIPE_NOT_FOUND"
	ErrClientNotFound     = "CLIENT_NOT_FOUND"

	// RFC 6749 codes, used on the token endpoint and bearer checks
	ErrInvalidRequest       = "invalid_request"
	ErrUnsupportedGrantType = "unsupported_grant_type"
	ErrInvalidToken         = "invalid_token"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

// NewNotFoundError reports that no entity record matched the requested id
func NewNotFoundError(code, entity string) APIError {
	return APIError{Code: code, Message: entity + " not found"}
}

// NewValidationError carries the per-field messages of a rejected submission
func NewValidationError(fields map[string]interface{}) APIError {
	return APIError{Code: ErrValidationFailed, Message: "Validation failed", Details: fields}
}

// OAuth2Error represents an OAuth2 error response (RFC 6749)
type OAuth2Error struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
	ErrorURI         string `json:"error_uri,omitempty"`
}

// NewOAuth2Error creates a new OAuth2 error response
func NewOAuth2Error(code, description string) OAuth2Error {
	return OAuth2Error{
		Error:            code,
		ErrorDescription: description,
	}
}
