package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Jeffry-N/Beiruti-Fade/internal/httperr"
	"github.com/Jeffry-N/Beiruti-Fade/internal/middleware"
)

var businessMessages = map[string]string{
	"invalid_account_kind":    "Account type must be customer or barber.",
	"missing_required_fields": "A required field is missing.",
	"invalid_username":        "Username must be 3-50 letters, digits, dots or underscores.",
	"invalid_email":           "Email address does not look valid.",
	"username_taken":          "That username is already in use.",
	"invalid_credentials":     "Invalid username or password.",
	"account_not_found":       "Account not found.",
	"no_fields_provided":      "No updatable fields were provided.",
	"invalid_status":          "Status must be pending, confirmed, cancelled or completed.",
	"invalid_date_or_time":    "Date must be YYYY-MM-DD and time HH:mm.",
	"appointment_not_found":   "Appointment not found.",
}

// respondError maps typed domain failures onto response categories. Anything
// untyped is a repository-level fault: logged with the request id, answered
// with a generic envelope so store internals never leak.
func respondError(c *gin.Context, err error) {
	if code := httperr.BusinessCode(err); code != "" {
		msg, ok := businessMessages[code]
		if !ok {
			msg = "Request could not be processed."
		}

		switch code {
		case "account_not_found", "appointment_not_found":
			httperr.NotFound(c, code, msg)
		case "invalid_credentials":
			httperr.Unauthorized(c, code, msg)
		case "username_taken":
			httperr.Conflict(c, code, msg)
		default:
			httperr.BadRequest(c, code, msg)
		}
		return
	}

	reqID, _ := c.Get(middleware.ContextRequestID)
	log.Printf("[%v] %s %s: %v", reqID, c.Request.Method, c.Request.URL.Path, err)
	httperr.Internal(c, "internal_error", "Something went wrong on our side.")
}
