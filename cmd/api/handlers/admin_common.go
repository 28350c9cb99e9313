package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/cmd/api/services"
	"portfolio/forms"
)

const submitTokenField = "submit_token"

type confirmPage struct {
	Page
	Kind   string
	Name   string
	Action string
	Cancel string
	Token  string
}

// consumeSubmit accepts each issued token once. A repeated submission is sent
// back to the list with a toast instead of running the mutation again.
func consumeSubmit(c *gin.Context, l *Layout, guard *forms.SubmitGuard, back string) bool {
	if guard.Consume(c.PostForm(submitTokenField)) {
		return true
	}
	l.SetFlash(c, errorFlash("Already submitted", "That form was already sent. The list below is up to date."))
	c.Redirect(http.StatusSeeOther, back)
	return false
}

// writeFailure maps a create/update error to a status and toast. what is the
// failed action as shown to the admin, e.g. "Error creating post".
func writeFailure(err error, what string) (int, Flash) {
	var ve *forms.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusUnprocessableEntity, errorFlash(ve.Message, "")
	case errors.Is(err, services.ErrSlugTaken):
		return http.StatusConflict, errorFlash("Slug already exists", "Please use a unique slug")
	case errors.Is(err, services.ErrPostNotFound), errors.Is(err, services.ErrProjectNotFound):
		return http.StatusNotFound, errorFlash(what, "It may have been deleted in the meantime.")
	default:
		return http.StatusInternalServerError, errorFlash(what, err.Error())
	}
}
