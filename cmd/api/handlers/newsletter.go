package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/cmd/api/services"
	"portfolio/cmd/api/trace"
	"portfolio/internal/logger"
)

const newsletterAnchor = "/#newsletter"

// NewsletterHandler accepts the signup form and returns to the newsletter section with a toast.
func NewsletterHandler(l *Layout, svc *services.NewsletterService) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := svc.Subscribe(c.Request.Context(), c.PostForm("email"))
		switch {
		case err == nil:
			l.SetFlash(c, successFlash("Thanks for subscribing!", "You'll receive my next article in your inbox."))
		case errors.Is(err, services.ErrInvalidEmail):
			l.SetFlash(c, errorFlash("Invalid email", "Please enter a valid email address."))
		default:
			logger.ErrorWithFields("newsletter subscribe failed", trace.Fields(c.Request.Context(), logger.Fields{
				"error": err.Error(),
			}))
			l.SetFlash(c, errorFlash("Something went wrong", "Please try again later."))
		}
		c.Redirect(http.StatusSeeOther, newsletterAnchor)
	}
}
