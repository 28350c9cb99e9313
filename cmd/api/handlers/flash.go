package handlers

import (
	"encoding/base64"
	"encoding/json"

	"github.com/gin-gonic/gin"
)

const flashCookieName = "flash"

const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-shot toast shown on the next rendered page.
type Flash struct {
	Kind        string `json:"k"`
	Title       string `json:"t"`
	Description string `json:"d,omitempty"`
}

// SetFlash stores a toast for the page the client is redirected to.
func (l *Layout) SetFlash(c *gin.Context, f Flash) {
	b, err := json.Marshal(f)
	if err != nil {
		return
	}
	c.SetCookie(flashCookieName, base64.RawURLEncoding.EncodeToString(b), 60, "/", "", l.SecureCookies, true)
}

// takeFlash reads and clears the pending toast.
func (l *Layout) takeFlash(c *gin.Context) *Flash {
	v, err := c.Cookie(flashCookieName)
	if err != nil || v == "" {
		return nil
	}
	c.SetCookie(flashCookieName, "", -1, "/", "", l.SecureCookies, true)

	b, err := base64.RawURLEncoding.DecodeString(v)
	if err != nil {
		return nil
	}
	var f Flash
	if err := json.Unmarshal(b, &f); err != nil || f.Title == "" {
		return nil
	}
	return &f
}

func successFlash(title, desc string) Flash {
	return Flash{Kind: FlashSuccess, Title: title, Description: desc}
}

func errorFlash(title, desc string) Flash {
	return Flash{Kind: FlashError, Title: title, Description: desc}
}
