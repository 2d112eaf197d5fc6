package public

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartSessionHeader carries the anonymous cart session token. The server
// mints one on first contact and echoes it back on every cart response;
// the storefront stores it and replays it on subsequent requests.
const CartSessionHeader = "X-Cart-Session"

func cartSessionID(c *gin.Context) string {
	sessionID := strings.TrimSpace(c.GetHeader(CartSessionHeader))
	if sessionID == "" || len(sessionID) > 64 {
		sessionID = uuid.NewString()
	}
	c.Header(CartSessionHeader, sessionID)
	return sessionID
}
