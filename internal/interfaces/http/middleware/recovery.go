package middleware

import (
	stderrors "errors"
	"net"
	"net/http"
	"net/http/httputil"
	"os"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// Recovery turns panics into a generic 500 and logs the request with the
// Authorization header masked.
func Recovery(log logger.Interface) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		if checkBrokenConnection(recovered) {
			log.Warnw("connection broken during request",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"error", recovered)
			c.Abort()
			return
		}

		log.Errorw("panic recovered",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"headers", redactedHeaders(c.Request),
			"error", recovered,
			"stack", string(debug.Stack()))

		utils.ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
		c.Abort()
	})
}

func redactedHeaders(r *http.Request) []string {
	dump, _ := httputil.DumpRequest(r, false)
	headers := strings.Split(strings.TrimSpace(string(dump)), "\r\n")
	for idx, header := range headers {
		name, _, found := strings.Cut(header, ":")
		if found && strings.EqualFold(strings.TrimSpace(name), constants.HeaderAuthorization) {
			headers[idx] = name + ": *"
		}
	}
	return headers
}

// checkBrokenConnection reports whether the panic came from a client hanging up.
func checkBrokenConnection(recovered interface{}) bool {
	err, ok := recovered.(error)
	if !ok {
		return false
	}
	var ne *net.OpError
	if !stderrors.As(err, &ne) {
		return false
	}
	var se *os.SyscallError
	if !stderrors.As(ne, &se) {
		return false
	}
	msg := strings.ToLower(se.Error())
	return strings.Contains(msg, "broken pipe") || strings.Contains(msg, "connection reset by peer")
}
