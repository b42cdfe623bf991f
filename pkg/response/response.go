package response

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"

	"report-srv/pkg/discord"
	"report-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes data with status 200.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created writes data with status 201.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Message writes a {"message": ...} body with status 200.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResp{Message: message})
}

// Error writes err as a Resp. Errors that are not *errors.HTTPError become a generic 500.
// Server errors are reported to d when it is not nil.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	httpErr := parseError(err)

	if httpErr.Code >= http.StatusInternalServerError {
		reportToDiscord(c, d, fmt.Sprintf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err))
	}

	c.JSON(httpErr.Code, Resp{
		ErrorCode: httpErr.Code,
		Error:     httpErr.Message,
		Errors:    httpErr.Details,
	})
}

// PanicError writes a generic 500 for a recovered panic value.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	reportToDiscord(c, d, fmt.Sprintf("panic on %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered))

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Error:     DefaultErrorMessage,
	})
}

func parseError(err error) *errors.HTTPError {
	var httpErr *errors.HTTPError
	if stderrors.As(err, &httpErr) {
		return httpErr
	}
	return errors.NewHTTPError(http.StatusInternalServerError, DefaultErrorMessage)
}

// reportToDiscord does not block the response on the webhook.
func reportToDiscord(c *gin.Context, d discord.IDiscord, message string) {
	if d == nil {
		return
	}
	ctx := context.WithoutCancel(c.Request.Context())
	go func() {
		_ = d.ReportBug(ctx, message)
	}()
}
