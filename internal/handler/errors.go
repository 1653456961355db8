package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/readinglist/internal/middleware"
	"github.com/snnyvrz/readinglist/internal/repository"
	"github.com/snnyvrz/readinglist/internal/validation"
)

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, validation.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// writeStoreError maps a repository error kind to a response. failCode is
// used for infrastructure failures, whose raw message is passed through.
func writeStoreError(c *gin.Context, err error, failCode string) {
	_ = c.Error(err)

	var rerr *repository.Error
	if !errors.As(err, &rerr) {
		logStoreFailure(c, failCode, err)
		writeError(c, http.StatusInternalServerError, failCode, err.Error())
		return
	}

	switch rerr.Kind {
	case repository.KindValidation:
		c.AbortWithStatusJSON(http.StatusBadRequest, validation.ErrorResponse{
			Error:  "validation failed",
			Code:   "VALIDATION_FAILED",
			Fields: validation.FromRepository(rerr.Fields),
		})
	case repository.KindNotFound:
		writeError(c, http.StatusNotFound, "BOOK_NOT_FOUND", "book not found")
	default:
		logStoreFailure(c, failCode, err)
		writeError(c, http.StatusInternalServerError, failCode, rerr.Err.Error())
	}
}

func logStoreFailure(c *gin.Context, failCode string, err error) {
	log.Printf("request %s: %s: %v", middleware.RequestIDFrom(c), failCode, err)
}
