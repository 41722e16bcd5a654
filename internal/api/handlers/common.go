package handlers

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zero-Sign/swift-hire/internal/services"
	"github.com/Zero-Sign/swift-hire/internal/utils"
)

type APIError struct {
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
}

func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)

	var ae *utils.AppError
	if errors.As(err, &ae) {
		c.JSON(status, APIError{
			Code:    ae.Code,
			Message: ae.Message,
		})
		return
	}

	c.JSON(status, APIError{
		Code:    utils.CodeInternal,
		Message: http.StatusText(status),
	})
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "Request", "invalid "+name, err))
		return 0, false
	}
	return uint(id), true
}

func parseFormUint(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.PostForm(name), 10, 64)
	if err != nil {
		return 0, utils.E(utils.CodeInvalidArgument, "Request", name+" must be an integer", err)
	}
	return uint(v), nil
}

func intQuery(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(def)))
	if err != nil {
		return def
	}
	return v
}

// readUpload fully buffers a multipart file; uploads are small and size
// limits are not enforced on this surface.
func readUpload(fh *multipart.FileHeader) (*services.FileUpload, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &services.FileUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Content:     bytes.NewReader(data),
	}, nil
}
