package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/garage-manager/internal/httperr"
)

// maxUploadBytes caps logo and invoice PDF uploads.
const maxUploadBytes = 5 << 20

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.Respond(c, httperr.ErrBusiness("invalid_request"))
		return false
	}
	return true
}

// readUpload returns the bytes of one multipart file field.
func readUpload(c *gin.Context, field string) ([]byte, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	fh, err := c.FormFile(field)
	if err != nil {
		httperr.Respond(c, httperr.ErrBusiness("invalid_request"))
		return nil, false
	}

	f, err := fh.Open()
	if err != nil {
		httperr.Respond(c, err)
		return nil, false
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		httperr.Respond(c, err)
		return nil, false
	}
	return data, true
}
