package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"atelie/pkg"

	"github.com/gin-gonic/gin"
)

// MaxUploadBytes bounds quote photos and catalog images.
const MaxUploadBytes = 10 << 20

// maxRequestBytes bounds the whole request body of upload endpoints: one
// file plus room for the form fields and multipart framing.
const maxRequestBytes = MaxUploadBytes + 1<<20

var (
	errUploadTooLarge = pkg.NewDomainErrorSimple("FILE_TOO_LARGE", "O arquivo deve ter no máximo 10 MB", http.StatusRequestEntityTooLarge)
	errMissingFile    = pkg.NewDomainErrorSimple("MISSING_FILE", "Selecione um arquivo", http.StatusBadRequest)
)

var errTooLarge = errors.New("upload exceeds limit")

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxUploadBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxUploadBytes {
		return nil, errTooLarge
	}
	return data, nil
}

// limitBody caps the request body before gin parses any multipart form.
func limitBody(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBytes)
}

func isBodyTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}
