package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-vinted/models"
)

// parseForm reads a multipart or urlencoded body capped at maxUploadSize.
// Files stay available through r.MultipartForm.
func (h *Handler) parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	var err error
	if strings.HasPrefix(mediaType, "multipart/") {
		err = r.ParseMultipartForm(h.maxUploadSize)
	} else {
		err = r.ParseForm()
	}

	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return fmt.Errorf("%w: limit is %d bytes", ErrRequestTooLarge, maxBytesErr.Limit)
		}
		return fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	return nil
}

// formFiles returns the files of field in the order the client sent them.
func formFiles(r *http.Request, field string) ([]models.UploadFile, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}

	headers := r.MultipartForm.File[field]
	files := make([]models.UploadFile, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: open %s: %w", ErrInvalidForm, header.Filename, err)
		}

		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", ErrInvalidForm, header.Filename, err)
		}

		files = append(files, models.UploadFile{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	return files, nil
}

// formBool accepts the values HTML checkboxes and JSON-minded clients send.
func formBool(value string) bool {
	if strings.EqualFold(value, "on") || strings.EqualFold(value, "yes") {
		return true
	}
	b, _ := strconv.ParseBool(value)
	return b
}
