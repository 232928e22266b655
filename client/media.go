package client

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"strings"

	"imovel-hub/internal/upload"
)

// MediaFile is a pending upload tracked by a form. Size may be zero when
// unknown; the server still enforces the ceiling either way.
type MediaFile struct {
	Name        string
	ContentType string
	Size        int64
	Data        io.Reader
}

// buildMultipart assembles a multipart body from form fields plus file
// parts, enforcing the same limits as the server before any bytes move.
func buildMultipart(fields url.Values, galleryField string, gallery []MediaFile, singleField string, single *MediaFile) (bodyFunc, string, error) {
	if len(gallery) > upload.MaxGalleryFiles {
		return nil, "", fmt.Errorf("no máximo %d fotos por envio", upload.MaxGalleryFiles)
	}
	for _, f := range gallery {
		if err := checkFile(f); err != nil {
			return nil, "", err
		}
	}
	if single != nil {
		if err := checkFile(*single); err != nil {
			return nil, "", err
		}
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for key, values := range fields {
		for _, v := range values {
			if err := w.WriteField(key, v); err != nil {
				return nil, "", err
			}
		}
	}

	for _, f := range gallery {
		if err := writeFilePart(w, galleryField, f); err != nil {
			return nil, "", err
		}
	}
	if single != nil {
		if err := writeFilePart(w, singleField, *single); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	raw := buf.Bytes()
	body := func() (io.Reader, error) {
		return bytes.NewReader(raw), nil
	}
	return body, w.FormDataContentType(), nil
}

func checkFile(f MediaFile) error {
	if f.Size > upload.MaxFileSize {
		return fmt.Errorf("arquivo %s excede o tamanho máximo de 10MB", f.Name)
	}
	if !upload.AllowedType(f.ContentType) {
		return fmt.Errorf("arquivo %s tem tipo não permitido: %s", f.Name, f.ContentType)
	}
	return nil
}

func writeFilePart(w *multipart.Writer, field string, f MediaFile) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`,
		field, strings.ReplaceAll(f.Name, `"`, "")))
	h.Set("Content-Type", f.ContentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = io.Copy(part, f.Data)
	return err
}
