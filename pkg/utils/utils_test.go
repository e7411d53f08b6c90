package utils

import (
	"errors"
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
)

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()
	at := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	id, err := u.NewULIDFromTimestamp(at)
	if err != nil {
		t.Fatalf("new ulid: %v", err)
	}

	parsed, err := ulid.Parse(id)
	if err != nil {
		t.Fatalf("parse %q: %v", id, err)
	}
	if got := parsed.Time(); got != ulid.Timestamp(at) {
		t.Fatalf("timestamp = %d, want %d", got, ulid.Timestamp(at))
	}
}

func imageHeader(filename, contentType string, size int64) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", contentType)
	return &multipart.FileHeader{
		Filename: filename,
		Header:   header,
		Size:     size,
	}
}

func TestValidateImageFile(t *testing.T) {
	u := New()

	cases := []struct {
		name string
		file *multipart.FileHeader
		want error
	}{
		{"nil file", nil, ErrNoFileUploaded},
		{"valid jpeg", imageHeader("avatar.jpg", "image/jpeg", 1024), nil},
		{"valid png uppercase ext", imageHeader("avatar.PNG", "image/png", 1024), nil},
		{"too large", imageHeader("avatar.jpg", "image/jpeg", 5*1024*1024), ErrFileTooLarge},
		{"bad extension", imageHeader("notes.txt", "text/plain", 1024), ErrInvalidFileType},
		{"spoofed content type", imageHeader("avatar.jpg", "application/octet-stream", 1024), ErrInvalidFileType},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := u.ValidateImageFile(tc.file)
			if !errors.Is(err, tc.want) {
				t.Fatalf("ValidateImageFile = %v, want %v", err, tc.want)
			}
		})
	}
}
