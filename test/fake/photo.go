/*
Copyright 2026 the PetFriends API Test Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package fake

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var (
	// ErrPhotoMissing is returned when the pet_photo part is absent.
	ErrPhotoMissing = errors.New("pet_photo is required")

	// ErrPhotoFormat is returned when the upload is not a JPEG or PNG image.
	ErrPhotoFormat = errors.New("photo must be a jpeg or png image")
)

// readPhoto reads the pet_photo part and returns it as a data URI. The format
// is decided by content sniffing, not by the declared part content type.
func readPhoto(r *http.Request) (string, error) {
	file, _, err := r.FormFile("pet_photo")
	if err != nil {
		return "", ErrPhotoMissing
	}

	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("reading photo: %w", err)
	}

	return encodePhoto(data)
}

func encodePhoto(data []byte) (string, error) {
	contentType := http.DetectContentType(data)

	switch contentType {
	case "image/jpeg", "image/png":
	default:
		return "", fmt.Errorf("%w: got %s", ErrPhotoFormat, contentType)
	}

	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data)), nil
}
