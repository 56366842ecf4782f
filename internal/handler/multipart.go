package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"crm-web-server/internal/model"
)

// multipartMemory : часть формы, которая держится в памяти, остальное уходит во временные файлы
const multipartMemory = 8 << 20

// readUploadedFile : достаёт поле file из multipart-запроса, тело ограничено maxBytes
func readUploadedFile(w http.ResponseWriter, r *http.Request, maxBytes int64) (*model.UploadedFile, error) {
	if maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("запрос больше %d байт: %w", tooLarge.Limit, model.ErrTooLarge)
		}
		return nil, fmt.Errorf("неверный формат multipart: %v: %w", err, model.ErrInvalidInput)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("файл не найден в запросе: %w", model.ErrInvalidInput)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла: %v: %w", err, model.ErrInvalidInput)
	}

	return &model.UploadedFile{
		FileName:     header.Filename,
		ContentType:  header.Header.Get("Content-Type"),
		DocumentType: r.FormValue("documentType"),
		Data:         data,
	}, nil
}
