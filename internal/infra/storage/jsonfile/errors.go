package jsonfile

import "errors"

var (
	// ErrReadFile возвращается при ошибке чтения файла хранилища
	ErrReadFile = errors.New("jsonfile: failed to read storage file")

	// ErrWriteFile возвращается при ошибке записи файла хранилища
	ErrWriteFile = errors.New("jsonfile: failed to write storage file")

	// ErrDecode возвращается при ошибке разбора сохраненных данных
	ErrDecode = errors.New("jsonfile: failed to decode stored data")

	// ErrEncode возвращается при ошибке сериализации данных
	ErrEncode = errors.New("jsonfile: failed to encode data")
)
