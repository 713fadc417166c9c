package convert_request

import (
	"crypto/rand"
	"fmt"
	"io"
)

const (
	passwordLength  = 12
	passwordCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*"

	// Байты не меньше порога отбрасываются, иначе первые символы алфавита выпадают чаще
	passwordByteLimit = 256 - 256%len(passwordCharset)
)

// GeneratePassword генерирует временный пароль из 12 символов
func GeneratePassword() (string, error) {
	return generatePassword(rand.Reader)
}

func generatePassword(src io.Reader) (string, error) {
	out := make([]byte, 0, passwordLength)
	buf := make([]byte, passwordLength)
	for len(out) < passwordLength {
		if _, err := io.ReadFull(src, buf); err != nil {
			return "", fmt.Errorf("generate password: %w", err)
		}
		for _, b := range buf {
			if int(b) >= passwordByteLimit {
				continue
			}
			out = append(out, passwordCharset[int(b)%len(passwordCharset)])
			if len(out) == passwordLength {
				break
			}
		}
	}
	return string(out), nil
}
