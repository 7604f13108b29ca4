// FILE: lixenwraith/devlog/crypt/aes.go
package crypt

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

var (
	ErrKeySize    = errors.New("crypt: key must be 16, 24 or 32 bytes")
	ErrCiphertext = errors.New("crypt: malformed ciphertext")
	ErrPadding    = errors.New("crypt: invalid padding")
)

// AES encrypts text with AES-CBC and PKCS#7 padding.
// Output is Base64 (standard encoding) of IV || ciphertext, a fresh random IV per call.
type AES struct {
	block cipher.Block
	rand  io.Reader
}

// NewAES creates an AES encrypter for a 16, 24 or 32 byte key
func NewAES(key []byte) (*AES, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: got %d", ErrKeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("crypt: failed to create cipher: %w", err)
	}
	return &AES{block: block, rand: rand.Reader}, nil
}

// Encrypt returns the Base64 ciphertext of plain
func (a *AES) Encrypt(plain string) (string, error) {
	padded := pad([]byte(plain), aes.BlockSize)

	out := make([]byte, aes.BlockSize+len(padded))
	iv := out[:aes.BlockSize]
	if _, err := io.ReadFull(a.rand, iv); err != nil {
		return "", fmt.Errorf("crypt: failed to read iv: %w", err)
	}

	cipher.NewCBCEncrypter(a.block, iv).CryptBlocks(out[aes.BlockSize:], padded)
	return base64.StdEncoding.EncodeToString(out), nil
}

// Decrypt reverses Encrypt
func (a *AES) Decrypt(encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCiphertext, err)
	}
	if len(raw) < 2*aes.BlockSize || len(raw)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: length %d", ErrCiphertext, len(raw))
	}

	iv, data := raw[:aes.BlockSize], raw[aes.BlockSize:]
	plain := make([]byte, len(data))
	cipher.NewCBCDecrypter(a.block, iv).CryptBlocks(plain, data)

	plain, err = unpad(plain, aes.BlockSize)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

func pad(b []byte, size int) []byte {
	n := size - len(b)%size
	return append(b, bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(b []byte, size int) ([]byte, error) {
	if len(b) == 0 || len(b)%size != 0 {
		return nil, ErrPadding
	}
	n := int(b[len(b)-1])
	if n == 0 || n > size || n > len(b) {
		return nil, ErrPadding
	}
	for _, c := range b[len(b)-n:] {
		if int(c) != n {
			return nil, ErrPadding
		}
	}
	return b[:len(b)-n], nil
}
