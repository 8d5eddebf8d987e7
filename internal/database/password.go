package database

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost: bcrypt cost для всех паролей администраторов.
const PasswordCost = 10

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
