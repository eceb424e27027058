package devserver

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// ErrNoAccounts is returned by LoadAccounts when the file lists no account.
var ErrNoAccounts = errors.New("devserver: no accounts configured")

// Account is one fixture user accepted by the login endpoint.
type Account struct {
	Email        string `yaml:"email"`
	PasswordHash string `yaml:"password_hash"`
}

type accountsFile struct {
	Accounts []Account `yaml:"accounts"`
}

// Accounts maps an email address to its bcrypt password hash.
type Accounts map[string]string

// dummyHash is compared against when the email is unknown so both paths
// cost one bcrypt comparison. It is built on first use.
var dummyHash = sync.OnceValue(func() []byte {
	hash, _ := bcrypt.GenerateFromPassword([]byte("not a password"), bcrypt.DefaultCost)
	return hash
})

// LoadAccounts reads a yaml file of the form
//
//	accounts:
//	  - email: demo@example.com
//	    password_hash: $2a$10$...
func LoadAccounts(path string) (Accounts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("devserver: read accounts: %w", err)
	}
	return ParseAccounts(data)
}

func ParseAccounts(data []byte) (Accounts, error) {
	var f accountsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("devserver: parse accounts: %w", err)
	}

	accounts := make(Accounts, len(f.Accounts))
	for i, a := range f.Accounts {
		email := strings.TrimSpace(a.Email)
		if email == "" || a.PasswordHash == "" {
			return nil, fmt.Errorf("devserver: account %d: email and password_hash are required", i)
		}
		if _, err := bcrypt.Cost([]byte(a.PasswordHash)); err != nil {
			return nil, fmt.Errorf("devserver: account %s: %w", email, err)
		}
		accounts[email] = a.PasswordHash
	}
	if len(accounts) == 0 {
		return accounts, ErrNoAccounts
	}
	return accounts, nil
}

// Check reports whether password matches the account registered for email.
func (a Accounts) Check(email, password string) bool {
	hash, ok := a[email]
	if !ok {
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// HashPassword returns the bcrypt hash to put in an accounts file.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("devserver: empty password")
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("devserver: hash password: %w", err)
	}
	return string(bytes), nil
}
