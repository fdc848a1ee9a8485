// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the core entity in the system, representing a single account.
// An account is either password-authenticated (Credential is set) or
// OAuth-authenticated (KakaoID is set). The mode is fixed at creation;
// nothing in this service migrates an account between the two.
type User struct {
	ID            int64       // Auto-incremented primary key.
	Nickname      string      // Unique display name, also the login identifier for password accounts.
	Email         string      // Unique contact email. Empty for OAuth-only accounts.
	Birthday      string      // Free-form birthday string as submitted at signup.
	Job           string      // Free-form occupation string as submitted at signup.
	ProfileImgURL string      // URL of the user's profile image, if any.
	KakaoID       string      // Kakao account id for OAuth-authenticated users. Empty otherwise.
	Credential    *Credential // Password credential. Nil for OAuth-only accounts.
	CreatedAt     time.Time   // Timestamp of when this account was created.
	UpdatedAt     time.Time   // Timestamp of the last modification to this account.
}

// Credential holds the stored password material for a password-authenticated
// account. The salt is generated once at signup and never rotated here.
type Credential struct {
	PasswordHash string // Base64-encoded PBKDF2 digest of (password, salt).
	Salt         string // Hex-encoded random salt, unique per account.
}

// HasCredential reports whether both stored credential fields are present as
// non-empty text. A password account failing this check is corrupted (or was
// created through OAuth), and must never pass password verification.
func (u *User) HasCredential() bool {
	return u.Credential != nil && u.Credential.PasswordHash != "" && u.Credential.Salt != ""
}
