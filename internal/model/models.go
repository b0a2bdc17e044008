// internal/model/models.go
package model

import (
	"strings"

	custom_errors "github-repo-manager/internal/errors"
)

// RepositoryRecord is the normalized local shape of a hosted repository.
// Nullable fields are nil when the provider did not report a value.
type RepositoryRecord struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageurl"`
	Owner       *string `json:"owner"`
	Language    *string `json:"language"`
	FullName    *string `json:"full_name"`
	HTMLURL     *string `json:"html_url"`
}

// Identity returns full_name when present, else the derived owner/name pair.
func (r RepositoryRecord) Identity() string {
	if r.FullName != nil && *r.FullName != "" {
		return *r.FullName
	}
	return deref(r.Owner) + "/" + r.Name
}

// SameEntity reports whether a and b address the same repository.
func SameEntity(a, b RepositoryRecord) bool {
	return a.Identity() == b.Identity()
}

// OwnerLogin returns the owner login, or "" when unknown.
func (r RepositoryRecord) OwnerLogin() string {
	return deref(r.Owner)
}

// DescriptionText returns the description, or "" when absent.
func (r RepositoryRecord) DescriptionText() string {
	return deref(r.Description)
}

// UserInfo is the profile of the authenticated account.
type UserInfo struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
}

const (
	notFoundLogin  = "undefined"
	notFoundName   = "Usuario no encontrado"
	notFoundBio    = "No se pudo obtener la información del usuario."
	notFoundAvatar = "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcR_eN9ltaN4YL-7g4jrTdTXHsBUf_bWxQ_cSg&s"
)

// NotFoundUser is the placeholder profile shown when the account cannot be fetched.
func NotFoundUser() UserInfo {
	return UserInfo{
		Login:     notFoundLogin,
		Name:      notFoundName,
		Bio:       notFoundBio,
		AvatarURL: notFoundAvatar,
	}
}

// IsNotFound reports whether u is the placeholder profile.
func (u UserInfo) IsNotFound() bool {
	return u.Login == notFoundLogin
}

// SplitFullName parses an "owner/name" identity.
func SplitFullName(fullName string) (owner, name string, err error) {
	parts := strings.Split(fullName, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", &custom_errors.ErrInvalidRepoFormat{Repo: fullName}
	}
	return parts[0], parts[1], nil
}

// StringPtr returns nil for "" and a pointer to s otherwise.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
