package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// NoDescriptionPlaceholder is shown when a repository has no description.
const NoDescriptionPlaceholder = "No description available"

// Owner represents the account that owns a repository.
type Owner struct {
	Login     string
	AvatarURL string // Optional
	HTMLURL   string
}

// Repository represents a single search result from the code-hosting API.
// Identity is the numeric ID.
type Repository struct {
	ID          int64
	Name        string
	FullName    string
	Description string // Optional
	Stars       int
	Forks       int
	HTMLURL     string
	Owner       Owner
	Language    string // Optional
	CreatedAt   time.Time
}

// HasAvatar returns true if the owner has an avatar image.
func (r Repository) HasAvatar() bool {
	return strings.TrimSpace(r.Owner.AvatarURL) != ""
}

// AvatarInitial returns the uppercased first character of the owner login,
// used as the avatar fallback.
func (r Repository) AvatarInitial() string {
	if r.Owner.Login == "" {
		return "?"
	}
	first, _ := utf8.DecodeRuneInString(r.Owner.Login)
	return string(unicode.ToUpper(first))
}

// DescriptionText returns the description or the fixed placeholder. Only
// an empty description is replaced; whitespace is shown as sent.
func (r Repository) DescriptionText() string {
	if r.Description == "" {
		return NoDescriptionPlaceholder
	}
	return r.Description
}

// HasLanguage returns true if the repository reports a primary language.
func (r Repository) HasLanguage() bool {
	return r.Language != ""
}

// DisplayName returns the owner/name path.
func (r Repository) DisplayName() string {
	if r.FullName != "" {
		return r.FullName
	}
	return r.Owner.Login + "/" + r.Name
}

// String returns a string representation of the repository.
func (r Repository) String() string {
	return fmt.Sprintf("Repository{id: %d, name: %s, stars: %d}", r.ID, r.DisplayName(), r.Stars)
}

// FormatCount renders a star or fork count. Values of 1000 and above are
// shown in thousands with one decimal place.
func FormatCount(n int) string {
	if n >= 1000 {
		return fmt.Sprintf("%.1fk", float64(n)/1000)
	}
	return fmt.Sprintf("%d", n)
}

// FormatDate renders t as "Jan 2, 2006" in t's own location.
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}
