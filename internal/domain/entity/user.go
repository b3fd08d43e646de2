package entity

import "strings"

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User is the authenticated identity supplied by the auth collaborator
type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}

// SplitName splits the display name into first name and the remainder
func (u User) SplitName() (string, string) {
	parts := strings.Fields(u.DisplayName)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
