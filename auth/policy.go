// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import "github.com/danielhkuo/quickly-ask/models"

// CanModify reports whether u may change a resource owned by ownerID:
// the owner or any admin.
func CanModify(u models.AuthUser, ownerID int64) bool {
	return u.ID == ownerID || IsAdmin(u)
}

func IsAdmin(u models.AuthUser) bool {
	return u.Role == models.RoleAdmin
}
