// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth handles accounts, sessions and the ownership rule.

# Passwords

Passwords are hashed with bcrypt at cost 10:

	hash, err := auth.BcryptHasher{}.Hash([]byte(password))

# Tokens

Tokens are HS256 JWTs carrying the user's id, username and role, valid for one hour:

	signer := auth.NewTokenSigner(cfg.JWTSecret)
	token, err := signer.Sign(models.AuthUser{ID: 1, Username: "alice", Role: "member"})

# Sessions

Login stores every issued token in the sessions table. Authenticate accepts a
bearer token only if it is a stored session AND its signature and expiry verify;
either gate failing yields models.ErrUnauthorized. Sessions are never deleted.

# Ownership

CanModify is true for the owner of a resource or for any admin.
*/
package auth
