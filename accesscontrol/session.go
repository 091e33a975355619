// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package accesscontrol

// Session carries the identity the session middleware resolved for the
// current request. NoSession marks an unauthenticated request; access to
// protected routes fails later with a 401.
type Session struct {
	userID string
	email  string
	name   string
	avatar string
}

var NoSession = Session{}

func NewSession(userID, email, name, avatar string) Session {
	return Session{
		userID: userID,
		email:  email,
		name:   name,
		avatar: avatar,
	}
}

func (s Session) GetUserID() string {
	return s.userID
}

func (s Session) GetEmail() string {
	return s.email
}

func (s Session) GetName() string {
	return s.name
}

func (s Session) GetAvatar() string {
	return s.avatar
}

func (s Session) IsAuthenticated() bool {
	return s.userID != "" || s.email != ""
}
