package dto

import "todo_backend/internal/feature/auth/domain/entity"

// UserInfo is the minimal identity payload returned to the client.
// It mirrors the claim set: never the password hash, never the tokens.
type UserInfo struct {
	ID          uint   `json:"_id"`
	Username    string `json:"username"`
	IsSuperuser bool   `json:"is_superuser"`
}

// UserInfoFromEntity builds the identity payload for a user record.
func UserInfoFromEntity(u *entity.User) UserInfo {
	return UserInfo{
		ID:          u.ID,
		Username:    u.Username,
		IsSuperuser: u.IsSuperuser,
	}
}

// ProfileRes is the public profile shape served by GET /users/userData.
type ProfileRes struct {
	ID          uint   `json:"_id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	IsActive    bool   `json:"is_active"`
	IsSuperuser bool   `json:"is_superuser"`
	Gender      string `json:"gender,omitempty"`
}

// ProfileFromEntity builds the public profile for a user record.
func ProfileFromEntity(u *entity.User) ProfileRes {
	return ProfileRes{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		IsActive:    u.IsActive,
		IsSuperuser: u.IsSuperuser,
		Gender:      u.Gender,
	}
}

// RefreshRes is the response of POST /users/getRefreshtoken.
// UserInfo is null when no valid session was presented; callers treat
// that as "please (re)authenticate", not as a transport error.
type RefreshRes struct {
	UserInfo *UserInfo `json:"userInfo"`
}
