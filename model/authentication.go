package model

// Authentication is a stored refresh token.
type Authentication struct {
	Token string `json:"token" gorm:"primaryKey"`
}

// LoginPayload is the POST /authentications request body.
type LoginPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshPayload is the PUT/DELETE /authentications request body.
type RefreshPayload struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}
