package handler

// registerRequest is the body of POST /register and POST /users.
// bcrypt only uses the first 72 bytes of a password, so longer ones are refused.
type registerRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Address  string `json:"address" validate:"required"`
	Password string `json:"password" validate:"required,maxbytes=72"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// updateUserRequest is the body of PATCH /users/:id. Absent fields stay unchanged.
type updateUserRequest struct {
	Name     *string `json:"name" validate:"omitnil,min=1,max=255"`
	Email    *string `json:"email" validate:"omitnil,email,max=255"`
	Address  *string `json:"address" validate:"omitnil,min=1"`
	Password *string `json:"password" validate:"omitnil,min=1,maxbytes=72"`
}
