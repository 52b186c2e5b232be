package dto

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type LoginResponseUser struct {
	StaffID     string   `json:"staff_id"`
	FullName    string   `json:"full_name"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	TenantID    string   `json:"tenant_id"`
	BranchScope []string `json:"branch_scope,omitempty"`
}

type LoginResponse struct {
	User        LoginResponseUser `json:"user"`
	AccessToken string            `json:"access_token"`
}
