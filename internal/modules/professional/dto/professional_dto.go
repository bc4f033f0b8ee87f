package dto

type SearchProfessionalsRequest struct {
	Q    string `form:"q" binding:"required,min=1,max=100"`
	Role string `form:"role" binding:"omitempty"`
}
