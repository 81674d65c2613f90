package request

// UpdateProfileRequest carries the editable profile fields. Pointer fields
// distinguish "clear this" (empty string) from "leave as is" (absent).

type UpdateProfileRequest struct {
	Username *string `json:"username"`
	Avatar   *string `json:"avatar"`
	Bio      *string `json:"bio"`
	Website  *string `json:"website"`
	Twitter  *string `json:"twitter"`
	Discord  *string `json:"discord"`
}
