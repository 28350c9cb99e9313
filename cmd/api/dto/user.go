package dto

// MeDTO 는 현재 세션의 사용자 정보이다.
type MeDTO struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	ProfileImage string `json:"profile_image,omitempty"`
	Role         string `json:"role"`
	IsAdmin      bool   `json:"is_admin"`
}

type CreatedDTO struct {
	ID string `json:"id" example:"665f1c2e9b1e8a3d4c5b6a79"`
}

type PreviewRequestDTO struct {
	URL string `json:"url" example:"https://shipfa.st"`
}

type ExcerptRequestDTO struct {
	Content string `json:"content"`
}

type ExcerptResponseDTO struct {
	Excerpt string `json:"excerpt"`
}
