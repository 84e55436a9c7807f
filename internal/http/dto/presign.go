package dto

type PresignResponse struct {
	URL string `json:"url"`
}
