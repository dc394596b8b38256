package dto

type CreateDrawRequest struct {
	Entries      []string `json:"entries"`
	WinnersCount int      `json:"winners_count"`
	Seed         *uint64  `json:"seed,omitempty,string"`
}

type PreviewRequest struct {
	Entries []string `json:"entries"`
	Seed    *uint64  `json:"seed,string"`
}

type PreviewResponse struct {
	Order []string `json:"order"`
	Draws int      `json:"draws"`
}
