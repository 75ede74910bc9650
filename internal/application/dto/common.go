package dto

// DateLayout is the wire format for all dates (ISO, date only).
const DateLayout = "2006-01-02"

// PageRequest is the pagination input for listings.
type PageRequest struct {
	Limit  int `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int `query:"offset" validate:"omitempty,min=0"`
}

// DefaultPage applies defaults when Limit/Offset are unset.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse echoes pagination metadata on list responses.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ErrorResponse is the HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NoticeResponse carries a success payload together with a user-visible
// notice (idempotent no-ops, soft warnings on deletes).
type NoticeResponse struct {
	Notice string `json:"notice,omitempty"`
}
