package dto

// MessageResponse is the generic success envelope for deletes and other
// operations without a resource body.
type MessageResponse struct {
	Message string `json:"message"`
}
