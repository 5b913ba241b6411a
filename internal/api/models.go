package api

// Common request structures

// DeleteAccountRequest defines the payload for the account deletion
// endpoint. The password is the credential proof; the cancellation
// fields are forwarded to the billing provider when a subscription is
// cancelled as part of the deletion.
type DeleteAccountRequest struct {
	Password             string `json:"password"              validate:"required,min=1"`
	CancellationComment  string `json:"cancellation_comment"`
	CancellationFeedback string `json:"cancellation_feedback"`
}

// CreateCollectionRequest defines the payload for the collection
// creation endpoint. ParentID being a typed numeric pointer means a
// non-numeric parent id fails JSON decoding and never reaches the
// service.
type CreateCollectionRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"max=2048"`
	Color       string `json:"color"       validate:"max=32"`
	IsPublic    bool   `json:"is_public"`
	ParentID    *int64 `json:"parent_id"`
}
