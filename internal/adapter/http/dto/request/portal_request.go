package request

// PortalSignRequest is the customer-facing signing payload. The token comes
// from the query string, never the body.
type PortalSignRequest struct {
	SignerName string `json:"signer_name" binding:"required"`
}

// PortalLinkRequest mints a portal link for a document.
type PortalLinkRequest struct {
	DocumentType string `json:"document_type" binding:"required"`
	DocumentID   string `json:"document_id" binding:"required"`
	Purpose      string `json:"purpose" binding:"required"`
}
