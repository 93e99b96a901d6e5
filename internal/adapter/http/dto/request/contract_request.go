package request

// ContractGenerateRequest renders a contract off an approved estimate's
// latest snapshot.
type ContractGenerateRequest struct {
	EstimateID string `json:"estimate_id" binding:"required"`
	Terms      string `json:"terms"`
	Footer     string `json:"footer"`
}

// ContractPatchRequest edits draft content. nil fields are left untouched.
type ContractPatchRequest struct {
	Header    *string `json:"header"`
	WorkItems *string `json:"work_items"`
	Terms     *string `json:"terms"`
	Footer    *string `json:"footer"`
}

// ContractSignRequest records the internal signing path (e.g. in-person).
type ContractSignRequest struct {
	SignerName string `json:"signer_name" binding:"required"`
}
