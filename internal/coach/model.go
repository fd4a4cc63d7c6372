package coach

// TipResponse is the 200 body of POST /gto_tip.
type TipResponse struct {
	GTOTip string `json:"gto_tip"`
}

// TipErrorResponse is the 500 body of POST /gto_tip. Clients key on "tip" here, not "gto_tip".
type TipErrorResponse struct {
	Tip string `json:"tip"`
}

const tipErrorText = "Error generating tip"
