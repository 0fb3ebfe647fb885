package extractor

// BuildBillExtractionPrompt returns the instruction prompt for multi-page
// bill documents. The output structure itself is enforced separately through
// the response schema; the prompt restates the constraints the model tends to
// drift on.
func BuildBillExtractionPrompt() string {
	return "You are a highly accurate invoice data extraction specialist. " +
		"Analyze the entire multi-page bill document and extract ALL line item details, quantities, rates, and amounts. " +
		"Strictly adhere to the provided JSON schema for the output. " +
		"The 'page_type' must be one of: 'Bill Detail', 'Final Bill', or 'Pharmacy'. " +
		"The 'document_final_total' must be the exact grand total amount written on the entire bill document."
}
