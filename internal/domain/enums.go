package domain

// PageType classifies a bill page. Classification is model-driven; the service
// only enforces membership in this set.
type PageType string

const (
	PageTypeBillDetail PageType = "Bill Detail"
	PageTypeFinalBill  PageType = "Final Bill"
	PageTypePharmacy   PageType = "Pharmacy"
)

// PageTypes lists every valid page classification, in declaration order.
func PageTypes() []PageType {
	return []PageType{PageTypeBillDetail, PageTypeFinalBill, PageTypePharmacy}
}

// Valid reports whether p is one of the known page classifications.
func (p PageType) Valid() bool {
	switch p {
	case PageTypeBillDetail, PageTypeFinalBill, PageTypePharmacy:
		return true
	}
	return false
}
