package enum

// BillKind distinguishes outpatient from inpatient bills in mixed report rows
type BillKind string

const (
	BillKindOP BillKind = "OP"
	BillKindIP BillKind = "IP"
)

// IsValid checks if the bill kind is valid
func (k BillKind) IsValid() bool {
	return k == BillKindOP || k == BillKindIP
}

// String returns the string representation of the bill kind
func (k BillKind) String() string {
	return string(k)
}

// Prefix returns the bill number prefix for this kind
func (k BillKind) Prefix() string {
	return string(k)
}
