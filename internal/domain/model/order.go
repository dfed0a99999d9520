package model

// InvoicePrefix is the fixed textual prefix of every minted invoice number.
const InvoicePrefix = "FGRB"

// OrderRecord is one normalized customer order extracted from raw chat text.
// Field names follow the exported spreadsheet column layout.
type OrderRecord struct {
	Invoice string `json:"Invoice"`
	Name    string `json:"Name"`
	Address string `json:"Address"`
	Phone   string `json:"Phone"`
	Amount  int    `json:"Amount"`
	Note    string `json:"Note"`
}

// DedupKey identifies duplicate announcements. Two records sharing a key
// collapse into one regardless of how many times the announcement was
// repeated in the source text.
type DedupKey struct {
	Name    string
	Phone   string
	Address string
	Note    string
}

// Key returns the deduplication key of the record.
func (r OrderRecord) Key() DedupKey {
	return DedupKey{Name: r.Name, Phone: r.Phone, Address: r.Address, Note: r.Note}
}

// Less orders records by (name, phone, address, note) ascending.
func (r OrderRecord) Less(other OrderRecord) bool {
	if r.Name != other.Name {
		return r.Name < other.Name
	}
	if r.Phone != other.Phone {
		return r.Phone < other.Phone
	}
	if r.Address != other.Address {
		return r.Address < other.Address
	}
	return r.Note < other.Note
}

// OrderBatch is the full set of records produced by one normalization run,
// sorted by (name, phone, address, note). Records with identical sort keys
// keep their encounter order.
type OrderBatch []OrderRecord
