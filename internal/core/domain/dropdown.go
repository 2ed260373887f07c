package domain

// DropdownValue is one allowed value for a validation form column, keyed by
// the column it belongs to (jenis_kolom).
type DropdownValue struct {
	JenisKolom string
	Nilai      string
}
