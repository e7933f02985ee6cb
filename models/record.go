package models

// VaultRecord is a single stored credential.
// It is the only persistence model of the vault: the encrypted vault file
// holds a JSON array of these records, in insertion order.
type VaultRecord struct {
	// Label identifies the record within a vault. Labels are case-sensitive
	// and unique per vault.
	Label string `json:"label"`

	// Password is the secret itself. It exists in plain form only in
	// memory; on disk it is always part of the encrypted vault blob.
	Password string `json:"password"`
}
