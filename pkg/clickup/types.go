package clickup

// Status is a status definition on a space, folder or list.
type Status struct {
	ID         string `json:"id,omitempty"`
	Status     string `json:"status"`
	Type       string `json:"type"`
	OrderIndex int    `json:"orderindex"`
	Color      string `json:"color"`
	Extra      Extra  `json:"-"`
	seen       memberSet
}

// UnmarshalJSON decodes s leniently, keeping unknown members in Extra.
func (s *Status) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, s, &s.Extra, &s.seen)
}

// MarshalJSON encodes s including its Extra members.
func (s Status) MarshalJSON() ([]byte, error) {
	type plain Status

	return marshalRecord(plain(s), s.Extra, s.seen)
}

// StatusShape is the strict shape of a Status.
var StatusShape = Object("Status",
	Field("id", Optional(String())),
	Field("status", String()),
	Field("type", String()),
	Field("orderindex", Number()),
	Field("color", String()),
)

// ResourceRef is an id-only reference to a parent resource.
type ResourceRef struct {
	ID    string `json:"id"`
	Extra Extra  `json:"-"`
	seen  memberSet
}

// UnmarshalJSON decodes r leniently, keeping unknown members in Extra.
func (r *ResourceRef) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, r, &r.Extra, &r.seen)
}

// MarshalJSON encodes r including its Extra members.
func (r ResourceRef) MarshalJSON() ([]byte, error) {
	type plain ResourceRef

	return marshalRecord(plain(r), r.Extra, r.seen)
}

// ResourceRefShape is the strict shape of a ResourceRef.
var ResourceRefShape = Object("ResourceRef",
	Field("id", String()),
)

// SpaceRef references the space a folder or list belongs to.
type SpaceRef struct {
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	Access *bool  `json:"access,omitempty"`
	Extra  Extra  `json:"-"`
	seen   memberSet
}

// UnmarshalJSON decodes r leniently, keeping unknown members in Extra.
func (r *SpaceRef) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, r, &r.Extra, &r.seen)
}

// MarshalJSON encodes r including its Extra members.
func (r SpaceRef) MarshalJSON() ([]byte, error) {
	type plain SpaceRef

	return marshalRecord(plain(r), r.Extra, r.seen)
}

// SpaceRefShape is the strict shape of a SpaceRef.
var SpaceRefShape = Object("SpaceRef",
	Field("id", String()),
	Field("name", Optional(String())),
	Field("access", Optional(Bool())),
)

// FolderRef references the folder a list belongs to.
type FolderRef struct {
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	Hidden *bool  `json:"hidden,omitempty"`
	Access *bool  `json:"access,omitempty"`
	Extra  Extra  `json:"-"`
	seen   memberSet
}

// UnmarshalJSON decodes r leniently, keeping unknown members in Extra.
func (r *FolderRef) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, r, &r.Extra, &r.seen)
}

// MarshalJSON encodes r including its Extra members.
func (r FolderRef) MarshalJSON() ([]byte, error) {
	type plain FolderRef

	return marshalRecord(plain(r), r.Extra, r.seen)
}

// FolderRefShape is the strict shape of a FolderRef.
var FolderRefShape = Object("FolderRef",
	Field("id", String()),
	Field("name", Optional(String())),
	Field("hidden", Optional(Bool())),
	Field("access", Optional(Bool())),
)

// Record is implemented by every top-level record. It is what the CLI
// needs to print one line per result.
type Record interface {
	RecordID() string
	RecordName() string
}
