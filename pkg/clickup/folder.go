package clickup

// Folder belongs to exactly one space. Fetched on its own it also carries
// the lists it contains.
type Folder struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	OrderIndex       *int     `json:"orderindex,omitempty"`
	OverrideStatuses *bool    `json:"override_statuses,omitempty"`
	Hidden           bool     `json:"hidden"`
	Space            SpaceRef `json:"space"`
	TaskCount        string   `json:"task_count"`
	Archived         *bool    `json:"archived,omitempty"`
	Statuses         []Status `json:"statuses"`
	Lists            []List   `json:"lists"`
	PermissionLevel  string   `json:"permission_level,omitempty"`
	Extra            Extra    `json:"-"`
	seen             memberSet
}

// RecordID implements Record.
func (f Folder) RecordID() string { return f.Extra.text("id", f.ID) }

// RecordName implements Record.
func (f Folder) RecordName() string { return f.Extra.text("name", f.Name) }

// UnmarshalJSON decodes f leniently, keeping unknown members in Extra.
func (f *Folder) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, f, &f.Extra, &f.seen)
}

// MarshalJSON encodes f including its Extra members.
func (f Folder) MarshalJSON() ([]byte, error) {
	type plain Folder

	return marshalRecord(plain(f), f.Extra, f.seen)
}

// FolderShape is the strict shape of a Folder.
var FolderShape = Object("Folder",
	Field("id", String()),
	Field("name", String()),
	Field("orderindex", Optional(Number())),
	Field("override_statuses", Optional(Bool())),
	Field("hidden", Bool()),
	Field("space", SpaceRefShape),
	Field("task_count", String()),
	Field("archived", Optional(Bool())),
	Field("statuses", Optional(Nullable(ArrayOf(StatusShape)))),
	Field("lists", Optional(Nullable(ArrayOf(ListShape)))),
	Field("permission_level", Optional(String())),
)

// ParseFolder strictly validates data and decodes it into a Folder.
func ParseFolder(data []byte) (*Folder, error) {
	return parseStrict[Folder](data, FolderShape)
}

// SerializeFolder encodes f and validates the result against FolderShape.
func SerializeFolder(f *Folder) ([]byte, error) {
	return serializeStrict(f, FolderShape)
}
