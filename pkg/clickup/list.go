package clickup

// List belongs to a folder, possibly the space's folderless pseudo-folder.
type List struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	OrderIndex      int           `json:"orderindex"`
	Content         string        `json:"content,omitempty"`
	Status          *ListStatus   `json:"status,omitempty"`
	Priority        *ListPriority `json:"priority,omitempty"`
	Assignee        any           `json:"assignee,omitempty"`
	TaskCount       *int          `json:"task_count,omitempty"`
	DueDate         *string       `json:"due_date,omitempty"`
	DueDateTime     *bool         `json:"due_date_time,omitempty"`
	StartDate       *string       `json:"start_date,omitempty"`
	StartDateTime   *bool         `json:"start_date_time,omitempty"`
	Folder          *FolderRef    `json:"folder,omitempty"`
	Space           *SpaceRef     `json:"space,omitempty"`
	InboundAddress  string        `json:"inbound_address,omitempty"`
	Archived        *bool         `json:"archived,omitempty"`
	Statuses        []Status      `json:"statuses"`
	PermissionLevel string        `json:"permission_level,omitempty"`
	Extra           Extra         `json:"-"`
	seen            memberSet
}

// ListStatus is the status badge of a list.
type ListStatus struct {
	Status    string `json:"status"`
	Color     string `json:"color"`
	HideLabel bool   `json:"hide_label"`
	Extra     Extra  `json:"-"`
	seen      memberSet
}

// ListPriority is the priority badge of a list.
type ListPriority struct {
	Priority string `json:"priority"`
	Color    string `json:"color"`
	Extra    Extra  `json:"-"`
	seen     memberSet
}

// RecordID implements Record.
func (l List) RecordID() string { return l.Extra.text("id", l.ID) }

// RecordName implements Record.
func (l List) RecordName() string { return l.Extra.text("name", l.Name) }

// UnmarshalJSON decodes l leniently, keeping unknown members in Extra.
func (l *List) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, l, &l.Extra, &l.seen)
}

// MarshalJSON encodes l including its Extra members.
func (l List) MarshalJSON() ([]byte, error) {
	type plain List

	return marshalRecord(plain(l), l.Extra, l.seen)
}

// UnmarshalJSON decodes s leniently, keeping unknown members in Extra.
func (s *ListStatus) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, s, &s.Extra, &s.seen)
}

// MarshalJSON encodes s including its Extra members.
func (s ListStatus) MarshalJSON() ([]byte, error) {
	type plain ListStatus

	return marshalRecord(plain(s), s.Extra, s.seen)
}

// UnmarshalJSON decodes p leniently, keeping unknown members in Extra.
func (p *ListPriority) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, p, &p.Extra, &p.seen)
}

// MarshalJSON encodes p including its Extra members.
func (p ListPriority) MarshalJSON() ([]byte, error) {
	type plain ListPriority

	return marshalRecord(plain(p), p.Extra, p.seen)
}

// Strict shapes for List and its members.
var (
	ListStatusShape = Object("ListStatus",
		Field("status", String()),
		Field("color", String()),
		Field("hide_label", Bool()),
	)

	ListPriorityShape = Object("ListPriority",
		Field("priority", String()),
		Field("color", String()),
	)

	ListShape = Object("List",
		Field("id", String()),
		Field("name", String()),
		Field("orderindex", Number()),
		Field("content", Optional(String())),
		Field("status", Optional(Nullable(ListStatusShape))),
		Field("priority", Optional(Nullable(ListPriorityShape))),
		Field("assignee", Any()),
		Field("task_count", Optional(Nullable(Number()))),
		Field("due_date", Optional(Nullable(String()))),
		Field("due_date_time", Optional(Bool())),
		Field("start_date", Optional(Nullable(String()))),
		Field("start_date_time", Optional(Bool())),
		Field("folder", Optional(FolderRefShape)),
		Field("space", Optional(SpaceRefShape)),
		Field("inbound_address", Optional(String())),
		Field("archived", Optional(Bool())),
		Field("statuses", Optional(Nullable(ArrayOf(StatusShape)))),
		Field("permission_level", Optional(String())),
	)
)

// ParseList strictly validates data and decodes it into a List.
func ParseList(data []byte) (*List, error) {
	return parseStrict[List](data, ListShape)
}

// SerializeList encodes l and validates the result against ListShape.
func SerializeList(l *List) ([]byte, error) {
	return serializeStrict(l, ListShape)
}
