package clickup

import "encoding/json"

// Task is a unit of work inside a list. Lifecycle timestamps are kept as
// the opaque millisecond strings the API returns.
type Task struct {
	ID           string        `json:"id"`
	CustomID     *string       `json:"custom_id"`
	Name         string        `json:"name"`
	TextContent  string        `json:"text_content"`
	Description  string        `json:"description"`
	Status       TaskStatus    `json:"status"`
	OrderIndex   string        `json:"orderindex"`
	DateCreated  string        `json:"date_created"`
	DateUpdated  string        `json:"date_updated"`
	DateClosed   *string       `json:"date_closed"`
	Creator      Creator       `json:"creator"`
	Assignees    []string      `json:"assignees"`
	Checklists   []string      `json:"checklists"`
	Tags         []string      `json:"tags"`
	Parent       *string       `json:"parent"`
	Priority     *TaskPriority `json:"priority"`
	DueDate      *string       `json:"due_date"`
	StartDate    *string       `json:"start_date"`
	TimeEstimate *int64        `json:"time_estimate"`
	TimeSpent    *int64        `json:"time_spent,omitempty"`
	CustomFields []CustomField `json:"custom_fields"`
	List         ResourceRef   `json:"list"`
	Folder       ResourceRef   `json:"folder"`
	Space        ResourceRef   `json:"space"`
	URL          string        `json:"url"`
	Extra        Extra         `json:"-"`
	seen         memberSet
}

// TaskStatus is the current status of a task.
type TaskStatus struct {
	Status     string `json:"status"`
	Color      string `json:"color"`
	OrderIndex int    `json:"orderindex"`
	Type       string `json:"type"`
	Extra      Extra  `json:"-"`
	seen       memberSet
}

// Creator is the user who created a task.
type Creator struct {
	ID             int64   `json:"id"`
	Username       string  `json:"username"`
	Color          string  `json:"color"`
	Email          string  `json:"email,omitempty"`
	ProfilePicture *string `json:"profilePicture"`
	Extra          Extra   `json:"-"`
	seen           memberSet
}

// TaskPriority is the priority assigned to a task.
type TaskPriority struct {
	ID         string `json:"id,omitempty"`
	Priority   string `json:"priority"`
	Color      string `json:"color"`
	OrderIndex string `json:"orderindex,omitempty"`
	Extra      Extra  `json:"-"`
	seen       memberSet
}

// CustomField is a custom field value set on a task. TypeConfig depends on
// Type and is kept as an open object.
type CustomField struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	TypeConfig     map[string]any  `json:"type_config"`
	DateCreated    string          `json:"date_created"`
	HideFromGuests bool            `json:"hide_from_guests"`
	Value          json.RawMessage `json:"value,omitempty"`
	Required       *bool           `json:"required,omitempty"`
	Extra          Extra           `json:"-"`
	seen           memberSet
}

// RecordID implements Record.
func (t Task) RecordID() string { return t.Extra.text("id", t.ID) }

// RecordName implements Record.
func (t Task) RecordName() string { return t.Extra.text("name", t.Name) }

// UnmarshalJSON decodes t leniently, keeping unknown members in Extra.
func (t *Task) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, t, &t.Extra, &t.seen)
}

// MarshalJSON encodes t including its Extra members.
func (t Task) MarshalJSON() ([]byte, error) {
	type plain Task

	return marshalRecord(plain(t), t.Extra, t.seen)
}

// UnmarshalJSON decodes s leniently, keeping unknown members in Extra.
func (s *TaskStatus) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, s, &s.Extra, &s.seen)
}

// MarshalJSON encodes s including its Extra members.
func (s TaskStatus) MarshalJSON() ([]byte, error) {
	type plain TaskStatus

	return marshalRecord(plain(s), s.Extra, s.seen)
}

// UnmarshalJSON decodes c leniently, keeping unknown members in Extra.
func (c *Creator) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, c, &c.Extra, &c.seen)
}

// MarshalJSON encodes c including its Extra members.
func (c Creator) MarshalJSON() ([]byte, error) {
	type plain Creator

	return marshalRecord(plain(c), c.Extra, c.seen)
}

// UnmarshalJSON decodes p leniently, keeping unknown members in Extra.
func (p *TaskPriority) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, p, &p.Extra, &p.seen)
}

// MarshalJSON encodes p including its Extra members.
func (p TaskPriority) MarshalJSON() ([]byte, error) {
	type plain TaskPriority

	return marshalRecord(plain(p), p.Extra, p.seen)
}

// UnmarshalJSON decodes f leniently, keeping unknown members in Extra.
func (f *CustomField) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, f, &f.Extra, &f.seen)
}

// MarshalJSON encodes f including its Extra members.
func (f CustomField) MarshalJSON() ([]byte, error) {
	type plain CustomField

	return marshalRecord(plain(f), f.Extra, f.seen)
}

// Strict shapes for Task and its members.
var (
	TaskStatusShape = Object("TaskStatus",
		Field("status", String()),
		Field("color", String()),
		Field("orderindex", Number()),
		Field("type", String()),
	)

	CreatorShape = Object("Creator",
		Field("id", Number()),
		Field("username", String()),
		Field("color", String()),
		Field("email", Optional(String())),
		Field("profilePicture", Nullable(String())),
	)

	TaskPriorityShape = Object("TaskPriority",
		Field("id", Optional(String())),
		Field("priority", String()),
		Field("color", String()),
		Field("orderindex", Optional(String())),
	)

	TypeConfigShape = Object("TypeConfig")

	CustomFieldShape = Object("CustomField",
		Field("id", String()),
		Field("name", String()),
		Field("type", String()),
		Field("type_config", TypeConfigShape),
		Field("date_created", String()),
		Field("hide_from_guests", Bool()),
		Field("value", Any()),
		Field("required", Optional(Bool())),
	)

	TaskShape = Object("Task",
		Field("id", String()),
		Field("custom_id", Nullable(String())),
		Field("name", String()),
		Field("text_content", String()),
		Field("description", String()),
		Field("status", TaskStatusShape),
		Field("orderindex", String()),
		Field("date_created", String()),
		Field("date_updated", String()),
		Field("date_closed", Nullable(String())),
		Field("creator", CreatorShape),
		Field("assignees", ArrayOf(String())),
		Field("checklists", ArrayOf(String())),
		Field("tags", ArrayOf(String())),
		Field("parent", Nullable(String())),
		Field("priority", Nullable(TaskPriorityShape)),
		Field("due_date", Nullable(String())),
		Field("start_date", Nullable(String())),
		Field("time_estimate", Nullable(Number())),
		Field("time_spent", Optional(Nullable(Number()))),
		Field("custom_fields", ArrayOf(CustomFieldShape)),
		Field("list", ResourceRefShape),
		Field("folder", ResourceRefShape),
		Field("space", ResourceRefShape),
		Field("url", String()),
	)
)

// ParseTask strictly validates data and decodes it into a Task.
func ParseTask(data []byte) (*Task, error) {
	return parseStrict[Task](data, TaskShape)
}

// SerializeTask encodes t and validates the result against TaskShape.
func SerializeTask(t *Task) ([]byte, error) {
	return serializeStrict(t, TaskShape)
}
